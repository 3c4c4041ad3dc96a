package score_test

import (
	"testing"

	"github.com/graphcausal/cgm/dataset"
	"github.com/graphcausal/cgm/score"
	"github.com/stretchr/testify/require"
)

func mustContinuous(t *testing.T) *dataset.Continuous {
	t.Helper()
	rows := [][]string{
		{"1", "2"}, {"2", "4"}, {"3", "6.1"}, {"4", "7.9"}, {"5", "10"},
	}
	c, err := dataset.FromRowsContinuous([]string{"x", "y"}, rows)
	require.NoError(t, err)
	return c
}

func TestGaussianBIC_FitsLinearRelationship(t *testing.T) {
	c := mustContinuous(t)
	g, err := score.NewGaussianBIC(c)
	require.NoError(t, err)
	xi, _ := indexOfLabel(c.Labels(), "x")
	yi, _ := indexOfLabel(c.Labels(), "y")

	withParent, err := g.Call(yi, []int{xi})
	require.NoError(t, err)
	withoutParent, err := g.Call(yi, nil)
	require.NoError(t, err)
	require.Greater(t, withParent, withoutParent)
}

func TestGaussianBIC_RejectsOutOfRangeVariable(t *testing.T) {
	c := mustContinuous(t)
	g, err := score.NewGaussianBIC(c)
	require.NoError(t, err)
	_, err = g.Call(9, nil)
	require.ErrorIs(t, err, score.ErrVariableOutOfRange)
}

func indexOfLabel(labels []string, label string) (int, bool) {
	for i, l := range labels {
		if l == label {
			return i, true
		}
	}
	return -1, false
}
