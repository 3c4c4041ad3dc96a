package citest_test

import (
	"testing"

	"github.com/graphcausal/cgm/citest"
	"github.com/graphcausal/cgm/dataset"
	"github.com/stretchr/testify/require"
)

func mustDiscrete(t *testing.T, header []string, rows [][]string) *dataset.Discrete {
	t.Helper()
	d, err := dataset.FromRows(header, rows)
	require.NoError(t, err)
	return d
}

func TestNewChiSquared_RejectsBadAlpha(t *testing.T) {
	d := mustDiscrete(t, []string{"x", "y"}, [][]string{{"0", "0"}, {"1", "1"}})
	_, err := citest.NewChiSquared(d, 1.0)
	require.ErrorIs(t, err, citest.ErrInvalidSignificance)
	_, err = citest.NewChiSquared(d, -0.1)
	require.ErrorIs(t, err, citest.ErrInvalidSignificance)
}

func TestChiSquared_IndependentColumns(t *testing.T) {
	// x alternates independently of y: roughly balanced joint counts.
	rows := [][]string{
		{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"},
		{"0", "0"}, {"0", "1"}, {"1", "0"}, {"1", "1"},
	}
	d := mustDiscrete(t, []string{"x", "y"}, rows)
	ct, err := citest.NewChiSquared(d, 0.05)
	require.NoError(t, err)
	xi, _ := indexOf(d.Labels(), "x")
	yi, _ := indexOf(d.Labels(), "y")
	dof, stat, pvalue, err := ct.Eval(xi, yi, nil)
	require.NoError(t, err)
	require.Equal(t, 1, dof)
	require.InDelta(t, 0, stat, 1e-9)
	require.InDelta(t, 1.0, pvalue, 1e-9)
	indep, err := ct.Call(xi, yi, nil)
	require.NoError(t, err)
	require.True(t, indep)
}

func TestChiSquared_DependentColumns(t *testing.T) {
	rows := [][]string{
		{"0", "0"}, {"0", "0"}, {"0", "0"}, {"0", "0"},
		{"1", "1"}, {"1", "1"}, {"1", "1"}, {"1", "1"},
	}
	d := mustDiscrete(t, []string{"x", "y"}, rows)
	ct, err := citest.NewChiSquared(d, 0.05)
	require.NoError(t, err)
	xi, _ := indexOf(d.Labels(), "x")
	yi, _ := indexOf(d.Labels(), "y")
	_, stat, pvalue, err := ct.Eval(xi, yi, nil)
	require.NoError(t, err)
	require.Greater(t, stat, 0.0)
	require.Less(t, pvalue, 0.05)
	indep, err := ct.Call(xi, yi, nil)
	require.NoError(t, err)
	require.False(t, indep)
}

func TestChiSquared_AlphaZeroAcceptsNoIndependence(t *testing.T) {
	// Strongly dependent columns: the p-value is tiny but still positive,
	// so a plain "pvalue > alpha" comparison would accept independence
	// at alpha = 0. Call must reject it instead.
	rows := [][]string{
		{"0", "0"}, {"0", "0"}, {"0", "0"}, {"0", "0"},
		{"1", "1"}, {"1", "1"}, {"1", "1"}, {"1", "1"},
	}
	d := mustDiscrete(t, []string{"x", "y"}, rows)
	ct, err := citest.NewChiSquared(d, 0)
	require.NoError(t, err)
	xi, _ := indexOf(d.Labels(), "x")
	yi, _ := indexOf(d.Labels(), "y")
	indep, err := ct.Call(xi, yi, nil)
	require.NoError(t, err)
	require.False(t, indep, "alpha = 0 must accept no conditional independence")
}

func TestChiSquared_OutOfRangeIndex(t *testing.T) {
	d := mustDiscrete(t, []string{"x", "y"}, [][]string{{"0", "0"}})
	ct, err := citest.NewChiSquared(d, 0.05)
	require.NoError(t, err)
	_, _, _, err = ct.Eval(5, 0, nil)
	require.ErrorIs(t, err, citest.ErrLabelMismatch)
}

func indexOf(labels []string, label string) (int, bool) {
	for i, l := range labels {
		if l == label {
			return i, true
		}
	}
	return -1, false
}
