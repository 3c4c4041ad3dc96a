package dataset_test

import (
	"strings"
	"testing"

	"github.com/graphcausal/cgm/dataset"
	"github.com/stretchr/testify/require"
)

func TestFromRowsContinuous_ParsesFloats(t *testing.T) {
	c, err := dataset.FromRowsContinuous([]string{"b", "a"}, [][]string{{"1.5", "2"}})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, c.Labels())
	require.InDelta(t, 2.0, c.Values()[0][0], 1e-12)
	require.InDelta(t, 1.5, c.Values()[0][1], 1e-12)
}

func TestFromRowsContinuous_RejectsMissing(t *testing.T) {
	_, err := dataset.FromRowsContinuous([]string{"a"}, [][]string{{""}})
	require.ErrorIs(t, err, dataset.ErrMissingValue)
}

func TestContinuous_SampleWithReplacementRejectsZeroRowDataset(t *testing.T) {
	c, err := dataset.FromRowsContinuous([]string{"a"}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, c.NumSamples())
	_, err = c.SampleWithReplacement(3, nil)
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

func TestReadCSV_RoundTripsIntoDiscrete(t *testing.T) {
	raw := "x,y\na,1\nb,0\n"
	header, rows, err := dataset.ReadCSV(strings.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, header)
	require.Len(t, rows, 2)
	d, err := dataset.FromRows(header, rows)
	require.NoError(t, err)
	require.Equal(t, 2, d.NumSamples())
}
