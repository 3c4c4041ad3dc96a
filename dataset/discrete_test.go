package dataset_test

import (
	"testing"

	"github.com/graphcausal/cgm/dataset"
	"github.com/stretchr/testify/require"
)

func TestFromRows_SortsColumnsByLabel(t *testing.T) {
	header := []string{"z", "a"}
	rows := [][]string{{"1", "x"}, {"0", "y"}}
	d, err := dataset.FromRows(header, rows)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "z"}, d.Labels())
}

func TestFromRows_RejectsMissingValue(t *testing.T) {
	_, err := dataset.FromRows([]string{"a", "b"}, [][]string{{"1", ""}})
	require.ErrorIs(t, err, dataset.ErrMissingValue)
}

func TestFromRows_RejectsFloatColumn(t *testing.T) {
	_, err := dataset.FromRows([]string{"a"}, [][]string{{"1.5"}})
	require.Error(t, err)
}

func TestFromRows_RejectsDuplicateLabel(t *testing.T) {
	_, err := dataset.FromRows([]string{"a", "a"}, [][]string{{"1", "2"}})
	require.ErrorIs(t, err, dataset.ErrDuplicateLabel)
}

func TestFromRows_StateEncodingFollowsSortedStates(t *testing.T) {
	d, err := dataset.FromRows([]string{"x"}, [][]string{{"c"}, {"a"}, {"b"}})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, d.States()[0])
	vals := d.Column(0)
	require.Equal(t, []uint8{2, 0, 1}, vals)
}

func TestFromRows_EmptyHeaderRejected(t *testing.T) {
	_, err := dataset.FromRows(nil, nil)
	require.ErrorIs(t, err, dataset.ErrEmptyLabels)
}

func TestDiscrete_SampleWithoutReplacement(t *testing.T) {
	d, err := dataset.FromRows([]string{"x"}, [][]string{{"a"}, {"b"}, {"c"}})
	require.NoError(t, err)
	sub, err := d.Sample(2, nil)
	require.NoError(t, err)
	require.Equal(t, 2, sub.NumSamples())
}

func TestDiscrete_SampleTooLargeWithoutReplacement(t *testing.T) {
	d, err := dataset.FromRows([]string{"x"}, [][]string{{"a"}})
	require.NoError(t, err)
	_, err = d.Sample(5, nil)
	require.ErrorIs(t, err, dataset.ErrSampleTooLarge)
}

func TestDiscrete_SampleWithReplacement(t *testing.T) {
	d, err := dataset.FromRows([]string{"x"}, [][]string{{"a"}})
	require.NoError(t, err)
	sub, err := d.SampleWithReplacement(10, nil)
	require.NoError(t, err)
	require.Equal(t, 10, sub.NumSamples())
}

func TestDiscrete_EmptySampleRejected(t *testing.T) {
	d, err := dataset.FromRows([]string{"x"}, [][]string{{"a"}})
	require.NoError(t, err)
	_, err = d.Sample(0, nil)
	require.ErrorIs(t, err, dataset.ErrEmptySample)
}

func TestDiscrete_SampleWithReplacementRejectsZeroRowDataset(t *testing.T) {
	d, err := dataset.FromRows([]string{"x"}, nil)
	require.NoError(t, err)
	require.Equal(t, 0, d.NumSamples())
	_, err = d.SampleWithReplacement(3, nil)
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)
}
