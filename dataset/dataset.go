// Package dataset implements the tabular data collaborators consumed
// by conditional-independence tests and scoring criteria: a discrete
// (state-indexed) data matrix and a continuous (float64) counterpart,
// both built from sorted-by-label columns, plus CSV ingestion and
// sampling. Mirrors the teacher's functional-options-free, plain
// constructor-and-getter style (github.com/katalvlaran/lvlath/matrix).
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// Sentinel errors.
var (
	// ErrEmptyLabels is returned when no columns are provided.
	ErrEmptyLabels = errors.New("dataset: no columns provided")

	// ErrDuplicateLabel is returned when two columns share a label.
	ErrDuplicateLabel = errors.New("dataset: duplicate column label")

	// ErrRowWidthMismatch is returned when a row's width does not match the header.
	ErrRowWidthMismatch = errors.New("dataset: row width does not match column count")

	// ErrMissingValue is returned when a cell (discrete or continuous) is empty.
	ErrMissingValue = errors.New("dataset: missing value")

	// ErrCardinalityOverflow is returned when a discrete column has 255 or more states.
	ErrCardinalityOverflow = errors.New("dataset: column cardinality must be < 255")

	// ErrEmptySample is returned when a zero-size sample is requested.
	ErrEmptySample = errors.New("dataset: sample size must be > 0")

	// ErrSampleTooLarge is returned when Sample (without replacement)
	// requests more rows than are available.
	ErrSampleTooLarge = errors.New("dataset: sample size exceeds row count without replacement")

	// ErrEmptyDataset is returned when SampleWithReplacement is
	// requested from a zero-row dataset (Sample without replacement
	// reports ErrSampleTooLarge there instead).
	ErrEmptyDataset = errors.New("dataset: cannot sample from a dataset with zero rows")
)

// DataSet is the capability interface discovery engines read through:
// the label set and basic shape queries shared by Discrete and
// Continuous. Concrete value access lives on the concrete types since
// discrete and continuous cells have different element types.
type DataSet interface {
	// Labels returns the sorted variable label set.
	Labels() []string

	// NumSamples returns the row count.
	NumSamples() int

	// NumVariables returns len(Labels()).
	NumVariables() int
}

func sortedPermutation(header []string) ([]string, []int, error) {
	if len(header) == 0 {
		return nil, nil, ErrEmptyLabels
	}
	type col struct {
		label string
		idx   int
	}
	cols := make([]col, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		if seen[h] {
			return nil, nil, fmt.Errorf("dataset: %w: %q", ErrDuplicateLabel, h)
		}
		seen[h] = true
		cols[i] = col{label: h, idx: i}
	}
	sort.Slice(cols, func(i, j int) bool { return cols[i].label < cols[j].label })
	labels := make([]string, len(cols))
	perm := make([]int, len(cols))
	for i, c := range cols {
		labels[i] = c.label
		perm[i] = c.idx
	}
	return labels, perm, nil
}

func validateRowWidths(rows [][]string, width int) error {
	for r, row := range rows {
		if len(row) != width {
			return fmt.Errorf("dataset: row %d: %w (got %d, want %d)", r, ErrRowWidthMismatch, len(row), width)
		}
	}
	return nil
}

func sampleIndices(n, k int, withReplacement bool, rng *rand.Rand) ([]int, error) {
	if k <= 0 {
		return nil, ErrEmptySample
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if withReplacement {
		if n == 0 {
			return nil, ErrEmptyDataset
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = rng.Intn(n)
		}
		return idx, nil
	}
	if k > n {
		return nil, ErrSampleTooLarge
	}
	perm := rng.Perm(n)
	return perm[:k], nil
}
