package dataset

import (
	"fmt"
	"math/rand"
	"strconv"
)

// Continuous is a 64-bit-float data matrix: rows are samples, columns
// are variables sorted by label. Supplements spec.md's discrete-only
// DataSet to exercise GaussianBIC (SPEC_FULL.md §2 domain stack).
type Continuous struct {
	labels []string
	values [][]float64
}

var _ DataSet = (*Continuous)(nil)

// Labels returns the sorted variable label set.
func (c *Continuous) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// NumSamples returns the row count.
func (c *Continuous) NumSamples() int { return len(c.values) }

// NumVariables returns len(Labels()).
func (c *Continuous) NumVariables() int { return len(c.labels) }

// Values returns the float64 matrix, rows x variables (defensive copy).
func (c *Continuous) Values() [][]float64 {
	out := make([][]float64, len(c.values))
	for i, row := range c.values {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// Column returns the float64 column for variable v.
func (c *Continuous) Column(v int) []float64 {
	out := make([]float64, len(c.values))
	for i, row := range c.values {
		out[i] = row[v]
	}
	return out
}

// FromRowsContinuous builds a Continuous from a CSV-shaped header and
// string rows, parsing every cell as float64 and rejecting missing
// values; columns are sorted by label like FromRows.
func FromRowsContinuous(header []string, rows [][]string) (*Continuous, error) {
	labels, perm, err := sortedPermutation(header)
	if err != nil {
		return nil, err
	}
	if err := validateRowWidths(rows, len(header)); err != nil {
		return nil, err
	}

	values := make([][]float64, len(rows))
	for r, row := range rows {
		values[r] = make([]float64, len(labels))
		for i, srcCol := range perm {
			cell := row[srcCol]
			if cell == "" {
				return nil, fmt.Errorf("dataset: row %d column %q: %w", r, labels[i], ErrMissingValue)
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: row %d column %q: %w", r, labels[i], err)
			}
			values[r][i] = v
		}
	}
	return &Continuous{labels: labels, values: values}, nil
}

// Sample draws k rows without replacement.
func (c *Continuous) Sample(k int, rng *rand.Rand) (*Continuous, error) {
	idx, err := sampleIndices(len(c.values), k, false, rng)
	if err != nil {
		return nil, err
	}
	return c.subset(idx), nil
}

// SampleWithReplacement draws k rows with replacement.
func (c *Continuous) SampleWithReplacement(k int, rng *rand.Rand) (*Continuous, error) {
	idx, err := sampleIndices(len(c.values), k, true, rng)
	if err != nil {
		return nil, err
	}
	return c.subset(idx), nil
}

func (c *Continuous) subset(idx []int) *Continuous {
	values := make([][]float64, len(idx))
	for i, r := range idx {
		values[i] = append([]float64(nil), c.values[r]...)
	}
	return &Continuous{labels: c.Labels(), values: values}
}
