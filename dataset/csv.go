package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ReadCSV reads a header row followed by data rows from r using the
// standard library's encoding/csv (the one ambient ingestion concern
// with no corpus-supplied third-party alternative — see DESIGN.md).
// Callers hand the result to FromRows or FromRowsContinuous depending
// on whether the data is discrete or continuous.
func ReadCSV(r io.Reader) (header []string, rows [][]string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("dataset: reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, ErrEmptyLabels
	}
	return records[0], records[1:], nil
}
