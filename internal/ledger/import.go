package ledger

import (
	"errors"
	"fmt"
)

// ImportResult reports the outcome of a batch import. Success requires at
// least one imported row and no failed rows; a batch with both imports
// and failures is a partial success and reported as Success == false with
// the per-row errors listed.
type ImportResult struct {
	Imported int      `json:"importedCount"`
	Failed   int      `json:"failedCount"`
	Errors   []string `json:"errors"`
	Success  bool     `json:"success"`
}

// Partial reports whether some rows were imported while others failed.
func (r ImportResult) Partial() bool {
	return r.Imported > 0 && r.Failed > 0
}

// ImportBatch adds every candidate in order. Row failures are collected
// with their 1-based position and do not abort the remaining rows.
func (s *Store) ImportBatch(rows []Candidate) ImportResult {
	result := ImportResult{Errors: []string{}}

	for i, row := range rows {
		if _, err := s.Add(row); err != nil {
			result.Failed++

			// A row that could not be written is not bad data.
			msg := "invalid transaction data"
			if errors.Is(err, ErrNotPersisted) {
				msg = err.Error()
			}
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: %s", i+1, msg))
			continue
		}

		result.Imported++
	}

	result.Success = result.Imported > 0 && result.Failed == 0
	return result
}

// FailedImport wraps a batch-level error, for example a CSV file with
// missing columns, in the result shape so that callers always receive an
// ImportResult.
func FailedImport(err error) ImportResult {
	return ImportResult{Errors: []string{err.Error()}}
}
