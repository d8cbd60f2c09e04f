package importer

import (
	"strings"

	"github.com/pocketledger/backend/internal/ledger"
)

// Candidates converts parsed CSV rows into store candidates. The type
// column is lowercased so that "Income"/"EXPENSE" spellings import
// cleanly; everything else is passed through for the validator to judge.
func Candidates(rows []Row) []ledger.Candidate {
	candidates := make([]ledger.Candidate, 0, len(rows))
	for _, row := range rows {
		candidate := ledger.Candidate{
			Date:        field(row, "date"),
			Kind:        field(row, "type"),
			Category:    field(row, "category"),
			Amount:      field(row, "amount"),
			Description: field(row, "description"),
		}

		if candidate.Kind != nil {
			lowered := strings.ToLower(*candidate.Kind)
			candidate.Kind = &lowered
		}

		candidates = append(candidates, candidate)
	}

	return candidates
}

func field(row Row, name string) *string {
	value, ok := row[name]
	if !ok {
		return nil
	}

	return &value
}
