package ledger

import (
	"strings"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Candidate is an unvalidated transaction as supplied by a caller, a CSV
// row or an HTTP request. A nil field means the caller did not supply it,
// which is how partial update patches are expressed.
type Candidate struct {
	Date        *string `json:"date"`
	Kind        *string `json:"kind"`
	Category    *string `json:"category"`
	Amount      *string `json:"amount"`
	Description *string `json:"description"`
}

// NewCandidate returns a candidate with all five fields supplied.
func NewCandidate(date, kind, category, amount, description string) Candidate {
	return Candidate{
		Date:        &date,
		Kind:        &kind,
		Category:    &category,
		Amount:      &amount,
		Description: &description,
	}
}

// Valid applies the validation contract for transactions:
//
//   - all five fields must be supplied
//   - the date must parse as YYYY-MM-DD
//   - the kind must be exactly "income" or "expense"
//   - the amount must be numeric and strictly positive
//   - the category must be non-empty after trimming whitespace
//   - the description may be empty, but must be present
//
// A failure is a false return, never an error.
func (c Candidate) Valid() bool {
	if c.Date == nil || c.Kind == nil || c.Category == nil || c.Amount == nil || c.Description == nil {
		return false
	}

	if _, err := types.ParseDate(*c.Date); err != nil {
		return false
	}

	if !models.Kind(*c.Kind).Valid() {
		return false
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(*c.Amount))
	if err != nil || !amount.IsPositive() {
		return false
	}

	return strings.TrimSpace(*c.Category) != ""
}

// record converts a valid candidate into a transaction. The store is
// responsible for the ID and the timestamps.
func (c Candidate) record() models.Transaction {
	amount, _ := decimal.NewFromString(strings.TrimSpace(*c.Amount))

	return models.Transaction{
		Date:        strings.TrimSpace(*c.Date),
		Kind:        models.Kind(*c.Kind),
		Category:    strings.TrimSpace(*c.Category),
		Amount:      amount,
		Description: *c.Description,
	}
}

// merge overlays the supplied fields of patch onto c and returns the
// result. Fields the patch does not carry keep their current value.
func (c Candidate) merge(patch Candidate) Candidate {
	if patch.Date != nil {
		c.Date = patch.Date
	}
	if patch.Kind != nil {
		c.Kind = patch.Kind
	}
	if patch.Category != nil {
		c.Category = patch.Category
	}
	if patch.Amount != nil {
		c.Amount = patch.Amount
	}
	if patch.Description != nil {
		c.Description = patch.Description
	}

	return c
}

// candidateOf expresses a stored transaction as a candidate so that an
// update patch can be merged onto it and the merged whole re-validated.
func candidateOf(t models.Transaction) Candidate {
	kind := string(t.Kind)
	amount := t.Amount.String()

	return Candidate{
		Date:        &t.Date,
		Kind:        &kind,
		Category:    &t.Category,
		Amount:      &amount,
		Description: &t.Description,
	}
}
