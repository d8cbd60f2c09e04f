// Package models defines the resources held in the persisted document.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Kind is the income/expense polarity of a transaction.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Valid reports whether the kind is one of the two canonical values.
// The check is case-sensitive.
func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// Transaction is the atomic record of the ledger.
//
// The date is kept in its textual YYYY-MM-DD form so that a record with a
// malformed date in a hand-edited document degrades on its own instead of
// making the whole document unreadable.
type Transaction struct {
	ID          string          `json:"id" example:"TXN_65392deb5e924268b114297faad6cdce"`
	Date        string          `json:"date" example:"2024-01-02"`
	Kind        Kind            `json:"kind" example:"expense"`
	Category    string          `json:"category" example:"Food"`
	Amount      decimal.Decimal `json:"amount" example:"14.03"`
	Description string          `json:"description" example:"Lunch"`
	CreatedAt   time.Time       `json:"createdAt" example:"2024-04-02T19:28:44.491514Z"`
	UpdatedAt   time.Time       `json:"updatedAt" example:"2024-04-17T20:14:01.048145Z"`
}

// Day returns the calendar date of the transaction.
func (t Transaction) Day() (time.Time, error) {
	return types.ParseDate(t.Date)
}

// NewID returns a fresh process-unique transaction ID.
func NewID() string {
	return "TXN_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
