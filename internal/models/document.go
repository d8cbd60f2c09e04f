package models

import (
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Budgets maps a category label to its monthly spending limit.
//
// A budget may reference a category that no transaction uses, that is
// not an error.
type Budgets map[string]decimal.Decimal

// CategoryCatalog holds the pick-list labels offered when entering a
// transaction. It is not an enforced constraint, any non-empty category
// is accepted on a transaction.
type CategoryCatalog struct {
	Income  []string `json:"income"`
	Expense []string `json:"expense"`
}

// Goal is a savings goal tracked against the all-time balance.
type Goal struct {
	Name         string          `json:"name" example:"Emergency fund"`
	TargetAmount decimal.Decimal `json:"targetAmount" example:"5000"`
	TargetDate   string          `json:"targetDate" example:"2026-12-31"`
	StartDate    string          `json:"startDate" example:"2026-01-01"`
}

// Settings holds user preferences persisted with the document.
type Settings struct {
	Currency      string `json:"currency" example:"USD"`
	DateFormat    string `json:"dateFormat" example:"2006-01-02"`
	BackupEnabled bool   `json:"backupEnabled" example:"true"`
}

// Document is the root aggregate persisted as a single JSON file. It is
// owned exclusively by the ledger store; every mutation rewrites it
// wholesale.
type Document struct {
	Transactions []Transaction   `json:"transactions"`
	Budgets      Budgets         `json:"budgets"`
	Goals        []Goal          `json:"goals"`
	Categories   CategoryCatalog `json:"categories"`
	Settings     Settings        `json:"settings"`
}

// DefaultDocument returns the document used when no file exists yet or
// the stored one cannot be read.
func DefaultDocument() Document {
	return Document{
		Transactions: []Transaction{},
		Budgets:      Budgets{},
		Goals:        []Goal{},
		Categories: CategoryCatalog{
			Income:  []string{"Salary", "Bonus", "Investment Return", "Other Income"},
			Expense: []string{"Food", "Transport", "Shopping", "Entertainment", "Housing", "Medical", "Education", "Other Expense"},
		},
		Settings: Settings{
			Currency:      "USD",
			DateFormat:    types.DateFormat,
			BackupEnabled: true,
		},
	}
}

// Backfill replaces unset optional parts of a loaded document with their
// defaults. It runs once at load time so that the rest of the code never
// has to guard against nil maps or empty settings.
func (d *Document) Backfill() {
	defaults := DefaultDocument()

	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.Budgets == nil {
		d.Budgets = Budgets{}
	}
	if d.Goals == nil {
		d.Goals = []Goal{}
	}
	if d.Categories.Income == nil && d.Categories.Expense == nil {
		d.Categories = defaults.Categories
	}
	if d.Settings == (Settings{}) {
		d.Settings = defaults.Settings
	}
	if d.Settings.DateFormat == "" {
		d.Settings.DateFormat = defaults.Settings.DateFormat
	}
}
