// Package analytics derives aggregates, trends, anomaly flags and
// recommendations from the ledger. All computations read through the
// store's query interface and never mutate it.
package analytics

import (
	"time"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Engine computes analytics over a ledger store.
type Engine struct {
	store *ledger.Store
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithNow replaces the clock. Used by tests to pin the analysis windows.
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns an engine reading from the given store.
func New(store *ledger.Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Balance is the income/expense aggregate over a date window.
type Balance struct {
	TotalIncome      decimal.Decimal `json:"totalIncome" example:"1000"`
	TotalExpense     decimal.Decimal `json:"totalExpense" example:"150"`
	Balance          decimal.Decimal `json:"balance" example:"850"`
	TransactionCount int             `json:"transactionCount" example:"3"`
}

// Balance sums amounts by kind over the window. Zero bounds leave the
// window unbounded on that side. An empty window yields the zero value,
// never an error.
func (e *Engine) Balance(from, to time.Time) Balance {
	var b Balance
	for _, t := range e.store.Query(ledger.Filter{From: from, To: to}) {
		switch t.Kind {
		case models.Income:
			b.TotalIncome = b.TotalIncome.Add(t.Amount)
		case models.Expense:
			b.TotalExpense = b.TotalExpense.Add(t.Amount)
		}
		b.TransactionCount++
	}

	b.Balance = b.TotalIncome.Sub(b.TotalExpense)
	return b
}

// SpendingByCategory totals expenses per category over a trailing window
// of months*30 days. The window is rolling, not calendar-aligned; budget
// alerts use the calendar month instead. Categories without spend in the
// window are absent from the result.
func (e *Engine) SpendingByCategory(months int) map[string]decimal.Decimal {
	spending := make(map[string]decimal.Decimal)

	now := e.now()
	for _, t := range e.store.Query(ledger.Filter{
		From: now.AddDate(0, 0, -30*months),
		To:   now,
		Kind: models.Expense,
	}) {
		spending[t.Category] = spending[t.Category].Add(t.Amount)
	}

	return spending
}

// Flow is the income/expense movement of one month.
type Flow struct {
	Income  decimal.Decimal `json:"income" example:"2500"`
	Expense decimal.Decimal `json:"expense" example:"1800"`
	Net     decimal.Decimal `json:"net" example:"700"`
}

// MonthlyTrend groups the trailing months*30 day window by the calendar
// month of each transaction, keyed as YYYY-MM. Months without any
// transaction do not appear.
func (e *Engine) MonthlyTrend(months int) map[string]Flow {
	trend := make(map[string]Flow)

	now := e.now()
	for _, t := range e.store.Query(ledger.Filter{
		From: now.AddDate(0, 0, -30*months),
		To:   now,
	}) {
		day, err := t.Day()
		if err != nil {
			continue
		}

		key := types.MonthOf(day).String()
		flow := trend[key]
		switch t.Kind {
		case models.Income:
			flow.Income = flow.Income.Add(t.Amount)
		case models.Expense:
			flow.Expense = flow.Expense.Add(t.Amount)
		}
		flow.Net = flow.Income.Sub(flow.Expense)
		trend[key] = flow
	}

	return trend
}
