// Package report assembles the monthly report from the analytics engine
// and renders it as text.
package report

import (
	"time"

	"github.com/pocketledger/backend/internal/analytics"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Builder creates monthly reports.
type Builder struct {
	engine *analytics.Engine
	now    func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithNow replaces the clock. Used by tests to pin the report period.
func WithNow(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// New returns a report builder on top of the given engine.
func New(engine *analytics.Engine, opts ...Option) *Builder {
	b := &Builder{
		engine: engine,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Period is the date range a report covers.
type Period struct {
	Start string `json:"startDate" example:"2024-03-01"`
	End   string `json:"endDate" example:"2024-03-18"`
}

// Comparison is the month-over-month change against the immediately
// preceding calendar month. Percentages are 0 when the prior period's
// corresponding total is 0.
type Comparison struct {
	IncomeChange         decimal.Decimal `json:"incomeChange" example:"120"`
	ExpenseChange        decimal.Decimal `json:"expenseChange" example:"-45.5"`
	IncomeChangePercent  float64         `json:"incomeChangePercent" example:"4.2"`
	ExpenseChangePercent float64         `json:"expenseChangePercent" example:"-2.5"`
}

// Report is the structured monthly report.
type Report struct {
	Period        Period                     `json:"reportPeriod"`
	Summary       analytics.Balance          `json:"summary"`
	PreviousMonth Comparison                 `json:"previousMonthComparison"`
	Categories    map[string]decimal.Decimal `json:"categoryBreakdown"`
	Insights      analytics.SpendingInsights `json:"spendingInsights"`
	Suggestions   []string                   `json:"suggestions"`
	BudgetAlerts  []analytics.BudgetAlert    `json:"budgetAlerts"`
	GeneratedAt   time.Time                  `json:"generatedAt"`
}

// Monthly builds the report for the current calendar month: the balance
// from the 1st up to now, the trailing 3-month category breakdown, the
// weekday spending patterns, the current suggestions and budget alerts,
// and the change against the previous calendar month.
func (b *Builder) Monthly() Report {
	now := b.now()
	month := types.MonthOf(now)
	previous := month.AddDate(0, -1)

	summary := b.engine.Balance(month.Start(), now)
	prior := b.engine.Balance(previous.Start(), previous.End())

	return Report{
		Period: Period{
			Start: month.Start().Format(types.DateFormat),
			End:   now.Format(types.DateFormat),
		},
		Summary: summary,
		PreviousMonth: Comparison{
			IncomeChange:         summary.TotalIncome.Sub(prior.TotalIncome),
			ExpenseChange:        summary.TotalExpense.Sub(prior.TotalExpense),
			IncomeChangePercent:  changePercent(summary.TotalIncome, prior.TotalIncome),
			ExpenseChangePercent: changePercent(summary.TotalExpense, prior.TotalExpense),
		},
		Categories:   b.engine.SpendingByCategory(3),
		Insights:     b.engine.SpendingInsights(),
		Suggestions:  b.engine.Suggestions(),
		BudgetAlerts: b.engine.BudgetAlerts(),
		GeneratedAt:  now,
	}
}

func changePercent(current, prior decimal.Decimal) float64 {
	if !prior.IsPositive() {
		return 0
	}

	return current.Sub(prior).Div(prior).InexactFloat64() * 100
}
