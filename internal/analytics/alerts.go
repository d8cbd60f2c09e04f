package analytics

import (
	"fmt"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// AlertLevel grades a budget alert.
type AlertLevel string

const (
	LevelInfo     AlertLevel = "info"
	LevelWarning  AlertLevel = "warning"
	LevelCritical AlertLevel = "critical"
)

// BudgetAlert reports the current calendar-month usage of one budgeted
// category.
type BudgetAlert struct {
	Category   string          `json:"category" example:"Food"`
	Budget     decimal.Decimal `json:"budget" example:"300"`
	Spent      decimal.Decimal `json:"spent" example:"250"`
	Remaining  decimal.Decimal `json:"remaining" example:"50"`
	Percentage float64         `json:"percentage" example:"83.3"`
	Level      AlertLevel      `json:"level" example:"warning"`
	Message    string          `json:"message"`
}

// BudgetAlerts checks every configured budget against the spend of the
// current calendar month, from the 1st up to now. This is the true
// calendar month, unlike the rolling 30-day windows used by the category
// and trend analytics. An alert is only raised at 60% usage or more;
// 80% makes it a warning and 100% critical.
func (e *Engine) BudgetAlerts() []BudgetAlert {
	now := e.now()
	month := types.MonthOf(now)
	budgets := e.store.Budgets()

	alerts := make([]BudgetAlert, 0)
	for _, category := range sortedCategories(map[string]decimal.Decimal(budgets)) {
		budget := budgets[category]
		if !budget.IsPositive() {
			continue
		}

		var spent decimal.Decimal
		for _, t := range e.store.Query(ledger.Filter{
			From:     month.Start(),
			To:       now,
			Kind:     models.Expense,
			Category: category,
		}) {
			spent = spent.Add(t.Amount)
		}

		percentage := spent.Div(budget).InexactFloat64() * 100
		if percentage < 60 {
			continue
		}

		level := LevelInfo
		switch {
		case percentage >= 100:
			level = LevelCritical
		case percentage >= 80:
			level = LevelWarning
		}

		remaining := budget.Sub(spent)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}

		alerts = append(alerts, BudgetAlert{
			Category:   category,
			Budget:     budget,
			Spent:      spent,
			Remaining:  remaining,
			Percentage: percentage,
			Level:      level,
			Message:    budgetMessage(category, percentage, budget, spent, month, now.Day()),
		})
	}

	return alerts
}

func budgetMessage(category string, percentage float64, budget, spent decimal.Decimal, month types.Month, today int) string {
	switch {
	case percentage >= 100:
		over := spent.Sub(budget)
		return fmt.Sprintf("Budget exceeded for %s by $%s. Consider reducing spending.", category, over.StringFixed(2))
	case percentage >= 80:
		remainingDays := month.Days() - today + 1
		if remainingDays < 1 {
			remainingDays = 1
		}
		daily := budget.Sub(spent).Div(decimal.NewFromInt(int64(remainingDays)))
		return fmt.Sprintf("%s budget 80%% used. $%s/day remaining for %d days.", category, daily.StringFixed(2), remainingDays)
	default:
		return fmt.Sprintf("%s spending on track: %.1f%% of budget used.", category, percentage)
	}
}
