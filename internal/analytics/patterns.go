package analytics

import (
	"fmt"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// DayPattern aggregates the expenses falling on one weekday.
type DayPattern struct {
	Average     decimal.Decimal `json:"average" example:"42.1"`
	Count       int             `json:"totalTransactions" example:"4"`
	MaxSpending decimal.Decimal `json:"maxSpending" example:"80"`
	MinSpending decimal.Decimal `json:"minSpending" example:"12.5"`
}

// SpendingInsights groups all recorded expenses by the weekday they fall
// on, plus recommendations derived from the pattern.
type SpendingInsights struct {
	Patterns        map[string]DayPattern `json:"spendingPatterns"`
	Recommendations []string              `json:"recommendations"`
}

// Weekdays is the pattern key order for stable rendering.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// SpendingInsights computes the per-weekday spending pattern over all
// recorded expenses. Weekdays without any expense are absent from the
// result.
func (e *Engine) SpendingInsights() SpendingInsights {
	insights := SpendingInsights{
		Patterns:        make(map[string]DayPattern),
		Recommendations: []string{},
	}

	totals := make(map[string]decimal.Decimal)
	for _, t := range e.store.Query(ledger.Filter{Kind: models.Expense}) {
		day, err := t.Day()
		if err != nil {
			continue
		}

		name := day.Weekday().String()
		pattern, seen := insights.Patterns[name]
		if !seen || t.Amount.GreaterThan(pattern.MaxSpending) {
			pattern.MaxSpending = t.Amount
		}
		if !seen || t.Amount.LessThan(pattern.MinSpending) {
			pattern.MinSpending = t.Amount
		}
		pattern.Count++
		insights.Patterns[name] = pattern

		totals[name] = totals[name].Add(t.Amount)
	}

	highest := ""
	for _, name := range Weekdays {
		pattern, ok := insights.Patterns[name]
		if !ok {
			continue
		}

		pattern.Average = totals[name].Div(decimal.NewFromInt(int64(pattern.Count)))
		insights.Patterns[name] = pattern

		if highest == "" || pattern.Average.GreaterThan(insights.Patterns[highest].Average) {
			highest = name
		}
	}

	if highest != "" {
		insights.Recommendations = append(insights.Recommendations,
			fmt.Sprintf("Highest spending occurs on %s. Consider meal planning or setting daily limits.", highest))
	}

	return insights
}
