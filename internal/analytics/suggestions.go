package analytics

import (
	"fmt"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
	"github.com/rs/zerolog/log"
)

const (
	maxSuggestions = 5
	minSuggestions = 3

	// lowActivityCount is the transaction count below which the tracking
	// nudge is added.
	lowActivityCount = 10
)

// genericSuggestions pad the list when the data supports fewer than three
// specific recommendations. They double as the fallback when suggestion
// generation fails internally.
var genericSuggestions = []string{
	"Record transactions regularly to keep your analytics accurate.",
	"Review your category budgets at the start of each month.",
	"Set a savings goal to give your budget a direction.",
}

// Suggestions derives up to five text recommendations from the trailing
// spending data: savings rate over the last 90 days, category
// concentration over the last three months, detected anomalies, the
// month-over-month expense swing and overall tracking activity. The
// result always holds between three and five messages and is never an
// error; an internal failure is answered with the fixed generic list.
func (e *Engine) Suggestions() (suggestions []string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("analytics: suggestion generation failed")
			suggestions = append([]string(nil), genericSuggestions...)
		}
	}()

	now := e.now()
	suggestions = make([]string, 0, maxSuggestions)

	// Savings rate over the trailing 90 days
	quarter := e.Balance(now.AddDate(0, 0, -90), now)
	switch {
	case quarter.Balance.IsNegative():
		suggestions = append(suggestions, "You spent more than you earned over the last three months. A budget per category can help you get back on track.")
	case quarter.TotalIncome.IsPositive():
		rate := quarter.Balance.Div(quarter.TotalIncome).InexactFloat64()
		switch {
		case rate < 0.10:
			suggestions = append(suggestions, "Your savings rate over the last three months is below 10%. Review recurring expenses for easy cuts.")
		case rate < 0.20:
			suggestions = append(suggestions, "Your savings rate is below 20%. Raising it a little now compounds over time.")
		default:
			suggestions = append(suggestions, "Your savings rate is healthy. Consider putting the surplus to work.")
		}
	}

	// Category concentration over the trailing three months
	spending := e.SpendingByCategory(3)
	if len(spending) > 0 {
		total := decimalSum(spending)
		highest := highestCategory(spending)

		for _, category := range sortedCategories(spending) {
			if spending[category].Div(total).InexactFloat64() > 0.40 {
				suggestions = append(suggestions, fmt.Sprintf("More than 40%% of your recent spending goes to '%s'. Consider setting a budget for it.", category))
			}
		}

		suggestions = append(suggestions, fmt.Sprintf("Your highest spending category over the last three months is '%s'.", highest))
	}

	// The single most deviant expense, if any
	if anomalies := e.DetectAnomalies(DefaultThresholdMultiplier); len(anomalies) > 0 {
		suggestions = append(suggestions, fmt.Sprintf("Detected an unusually large expense: '%s'. Make sure it is expected.", anomalies[0].Transaction.Description))
	}

	// Month-over-month expense swing
	month := types.MonthOf(now)
	previous := month.AddDate(0, -1)
	current := e.Balance(month.Start(), now).TotalExpense
	prior := e.Balance(previous.Start(), previous.End()).TotalExpense
	if prior.IsPositive() {
		change := current.Sub(prior).Div(prior).InexactFloat64()
		if change > 0.20 {
			suggestions = append(suggestions, "Your spending this month is up more than 20% compared to last month. Check what changed.")
		} else if change < -0.10 {
			suggestions = append(suggestions, "Your spending this month is down more than 10% compared to last month. Keep it up.")
		}
	}

	// Tracking activity nudge
	if len(e.store.Query(ledger.Filter{})) < lowActivityCount {
		suggestions = append(suggestions, "Only a few transactions are recorded so far. Regular tracking makes the analytics more useful.")
	}

	for _, generic := range genericSuggestions {
		if len(suggestions) >= minSuggestions {
			break
		}
		suggestions = append(suggestions, generic)
	}

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	return suggestions
}
