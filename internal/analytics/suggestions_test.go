package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionsEmptyStore(t *testing.T) {
	engine, _ := testEngine(t)

	suggestions := engine.Suggestions()

	assert.GreaterOrEqual(t, len(suggestions), 3)
	assert.LessOrEqual(t, len(suggestions), 5)
}

func TestSuggestionsBounds(t *testing.T) {
	engine, store := testEngine(t)

	// Data that triggers many bands at once: overspending, concentration,
	// an anomaly and few transactions
	add(t, store, "2024-03-01", "income", "Salary", "100", "Salary")
	add(t, store, "2024-03-02", "expense", "Food", "10", "Lunch")
	add(t, store, "2024-03-03", "expense", "Food", "11", "Lunch")
	add(t, store, "2024-03-04", "expense", "Food", "9", "Lunch")
	add(t, store, "2024-03-05", "expense", "Food", "10", "Lunch")
	add(t, store, "2024-03-06", "expense", "Food", "12", "Lunch")
	add(t, store, "2024-03-07", "expense", "Food", "10", "Lunch")
	add(t, store, "2024-03-08", "expense", "Food", "11", "Lunch")
	add(t, store, "2024-03-09", "expense", "Food", "10", "Lunch")
	add(t, store, "2024-03-10", "expense", "Shopping", "500", "Outlier")

	suggestions := engine.Suggestions()

	assert.GreaterOrEqual(t, len(suggestions), 3)
	assert.LessOrEqual(t, len(suggestions), 5)
}

func TestSuggestionsOverspending(t *testing.T) {
	engine, store := testEngine(t)

	add(t, store, "2024-03-01", "income", "Salary", "1000", "Salary")
	add(t, store, "2024-03-10", "expense", "Shopping", "1500", "Too much")

	assert.Contains(t, engine.Suggestions(),
		"You spent more than you earned over the last three months. A budget per category can help you get back on track.")
}

func TestSuggestionsHealthySavings(t *testing.T) {
	engine, store := testEngine(t)

	add(t, store, "2024-03-01", "income", "Salary", "2000", "Salary")
	add(t, store, "2024-03-10", "expense", "Food", "500", "Groceries")

	assert.Contains(t, engine.Suggestions(),
		"Your savings rate is healthy. Consider putting the surplus to work.")
}

func TestSuggestionsConcentration(t *testing.T) {
	engine, store := testEngine(t)

	add(t, store, "2024-03-10", "expense", "Shopping", "900", "Big ticket")
	add(t, store, "2024-03-11", "expense", "Food", "100", "Groceries")

	suggestions := engine.Suggestions()

	assert.Contains(t, suggestions,
		"More than 40% of your recent spending goes to 'Shopping'. Consider setting a budget for it.")
	assert.Contains(t, suggestions,
		"Your highest spending category over the last three months is 'Shopping'.")
}

func TestSuggestionsLowActivity(t *testing.T) {
	engine, store := testEngine(t)

	add(t, store, "2024-03-10", "expense", "Food", "10", "Lunch")

	assert.Contains(t, engine.Suggestions(),
		"Only a few transactions are recorded so far. Regular tracking makes the analytics more useful.")
}
