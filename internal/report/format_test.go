package report_test

import (
	"strings"
	"testing"

	"github.com/pocketledger/backend/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatText(t *testing.T) {
	builder, store := testBuilder(t)

	add(t, store, "2024-03-05", "income", "Salary", "2500", "March salary")
	add(t, store, "2024-03-10", "expense", "Food", "150", "Groceries")
	add(t, store, "2024-03-11", "expense", "Transport", "50", "Fuel")

	text := report.FormatText(builder.Monthly())

	assert.Contains(t, text, "POCKET LEDGER MONTHLY REPORT")
	assert.Contains(t, text, "Generated: 2024-03-20 12:00:00")
	assert.Contains(t, text, "Period: 2024-03-01 to 2024-03-20")
	assert.Contains(t, text, "Total Income:  $2,500.00")
	assert.Contains(t, text, "Total Expense: $200.00")
	assert.Contains(t, text, "Net Income:    $2,300.00")
	assert.Contains(t, text, "Transactions:  3")
	assert.Contains(t, text, "RECOMMENDATIONS")
	assert.Contains(t, text, "1. ")
	assert.True(t, strings.HasSuffix(text, "End of Report\n"))
}

func TestFormatTextCategoryOrder(t *testing.T) {
	builder, store := testBuilder(t)

	add(t, store, "2024-03-10", "expense", "Food", "150", "Groceries")
	add(t, store, "2024-03-11", "expense", "Transport", "50", "Fuel")

	text := report.FormatText(builder.Monthly())

	// Categories are listed by descending amount with their share
	food := strings.Index(text, "Food")
	transport := strings.Index(text, "Transport")
	require.NotEqual(t, -1, food)
	require.NotEqual(t, -1, transport)
	assert.Less(t, food, transport)
	assert.Contains(t, text, "Food           :    $150.00 ( 75.0%)")
	assert.Contains(t, text, "Transport      :     $50.00 ( 25.0%)")
}

func TestFormatTextMonthOverMonthSigns(t *testing.T) {
	builder, store := testBuilder(t)

	add(t, store, "2024-02-05", "income", "Salary", "1000", "February salary")
	add(t, store, "2024-02-10", "expense", "Food", "200", "Groceries")
	add(t, store, "2024-03-05", "income", "Salary", "1200", "March salary")
	add(t, store, "2024-03-10", "expense", "Food", "150", "Groceries")

	text := report.FormatText(builder.Monthly())

	assert.Contains(t, text, "Income Change:  +$200.00 (20.0%)")
	assert.Contains(t, text, "Expense Change: -$50.00 (-25.0%)")
}

func TestFormatTextBudgetAlertSection(t *testing.T) {
	builder, store := testBuilder(t)

	require.NoError(t, store.SetBudget("Food", decimal.NewFromInt(100)))
	add(t, store, "2024-03-05", "expense", "Food", "90", "Groceries")

	text := report.FormatText(builder.Monthly())

	assert.Contains(t, text, "BUDGET ALERTS")
	assert.Contains(t, text, "[warning] ")
}

func TestFormatTextWithoutAlertsOmitsSection(t *testing.T) {
	builder, _ := testBuilder(t)

	text := report.FormatText(builder.Monthly())

	assert.NotContains(t, text, "BUDGET ALERTS")
	assert.NotContains(t, text, "SPENDING PATTERNS")
}

func TestFormatTextSpendingPatterns(t *testing.T) {
	builder, store := testBuilder(t)

	// 2024-03-16 is a Saturday, 2024-03-11 and 2024-03-18 are Mondays.
	add(t, store, "2024-03-16", "expense", "Shopping", "100", "Clothes")
	add(t, store, "2024-03-11", "expense", "Food", "40", "Groceries")
	add(t, store, "2024-03-18", "expense", "Food", "60", "More groceries")

	text := report.FormatText(builder.Monthly())

	assert.Contains(t, text, "SPENDING PATTERNS")
	assert.Contains(t, text, "Monday    : Avg $50.00 (2 transactions)")
	assert.Contains(t, text, "Saturday  : Avg $100.00 (1 transactions)")

	// Weekday order, not insertion order
	monday := strings.Index(text, "Monday    : Avg")
	saturday := strings.Index(text, "Saturday  : Avg")
	require.NotEqual(t, -1, monday)
	require.NotEqual(t, -1, saturday)
	assert.Less(t, monday, saturday)
}
