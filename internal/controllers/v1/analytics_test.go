package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pocketledger/backend/internal/analytics"
	"github.com/pocketledger/backend/internal/test"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// today is used so that the windowed endpoints see the test data.
func today() string {
	return time.Now().Format(types.DateFormat)
}

func TestGetBalance(t *testing.T) {
	r, store := test.App(t)

	createTestTransaction(t, store, today(), "income", "Salary", "1000", "Salary")
	createTestTransaction(t, store, today(), "expense", "Food", "150", "Groceries")

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/balance", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var balance analytics.Balance
	test.DecodeResponse(t, &recorder, &balance)
	assert.Equal(t, "1000", balance.TotalIncome.String())
	assert.Equal(t, "150", balance.TotalExpense.String())
	assert.Equal(t, "850", balance.Balance.String())
	assert.Equal(t, 2, balance.TransactionCount)
}

func TestGetSpendingByCategory(t *testing.T) {
	r, store := test.App(t)

	createTestTransaction(t, store, today(), "expense", "Food", "150", "Groceries")
	createTestTransaction(t, store, today(), "expense", "Transport", "50", "Fuel")
	createTestTransaction(t, store, today(), "income", "Salary", "1000", "Salary")

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/categories", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var spending map[string]decimal.Decimal
	test.DecodeResponse(t, &recorder, &spending)
	require.Len(t, spending, 2)
	assert.Equal(t, "150", spending["Food"].String())
	assert.Equal(t, "50", spending["Transport"].String())
}

func TestGetSpendingByCategoryInvalidMonths(t *testing.T) {
	r, _ := test.App(t)

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/categories?months=one", "")
	test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
}

func TestGetMonthlyTrend(t *testing.T) {
	r, store := test.App(t)

	createTestTransaction(t, store, today(), "income", "Salary", "1000", "Salary")
	createTestTransaction(t, store, today(), "expense", "Food", "150", "Groceries")

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/trend?months=1", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var trend map[string]analytics.Flow
	test.DecodeResponse(t, &recorder, &trend)

	month := time.Now().Format("2006-01")
	require.Contains(t, trend, month)
	assert.Equal(t, "1000", trend[month].Income.String())
	assert.Equal(t, "150", trend[month].Expense.String())
	assert.Equal(t, "850", trend[month].Net.String())
}

func TestGetAnomaliesEmpty(t *testing.T) {
	r, store := test.App(t)

	createTestTransaction(t, store, today(), "expense", "Food", "10", "Lunch")

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/anomalies", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var anomalies []analytics.Anomaly
	test.DecodeResponse(t, &recorder, &anomalies)
	assert.Empty(t, anomalies)
}

func TestGetAnomaliesInvalidThreshold(t *testing.T) {
	r, _ := test.App(t)

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/anomalies?threshold=high", "")
	test.AssertHTTPStatus(t, http.StatusBadRequest, &recorder)
}

func TestGetSpendingInsights(t *testing.T) {
	r, store := test.App(t)

	createTestTransaction(t, store, today(), "expense", "Food", "100", "Groceries")

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/insights", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var insights analytics.SpendingInsights
	test.DecodeResponse(t, &recorder, &insights)

	weekday := time.Now().Weekday().String()
	require.Contains(t, insights.Patterns, weekday)
	assert.Equal(t, 1, insights.Patterns[weekday].Count)
	assert.Equal(t, "100", insights.Patterns[weekday].Average.String())
	require.Len(t, insights.Recommendations, 1)
	assert.Contains(t, insights.Recommendations[0], weekday)
}

func TestGetSuggestions(t *testing.T) {
	r, _ := test.App(t)

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/suggestions", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var suggestions []string
	test.DecodeResponse(t, &recorder, &suggestions)
	assert.GreaterOrEqual(t, len(suggestions), 3)
	assert.LessOrEqual(t, len(suggestions), 5)
}

func TestGetHealthScore(t *testing.T) {
	r, _ := test.App(t)

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/health", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var health analytics.HealthScore
	test.DecodeResponse(t, &recorder, &health)
	assert.GreaterOrEqual(t, health.Score, 0.0)
	assert.LessOrEqual(t, health.Score, 100.0)
	assert.NotEmpty(t, health.Level)
}

func TestGetBudgetAlerts(t *testing.T) {
	r, store := test.App(t)

	require.NoError(t, store.SetBudget("Food", decimal.NewFromInt(100)))
	createTestTransaction(t, store, today(), "expense", "Food", "150", "Groceries")

	recorder := test.Request(t, r, http.MethodGet, "/v1/analytics/alerts", "")
	test.AssertHTTPStatus(t, http.StatusOK, &recorder)

	var alerts []analytics.BudgetAlert
	test.DecodeResponse(t, &recorder, &alerts)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Food", alerts[0].Category)
	assert.Equal(t, analytics.LevelCritical, alerts[0].Level)
}
