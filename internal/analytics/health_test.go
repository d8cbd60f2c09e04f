package analytics_test

import (
	"testing"

	"github.com/pocketledger/backend/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthScoreEmptyStore(t *testing.T) {
	engine, _ := testEngine(t)

	health := engine.HealthScore()

	// No income scores 0 savings, everything else is neutral or full
	assert.Equal(t, 0.0, health.Factors[analytics.FactorSavingsRate])
	assert.Equal(t, 12.5, health.Factors[analytics.FactorConsistency])
	assert.Equal(t, 25.0, health.Factors[analytics.FactorConcentration])
	assert.Equal(t, 20.0, health.Factors[analytics.FactorAnomalies])
	assert.Equal(t, 57.5, health.Score)
	assert.Equal(t, "Fair", health.Level)
}

func TestHealthScoreFactorsSumToScore(t *testing.T) {
	engine, store := testEngine(t)

	add(t, store, "2024-03-01", "income", "Salary", "2000", "Salary")
	add(t, store, "2024-03-10", "expense", "Food", "500", "Groceries")
	add(t, store, "2024-03-12", "expense", "Transport", "400", "Fuel")
	add(t, store, "2024-03-15", "expense", "Housing", "600", "Rent")

	health := engine.HealthScore()

	var sum float64
	for _, factor := range health.Factors {
		sum += factor
	}

	assert.InDelta(t, sum, health.Score, 0.0001)
	require.Len(t, health.Factors, 4)
}

func TestHealthScoreSavingsRate(t *testing.T) {
	engine, store := testEngine(t)

	// 25% savings rate caps the factor at the full 30
	add(t, store, "2024-03-01", "income", "Salary", "2000", "Salary")
	add(t, store, "2024-03-10", "expense", "Food", "1500", "Everything")

	health := engine.HealthScore()
	assert.Equal(t, 30.0, health.Factors[analytics.FactorSavingsRate])
}

func TestHealthScoreOverspending(t *testing.T) {
	engine, store := testEngine(t)

	add(t, store, "2024-03-01", "income", "Salary", "1000", "Salary")
	add(t, store, "2024-03-10", "expense", "Shopping", "1500", "Too much")

	health := engine.HealthScore()
	assert.Equal(t, 0.0, health.Factors[analytics.FactorSavingsRate],
		"spending more than the income scores 0")
}

func TestHealthScoreConcentration(t *testing.T) {
	engine, store := testEngine(t)

	// A single category holds 100% of the spending: above both the 50%
	// and implicitly the 40% band, docking 15
	add(t, store, "2024-03-10", "expense", "Shopping", "800", "All in one place")

	health := engine.HealthScore()
	assert.Equal(t, 10.0, health.Factors[analytics.FactorConcentration])
}

func TestHealthLevels(t *testing.T) {
	tests := []struct {
		score float64
		level string
	}{
		{90, "Excellent"},
		{85, "Excellent"},
		{84.9, "Good"},
		{70, "Good"},
		{60, "Fair"},
		{55, "Fair"},
		{45, "Poor"},
		{40, "Poor"},
		{39.9, "Critical"},
		{0, "Critical"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.level, analytics.Level(tt.score), "score %v", tt.score)
	}
}
