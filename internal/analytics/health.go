package analytics

import (
	"sort"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/shopspring/decimal"
)

// HealthScore is the composite 0-100 financial health metric.
type HealthScore struct {
	Score   float64            `json:"score" example:"72.5"`
	Level   string             `json:"healthLevel" example:"Good"`
	Factors map[string]float64 `json:"factors"`
}

// Factor names in HealthScore.Factors.
const (
	FactorSavingsRate   = "savingsRate"
	FactorConsistency   = "consistency"
	FactorConcentration = "concentration"
	FactorAnomalies     = "anomalies"
)

// HealthScore combines four weighted factors over the trailing 180 days:
//
//   - savings rate, 0-30: full marks at a rate of 20% or better, scaled
//     linearly below, 0 when spending exceeds income
//   - spending consistency, 0-25: 1 minus the coefficient of variation of
//     calendar-month expenses, scaled; fewer than 3 months of data score
//     the neutral 12.5
//   - category concentration, 0-25: starts at 25, docked 15 for every
//     category above a 50% share and 10 for every one above 40%
//   - anomaly rate, 0-20: full marks with no anomalies, 0 when 20% or
//     more of all transactions are flagged
//
// The sum maps to a level: >=85 Excellent, >=70 Good, >=55 Fair,
// >=40 Poor, below that Critical.
func (e *Engine) HealthScore() HealthScore {
	now := e.now()
	half := e.Balance(now.AddDate(0, 0, -180), now)

	factors := map[string]float64{
		FactorSavingsRate:   e.savingsRateFactor(half),
		FactorConsistency:   e.consistencyFactor(),
		FactorConcentration: e.concentrationFactor(),
		FactorAnomalies:     e.anomalyFactor(),
	}

	var score float64
	for _, factor := range factors {
		score += factor
	}

	return HealthScore{
		Score:   score,
		Level:   Level(score),
		Factors: factors,
	}
}

func (e *Engine) savingsRateFactor(b Balance) float64 {
	if !b.TotalIncome.IsPositive() {
		return 0
	}

	rate := b.Balance.Div(b.TotalIncome).InexactFloat64()
	return clamp(rate/0.20) * 30
}

func (e *Engine) consistencyFactor() float64 {
	expenses := make([]float64, 0)
	for _, flow := range e.MonthlyTrend(6) {
		if flow.Expense.IsPositive() {
			expenses = append(expenses, flow.Expense.InexactFloat64())
		}
	}

	if len(expenses) < 3 {
		return 12.5
	}

	mean := mean(expenses)
	if mean == 0 {
		return 12.5
	}

	variation := sampleStdev(expenses, mean) / mean
	return clamp(1-variation) * 25
}

func (e *Engine) concentrationFactor() float64 {
	spending := e.SpendingByCategory(6)
	if len(spending) == 0 {
		return 25
	}

	total := decimalSum(spending)
	score := 25.0
	for _, amount := range spending {
		share := amount.Div(total).InexactFloat64()
		switch {
		case share > 0.50:
			score -= 15
		case share > 0.40:
			score -= 10
		}
	}

	if score < 0 {
		return 0
	}

	return score
}

func (e *Engine) anomalyFactor() float64 {
	total := len(e.store.Query(ledger.Filter{}))
	if total == 0 {
		return 20
	}

	rate := float64(len(e.DetectAnomalies(DefaultThresholdMultiplier))) / float64(total)
	return clamp(1-rate/0.20) * 20
}

// Level maps a composite score to its descriptive band.
func Level(score float64) string {
	switch {
	case score >= 85:
		return "Excellent"
	case score >= 70:
		return "Good"
	case score >= 55:
		return "Fair"
	case score >= 40:
		return "Poor"
	default:
		return "Critical"
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}

func decimalSum(values map[string]decimal.Decimal) decimal.Decimal {
	var sum decimal.Decimal
	for _, v := range values {
		sum = sum.Add(v)
	}

	return sum
}

// sortedCategories returns the map keys in deterministic order.
func sortedCategories(values map[string]decimal.Decimal) []string {
	categories := make([]string, 0, len(values))
	for category := range values {
		categories = append(categories, category)
	}

	sort.Strings(categories)
	return categories
}

// highestCategory returns the category with the largest total. Ties go to
// the lexicographically smaller name to keep the result deterministic.
func highestCategory(values map[string]decimal.Decimal) string {
	var highest string
	for _, category := range sortedCategories(values) {
		if highest == "" || values[category].GreaterThan(values[highest]) {
			highest = category
		}
	}

	return highest
}
