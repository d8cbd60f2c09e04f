package analytics

import (
	"math"
	"sort"

	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// DefaultThresholdMultiplier is the multiplier applied to the standard
// deviation when no explicit one is requested.
const DefaultThresholdMultiplier = 2.0

// Anomaly flags an expense whose amount exceeds the statistical
// threshold over all expenses.
type Anomaly struct {
	Transaction models.Transaction `json:"transaction"`
	Deviation   float64            `json:"deviation" example:"2.73"`
	Threshold   float64            `json:"threshold" example:"412.5"`
}

// DetectAnomalies flags expenses whose amount strictly exceeds
// mean + multiplier*stdev over all expense amounts. The sample standard
// deviation (n-1 denominator) is used; a single data point has a
// standard deviation of 0 by definition here. Fewer than 3 expense
// transactions yield no anomalies regardless of their amounts.
//
// The result is ordered by descending deviation, where deviation is the
// amount's distance from the mean in standard deviations (0 when the
// standard deviation is 0).
func (e *Engine) DetectAnomalies(multiplier float64) []Anomaly {
	expenses := e.store.Query(ledger.Filter{Kind: models.Expense})

	anomalies := make([]Anomaly, 0)
	if len(expenses) < 3 {
		return anomalies
	}

	amounts := make([]float64, len(expenses))
	for i, t := range expenses {
		amounts[i] = t.Amount.InexactFloat64()
	}

	mean := mean(amounts)
	stdev := sampleStdev(amounts, mean)
	threshold := mean + multiplier*stdev

	for i, amount := range amounts {
		if amount <= threshold {
			continue
		}

		deviation := 0.0
		if stdev > 0 {
			deviation = (amount - mean) / stdev
		}

		anomalies = append(anomalies, Anomaly{
			Transaction: expenses[i],
			Deviation:   deviation,
			Threshold:   threshold,
		})
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].Deviation > anomalies[j].Deviation
	})

	return anomalies
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// sampleStdev returns the sample standard deviation (n-1 denominator),
// 0 when there are fewer than two values.
func sampleStdev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += (v - mean) * (v - mean)
	}

	return math.Sqrt(sum / float64(len(values)-1))
}
