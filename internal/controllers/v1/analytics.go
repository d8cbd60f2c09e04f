package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/analytics"
	"github.com/pocketledger/backend/internal/httputil"
)

// AnalyticsQuery are the query parameters shared by the windowed
// analytics endpoints.
type AnalyticsQuery struct {
	Months int `form:"months"` // Number of months to look back. Defaults to 12.
}

// AnomalyQuery are the query parameters for GET /analytics/anomalies.
type AnomalyQuery struct {
	Threshold float64 `form:"threshold"` // Standard deviation multiplier. Defaults to 2.0.
}

func (co Controller) registerAnalyticsRoutes(r *gin.RouterGroup) {
	for _, route := range []string{"/balance", "/categories", "/trend", "/anomalies", "/insights", "/suggestions", "/health", "/alerts"} {
		r.OPTIONS(route, httputil.OptionsGet)
	}

	r.GET("/balance", co.GetBalance)
	r.GET("/categories", co.GetSpendingByCategory)
	r.GET("/trend", co.GetMonthlyTrend)
	r.GET("/anomalies", co.GetAnomalies)
	r.GET("/insights", co.GetSpendingInsights)
	r.GET("/suggestions", co.GetSuggestions)
	r.GET("/health", co.GetHealthScore)
	r.GET("/alerts", co.GetBudgetAlerts)
}

func bindMonths(c *gin.Context) (int, bool) {
	var query AnalyticsQuery
	if err := c.Bind(&query); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidQueryString)
		return 0, false
	}

	if query.Months <= 0 {
		query.Months = 12
	}

	return query.Months, true
}

// GetBalance returns total income, total expenses and the balance.
//
//	@Summary		Balance
//	@Description	Returns total income, total expenses and the resulting balance over all transactions
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	analytics.Balance
//	@Router			/v1/analytics/balance [get]
func (co Controller) GetBalance(c *gin.Context) {
	c.JSON(http.StatusOK, co.Engine.Balance(time.Time{}, time.Time{}))
}

// GetSpendingByCategory returns expense totals per category.
//
//	@Summary		Spending by category
//	@Description	Returns expense totals per category for the requested look-back window
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	map[string]decimal.Decimal
//	@Failure		400	{object}	httputil.HTTPError
//	@Param			months	query	int	false	"Number of months to look back. Defaults to 12."
//	@Router			/v1/analytics/categories [get]
func (co Controller) GetSpendingByCategory(c *gin.Context) {
	months, ok := bindMonths(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, co.Engine.SpendingByCategory(months))
}

// GetMonthlyTrend returns income, expenses and net flow per month.
//
//	@Summary		Monthly trend
//	@Description	Returns income, expenses and net flow per calendar month for the requested look-back window
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	map[string]analytics.Flow
//	@Failure		400	{object}	httputil.HTTPError
//	@Param			months	query	int	false	"Number of months to look back. Defaults to 12."
//	@Router			/v1/analytics/trend [get]
func (co Controller) GetMonthlyTrend(c *gin.Context) {
	months, ok := bindMonths(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, co.Engine.MonthlyTrend(months))
}

// GetAnomalies returns expenses that deviate unusually far from their
// category average.
//
//	@Summary		Anomalies
//	@Description	Returns expenses whose amount exceeds the category mean by more than the threshold multiplier times the standard deviation
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	[]analytics.Anomaly
//	@Failure		400	{object}	httputil.HTTPError
//	@Param			threshold	query	number	false	"Standard deviation multiplier. Defaults to 2.0."
//	@Router			/v1/analytics/anomalies [get]
func (co Controller) GetAnomalies(c *gin.Context) {
	var query AnomalyQuery
	if err := c.Bind(&query); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidQueryString)
		return
	}

	if query.Threshold <= 0 {
		query.Threshold = analytics.DefaultThresholdMultiplier
	}

	c.JSON(http.StatusOK, co.Engine.DetectAnomalies(query.Threshold))
}

// GetSpendingInsights returns the per-weekday spending pattern.
//
//	@Summary		Spending insights
//	@Description	Returns average, minimum and maximum expense per weekday over all recorded expenses
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	analytics.SpendingInsights
//	@Router			/v1/analytics/insights [get]
func (co Controller) GetSpendingInsights(c *gin.Context) {
	c.JSON(http.StatusOK, co.Engine.SpendingInsights())
}

// GetSuggestions returns three to five budgeting recommendations.
//
//	@Summary		Suggestions
//	@Description	Returns three to five recommendations derived from recent spending behavior
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	[]string
//	@Router			/v1/analytics/suggestions [get]
func (co Controller) GetSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, co.Engine.Suggestions())
}

// GetHealthScore returns the composite financial health score.
//
//	@Summary		Health score
//	@Description	Returns the 0-100 financial health score with its component factors
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	analytics.HealthScore
//	@Router			/v1/analytics/health [get]
func (co Controller) GetHealthScore(c *gin.Context) {
	c.JSON(http.StatusOK, co.Engine.HealthScore())
}

// GetBudgetAlerts returns alerts for categories nearing or over budget.
//
//	@Summary		Budget alerts
//	@Description	Returns alerts for every budgeted category that has used at least 60 percent of its limit this month
//	@Tags			Analytics
//	@Produce		json
//	@Success		200	{object}	[]analytics.BudgetAlert
//	@Router			/v1/analytics/alerts [get]
func (co Controller) GetBudgetAlerts(c *gin.Context) {
	c.JSON(http.StatusOK, co.Engine.BudgetAlerts())
}
