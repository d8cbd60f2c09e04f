package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/report"
)

func (co Controller) registerReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetReport)

	r.OPTIONS("/text", httputil.OptionsGet)
	r.GET("/text", co.GetReportText)
}

// GetReport returns the monthly report as JSON.
//
//	@Summary		Monthly report
//	@Description	Returns the current month's summary, the comparison to the previous month, the expense breakdown, recommendations and budget alerts
//	@Tags			Report
//	@Produce		json
//	@Success		200	{object}	report.Report
//	@Router			/v1/report [get]
func (co Controller) GetReport(c *gin.Context) {
	c.JSON(http.StatusOK, co.Reports.Monthly())
}

// GetReportText returns the monthly report rendered as plain text.
//
//	@Summary		Monthly report as text
//	@Description	Returns the monthly report rendered as a fixed-width text document
//	@Tags			Report
//	@Produce		plain
//	@Success		200	{string}	string
//	@Router			/v1/report/text [get]
func (co Controller) GetReportText(c *gin.Context) {
	c.String(http.StatusOK, report.FormatText(co.Reports.Monthly()))
}
