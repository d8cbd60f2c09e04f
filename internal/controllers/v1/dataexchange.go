package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/importer"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
)

var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following type")
)

// ExportQuery are the query parameters for GET /export.
type ExportQuery struct {
	From string `form:"from"` // Earliest date to include (YYYY-MM-DD)
	To   string `form:"to"`   // Latest date to include (YYYY-MM-DD)
}

func (co Controller) registerImportExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/import", httputil.OptionsPost)
	r.POST("/import", co.ImportCSV)

	r.OPTIONS("/export", httputil.OptionsGet)
	r.GET("/export", co.ExportCSV)

	r.OPTIONS("/statistics", httputil.OptionsGet)
	r.GET("/statistics", co.GetStatistics)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// ImportCSV imports transactions from an uploaded CSV file.
//
//	@Summary		Import transactions
//	@Description	Imports transactions from a CSV file with the columns date, type, category, amount, description. Rows that fail validation are skipped and reported, valid rows are still imported.
//	@Tags			Import
//	@Accept			multipart/form-data
//	@Produce		json
//	@Success		201	{object}	ledger.ImportResult
//	@Failure		400	{object}	ledger.ImportResult
//	@Param			file	formData	file	true	"File to import"
//	@Router			/v1/import [post]
func (co Controller) ImportCSV(c *gin.Context) {
	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		c.JSON(http.StatusBadRequest, ledger.FailedImport(err))
		return
	}
	defer f.Close()

	rows, err := importer.Read(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, ledger.FailedImport(err))
		return
	}

	result := co.Store.ImportBatch(importer.Candidates(rows))

	status := http.StatusBadRequest
	if result.Success {
		status = http.StatusCreated
	}

	c.JSON(status, result)
}

// ExportCSV streams the transactions as a CSV download.
//
//	@Summary		Export transactions
//	@Description	Exports transactions as a CSV file with the columns date, type, category, amount, description
//	@Tags			Import
//	@Produce		text/csv
//	@Success		200	{string}	string
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			from	query	string	false	"Earliest date to include (YYYY-MM-DD)"
//	@Param			to		query	string	false	"Latest date to include (YYYY-MM-DD)"
//	@Router			/v1/export [get]
func (co Controller) ExportCSV(c *gin.Context) {
	var query ExportQuery
	if err := c.Bind(&query); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidQueryString)
		return
	}

	var from, to time.Time
	var err error
	if query.From != "" {
		if from, err = types.ParseDate(query.From); err != nil {
			httputil.NewError(c, http.StatusBadRequest, err)
			return
		}
	}
	if query.To != "" {
		if to, err = types.ParseDate(query.To); err != nil {
			httputil.NewError(c, http.StatusBadRequest, err)
			return
		}
	}

	name := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Header("Content-Type", "text/csv")

	if err := importer.Write(c.Writer, co.Store.ExportAll(from, to)); err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}
}

// GetStatistics returns document-level counters.
//
//	@Summary		Document statistics
//	@Description	Returns counts, the covered date range and the document file size
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	ledger.Statistics
//	@Router			/v1/statistics [get]
func (co Controller) GetStatistics(c *gin.Context) {
	c.JSON(http.StatusOK, co.Store.Statistics())
}
