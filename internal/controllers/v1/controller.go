// Package v1 implements the v1 API on top of the ledger store, the
// analytics engine and the report builder.
package v1

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/analytics"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/report"
)

// Controller holds the core components the handlers operate on. The
// store is the single owner of the document; controllers never touch the
// file directly.
type Controller struct {
	Store   *ledger.Store
	Engine  *analytics.Engine
	Reports *report.Builder
}

// RegisterRoutes attaches all v1 routes to the group that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.registerTransactionRoutes(r.Group("/transactions"))
	co.registerImportExportRoutes(r)
	co.registerAnalyticsRoutes(r.Group("/analytics"))
	co.registerBudgetRoutes(r.Group("/budgets"))
	co.registerCategoryRoutes(r.Group("/categories"))
	co.registerGoalRoutes(r.Group("/goals"))
	co.registerReportRoutes(r.Group("/report"))
}

var (
	errTransactionNotFound = errors.New("there is no transaction matching your query")
	errTransactionInvalid  = errors.New("the transaction is invalid: date (YYYY-MM-DD), kind (income or expense), a positive amount, a category and a description are required")
	errNotPersisted        = errors.New("the change could not be persisted, the document is unchanged")
)
