package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BudgetEditable are the fields settable when creating or replacing the
// budget of a category.
type BudgetEditable struct {
	Limit decimal.Decimal `json:"limit" binding:"required" example:"300"` // Monthly limit, must be positive
}

// BudgetListResponse is the response for the budget list.
type BudgetListResponse struct {
	Data map[string]decimal.Decimal `json:"data"` // Monthly limits by category
}

func (co Controller) registerBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetBudgets)

	r.OPTIONS("/:category", httputil.OptionsPutDelete)
	r.PUT("/:category", co.SetBudget)
	r.DELETE("/:category", co.DeleteBudget)
}

// GetBudgets returns all configured monthly limits.
//
//	@Summary		List budgets
//	@Description	Returns the monthly spending limit for every budgeted category
//	@Tags			Budgets
//	@Produce		json
//	@Success		200	{object}	BudgetListResponse
//	@Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	c.JSON(http.StatusOK, BudgetListResponse{Data: co.Store.Budgets()})
}

// SetBudget creates or replaces the monthly limit for a category.
//
//	@Summary		Set budget
//	@Description	Creates or replaces the monthly spending limit for a category
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	BudgetListResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			category	path	string			true	"Category the limit applies to"
//	@Param			budget		body	BudgetEditable	true	"Budget"
//	@Router			/v1/budgets/{category} [put]
func (co Controller) SetBudget(c *gin.Context) {
	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if err := co.Store.SetBudget(c.Param("category"), editable.Limit); err != nil {
		if errors.Is(err, ledger.ErrInvalidBudget) {
			httputil.NewError(c, http.StatusBadRequest, err)
			return
		}
		httputil.NewError(c, http.StatusInternalServerError, errNotPersisted)
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: co.Store.Budgets()})
}

// DeleteBudget removes the monthly limit for a category.
//
//	@Summary		Delete budget
//	@Description	Removes the monthly spending limit for a category
//	@Tags			Budgets
//	@Success		204
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			category	path	string	true	"Category the budget applies to"
//	@Router			/v1/budgets/{category} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	if err := co.Store.RemoveBudget(c.Param("category")); err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			httputil.NewError(c, http.StatusNotFound, err)
			return
		}
		httputil.NewError(c, http.StatusInternalServerError, errNotPersisted)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
