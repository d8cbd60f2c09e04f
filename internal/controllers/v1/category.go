package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// CategoryEditable are the fields settable when adding a category label.
type CategoryEditable struct {
	Kind models.Kind `json:"kind" binding:"required" example:"expense"` // Pick-list the label belongs to
	Name string      `json:"name" binding:"required" example:"Pets"`    // Label to add
}

// CategoryListResponse is the response for the category pick-lists.
type CategoryListResponse struct {
	Data models.CategoryCatalog `json:"data"` // Income and expense pick-lists
}

func (co Controller) registerCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetCategories)
	r.POST("", co.CreateCategory)

	r.OPTIONS("/:kind/:name", httputil.OptionsDelete)
	r.DELETE("/:kind/:name", co.DeleteCategory)
}

// GetCategories returns the income and expense pick-lists.
//
//	@Summary		List categories
//	@Description	Returns the income and expense category pick-lists
//	@Tags			Categories
//	@Produce		json
//	@Success		200	{object}	CategoryListResponse
//	@Router			/v1/categories [get]
func (co Controller) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{Data: co.Store.Categories()})
}

// CreateCategory adds a label to one of the pick-lists.
//
//	@Summary		Create category
//	@Description	Adds a label to the income or expense pick-list. Adding an existing label is a no-op.
//	@Tags			Categories
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	CategoryListResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			category	body	CategoryEditable	true	"Category"
//	@Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	if err := co.Store.AddCategory(editable.Kind, editable.Name); err != nil {
		if errors.Is(err, ledger.ErrInvalidCategory) {
			httputil.NewError(c, http.StatusBadRequest, err)
			return
		}
		httputil.NewError(c, http.StatusInternalServerError, errNotPersisted)
		return
	}

	c.JSON(http.StatusCreated, CategoryListResponse{Data: co.Store.Categories()})
}

// DeleteCategory removes a label from a pick-list.
//
//	@Summary		Delete category
//	@Description	Removes a label from a pick-list. Labels still used by a transaction cannot be removed.
//	@Tags			Categories
//	@Success		204
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		409	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			kind	path	string	true	"income or expense"
//	@Param			name	path	string	true	"Label to remove"
//	@Router			/v1/categories/{kind}/{name} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	err := co.Store.RemoveCategory(models.Kind(c.Param("kind")), c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidCategory):
			httputil.NewError(c, http.StatusBadRequest, err)
		case errors.Is(err, models.ErrCategoryInUse):
			httputil.NewError(c, http.StatusConflict, err)
		case errors.Is(err, models.ErrResourceNotFound):
			httputil.NewError(c, http.StatusNotFound, err)
		default:
			httputil.NewError(c, http.StatusInternalServerError, errNotPersisted)
		}
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
