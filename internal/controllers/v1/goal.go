package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
)

// GoalListResponse is the response for the goal list.
type GoalListResponse struct {
	Data []models.Goal `json:"data"` // List of savings goals
}

func (co Controller) registerGoalRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetGoals)
	r.POST("", co.CreateGoal)

	r.OPTIONS("/progress", httputil.OptionsGet)
	r.GET("/progress", co.GetGoalProgress)

	r.OPTIONS("/:name", httputil.OptionsDelete)
	r.DELETE("/:name", co.DeleteGoal)
}

// GetGoals returns all savings goals.
//
//	@Summary		List goals
//	@Description	Returns all configured savings goals
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	GoalListResponse
//	@Router			/v1/goals [get]
func (co Controller) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, GoalListResponse{Data: co.Store.Goals()})
}

// CreateGoal adds a savings goal.
//
//	@Summary		Create goal
//	@Description	Adds a savings goal with a unique name, a positive target amount and a target date
//	@Tags			Goals
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	GoalListResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			goal	body	models.Goal	true	"Goal"
//	@Router			/v1/goals [post]
func (co Controller) CreateGoal(c *gin.Context) {
	var goal models.Goal
	if err := httputil.BindData(c, &goal); err != nil {
		return
	}

	if err := co.Store.AddGoal(goal); err != nil {
		if errors.Is(err, ledger.ErrInvalidGoal) {
			httputil.NewError(c, http.StatusBadRequest, err)
			return
		}
		httputil.NewError(c, http.StatusInternalServerError, errNotPersisted)
		return
	}

	c.JSON(http.StatusCreated, GoalListResponse{Data: co.Store.Goals()})
}

// GetGoalProgress returns the saved amount and status of every goal.
//
//	@Summary		Goal progress
//	@Description	Returns progress, the monthly amount still required and an on-track flag for every goal
//	@Tags			Goals
//	@Produce		json
//	@Success		200	{object}	[]analytics.GoalStatus
//	@Router			/v1/goals/progress [get]
func (co Controller) GetGoalProgress(c *gin.Context) {
	c.JSON(http.StatusOK, co.Engine.GoalProgress())
}

// DeleteGoal removes a goal, selected by its name.
//
//	@Summary		Delete goal
//	@Description	Deletes a savings goal
//	@Tags			Goals
//	@Success		204
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			name	path	string	true	"Name of the goal"
//	@Router			/v1/goals/{name} [delete]
func (co Controller) DeleteGoal(c *gin.Context) {
	if err := co.Store.RemoveGoal(c.Param("name")); err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			httputil.NewError(c, http.StatusNotFound, err)
			return
		}
		httputil.NewError(c, http.StatusInternalServerError, errNotPersisted)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
