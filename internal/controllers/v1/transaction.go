package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/ryanuber/go-glob"
)

// TransactionQueryFilter are the query parameters for GET /transactions.
type TransactionQueryFilter struct {
	From     string `form:"from" filterField:"false"`     // Earliest date to include (YYYY-MM-DD)
	To       string `form:"to" filterField:"false"`       // Latest date to include (YYYY-MM-DD)
	Kind     string `form:"kind"`                         // Is the transaction an income or an expense?
	Category string `form:"category"`                     // Category the transaction belongs to
	Search   string `form:"search" filterField:"false"`   // Glob pattern matched against the description
	Limit    int    `form:"limit" filterField:"false"`    // Maximum number of transactions to return. Defaults to all.
	Offset   int    `form:"offset" filterField:"false"`   // Number of transactions to skip
}

// TransactionListResponse is the response for a transaction list.
type TransactionListResponse struct {
	Data []models.Transaction `json:"data"` // List of transactions
}

// TransactionResponse is the response for a single transaction.
type TransactionResponse struct {
	Data models.Transaction `json:"data"` // Data for the transaction
}

func (co Controller) registerTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetTransactions)
	r.POST("", co.CreateTransaction)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", co.GetTransaction)
	r.PATCH("/:id", co.UpdateTransaction)
	r.DELETE("/:id", co.DeleteTransaction)
}

// GetTransactions returns transactions filtered by the query parameters.
//
//	@Summary		List transactions
//	@Description	Returns a list of transactions
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	TransactionListResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Param			from		query	string	false	"Filter by date, earliest to include (YYYY-MM-DD)"
//	@Param			to			query	string	false	"Filter by date, latest to include (YYYY-MM-DD)"
//	@Param			kind		query	string	false	"Filter by kind (income or expense)"
//	@Param			category	query	string	false	"Filter by category"
//	@Param			search		query	string	false	"Glob pattern matched against the description"
//	@Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to all."
//	@Param			offset		query	int		false	"The offset of the first transaction returned. Defaults to 0."
//	@Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidQueryString)
		return
	}

	var storeFilter ledger.Filter
	storeFilter.Kind = models.Kind(filter.Kind)
	storeFilter.Category = filter.Category

	if filter.From != "" {
		from, err := types.ParseDate(filter.From)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, err)
			return
		}
		storeFilter.From = from
	}

	if filter.To != "" {
		to, err := types.ParseDate(filter.To)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, err)
			return
		}
		storeFilter.To = to
	}

	transactions := co.Store.Query(storeFilter)

	if filter.Search != "" {
		matched := make([]models.Transaction, 0, len(transactions))
		for _, t := range transactions {
			if glob.Glob("*"+filter.Search+"*", t.Description) {
				matched = append(matched, t)
			}
		}
		transactions = matched
	}

	transactions = paginate(transactions, filter.Offset, filter.Limit)

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// GetTransaction returns a single transaction by its ID.
//
//	@Summary		Get transaction
//	@Description	Returns a specific transaction
//	@Tags			Transactions
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		404	{object}	httputil.HTTPError
//	@Param			id	path		string	true	"ID of the transaction"
//	@Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, ok := co.Store.Get(c.Param("id"))
	if !ok {
		httputil.NewError(c, http.StatusNotFound, errTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// CreateTransaction creates a new transaction.
//
//	@Summary		Create transaction
//	@Description	Creates a new transaction
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Success		201	{object}	TransactionResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			transaction	body		ledger.Candidate	true	"Transaction"
//	@Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var candidate ledger.Candidate
	if err := httputil.BindData(c, &candidate); err != nil {
		return
	}

	transaction, err := co.Store.Add(candidate)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidCandidate) {
			httputil.NewError(c, http.StatusBadRequest, errTransactionInvalid)
			return
		}
		httputil.NewError(c, http.StatusInternalServerError, errNotPersisted)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}

// UpdateTransaction updates a transaction, selected by its ID.
//
//	@Summary		Update transaction
//	@Description	Updates an existing transaction. Only values to be updated need to be specified.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	TransactionResponse
//	@Failure		400	{object}	httputil.HTTPError
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			id			path		string				true	"ID of the transaction"
//	@Param			transaction	body		ledger.Candidate	true	"Transaction"
//	@Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	id := c.Param("id")
	if _, ok := co.Store.Get(id); !ok {
		httputil.NewError(c, http.StatusNotFound, errTransactionNotFound)
		return
	}

	var patch ledger.Candidate
	if err := httputil.BindData(c, &patch); err != nil {
		return
	}

	transaction, err := co.Store.Update(id, patch)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidCandidate):
			httputil.NewError(c, http.StatusBadRequest, errTransactionInvalid)
		case errors.Is(err, ledger.ErrNotFound):
			httputil.NewError(c, http.StatusNotFound, errTransactionNotFound)
		default:
			httputil.NewError(c, http.StatusInternalServerError, errNotPersisted)
		}
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// DeleteTransaction deletes a transaction, selected by its ID.
//
//	@Summary		Delete transaction
//	@Description	Deletes a transaction
//	@Tags			Transactions
//	@Success		204
//	@Failure		404	{object}	httputil.HTTPError
//	@Failure		500	{object}	httputil.HTTPError
//	@Param			id	path		string	true	"ID of the transaction"
//	@Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	id := c.Param("id")
	if err := co.Store.Remove(id); err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			httputil.NewError(c, http.StatusNotFound, errTransactionNotFound)
			return
		}
		httputil.NewError(c, http.StatusInternalServerError, errNotPersisted)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// paginate applies offset and limit to a transaction slice. A limit of
// zero or less returns everything after the offset.
func paginate(transactions []models.Transaction, offset, limit int) []models.Transaction {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(transactions) {
		return []models.Transaction{}
	}
	transactions = transactions[offset:]

	if limit > 0 && limit < len(transactions) {
		transactions = transactions[:limit]
	}

	return transactions
}
