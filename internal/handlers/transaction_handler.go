package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
	"pocketledger/internal/services"
	"pocketledger/internal/uuid"
)

// TransactionHandler handles transaction-related requests. Writes go through
// the reconciler so categories are always normalized and registered before a
// record lands in the store.
type TransactionHandler struct {
	reconciler services.Reconciler
	store      services.TransactionStorer
	analytics  services.AnalyticsServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(reconciler services.Reconciler, store services.TransactionStorer, analytics services.AnalyticsServicer) *TransactionHandler {
	return &TransactionHandler{reconciler: reconciler, store: store, analytics: analytics}
}

// TransactionRequest represents the payload for creating or updating a
// transaction. The category may arrive unnormalized; the reconciler resolves
// it. Validation mirrors the manual-entry form: amount, category, date, and
// type block submission when missing or malformed.
type TransactionRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Subcategory string  `json:"subcategory"`
	Note        string  `json:"note"`
	Date        string  `json:"date" binding:"required,iso_date"`
	Type        string  `json:"type" binding:"required,transaction_type"`
}

func (r *TransactionRequest) toModel(id string) models.Transaction {
	return models.Transaction{
		ID:          id,
		Amount:      r.Amount,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Note:        r.Note,
		Date:        r.Date,
		Type:        models.TransactionType(r.Type),
	}
}

// CreateTransaction commits a new transaction
// @Summary     Create a transaction
// @Description Normalize the category and commit a new transaction
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body TransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Committed transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	final, err := h.reconciler.Record(req.toModel(uuid.New()))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": final})
}

// UpdateTransaction replaces an existing transaction
// @Summary     Update a transaction
// @Description Re-normalize the category and replace the stored record. Updating an unknown id is a no-op.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Param       request body TransactionRequest true "Updated transaction details"
// @Success     200 {object} models.Transaction "Reconciled transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	final, err := h.reconciler.Amend(req.toModel(c.Param("id")))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": final})
}

// DeleteTransaction removes a transaction
// @Summary     Delete a transaction
// @Description Remove the transaction with the given id. Deleting an unknown id is a no-op.
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// GetTransactions lists transactions
// @Summary     List transactions
// @Description List the selected month's transactions (date descending), or the entire store with all=true
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       all query bool false "Return the entire store instead of the selected month"
// @Success     200 {array} models.Transaction "Transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	var transactions []models.Transaction
	if c.Query("all") == "true" {
		transactions = h.store.All()
	} else {
		transactions = h.analytics.FilteredTransactions()
	}

	c.JSON(http.StatusOK, gin.H{"transactions": transactions})
}
