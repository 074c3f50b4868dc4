package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/pagination"
	"hearth/internal/services"
)

// TransactionHandler handles transaction-related requests
type TransactionHandler struct {
	ledger services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(ledger services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// CreateTransactionRequest represents the request payload for recording
// spending. member_ids may be omitted only for joint-card transactions,
// which are attributed to every current member.
type CreateTransactionRequest struct {
	CategoryID      string   `json:"category_id" binding:"required"`
	Amount          *float64 `json:"amount" binding:"required,gt=0"`
	Description     string   `json:"description" binding:"max=255"`
	MemberIDs       []string `json:"member_ids"`
	IsFromJointCard bool     `json:"is_from_joint_card"`
	Date            string   `json:"date" binding:"required,iso_date"`
}

// TransactionResponse is a transaction with dangling references resolved to
// display labels.
type TransactionResponse struct {
	models.Transaction
	CategoryName string   `json:"category_name"`
	MemberNames  []string `json:"member_names"`
}

// CreateTransaction records spending
// @Summary     Record a transaction
// @Description Record spending against a category, split among members
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} map[string]interface{} "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transaction, err := h.ledger.AddTransaction(services.TransactionInput{
		CategoryID:      req.CategoryID,
		Amount:          *req.Amount,
		Description:     req.Description,
		MemberIDs:       req.MemberIDs,
		IsFromJointCard: req.IsFromJointCard,
		Date:            req.Date,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": h.toResponse(*transaction)})
}

// GetTransactions lists a month's transactions
// @Summary     List transactions
// @Description List the month's transactions, newest page first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM), defaults to current"
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size (max 100)"
// @Success     200 {object} map[string]interface{} "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	month, err := monthOrCurrent(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	transactions := h.ledger.MonthTransactions(month)
	// Newest first. Ids are UUIDv7, so they order same-day entries by
	// creation time.
	sort.Slice(transactions, func(i, j int) bool {
		if transactions[i].Date != transactions[j].Date {
			return transactions[i].Date > transactions[j].Date
		}
		return transactions[i].ID > transactions[j].ID
	})

	rows := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, h.toResponse(t))
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions": pagination.Paginate(rows, page),
		"month":        month,
	})
}

// DeleteTransaction removes a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.ledger.DeleteTransaction(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// toResponse resolves the transaction's references to display labels. Deleted
// members and categories show as "Unknown"; debt payments keep the debt name
// in their description.
func (h *TransactionHandler) toResponse(t models.Transaction) TransactionResponse {
	resp := TransactionResponse{Transaction: t}

	if t.IsDebtPayment {
		resp.CategoryName = "Debt Payment"
	} else {
		resp.CategoryName = h.ledger.CategoryName(t.CategoryID)
	}

	resp.MemberNames = make([]string, 0, len(t.MemberIDs))
	for _, id := range t.MemberIDs {
		resp.MemberNames = append(resp.MemberNames, h.ledger.MemberName(id))
	}
	return resp
}
