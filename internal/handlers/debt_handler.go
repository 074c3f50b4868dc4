package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/models"
	"hearth/internal/services"
)

// DebtHandler handles debt-related requests
type DebtHandler struct {
	ledger services.LedgerServicer
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(ledger services.LedgerServicer) *DebtHandler {
	return &DebtHandler{ledger: ledger}
}

// CreateDebtRequest represents the request payload for adding a debt
type CreateDebtRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	Balance   *float64 `json:"balance" binding:"required,gte=0"`
	Payment   *float64 `json:"payment" binding:"required,gt=0"`
	Type      string   `json:"type" binding:"omitempty,debt_type"`
	MemberIDs []string `json:"member_ids" binding:"required,min=1"`
}

// DebtResponse is a debt annotated with its paid status for the requested
// month.
type DebtResponse struct {
	models.Debt
	Paid bool `json:"paid"`
}

// CreateDebt adds a debt
// @Summary     Add a debt
// @Description Add a shared debt with a fixed monthly payment
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt details"
// @Success     201 {object} map[string]interface{} "Debt created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.ledger.AddDebt(services.DebtInput{
		Name:      req.Name,
		Balance:   *req.Balance,
		Payment:   *req.Payment,
		Type:      models.DebtType(req.Type),
		MemberIDs: req.MemberIDs,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debt": debt})
}

// GetDebts lists debts with paid status for a month
// @Summary     List debts
// @Description List debts with whether each is paid for the month
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM), defaults to current"
// @Success     200 {object} map[string]interface{} "List of debts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts [get]
func (h *DebtHandler) GetDebts(c *gin.Context) {
	month, err := monthOrCurrent(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	debts := h.ledger.Debts()
	rows := make([]DebtResponse, 0, len(debts))
	for _, d := range debts {
		rows = append(rows, DebtResponse{
			Debt: d,
			Paid: h.ledger.IsDebtPaid(d.ID, month),
		})
	}

	c.JSON(http.StatusOK, gin.H{"debts": rows, "month": month})
}

// DeleteDebt removes a debt and its payment history
// @Summary     Delete debt
// @Description Delete a debt and every transaction referencing it
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     200 {object} MessageResponse "Debt deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	if err := h.ledger.DeleteDebt(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Debt deleted successfully"})
}

// TogglePayment flips a debt's paid status for a month
// @Summary     Toggle debt payment
// @Description Mark a debt paid for the month (creating its payment
// @Description transaction) or unpaid (deleting it)
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Param       month query string false "Month (YYYY-MM), defaults to current"
// @Success     200 {object} map[string]interface{} "Resulting paid status"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id}/payment [post]
func (h *DebtHandler) TogglePayment(c *gin.Context) {
	month, err := monthOrCurrent(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	paid, err := h.ledger.ToggleDebtPayment(c.Param("id"), month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"paid": paid, "month": month})
}
