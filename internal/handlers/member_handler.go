package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hearth/internal/errors"
	"hearth/internal/report"
	"hearth/internal/services"
)

// MemberHandler handles household member requests
type MemberHandler struct {
	ledger services.LedgerServicer
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(ledger services.LedgerServicer) *MemberHandler {
	return &MemberHandler{ledger: ledger}
}

// CreateMemberRequest represents the request payload for adding a member
type CreateMemberRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpsertIncomeRequest represents the request payload for setting a member's
// monthly income
type UpsertIncomeRequest struct {
	Month  string   `json:"month" binding:"required,month"`
	Amount *float64 `json:"amount" binding:"required,gte=0"`
}

// CreateMember adds a household member
// @Summary     Add a member
// @Description Add a new household member
// @Tags        members
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateMemberRequest true "Member details"
// @Success     201 {object} map[string]interface{} "Member created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	member, err := h.ledger.AddMember(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"member": member})
}

// GetMembers lists household members with their income for a month
// @Summary     List members
// @Description List household members with recorded income for the month
// @Tags        members
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM), defaults to current"
// @Success     200 {object} map[string]interface{} "List of members"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /members [get]
func (h *MemberHandler) GetMembers(c *gin.Context) {
	month, err := monthOrCurrent(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	members := h.ledger.Members()
	rows := make([]gin.H, 0, len(members))
	for _, m := range members {
		rows = append(rows, gin.H{
			"id":     m.ID,
			"name":   m.Name,
			"income": h.ledger.MemberIncome(m.ID, month),
		})
	}

	c.JSON(http.StatusOK, gin.H{"members": rows, "month": month})
}

// DeleteMember removes a household member
// @Summary     Delete member
// @Description Remove a household member. References from categories, debts,
// @Description and transactions are kept and shown as "Unknown".
// @Tags        members
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Member ID"
// @Success     200 {object} MessageResponse "Member deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.ledger.DeleteMember(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}

// UpsertIncome sets a member's income for a month
// @Summary     Set monthly income
// @Description Record or replace a member's income for one month
// @Tags        members
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Member ID"
// @Param       request body UpsertIncomeRequest true "Income details"
// @Success     200 {object} map[string]interface{} "Income recorded"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Router      /members/{id}/income [put]
func (h *MemberHandler) UpsertIncome(c *gin.Context) {
	var req UpsertIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	income, err := h.ledger.UpsertIncome(c.Param("id"), req.Month, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"income": income})
}

// GetMemberSummary returns one member's financial position for a month
// @Summary     Member summary
// @Description Income, equal-share budget, equal-share spending, and
// @Description remaining amount for one member in one month, with the
// @Description member's share of spending broken down per category
// @Tags        members
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Member ID"
// @Param       month query string false "Month (YYYY-MM), defaults to current"
// @Success     200 {object} map[string]interface{} "Member summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Member not found"
// @Router      /members/{id}/summary [get]
func (h *MemberHandler) GetMemberSummary(c *gin.Context) {
	month, err := monthOrCurrent(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	memberID := c.Param("id")
	row, err := h.ledger.MemberSummary(memberID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	breakdown := report.MemberCategoryBreakdown(
		h.ledger.Categories(),
		h.ledger.MonthTransactions(month),
		memberID, month,
	)

	c.JSON(http.StatusOK, gin.H{
		"summary":    row,
		"categories": breakdown,
		"month":      month,
	})
}
