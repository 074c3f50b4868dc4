package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hearth/internal/services"
)

// SummaryHandler serves the derived month view
type SummaryHandler struct {
	ledger services.LedgerServicer
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(ledger services.LedgerServicer) *SummaryHandler {
	return &SummaryHandler{ledger: ledger}
}

// GetSummary returns the full month summary
// @Summary     Month summary
// @Description Totals, per-category budget performance, and per-member
// @Description positions for one month, computed fresh on every call
// @Tags        summary
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month (YYYY-MM), defaults to current"
// @Success     200 {object} map[string]interface{} "Month summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	month, err := monthOrCurrent(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": h.ledger.MonthSummary(month)})
}
