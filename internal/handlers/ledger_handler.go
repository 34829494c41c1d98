package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// LedgerHandler handles whole-ledger operations
type LedgerHandler struct {
	ledgerService services.LedgerServicer
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(ledgerService services.LedgerServicer) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// ClearAll handles deleting everything the caller owns
// @Summary     Clear all data
// @Description Delete every expense, income, and category owned by the caller in a single transaction
// @Tags        ledger
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]bool "Cleared"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /clear-all [delete]
func (h *LedgerHandler) ClearAll(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledgerService.ClearAll(userID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
