package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// HistoryHandler handles aggregate history requests
type HistoryHandler struct {
	userService    services.UserServicer
	historyService services.HistoryServicer
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(userService services.UserServicer, historyService services.HistoryServicer) *HistoryHandler {
	return &HistoryHandler{userService: userService, historyService: historyService}
}

// Get handles the aggregate history read
// @Summary     Get history
// @Description Get the caller's most recent income amount and total expenses (zero when none exist)
// @Tags        history
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.History "Aggregates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /history [get]
func (h *HistoryHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Lazy upsert of the identity row, keyed by the token's subject and email.
	if _, err := h.userService.EnsureUser(userID, getEmail(c)); err != nil {
		respondWithError(c, err)
		return
	}

	history, err := h.historyService.GetHistory(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
