package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// SuggestionHandler handles AI savings-tip requests
type SuggestionHandler struct {
	advisorService services.AdvisorServicer
	timeout        time.Duration
}

// NewSuggestionHandler creates a new SuggestionHandler
func NewSuggestionHandler(advisorService services.AdvisorServicer, timeout time.Duration) *SuggestionHandler {
	return &SuggestionHandler{advisorService: advisorService, timeout: timeout}
}

// SuggestionResponse represents the generated savings tips
type SuggestionResponse struct {
	Tips string `json:"tips"`
}

// Suggest handles generating savings tips from recent spending
// @Summary     Generate savings tips
// @Description Feed the caller's last 30 days of expenses to the text-generation service and return its tips
// @Tags        ai
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} SuggestionResponse "Generated tips"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Failed to generate savings tips"
// @Router      /ai/suggestions [post]
func (h *SuggestionHandler) Suggest(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// Bound the upstream call; a hung completion service must not hang the
	// request forever.
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	tips, err := h.advisorService.GenerateSavingsTips(ctx, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuggestionResponse{Tips: tips})
}
