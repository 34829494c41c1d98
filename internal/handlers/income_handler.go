package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// IncomeHandler handles income-related requests
type IncomeHandler struct {
	incomeService services.IncomeServicer
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService services.IncomeServicer) *IncomeHandler {
	return &IncomeHandler{incomeService: incomeService}
}

// CreateIncomeRequest represents the request payload for recording an income.
// Amount is a pointer so that a missing field and a present-but-zero field
// both fail validation the same way, while non-numeric JSON fails binding.
type CreateIncomeRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// Create handles recording a new income
// @Summary     Record an income
// @Description Record a new income amount for the caller
// @Tags        incomes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIncomeRequest true "Income amount"
// @Success     201 {object} models.Income "Income created"
// @Failure     400 {object} ErrorResponse "Invalid amount"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrInvalidAmount)
		return
	}

	income, err := h.incomeService.CreateIncome(userID, *req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, income)
}

// List handles the retrieval of all of the caller's incomes
// @Summary     List incomes
// @Description Get all incomes owned by the caller, newest first
// @Tags        incomes
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Income "List of incomes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /income [get]
func (h *IncomeHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	incomes, err := h.incomeService.GetUserIncomes(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if incomes == nil {
		incomes = []models.Income{}
	}

	c.JSON(http.StatusOK, incomes)
}
