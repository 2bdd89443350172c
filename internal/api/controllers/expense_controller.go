package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"newlife/internal/models/request_models"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{expenseService: expenseService}
}

// AddExpense godoc
// @Summary Record an expense on a trip
// @Tags Expenses
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.CreateExpenseRequest true "Expense payload"
// @Success 201 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/expenses [post]
func (e *ExpenseController) AddExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := e.expenseService.AddExpense(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, expense, "Expense added successfully")
}

// ListExpenses godoc
// @Summary List a trip's expenses
// @Tags Expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/expenses [get]
func (e *ExpenseController) ListExpenses(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Expenses fetched successfully")
}

// UpdateExpense godoc
// @Summary Update an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Param request body request_models.UpdateExpenseRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/expenses/{expenseId} [put]
func (e *ExpenseController) UpdateExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	expenseID, ok := pathUUID(c, "expenseId")
	if !ok {
		return
	}

	var req request_models.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	expense, err := e.expenseService.UpdateExpense(c.Request.Context(), userID, tripID, expenseID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expense, "Expense updated successfully")
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags Expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param expenseId path string true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/expenses/{expenseId} [delete]
func (e *ExpenseController) DeleteExpense(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}
	expenseID, ok := pathUUID(c, "expenseId")
	if !ok {
		return
	}

	if err := e.expenseService.DeleteExpense(c.Request.Context(), userID, tripID, expenseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense deleted successfully")
}

// GetBudgetSummary godoc
// @Summary Budget versus spending for a trip
// @Tags Expenses
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/budget [get]
func (e *ExpenseController) GetBudgetSummary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	summary, err := e.expenseService.GetBudgetSummary(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Budget summary fetched successfully")
}
