package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myfinance/tracker-api/middleware"
	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/services"
	"github.com/myfinance/tracker-api/utils"
)

type ExpenseHandler struct {
	Expenses *services.ExpenseService
	WS       *WSHandler
}

func NewExpenseHandler(expenses *services.ExpenseService, ws *WSHandler) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses, WS: ws}
}

// AddExpense creates an expense and its mirror debit transaction. The mirror
// write is best-effort; the response reflects the expense alone.
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	username := middleware.GetUsername(c)

	var req models.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, mirror, err := h.Expenses.AddExpense(c.Request.Context(), username, req)
	if err != nil {
		respondError(c, err)
		return
	}
	if mirror.Err != nil {
		utils.Warnf("⚠️ Expense %s created without mirror transaction", expense.ID)
	}

	h.WS.BroadcastUpdate(username, "expense_created")
	c.JSON(http.StatusCreated, expense)
}

// GetMyExpenses lists the caller's expenses in the requested date range.
// A missing bound or an inverted range returns an empty list, not an error.
func (h *ExpenseHandler) GetMyExpenses(c *gin.Context) {
	username := middleware.GetUsername(c)

	start, end, ok := parseRange(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Expense{})
		return
	}

	expenses, err := h.Expenses.GetUserExpensesInRange(c.Request.Context(), username, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	username := middleware.GetUsername(c)

	var req models.ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, mirror, err := h.Expenses.UpdateExpense(c.Request.Context(), username, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	if mirror.Err != nil {
		utils.Warnf("⚠️ Expense %s updated without mirror patch", expense.ID)
	}

	h.WS.BroadcastUpdate(username, "expense_updated")
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	username := middleware.GetUsername(c)

	mirror, err := h.Expenses.DeleteExpense(c.Request.Context(), username, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if mirror.Err != nil {
		utils.Warnf("⚠️ Expense deleted without mirror cleanup")
	}

	h.WS.BroadcastUpdate(username, "expense_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
