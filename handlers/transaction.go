package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myfinance/tracker-api/middleware"
	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/services"
	"github.com/myfinance/tracker-api/utils"
)

type TransactionHandler struct {
	Transactions *services.TransactionService
	WS           *WSHandler
}

func NewTransactionHandler(transactions *services.TransactionService, ws *WSHandler) *TransactionHandler {
	return &TransactionHandler{Transactions: transactions, WS: ws}
}

// SaveTransaction creates a transaction. Debits also get a best-effort
// mirror expense; credits never do.
func (h *TransactionHandler) SaveTransaction(c *gin.Context) {
	username := middleware.GetUsername(c)

	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tx, mirror, err := h.Transactions.SaveTransaction(c.Request.Context(), username, req, c.Query("categoryId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if mirror.Err != nil {
		utils.Warnf("⚠️ Transaction %s created without mirror expense", tx.ID)
	}

	h.WS.BroadcastUpdate(username, "transaction_created")
	c.JSON(http.StatusOK, tx)
}

// GetMyTransactions lists the caller's transactions in the requested range,
// newest first. Missing or inverted bounds return an empty list.
func (h *TransactionHandler) GetMyTransactions(c *gin.Context) {
	username := middleware.GetUsername(c)

	start, end, ok := parseRange(c)
	if !ok {
		c.JSON(http.StatusOK, []models.Transaction{})
		return
	}

	transactions, err := h.Transactions.GetTransactionsInRange(c.Request.Context(), username, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetMySummary returns the income/expense/balance dashboard aggregate.
func (h *TransactionHandler) GetMySummary(c *gin.Context) {
	username := middleware.GetUsername(c)

	summary, err := h.Transactions.GetSummaryByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetCategorySummary returns per-category transaction sums.
func (h *TransactionHandler) GetCategorySummary(c *gin.Context) {
	username := middleware.GetUsername(c)

	totals, err := h.Transactions.GetCategorySummary(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	username := middleware.GetUsername(c)

	mirror, err := h.Transactions.DeleteTransaction(c.Request.Context(), username, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if mirror.Err != nil {
		utils.Warnf("⚠️ Transaction deleted without mirror cleanup")
	}

	h.WS.BroadcastUpdate(username, "transaction_deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
