package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	Engine *services.FinanceEngine
}

func NewTransactionController(engine *services.FinanceEngine) *TransactionController {
	return &TransactionController{Engine: engine}
}

type TransactionInput struct {
	Amount *float64 `json:"amount" binding:"required"`
	Note   string   `json:"note"`
}

// CreateTransaction records an income (positive) or expense (negative)
// event and returns the recalculated state.
func (tc *TransactionController) CreateTransaction(c *gin.Context) {
	userID := c.GetUint("userID")

	var input TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount is a required field"})
		return
	}
	if *input.Amount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be non-zero"})
		return
	}

	result, err := tc.Engine.ApplyTransaction(c.Request.Context(), userID, *input.Amount, input.Note)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "transaction processed successfully",
		"transaction": result.Transaction,
		"profile":     result.Profile,
		"goals":       result.Goals,
	})
}
