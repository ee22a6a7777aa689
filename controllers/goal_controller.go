package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type GoalInput struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	TargetAmount *float64 `json:"target_amount" binding:"required"`
	Duration     *int     `json:"duration" binding:"required"` // days until target date
	Category     string   `json:"category" binding:"required"`
}

func CreateGoal(c *gin.Context) {
	userID := c.GetUint("userID")

	var input GoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required fields: name, target_amount, duration, category"})
		return
	}
	if *input.TargetAmount <= 0 || *input.Duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "target_amount and duration must be positive"})
		return
	}

	goal, err := services.CreateGoal(userID, input.Name, input.Description, *input.TargetAmount, *input.Duration, input.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

func GetGoals(c *gin.Context) {
	userID := c.GetUint("userID")

	goals, err := services.GetGoals(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get goals"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

func GetCategories(c *gin.Context) {
	categories, err := services.GetCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}
