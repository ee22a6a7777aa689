package controllers

import (
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var profile models.Profile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

type ProfileInput struct {
	AverageDailyExpenses *float64 `json:"average_daily_expenses" binding:"required"`
}

// UpdateProfile lets the user tune how the buffer is expressed in days.
// Balances and targets are owned by the finance engine and not writable
// here.
func UpdateProfile(c *gin.Context) {
	userID := c.GetUint("userID")

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.AverageDailyExpenses < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "average_daily_expenses must not be negative"})
		return
	}

	err := config.DB.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("average_daily_expenses", *input.AverageDailyExpenses).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully"})
}
