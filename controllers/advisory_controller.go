package controllers

import (
	"net/http"

	"backend/config"
	"backend/models"

	"github.com/gin-gonic/gin"
)

// GetAdvisories returns the user's recent advisory feed, newest first.
func GetAdvisories(c *gin.Context) {
	userID := c.GetUint("userID")

	var advisories []models.Advisory
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(50).
		Find(&advisories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch advisories"})
		return
	}
	c.JSON(http.StatusOK, advisories)
}
