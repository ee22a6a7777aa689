package services

import (
	"backend/config"
	"backend/models"
)

type DashboardData struct {
	Profile      models.Profile       `json:"profile"`
	Goals        []models.Goal        `json:"goals"`
	Transactions []models.Transaction `json:"transactions"`
}

// GetDashboard assembles the profile, every goal, and the 20 most recent
// transactions for one user.
func GetDashboard(userID uint) (*DashboardData, error) {
	var data DashboardData

	if err := config.DB.Where("user_id = ?", userID).First(&data.Profile).Error; err != nil {
		return nil, err
	}

	goals, err := GetGoals(userID)
	if err != nil {
		return nil, err
	}
	data.Goals = goals

	err = config.DB.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(20).
		Find(&data.Transactions).Error
	if err != nil {
		return nil, err
	}

	return &data, nil
}
