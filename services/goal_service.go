package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"

	"gorm.io/gorm"
)

// CreateGoal inserts a goal in the named category with the target date set
// durationDays from today. New goals start ON_TRACK with nothing saved.
func CreateGoal(userID uint, name, description string, targetAmount float64, durationDays int, categoryName string) (*models.Goal, error) {
	var category models.Category
	err := config.DB.Where("name = ?", categoryName).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid category: %s", categoryName)
		}
		return nil, err
	}

	now := time.Now()
	targetDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, durationDays)

	goal := models.Goal{
		UserID:        userID,
		Name:          name,
		Description:   description,
		TargetAmount:  targetAmount,
		SavedAmount:   0,
		TargetDate:    targetDate,
		CategoryID:    &category.ID,
		Status:        models.GoalOnTrack,
		DaysOffset:    0,
		StatusMessage: "Goal created. Start saving!",
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	goal.Category = &category
	return &goal, nil
}

func GetGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.
		Preload("Category").
		Where("user_id = ?", userID).
		Order("id").
		Find(&goals).Error
	return goals, err
}

func GetCategories() ([]models.Category, error) {
	var categories []models.Category
	err := config.DB.Order("weight desc").Find(&categories).Error
	return categories, err
}
