package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// RegisterUser creates the account and provisions its financial profile in
// one transaction. The profile starts empty; AverageDailyExpenses is left
// at zero and defaults to 1000 inside the buffer classifier until the user
// sets it.
func RegisterUser(email, password, fullName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:    email,
			Password: hashedPassword,
			FullName: fullName,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.Profile{
			UserID:       user.ID,
			BufferStatus: utils.BufferHealthy,
		}
		return tx.Create(&profile).Error
	})
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
