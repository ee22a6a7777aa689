package config

import (
	"fmt"
	"log"
	"os"

	"backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Fatalf("Error loading .env file")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Category{},
		&models.Goal{},
		&models.Transaction{},
		&models.Advisory{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	SeedCategories(DB)
}

// SeedCategories inserts the default category set when missing. Weights are
// the fraction of each income event routed to goals in that category.
func SeedCategories(db *gorm.DB) {
	defaults := []models.Category{
		{Name: "Essentials", Weight: 0.5},
		{Name: "Lifestyle", Weight: 0.3},
		{Name: "Dreams", Weight: 0.2},
	}
	for _, cat := range defaults {
		var existing models.Category
		if err := db.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			if err := db.Create(&cat).Error; err != nil {
				log.Printf("failed to seed category %s: %v", cat.Name, err)
			}
		}
	}
}
