package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"realnest/internal/models"
)

func Migrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Flat{},
		&models.Shop{},
		&models.Bunglow{},
		&models.Inquiry{},
	)
	if err != nil {
		log.Printf("Error migrating database: %v", err)
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database migration completed successfully")
	return nil
}
