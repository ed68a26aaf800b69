package database

import (
	"log"

	"madcrew-backend/internal/config"
	"madcrew-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Kan geen verbinding maken met de database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Round{},
		&models.Product{},
		&models.Order{},
		&models.BufferTransaction{},
		&models.Resale{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate mislukt: %v", err)
	}

	log.Println("Databaseverbinding gelukt. Migratie afgerond.")
}
