package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nutrivision/backend/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB stays nil when the database is not configured or unreachable. Every
// service checks for nil and degrades to a storage-unavailable error instead
// of crashing the process.
var DB *gorm.DB

// Load reads .env if present. Real environment variables win.
func Load() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}
}

func InitDB() error {
	host := os.Getenv("DB_HOST")
	if host == "" {
		slog.Warn("DB_HOST not set, persistence disabled")
		return nil
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host,
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.MealItem{},
	); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	DB = db
	return nil
}
