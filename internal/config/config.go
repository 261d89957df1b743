package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"menu-service/internal/models"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Server
	Port        string
	Environment string

	// JWT
	JWTSecret string

	// Upload limits
	MaxUploadSizeMB int
}

func Load() *Config {
	dbPort, _ := strconv.Atoi(getEnv("DB_PORT", "5432"))
	maxUploadSizeMB, _ := strconv.Atoi(getEnv("MAX_UPLOAD_SIZE_MB", "10"))

	return &Config{
		// Database
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     dbPort,
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "menu_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		// Server
		Port:        getEnv("PORT", "8086"),
		Environment: getEnv("ENVIRONMENT", "development"),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", "dev-secret"),

		// Upload limits
		MaxUploadSizeMB: maxUploadSizeMB,
	}
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	var logLevel logger.LogLevel
	if cfg.Environment == "production" {
		logLevel = logger.Error
	} else {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Run auto-migration to ensure schema is up to date
	if err := db.AutoMigrate(
		&models.Company{},
		&models.Category{},
		&models.Size{},
		&models.CategorySize{},
		&models.Product{},
		&models.ProductPrice{},
		&models.Topping{},
		&models.CategoryTopping{},
		&models.CategoryToppingPrice{},
		&models.AddonGroup{},
		&models.Addon{},
		&models.CategoryAddonGroup{},
		&models.CategoryAddonPrice{},
		&models.ChoiceGroup{},
		&models.Choice{},
		&models.CategoryChoiceGroup{},
		&models.CategoryChoicePrice{},
		&models.Flavour{},
		&models.CategoryFlavour{},
		&models.CategoryFlavourPrice{},
		&models.ProductFlavour{},
		&models.ProductFlavourPrice{},
		&models.BusinessHour{},
		&models.SpecialComment{},
		&models.DeliveryCharge{},
	); err != nil {
		log.Printf("Warning: Auto-migration failed: %v", err)
		// Don't fail startup, just log the warning
	} else {
		log.Println("✓ Database schema migration completed")
	}

	return db, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
