// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/apfam/apfam-backend/internal/config"
	"github.com/apfam/apfam-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	switch cfg.LogLevel {
	case "silent":
		gormConfig = &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	case "info":
		gormConfig = &gorm.Config{Logger: logger.Default.LogMode(logger.Info)}
	default:
		gormConfig = &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Join tables are explicit models so writers can replace memberships
	// row-by-row instead of going through the association API.
	if err := db.SetupJoinTable(&models.Product{}, "Categories", &models.ProductCategory{}); err != nil {
		return fmt.Errorf("failed to set up product_categories join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Associate{}, "Products", &models.AssociateProduct{}); err != nil {
		return fmt.Errorf("failed to set up associate_products join table: %w", err)
	}

	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Associate{},
		&models.Event{},
		&models.AdminUser{},
		&models.ContactMessage{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_associates_created_at ON associates(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_events_date ON events(date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_product_categories_category ON product_categories(category_id)",
		"CREATE INDEX IF NOT EXISTS idx_associate_products_product ON associate_products(product_id)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	var adminCount int64
	db.Model(&models.AdminUser{}).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.AdminUser{
			Email:    "admin@apfam.com",
			FullName: "Administrador APFAM",
		}

		if err := admin.SetPassword("trocar-esta-senha"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	log.Println("Initial data seeding completed")
	return nil
}
