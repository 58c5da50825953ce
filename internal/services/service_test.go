// internal/services/service_test.go
package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/apfam/apfam-backend/internal/models"
)

// setupTestDB opens an in-memory sqlite database with the same schema the
// production migrations produce.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.SetupJoinTable(&models.Product{}, "Categories", &models.ProductCategory{}); err != nil {
		t.Fatalf("setup product_categories: %v", err)
	}
	if err := db.SetupJoinTable(&models.Associate{}, "Products", &models.AssociateProduct{}); err != nil {
		t.Fatalf("setup associate_products: %v", err)
	}

	err = db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Associate{},
		&models.Event{},
		&models.AdminUser{},
		&models.ContactMessage{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

// fakeImageCleaner records every cleanup attempt instead of talking to
// object storage.
type fakeImageCleaner struct {
	cleaned []string
}

func (f *fakeImageCleaner) CleanupObject(publicURL string) {
	f.cleaned = append(f.cleaned, publicURL)
}
