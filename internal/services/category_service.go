// internal/services/category_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/apfam/apfam-backend/internal/models"
	"github.com/apfam/apfam-backend/internal/utils"
)

type CategoryService struct {
	db *gorm.DB
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryService) Create(req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{Name: req.Name}
	if err := s.db.Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) Update(id uuid.UUID, req *CategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&category).Update("name", req.Name).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return &category, nil
}

// Delete refuses to remove a category while products still reference it and
// reports how many do, so the admin UI can explain the refusal.
func (s *CategoryService) Delete(id uuid.UUID) (int64, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("database error: %w", err)
	}

	var productCount int64
	if err := s.db.Model(&models.ProductCategory{}).
		Where("category_id = ?", id).
		Count(&productCount).Error; err != nil {
		return 0, fmt.Errorf("failed to count category products: %w", err)
	}

	if productCount > 0 {
		return productCount, ErrCategoryInUse
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return 0, fmt.Errorf("failed to delete category: %w", err)
	}

	return 0, nil
}
