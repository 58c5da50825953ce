// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/apfam/apfam-backend/internal/models"
	"github.com/apfam/apfam-backend/internal/utils"
)

type ProductService struct {
	db     *gorm.DB
	images ImageCleaner
}

// Slug may be left blank, in which case it is derived from the name.
type ProductRequest struct {
	Name        string      `json:"name" validate:"required,min=2,max=255"`
	Slug        string      `json:"slug" validate:"omitempty,min=2,slug"`
	Description string      `json:"description" validate:"required,min=10"`
	CategoryIDs []uuid.UUID `json:"category_ids" validate:"required,min=1"`
	ImageURL    string      `json:"image_url,omitempty"`
}

func (r *ProductRequest) slug() string {
	if r.Slug != "" {
		return r.Slug
	}
	return utils.Slugify(r.Name)
}

func NewProductService(db *gorm.DB, images ImageCleaner) *ProductService {
	return &ProductService{db: db, images: images}
}

func (s *ProductService) List() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Categories").Preload("Associates").
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (s *ProductService) GetByID(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Categories").Preload("Associates").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Categories").Preload("Associates").
		First(&product, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

// Create inserts the product row and its category memberships in one
// transaction, so a slug conflict or a failed membership insert leaves
// nothing behind.
func (s *ProductService) Create(req *ProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := &models.Product{
		Name:        req.Name,
		Slug:        req.slug(),
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("failed to create product: %w", err)
		}
		return replaceProductCategories(tx, product.ID, req.CategoryIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(product.ID)
}

// Update rewrites the scalar columns and replaces the category membership
// set wholesale. If the image reference changed, the old object is cleaned
// up best-effort before the write; a failed cleanup never fails the save.
func (s *ProductService) Update(id uuid.UUID, req *ProductRequest) (*models.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if product.ImageURL != "" && product.ImageURL != req.ImageURL {
		s.images.CleanupObject(product.ImageURL)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        req.Name,
			"slug":        req.slug(),
			"description": req.Description,
			"image_url":   req.ImageURL,
		}
		if err := tx.Model(&product).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("failed to update product: %w", err)
		}
		return replaceProductCategories(tx, product.ID, req.CategoryIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete removes the join rows first (defense in depth against missing
// cascade rules), then the product, then cleans up its stored image.
func (s *ProductService) Delete(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductCategory{}).Error; err != nil {
			return fmt.Errorf("failed to delete category memberships: %w", err)
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.AssociateProduct{}).Error; err != nil {
			return fmt.Errorf("failed to delete associate memberships: %w", err)
		}
		if err := tx.Delete(&product).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if product.ImageURL != "" {
		s.images.CleanupObject(product.ImageURL)
	}

	return nil
}

// replaceProductCategories swaps the full membership set: delete everything
// for the product, then bulk-insert the new list. Replacement, not merge.
func replaceProductCategories(tx *gorm.DB, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductCategory{}).Error; err != nil {
		return fmt.Errorf("failed to clear category memberships: %w", err)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	rows := make([]models.ProductCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		rows = append(rows, models.ProductCategory{
			ProductID:  productID,
			CategoryID: categoryID,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert category memberships: %w", err)
	}
	return nil
}
