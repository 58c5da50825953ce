// internal/services/associate_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/apfam/apfam-backend/internal/models"
	"github.com/apfam/apfam-backend/internal/utils"
)

type AssociateService struct {
	db     *gorm.DB
	images ImageCleaner
}

// ProductIDs may be empty: an associate without products is valid. A blank
// slug is derived from the name.
type AssociateRequest struct {
	Name       string      `json:"name" validate:"required,min=2,max=255"`
	Slug       string      `json:"slug" validate:"omitempty,min=2,slug"`
	Bio        string      `json:"bio" validate:"required,min=10"`
	Location   string      `json:"location" validate:"required,min=2"`
	ProductIDs []uuid.UUID `json:"product_ids"`
	AvatarURL  string      `json:"avatar_url,omitempty"`
}

func (r *AssociateRequest) slug() string {
	if r.Slug != "" {
		return r.Slug
	}
	return utils.Slugify(r.Name)
}

func NewAssociateService(db *gorm.DB, images ImageCleaner) *AssociateService {
	return &AssociateService{db: db, images: images}
}

func (s *AssociateService) List() ([]models.Associate, error) {
	var associates []models.Associate
	if err := s.db.Preload("Products").
		Order("created_at DESC").
		Find(&associates).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch associates: %w", err)
	}
	return associates, nil
}

func (s *AssociateService) GetByID(id uuid.UUID) (*models.Associate, error) {
	var associate models.Associate
	if err := s.db.Preload("Products").First(&associate, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &associate, nil
}

func (s *AssociateService) GetBySlug(slug string) (*models.Associate, error) {
	var associate models.Associate
	if err := s.db.Preload("Products").First(&associate, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &associate, nil
}

func (s *AssociateService) Create(req *AssociateRequest) (*models.Associate, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	associate := &models.Associate{
		Name:      req.Name,
		Slug:      req.slug(),
		Bio:       req.Bio,
		Location:  req.Location,
		AvatarURL: req.AvatarURL,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(associate).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("failed to create associate: %w", err)
		}
		return replaceAssociateProducts(tx, associate.ID, req.ProductIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(associate.ID)
}

func (s *AssociateService) Update(id uuid.UUID, req *AssociateRequest) (*models.Associate, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var associate models.Associate
	if err := s.db.First(&associate, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Old avatar becomes an orphan when the reference changes.
	if associate.AvatarURL != "" && associate.AvatarURL != req.AvatarURL {
		s.images.CleanupObject(associate.AvatarURL)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":       req.Name,
			"slug":       req.slug(),
			"bio":        req.Bio,
			"location":   req.Location,
			"avatar_url": req.AvatarURL,
		}
		if err := tx.Model(&associate).Updates(updates).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrConflict
			}
			return fmt.Errorf("failed to update associate: %w", err)
		}
		return replaceAssociateProducts(tx, associate.ID, req.ProductIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

func (s *AssociateService) Delete(id uuid.UUID) error {
	var associate models.Associate
	if err := s.db.First(&associate, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("associate_id = ?", id).Delete(&models.AssociateProduct{}).Error; err != nil {
			return fmt.Errorf("failed to delete product memberships: %w", err)
		}
		if err := tx.Delete(&associate).Error; err != nil {
			return fmt.Errorf("failed to delete associate: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if associate.AvatarURL != "" {
		s.images.CleanupObject(associate.AvatarURL)
	}

	return nil
}

func replaceAssociateProducts(tx *gorm.DB, associateID uuid.UUID, productIDs []uuid.UUID) error {
	if err := tx.Where("associate_id = ?", associateID).Delete(&models.AssociateProduct{}).Error; err != nil {
		return fmt.Errorf("failed to clear product memberships: %w", err)
	}

	if len(productIDs) == 0 {
		return nil
	}

	rows := make([]models.AssociateProduct, 0, len(productIDs))
	for _, productID := range productIDs {
		rows = append(rows, models.AssociateProduct{
			AssociateID: associateID,
			ProductID:   productID,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to insert product memberships: %w", err)
	}
	return nil
}
