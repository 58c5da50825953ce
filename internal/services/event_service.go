// internal/services/event_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/apfam/apfam-backend/internal/models"
	"github.com/apfam/apfam-backend/internal/utils"
)

type EventService struct {
	db     *gorm.DB
	images ImageCleaner
}

// A blank slug is derived from the title.
type EventRequest struct {
	Title       string    `json:"title" validate:"required,min=2,max=255"`
	Slug        string    `json:"slug" validate:"omitempty,min=2,slug"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required,min=2"`
	Description string    `json:"description" validate:"required,min=10"`
	ImageURL    string    `json:"image_url,omitempty"`
}

func (r *EventRequest) slug() string {
	if r.Slug != "" {
		return r.Slug
	}
	return utils.Slugify(r.Title)
}

func NewEventService(db *gorm.DB, images ImageCleaner) *EventService {
	return &EventService{db: db, images: images}
}

func (s *EventService) List() ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Order("date DESC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}

func (s *EventService) GetByID(id uuid.UUID) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &event, nil
}

func (s *EventService) GetBySlug(slug string) (*models.Event, error) {
	var event models.Event
	if err := s.db.First(&event, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &event, nil
}

func (s *EventService) Create(req *EventRequest) (*models.Event, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	event := &models.Event{
		Title:       req.Title,
		Slug:        req.slug(),
		Date:        req.Date,
		Location:    req.Location,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.db.Create(event).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Update(id uuid.UUID, req *EventRequest) (*models.Event, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if event.ImageURL != "" && event.ImageURL != req.ImageURL {
		s.images.CleanupObject(event.ImageURL)
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"slug":        req.slug(),
		"date":        req.Date,
		"location":    req.Location,
		"description": req.Description,
		"image_url":   req.ImageURL,
	}
	if err := s.db.Model(&event).Updates(updates).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return &event, nil
}

func (s *EventService) Delete(id uuid.UUID) error {
	var event models.Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&event).Error; err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	if event.ImageURL != "" {
		s.images.CleanupObject(event.ImageURL)
	}

	return nil
}

// Upcoming returns events dated today or later, soonest first.
func (s *EventService) Upcoming(limit int) ([]models.Event, error) {
	var events []models.Event
	if err := s.db.Where("date >= ?", time.Now().Truncate(24*time.Hour)).
		Order("date ASC").
		Limit(limit).
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming events: %w", err)
	}
	return events, nil
}
