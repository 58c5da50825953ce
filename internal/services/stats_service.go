// internal/services/stats_service.go
package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/apfam/apfam-backend/internal/models"
)

type StatsService struct {
	db *gorm.DB
}

type DashboardStats struct {
	Associates      int64 `json:"associates"`
	Products        int64 `json:"products"`
	Categories      int64 `json:"categories"`
	Events          int64 `json:"events"`
	ContactMessages int64 `json:"contact_messages"`
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

func (s *StatsService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Associate{}, &stats.Associates},
		{&models.Product{}, &stats.Products},
		{&models.Category{}, &stats.Categories},
		{&models.Event{}, &stats.Events},
		{&models.ContactMessage{}, &stats.ContactMessages},
	}

	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count records: %w", err)
		}
	}

	return stats, nil
}
