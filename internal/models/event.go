// internal/models/event.go
package models

import "time"

type Event struct {
	BaseModel
	Title       string    `json:"title" gorm:"size:255;not null"`
	Slug        string    `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Date        time.Time `json:"date" gorm:"not null;index"`
	Location    string    `json:"location" gorm:"size:255"`
	Description string    `json:"description" gorm:"type:text"`
	ImageURL    string    `json:"image_url" gorm:"size:1024"`
}
