// internal/models/associate.go
package models

import "github.com/google/uuid"

// Associate is a registered producer/member of the association, with a
// public profile and a set of products they sell.
type Associate struct {
	BaseModel
	Name      string `json:"name" gorm:"size:255;not null"`
	Slug      string `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Bio       string `json:"bio" gorm:"type:text"`
	Location  string `json:"location" gorm:"size:255"`
	AvatarURL string `json:"avatar_url" gorm:"size:1024"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"many2many:associate_products"`
}

// AssociateProduct is the associate<->product join row.
type AssociateProduct struct {
	AssociateID uuid.UUID `json:"associate_id" gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;primaryKey"`
}
