// internal/models/product.go
package models

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Name        string `json:"name" gorm:"size:255;not null"`
	Slug        string `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url" gorm:"size:1024"`

	// Relationships
	Categories []Category  `json:"categories,omitempty" gorm:"many2many:product_categories"`
	Associates []Associate `json:"associates,omitempty" gorm:"many2many:associate_products"`
}

// ProductCategory is the product<->category join row. It carries nothing
// beyond the two foreign keys; membership is fully replaced on every save.
type ProductCategory struct {
	ProductID  uuid.UUID `json:"product_id" gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `json:"category_id" gorm:"type:uuid;primaryKey"`
}
