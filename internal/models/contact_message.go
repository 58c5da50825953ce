// internal/models/contact_message.go
package models

// ContactMessage keeps a record of every contact-form submission, so the
// admin area can review them even if the outbound email was lost.
type ContactMessage struct {
	BaseModel
	Name           string `json:"name" gorm:"size:255;not null"`
	Email          string `json:"email" gorm:"size:255;not null"`
	Phone          string `json:"phone" gorm:"size:50"`
	ProductionType string `json:"production_type" gorm:"size:255"`
	Message        string `json:"message" gorm:"type:text;not null"`
}
