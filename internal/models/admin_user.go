// internal/models/admin_user.go
package models

import "golang.org/x/crypto/bcrypt"

// AdminUser is a back-office account. The site has no public registration;
// admins are seeded or managed directly.
type AdminUser struct {
	BaseModel
	Email        string `json:"email" gorm:"size:255;not null;uniqueIndex"`
	FullName     string `json:"full_name" gorm:"size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
}

func (u *AdminUser) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *AdminUser) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
