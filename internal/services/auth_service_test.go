// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/apfam/apfam-backend/internal/config"
	"github.com/apfam/apfam-backend/internal/models"
	"github.com/apfam/apfam-backend/internal/utils"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", AccessTokenTTL: 1},
	}
}

func seedAdmin(t *testing.T, db *gorm.DB, email, password string) *models.AdminUser {
	t.Helper()
	admin := &models.AdminUser{Email: email, FullName: "Administrador APFAM"}
	require.NoError(t, admin.SetPassword(password))
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func TestAuthService_LoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, testAuthConfig())
	utils.SetJWTSecret("test-secret")

	admin := seedAdmin(t, db, "admin@apfam.com", "senha-segura")

	resp, err := auth.Login(&LoginRequest{Email: "admin@apfam.com", Password: "senha-segura"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, admin.ID, resp.User.ID)

	claims, err := utils.ValidateJWT(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.UserID)
	assert.Equal(t, "admin@apfam.com", claims.Email)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, testAuthConfig())

	seedAdmin(t, db, "admin@apfam.com", "senha-segura")

	_, err := auth.Login(&LoginRequest{Email: "admin@apfam.com", Password: "senha-errada"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, testAuthConfig())

	// Unknown email and wrong password must be indistinguishable.
	_, err := auth.Login(&LoginRequest{Email: "ninguem@apfam.com", Password: "qualquer"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateProfileChangesPassword(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, testAuthConfig())

	admin := seedAdmin(t, db, "admin@apfam.com", "senha-antiga")

	updated, err := auth.UpdateProfile(admin.ID, &UpdateProfileRequest{
		FullName:        "Nova Diretoria",
		Password:        "senha-nova",
		ConfirmPassword: "senha-nova",
	})
	require.NoError(t, err)
	assert.Equal(t, "Nova Diretoria", updated.FullName)

	_, err = auth.Login(&LoginRequest{Email: "admin@apfam.com", Password: "senha-antiga"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(&LoginRequest{Email: "admin@apfam.com", Password: "senha-nova"})
	assert.NoError(t, err)
}

func TestAuthService_UpdateProfileKeepsPasswordWhenBlank(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, testAuthConfig())

	admin := seedAdmin(t, db, "admin@apfam.com", "senha-segura")

	_, err := auth.UpdateProfile(admin.ID, &UpdateProfileRequest{FullName: "Só o Nome"})
	require.NoError(t, err)

	_, err = auth.Login(&LoginRequest{Email: "admin@apfam.com", Password: "senha-segura"})
	assert.NoError(t, err)
}

func TestAuthService_UpdateProfileMismatchedConfirmation(t *testing.T) {
	db := setupTestDB(t)
	auth := NewAuthService(db, testAuthConfig())

	admin := seedAdmin(t, db, "admin@apfam.com", "senha-segura")

	_, err := auth.UpdateProfile(admin.ID, &UpdateProfileRequest{
		FullName:        "Administrador APFAM",
		Password:        "senha-nova",
		ConfirmPassword: "outra-coisa",
	})
	assert.Error(t, err)
}
