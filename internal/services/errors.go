// internal/services/errors.go
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("registro não encontrado")

	// ErrConflict is returned when a write is rejected by a uniqueness
	// constraint, typically a duplicate slug.
	ErrConflict = errors.New("já existe um registro com este link")

	// ErrCategoryInUse is returned when a category delete is refused
	// because products still reference it.
	ErrCategoryInUse = errors.New("existem produtos associados a esta categoria")

	// ErrInvalidCredentials is returned on failed logins.
	ErrInvalidCredentials = errors.New("email ou senha inválidos")
)

// isUniqueViolation detects uniqueness errors from Postgres and from the
// sqlite databases used in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
