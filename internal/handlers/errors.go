// internal/handlers/errors.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/apfam/apfam-backend/internal/services"
	"github.com/apfam/apfam-backend/internal/utils"
)

// respondServiceError maps the service error taxonomy onto the response
// envelope: not-found -> 404, conflicts (including in-use categories) ->
// 409, bad credentials -> 401, anything else -> 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c, "")
	case errors.Is(err, services.ErrConflict):
		utils.ConflictResponse(c, services.ErrConflict.Error())
	case errors.Is(err, services.ErrCategoryInUse):
		utils.ConflictResponse(c, services.ErrCategoryInUse.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, services.ErrInvalidCredentials.Error())
	default:
		utils.InternalErrorResponse(c, "")
	}
}
