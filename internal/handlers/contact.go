// internal/handlers/contact.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/apfam/apfam-backend/internal/services"
	"github.com/apfam/apfam-backend/internal/utils"
	"github.com/apfam/apfam-backend/internal/views"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// POST /contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	message, err := h.contactService.Submit(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"id":      message.ID,
		"message": "Mensagem enviada com sucesso. Entraremos em contato em breve.",
	})
}

// GET /admin/contact-messages
func (h *ContactHandler) GetContactMessages(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	messages, total, err := h.contactService.ListMessages(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(views.NewContactMessageViews(messages), total, params)
	utils.PaginatedResponse(c, result)
}
