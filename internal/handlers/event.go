// internal/handlers/event.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/apfam/apfam-backend/internal/services"
	"github.com/apfam/apfam-backend/internal/utils"
	"github.com/apfam/apfam-backend/internal/views"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// GET /events?search=
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.List()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	filtered := views.FilterEvents(views.NewEventViews(events), c.Query("search"))
	utils.SuccessResponse(c, filtered)
}

// GET /events/:slug
func (h *EventHandler) GetEvent(c *gin.Context) {
	event, err := h.eventService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, views.NewEventView(event))
}

// POST /admin/events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req services.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, views.NewEventView(event))
}

// PUT /admin/events/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID inválido", nil)
		return
	}

	var req services.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	event, err := h.eventService.Update(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, views.NewEventView(event))
}

// DELETE /admin/events/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID inválido", nil)
		return
	}

	if err := h.eventService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}
