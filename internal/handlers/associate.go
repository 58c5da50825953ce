// internal/handlers/associate.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/apfam/apfam-backend/internal/services"
	"github.com/apfam/apfam-backend/internal/utils"
	"github.com/apfam/apfam-backend/internal/views"
)

type AssociateHandler struct {
	associateService *services.AssociateService
}

func NewAssociateHandler(associateService *services.AssociateService) *AssociateHandler {
	return &AssociateHandler{associateService: associateService}
}

// GET /associates?search=&products=a,b
func (h *AssociateHandler) GetAssociates(c *gin.Context) {
	associates, err := h.associateService.List()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	search := c.Query("search")
	productIDs := parseIDList(c.Query("products"))

	filtered := views.FilterAssociates(views.NewAssociateViews(associates), search, productIDs)
	utils.SuccessResponse(c, filtered)
}

// GET /associates/:slug
func (h *AssociateHandler) GetAssociate(c *gin.Context) {
	associate, err := h.associateService.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, views.NewAssociateView(associate))
}

// POST /admin/associates
func (h *AssociateHandler) CreateAssociate(c *gin.Context) {
	var req services.AssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	associate, err := h.associateService.Create(&req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, views.NewAssociateView(associate))
}

// PUT /admin/associates/:id
func (h *AssociateHandler) UpdateAssociate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID inválido", nil)
		return
	}

	var req services.AssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	associate, err := h.associateService.Update(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, views.NewAssociateView(associate))
}

// DELETE /admin/associates/:id
func (h *AssociateHandler) DeleteAssociate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "ID inválido", nil)
		return
	}

	if err := h.associateService.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}
