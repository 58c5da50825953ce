// internal/handlers/upload.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/apfam/apfam-backend/internal/services"
	"github.com/apfam/apfam-backend/internal/utils"
)

type UploadHandler struct {
	storageService *services.StorageService
}

func NewUploadHandler(storageService *services.StorageService) *UploadHandler {
	return &UploadHandler{storageService: storageService}
}

var uploadFolders = map[string]bool{
	"products": true,
	"avatars":  true,
	"events":   true,
	"general":  true,
}

// POST /admin/uploads?folder=products
func (h *UploadHandler) UploadImage(c *gin.Context) {
	folder := c.DefaultQuery("folder", "general")
	if !uploadFolders[folder] {
		utils.BadRequestResponse(c, "Pasta de destino inválida", nil)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "Nenhum arquivo enviado", err.Error())
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	result, err := h.storageService.UploadFile(file, header, h.storageService.GetDefaultUploadOptions(folder))
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, result)
}

// DELETE /admin/uploads
//
// Best-effort removal of a previously uploaded object, used when the admin
// replaces an image before saving the form.
func (h *UploadHandler) DeleteImage(c *gin.Context) {
	var req struct {
		URL string `json:"url" validate:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		utils.BadRequestResponse(c, "URL do objeto é obrigatória", nil)
		return
	}

	h.storageService.CleanupObject(req.URL)
	utils.SuccessResponse(c, gin.H{"deleted": true})
}
