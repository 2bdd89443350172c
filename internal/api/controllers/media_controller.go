package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{mediaService: mediaService}
}

// Upload godoc
// @Summary Upload an image
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} utils.APIResponse
// @Failure 413 {object} utils.APIResponse
// @Failure 415 {object} utils.APIResponse
// @Security BearerAuth
// @Router /media/upload [post]
func (m *MediaController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Multipart field file is required")
		return
	}

	media, err := m.mediaService.UploadImage(c.Request.Context(), file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, media, "Image uploaded successfully")
}
