package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"newlife/internal/models/request_models"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{recommendationService: recommendationService}
}

// Recommend godoc
// @Summary Suggest destinations
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.RecommendationRequest true "Traveler preferences"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /recommendations [post]
func (r *RecommendationController) Recommend(c *gin.Context) {
	var req request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	recs, err := r.recommendationService.Recommend(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recs, "Recommendations generated successfully")
}
