package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

type DestinationController struct {
	destinationService services.DestinationServiceInterface
}

func NewDestinationController(destinationService services.DestinationServiceInterface) *DestinationController {
	return &DestinationController{destinationService: destinationService}
}

// ListPopular godoc
// @Summary Destinations for the map, most looked up first
// @Tags Destinations
// @Produce json
// @Param limit query int false "Max rows" default(50)
// @Success 200 {object} utils.APIResponse
// @Router /destinations [get]
func (d *DestinationController) ListPopular(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	rows, err := d.destinationService.ListPopular(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "Destinations fetched successfully")
}

// SearchSimilar godoc
// @Summary Semantic destination search
// @Tags Destinations
// @Produce json
// @Param q query string true "Free text, e.g. quiet beaches with seafood"
// @Param limit query int false "Max rows" default(10)
// @Success 200 {object} utils.APIResponse
// @Router /destinations/search [get]
func (d *DestinationController) SearchSimilar(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	rows, err := d.destinationService.SearchSimilar(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "Destinations fetched successfully")
}
