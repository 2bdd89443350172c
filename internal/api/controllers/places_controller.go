package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{placesService: placesService}
}

// Search godoc
// @Summary Text search for places
// @Tags Places
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {object} utils.APIResponse
// @Router /places/search [get]
func (p *PlacesController) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	places, err := p.placesService.Search(c.Request.Context(), q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// Nearby godoc
// @Summary Places around a point
// @Tags Places
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Radius in meters" default(1500)
// @Param type query string false "Place type, e.g. restaurant"
// @Success 200 {object} utils.APIResponse
// @Router /places/nearby [get]
func (p *PlacesController) Nearby(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	radius, errRadius := strconv.ParseFloat(c.DefaultQuery("radius", "1500"), 64)
	if errLat != nil || errLng != nil || errRadius != nil {
		utils.RespondError(c, http.StatusBadRequest, "lat, lng and radius must be numbers")
		return
	}

	places, err := p.placesService.Nearby(c.Request.Context(), lat, lng, radius, c.Query("type"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// Photo godoc
// @Summary Best photo for a destination
// @Tags Places
// @Produce json
// @Param destination query string true "Destination name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/photo [get]
func (p *PlacesController) Photo(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter destination is required")
		return
	}

	photo, err := p.placesService.PhotoFor(c.Request.Context(), destination)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, photo, "Photo fetched successfully")
}
