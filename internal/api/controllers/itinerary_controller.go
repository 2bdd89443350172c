package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"newlife/internal/models/request_models"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

// GenerateItinerary godoc
// @Summary Generate a day-by-day itinerary with AI
// @Description Replaces any previous itinerary of the trip. Body is optional.
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param request body request_models.GenerateItineraryRequest false "Extra interests and notes"
// @Success 201 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itinerary/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	var req request_models.GenerateItineraryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
			return
		}
	}

	itinerary, err := i.itineraryService.Generate(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Itinerary generated successfully")
}

// GetItinerary godoc
// @Summary Get a trip's itinerary
// @Tags Itineraries
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itinerary [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	itinerary, err := i.itineraryService.Get(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// DeleteItinerary godoc
// @Summary Delete a trip's itinerary
// @Tags Itineraries
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /trips/{tripId}/itinerary [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	tripID, ok := pathUUID(c, "tripId")
	if !ok {
		return
	}

	if err := i.itineraryService.Delete(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}
