package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"newlife/internal/services"
	"newlife/pkg/utils"
)

type WeatherController struct {
	weatherService services.WeatherServiceInterface
}

func NewWeatherController(weatherService services.WeatherServiceInterface) *WeatherController {
	return &WeatherController{weatherService: weatherService}
}

func optionalDate(c *gin.Context, key string) (*time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	d, err := utils.ParseDate(raw)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, key+" must be YYYY-MM-DD")
		return nil, false
	}
	return &d, true
}

// TravelTiming godoc
// @Summary Is it a good time to visit?
// @Description Scores the forecast days for comfort; start and end narrow the window
// @Tags Weather
// @Produce json
// @Param destination query string true "Destination name"
// @Param start query string false "YYYY-MM-DD"
// @Param end query string false "YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Router /weather/timing [get]
func (w *WeatherController) TravelTiming(c *gin.Context) {
	start, ok := optionalDate(c, "start")
	if !ok {
		return
	}
	end, ok := optionalDate(c, "end")
	if !ok {
		return
	}

	timing, err := w.weatherService.TravelTiming(c.Request.Context(), c.Query("destination"), start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, timing, "Travel timing computed successfully")
}
