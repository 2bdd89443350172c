package services

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	resp "newlife/internal/models/response_models"
	"newlife/pkg/utils"
)

type WeatherServiceInterface interface {
	TravelTiming(ctx context.Context, destination string, start, end *time.Time) (*resp.TravelTiming, error)
}

const (
	idealTemperatureC = 22.0
	windToleranceKmh  = 30.0
	forecastDays      = 16
)

// DayScore rates one forecast day from 0 to 100 for sightseeing comfort.
func DayScore(tempMax, tempMin, precipProb, windMax float64) float64 {
	avg := (tempMax + tempMin) / 2
	score := 100 - 2*math.Abs(avg-idealTemperatureC) - 0.5*precipProb - math.Max(0, windMax-windToleranceKmh)
	return math.Max(0, math.Min(100, score))
}

func Verdict(score float64) string {
	switch {
	case score >= 75:
		return "great"
	case score >= 50:
		return "good"
	case score >= 30:
		return "fair"
	default:
		return "poor"
	}
}

// OpenMeteoWeatherService uses the Open-Meteo geocoding and forecast APIs.
type OpenMeteoWeatherService struct {
	HTTP         *http.Client
	GeocodingURL string
	ForecastURL  string
}

func NewOpenMeteoWeatherService(geocodingURL, forecastURL string) WeatherServiceInterface {
	return &OpenMeteoWeatherService{
		HTTP:         &http.Client{Timeout: 10 * time.Second},
		GeocodingURL: geocodingURL,
		ForecastURL:  forecastURL,
	}
}

func (w *OpenMeteoWeatherService) TravelTiming(ctx context.Context, destination string, start, end *time.Time) (*resp.TravelTiming, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, utils.ErrInvalidInput
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, utils.ErrInvalidInput
	}

	name, lat, lng, err := w.geocode(ctx, destination)
	if err != nil {
		return nil, err
	}
	days, err := w.forecast(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("empty forecast: %w", utils.ErrUpstreamService)
	}

	selected := filterDays(days, start, end)
	if len(selected) == 0 {
		selected = days
	}

	var total float64
	best := selected[0]
	for _, d := range selected {
		total += d.Score
		if d.Score > best.Score {
			best = d
		}
	}
	avg := math.Round(total/float64(len(selected))*10) / 10

	return &resp.TravelTiming{
		Destination: name,
		Latitude:    lat,
		Longitude:   lng,
		Score:       avg,
		Verdict:     Verdict(avg),
		BestDay:     &best,
		Days:        selected,
	}, nil
}

func filterDays(days []resp.DayWeather, start, end *time.Time) []resp.DayWeather {
	if start == nil && end == nil {
		return nil
	}
	var out []resp.DayWeather
	for _, d := range days {
		day, err := utils.ParseDate(d.Date)
		if err != nil {
			continue
		}
		if start != nil && day.Before(utils.NormalizeDate(*start)) {
			continue
		}
		if end != nil && day.After(utils.NormalizeDate(*end)) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func (w *OpenMeteoWeatherService) geocode(ctx context.Context, name string) (string, float64, float64, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	raw, err := w.get(ctx, w.GeocodingURL+"?"+q.Encode())
	if err != nil {
		return "", 0, 0, err
	}

	first := gjson.GetBytes(raw, "results.0")
	if !first.Exists() {
		return "", 0, 0, utils.ErrPlaceNotFound
	}
	display := first.Get("name").String()
	if country := first.Get("country").String(); country != "" {
		display += ", " + country
	}
	return display, first.Get("latitude").Float(), first.Get("longitude").Float(), nil
}

func (w *OpenMeteoWeatherService) forecast(ctx context.Context, lat, lng float64) ([]resp.DayWeather, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", lat))
	q.Set("longitude", fmt.Sprintf("%.4f", lng))
	q.Set("daily", "temperature_2m_max,temperature_2m_min,precipitation_probability_max,wind_speed_10m_max")
	q.Set("timezone", "auto")
	q.Set("forecast_days", fmt.Sprint(forecastDays))

	raw, err := w.get(ctx, w.ForecastURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	daily := gjson.GetBytes(raw, "daily")
	dates := daily.Get("time").Array()
	tmax := daily.Get("temperature_2m_max").Array()
	tmin := daily.Get("temperature_2m_min").Array()
	precip := daily.Get("precipitation_probability_max").Array()
	wind := daily.Get("wind_speed_10m_max").Array()

	out := make([]resp.DayWeather, 0, len(dates))
	for i, d := range dates {
		if i >= len(tmax) || i >= len(tmin) {
			break
		}
		day := resp.DayWeather{
			Date:    d.String(),
			TempMax: tmax[i].Float(),
			TempMin: tmin[i].Float(),
		}
		if i < len(precip) {
			day.PrecipProb = precip[i].Float()
		}
		if i < len(wind) {
			day.WindMax = wind[i].Float()
		}
		day.Score = math.Round(DayScore(day.TempMax, day.TempMin, day.PrecipProb, day.WindMax)*10) / 10
		out = append(out, day)
	}
	return out, nil
}

func (w *OpenMeteoWeatherService) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := w.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather: %v: %w", err, utils.ErrUpstreamService)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 2<<20))
	if err != nil {
		return nil, err
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: status %d %s: %w", res.StatusCode, gjson.GetBytes(raw, "reason").String(), utils.ErrUpstreamService)
	}
	return raw, nil
}
