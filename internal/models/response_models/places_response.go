package response_models

import "github.com/google/uuid"

type PlaceSummary struct {
	PlaceID     string   `json:"place_id"`
	Name        string   `json:"name"`
	Address     string   `json:"address,omitempty"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Types       []string `json:"types,omitempty"`
	PhotoURL    string   `json:"photo_url,omitempty"`
}

type DestinationPhoto struct {
	Destination string `json:"destination"`
	PhotoURL    string `json:"photo_url"`
	Cached      bool   `json:"cached"`
}

type DestinationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name"`
	Address     string    `json:"address,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	PhotoURL    string    `json:"photo_url,omitempty"`
	Lookups     int64     `json:"lookups"`
}

type DayWeather struct {
	Date       string  `json:"date"`
	TempMax    float64 `json:"temp_max"`
	TempMin    float64 `json:"temp_min"`
	PrecipProb float64 `json:"precipitation_probability"`
	WindMax    float64 `json:"wind_max"`
	Score      float64 `json:"score"`
}

type TravelTiming struct {
	Destination string       `json:"destination"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Score       float64      `json:"score"`
	Verdict     string       `json:"verdict"`
	BestDay     *DayWeather  `json:"best_day,omitempty"`
	Days        []DayWeather `json:"days"`
}

type UploadedMedia struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id,omitempty"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
}
