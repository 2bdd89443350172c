package response_models

import "github.com/google/uuid"

type ItineraryResponse struct {
	ID              uuid.UUID              `json:"id"`
	TripID          uuid.UUID              `json:"trip_id"`
	Summary         string                 `json:"summary"`
	Model           string                 `json:"model,omitempty"`
	TotalDays       int                    `json:"total_days"`
	TotalActivities int                    `json:"total_activities"`
	EstimatedCost   float64                `json:"estimated_cost"`
	Days            []ItineraryDayResponse `json:"days"`
	CreatedAt       int64                  `json:"created_at"`
}

type ItineraryDayResponse struct {
	ID         uuid.UUID          `json:"id"`
	DayNumber  int                `json:"day_number"`
	Date       string             `json:"date"`
	Title      string             `json:"title"`
	Activities []ActivityResponse `json:"activities"`
}

type ActivityResponse struct {
	ID            uuid.UUID `json:"id"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Location      string    `json:"location,omitempty"`
	Category      string    `json:"category,omitempty"`
	EstimatedCost float64   `json:"estimated_cost"`
}

type Recommendation struct {
	Name            string `json:"name"`
	Country         string `json:"country"`
	Reason          string `json:"reason"`
	BestTimeToVisit string `json:"best_time_to_visit"`
	EstimatedBudget string `json:"estimated_budget"`
}
