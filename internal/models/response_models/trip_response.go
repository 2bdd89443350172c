package response_models

import "github.com/google/uuid"

type TripResponse struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Title         string    `json:"title"`
	Destination   string    `json:"destination"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DurationDays  int       `json:"duration_days"`
	Status        string    `json:"status"`
	Budget        float64   `json:"budget"`
	Currency      string    `json:"currency"`
	Travelers     int       `json:"travelers"`
	Interests     []string  `json:"interests"`
	Notes         string    `json:"notes,omitempty"`
	CoverPhotoURL string    `json:"cover_photo_url,omitempty"`
	CreatedAt     int64     `json:"created_at"`
	UpdatedAt     int64     `json:"updated_at"`
}

type PaginatedTrips struct {
	Items    []TripResponse `json:"items"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Total    int64          `json:"total"`
}
