package request_models

// Dates are calendar days in YYYY-MM-DD.
type CreateTripRequest struct {
	Title       string   `json:"title" binding:"required,max=120"`
	Destination string   `json:"destination" binding:"required,max=120"`
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Budget      float64  `json:"budget" binding:"gte=0"`
	Currency    string   `json:"currency" binding:"omitempty,len=3"`
	Travelers   int      `json:"travelers" binding:"omitempty,gte=1"`
	Interests   []string `json:"interests"`
	Notes       string   `json:"notes" binding:"max=2000"`
}

type UpdateTripRequest struct {
	Title       *string   `json:"title" binding:"omitempty,max=120"`
	Destination *string   `json:"destination" binding:"omitempty,max=120"`
	StartDate   *string   `json:"start_date"`
	EndDate     *string   `json:"end_date"`
	Budget      *float64  `json:"budget" binding:"omitempty,gte=0"`
	Currency    *string   `json:"currency" binding:"omitempty,len=3"`
	Travelers   *int      `json:"travelers" binding:"omitempty,gte=1"`
	Interests   *[]string `json:"interests"`
	Notes       *string   `json:"notes" binding:"omitempty,max=2000"`
}
