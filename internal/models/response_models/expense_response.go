package response_models

import "github.com/google/uuid"

type ExpenseResponse struct {
	ID        uuid.UUID `json:"id"`
	TripID    uuid.UUID `json:"trip_id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	SpentAt   string    `json:"spent_at,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt int64     `json:"created_at"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

type BudgetSummary struct {
	TripID      uuid.UUID       `json:"trip_id"`
	Currency    string          `json:"currency"`
	Budget      float64         `json:"budget"`
	Spent       float64         `json:"spent"`
	Remaining   float64         `json:"remaining"`
	PercentUsed float64         `json:"percent_used"`
	OverBudget  bool            `json:"over_budget"`
	PerTraveler float64         `json:"per_traveler"`
	ByCategory  []CategoryTotal `json:"by_category"`
}
