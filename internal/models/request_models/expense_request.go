package request_models

type CreateExpenseRequest struct {
	Title    string  `json:"title" binding:"required,max=120"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category"`
	SpentAt  string  `json:"spent_at"`
	Notes    string  `json:"notes" binding:"max=1000"`
}

type UpdateExpenseRequest struct {
	Title    *string  `json:"title" binding:"omitempty,max=120"`
	Amount   *float64 `json:"amount" binding:"omitempty,gt=0"`
	Category *string  `json:"category"`
	SpentAt  *string  `json:"spent_at"`
	Notes    *string  `json:"notes" binding:"omitempty,max=1000"`
}
