package db_models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryAccommodation = "accommodation"
	CategoryTransport     = "transport"
	CategoryFood          = "food"
	CategoryActivities    = "activities"
	CategoryShopping      = "shopping"
	CategoryOther         = "other"
)

var ExpenseCategories = []string{
	CategoryAccommodation,
	CategoryTransport,
	CategoryFood,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

func IsExpenseCategory(c string) bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

type Expense struct {
	BaseModel
	TripID   uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Title    string    `gorm:"not null"`
	Amount   float64   `gorm:"not null"`
	Category string    `gorm:"index;default:other"`
	SpentAt  time.Time `gorm:"type:date"`
	Notes    string
}
