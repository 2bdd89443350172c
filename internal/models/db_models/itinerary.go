package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Itinerary struct {
	BaseModel
	TripID  uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	UserID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Summary string
	Model   string

	Days []ItineraryDay `gorm:"foreignKey:ItineraryID"`
}

type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"type:uuid;index;not null"`
	DayNumber   int
	Date        time.Time `gorm:"type:date"`
	Title       string

	Activities []ItineraryActivity `gorm:"foreignKey:ItineraryDayID"`
}

type ItineraryActivity struct {
	BaseModel
	ItineraryDayID uuid.UUID `gorm:"type:uuid;index;not null"`
	Position       int
	StartTime      string `gorm:"size:5"`
	EndTime        string `gorm:"size:5"`
	Title          string
	Description    string
	Location       string
	Category       string
	EstimatedCost  float64
}
