package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"newlife/pkg/utils"
)

type Trip struct {
	BaseModel
	UserID        uuid.UUID      `gorm:"type:uuid;index;not null"`
	Title         string         `gorm:"not null"`
	Destination   string         `gorm:"not null"`
	StartDate     time.Time      `gorm:"type:date;not null"`
	EndDate       time.Time      `gorm:"type:date;not null"`
	Budget        float64
	Currency      string         `gorm:"size:3;default:USD"`
	Travelers     int            `gorm:"default:1"`
	Interests     pq.StringArray `gorm:"type:text[]"`
	Notes         string
	CoverPhotoURL string

	Expenses []Expense `gorm:"foreignKey:TripID"`
}

func (t *Trip) Status(now time.Time) utils.TripStatus {
	return utils.GetTripStatus(t.StartDate, t.EndDate, now)
}

func (t *Trip) DayCount() int {
	return utils.InclusiveDays(t.StartDate, t.EndDate)
}
