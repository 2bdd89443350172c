package utils

import (
	"regexp"
	"time"
)

const DateLayout = "2006-01-02"

type TripStatus string

const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

func (s TripStatus) Valid() bool {
	switch s {
	case TripStatusUpcoming, TripStatusOngoing, TripStatusCompleted:
		return true
	}
	return false
}

// NormalizeDate drops the clock part, keeping the calendar day as seen in t's location.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// GetTripStatus compares calendar days only; both ends of [start, end] are inclusive.
func GetTripStatus(start, end, now time.Time) TripStatus {
	today := NormalizeDate(now)
	s := NormalizeDate(start)
	e := NormalizeDate(end)

	switch {
	case today.Before(s):
		return TripStatusUpcoming
	case !today.After(e):
		return TripStatusOngoing
	default:
		return TripStatusCompleted
	}
}

// InclusiveDays returns the number of calendar days in [start, end], or 0 when end < start.
func InclusiveDays(start, end time.Time) int {
	s := NormalizeDate(start)
	e := NormalizeDate(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

var clockPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)

// IsClock reports whether s is an HH:MM wall-clock time.
func IsClock(s string) bool {
	return clockPattern.MatchString(s)
}
