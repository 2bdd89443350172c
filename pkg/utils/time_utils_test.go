package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestGetTripStatus(t *testing.T) {
	start := date(t, "2025-06-15")
	end := date(t, "2025-06-25")

	cases := []struct {
		name  string
		today string
		want  TripStatus
	}{
		{"before start", "2025-06-14", TripStatusUpcoming},
		{"on start", "2025-06-15", TripStatusOngoing},
		{"inside", "2025-06-20", TripStatusOngoing},
		{"on end", "2025-06-25", TripStatusOngoing},
		{"after end", "2025-07-01", TripStatusCompleted},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetTripStatus(start, end, date(t, tc.today)))
		})
	}
}

func TestGetTripStatus_IgnoresClock(t *testing.T) {
	start := date(t, "2025-06-15")
	end := date(t, "2025-06-25")

	lateOnEnd := time.Date(2025, 6, 25, 23, 59, 0, 0, time.UTC)
	earlyOnStart := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, TripStatusOngoing, GetTripStatus(start, end, lateOnEnd))
	assert.Equal(t, TripStatusOngoing, GetTripStatus(start, end, earlyOnStart))
}

func TestInclusiveDays(t *testing.T) {
	assert.Equal(t, 11, InclusiveDays(date(t, "2025-06-15"), date(t, "2025-06-25")))
	assert.Equal(t, 1, InclusiveDays(date(t, "2025-06-15"), date(t, "2025-06-15")))
	assert.Equal(t, 0, InclusiveDays(date(t, "2025-06-15"), date(t, "2025-06-14")))
}

func TestIsClock(t *testing.T) {
	assert.True(t, IsClock("09:00"))
	assert.True(t, IsClock("23:59"))
	assert.False(t, IsClock("24:00"))
	assert.False(t, IsClock("9am"))
}
