package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrForbidden       = errors.New("forbidden")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOtp         = errors.New("invalid or expired otp")
	ErrInvalidIDToken     = errors.New("invalid id token")

	ErrTripNotFound      = errors.New("trip not found")
	ErrExpenseNotFound   = errors.New("expense not found")
	ErrItineraryNotFound = errors.New("itinerary not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrPlaceNotFound     = errors.New("place not found")

	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI")
	ErrUpstreamService        = errors.New("upstream service error")
	ErrFeatureNotConfigured   = errors.New("feature not configured")
	ErrUnsupportedMedia       = errors.New("unsupported media")
	ErrMediaTooLarge          = errors.New("media too large")
)
