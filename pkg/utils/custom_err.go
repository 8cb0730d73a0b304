package utils

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrTripNotFound           = errors.New("trip not found")
	ErrItineraryNotFound      = errors.New("itinerary not found")
	ErrActivityNotFound       = errors.New("activity not found")
	ErrFileNotFound           = errors.New("file not found")
	ErrFutureTripNotFound     = errors.New("future trip not found")
	ErrCatalogEntryNotFound   = errors.New("catalog entry not found")
	ErrSessionNotFound        = errors.New("session not found")
	ErrFutureTripMigrated     = errors.New("future trip already migrated")
	ErrInvalidInput           = errors.New("invalid input")
	ErrDatabaseError          = errors.New("database error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI behavior")
)

// ValidationError names the missing required field so the 400 body can tell
// the caller exactly what was omitted.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("el campo %s es obligatorio", e.Field)
}

func MissingField(field string) error {
	return &ValidationError{Field: field}
}

// UpstreamError mirrors a failure of the external AI backend: the HTTP status
// reported upstream (500 when unknown), a human-readable message, and how long
// the call took before failing.
type UpstreamError struct {
	Status  int
	Message string
	Elapsed time.Duration
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s (status %d, %dms)", e.Message, e.Status, e.Elapsed.Milliseconds())
}
