package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrValidation marks a rejected constructor or setter argument. The
	// entity is never mutated when it is returned.
	ErrValidation = errors.New("validation error")

	// ErrIllegalState marks a disallowed booking status transition. The
	// status is left unchanged.
	ErrIllegalState = errors.New("illegal state")
)

func requireString(value, field string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s cannot be empty", ErrValidation, field)
	}
	return nil
}

// toDate drops the time-of-day component; the model works in calendar days.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validateStay(checkIn, checkOut time.Time) (time.Time, time.Time, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check-in and check-out dates are required", ErrValidation)
	}
	in, out := toDate(checkIn), toDate(checkOut)
	if !out.After(in) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	}
	return in, out, nil
}
