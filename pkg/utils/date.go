package utils

import (
	"time"

	"rebuy/pkg/errors"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, errors.BadRequest("Date must be in YYYY-MM-DD format", err)
	}
	return t, nil
}

// ParseDateOrZero is ParseDate for optional query parameters; an empty
// value yields the zero time.
func ParseDateOrZero(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return ParseDate(value)
}
