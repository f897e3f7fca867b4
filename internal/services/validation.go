package services

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks failures that block a save locally. They are surfaced
// next to the offending field and never crash anything.
var ErrValidation = errors.New("validation failed")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

const dateLayout = "2006-01-02"

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return invalidf("date must be YYYY-MM-DD, got %q", date)
	}
	return nil
}

func parseDate(date string, location *time.Location) (time.Time, bool) {
	if location == nil {
		location = time.UTC
	}
	parsed, err := time.ParseInLocation(dateLayout, date, location)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}

// Today formats a wall-clock instant as the calendar date records are keyed
// by.
func Today(now time.Time) string {
	return now.Format(dateLayout)
}
