// Package dateutil provides publication date parsing utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date value that matches no accepted layout.
var ErrInvalidDate = errors.New("invalid date")

// acceptedLayouts are tried in order when parsing a frontmatter date.
// Authors usually write plain calendar dates; full timestamps are accepted
// for documents exported from other tools.
var acceptedLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// ParseDate parses a frontmatter date value.
// Returns ErrInvalidDate if the value is empty or matches no accepted layout.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: value cannot be empty", ErrInvalidDate)
	}

	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// StartOfDay strips the time-of-day from t, keeping its location.
// Publication rules compare calendar dates only, never clock time.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AfterDay reports whether a is on a strictly later calendar day than b.
func AfterDay(a, b time.Time) bool {
	return StartOfDay(a).After(StartOfDay(b))
}
