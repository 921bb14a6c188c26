package models

import (
	"errors"
	"time"
)

// EntryDateFormat is the calendar-date layout stored on every entry.
// Dates are kept as ISO text so month bucketing is a plain prefix.
const EntryDateFormat = "2006-01-02"

var (
	ErrNegativeAmount = errors.New("entry amount must not be negative")
	ErrInvalidDate    = errors.New("entry date must be in YYYY-MM-DD format")
	ErrMissingUser    = errors.New("user ID is required")
)

// IsValidEntryDate reports whether date is well-formed ISO YYYY-MM-DD text.
func IsValidEntryDate(date string) bool {
	_, err := time.Parse(EntryDateFormat, date)
	return err == nil
}

// Today returns the current calendar date in entry format.
func Today() string {
	return time.Now().Format(EntryDateFormat)
}

// MonthKey truncates an ISO date to its YYYY-MM prefix.
func MonthKey(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}
