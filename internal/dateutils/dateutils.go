// Package dateutils provides the date parsing and formatting used for transaction rows.
package dateutils

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"fjacquet/expense-analyzer/internal/parsererror"
)

// Date layouts used throughout the application
const (
	DateLayoutISO = "2006-01-02"
	MonthLayout   = "2006-01"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseISODate parses a strict YYYY-MM-DD date. The day is checked against the
// month length, leap years included. The result is midnight UTC.
func ParseISODate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, dateError(dateStr, errors.New("empty date"))
	}
	if !isoDatePattern.MatchString(dateStr) {
		return time.Time{}, dateError(dateStr, fmt.Errorf("expected format %s", DateLayoutISO))
	}

	t, err := time.Parse(DateLayoutISO, dateStr)
	if err != nil {
		return time.Time{}, dateError(dateStr, err)
	}
	if t.Year() < 1 {
		return time.Time{}, dateError(dateStr, errors.New("year out of range"))
	}
	return t, nil
}

func dateError(value string, err error) error {
	return &parsererror.ParseError{
		Parser: "date",
		Field:  "date",
		Value:  value,
		Err:    err,
	}
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// MonthKey returns the zero-padded YYYY-MM key of the month containing date.
func MonthKey(date time.Time) string {
	return date.Format(MonthLayout)
}
