// Package parsererror defines the error types raised while loading transaction files.
package parsererror

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoHeader is reported when the input has no header row at all.
	ErrNoHeader = errors.New("CSV has no header row")

	// ErrMissingColumns is reported when the header lacks required columns.
	ErrMissingColumns = errors.New("CSV is missing required columns")
)

// ParseError represents a single field that could not be converted
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LoadError aborts a whole load. No transactions are produced for the input.
type LoadError struct {
	FilePath string
	Missing  []string // sorted names of required columns absent from the header
	Err      error
}

func (e *LoadError) Error() string {
	msg := e.Err.Error()
	if len(e.Missing) > 0 {
		msg = fmt.Sprintf("%s: %s", msg, strings.Join(e.Missing, ", "))
	}
	if e.FilePath != "" {
		return fmt.Sprintf("load failed for %s: %s", e.FilePath, msg)
	}
	return fmt.Sprintf("load failed: %s", msg)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err aborted a load.
func IsFatal(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}
