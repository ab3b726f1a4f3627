// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/expense-analyzer/internal/container"
	"fjacquet/expense-analyzer/internal/csvparser"
	"fjacquet/expense-analyzer/internal/logging"
	"fjacquet/expense-analyzer/internal/validation"
)

// ErrNoInput is returned when a command needs --input and none was given.
var ErrNoInput = errors.New("input file is required (use --input, or - for stdin)")

// LoadInput loads and categorizes the transactions of input.
// Fatal load errors are returned as-is so the command exits non-zero.
func LoadInput(c *container.Container, input string) (*csvparser.Result, error) {
	if c == nil {
		return nil, errors.New("application container is not initialized")
	}
	if input == "" {
		return nil, ErrNoInput
	}
	if err := validation.IsValidInputPath(input); err != nil {
		return nil, err
	}

	res, err := c.GetLoader().LoadFile(input)
	if err != nil {
		return nil, err
	}

	if len(res.Skipped) > 0 {
		c.GetLogger().Warn("Some rows were skipped",
			logging.Field{Key: logging.FieldSkipped, Value: len(res.Skipped)},
			logging.Field{Key: logging.FieldFile, Value: input})
	}
	return res, nil
}

// PrintSkipped writes one line per skipped row.
func PrintSkipped(w io.Writer, res *csvparser.Result) {
	for _, skip := range res.Skipped {
		fmt.Fprintf(w, "skipped %s\n", skip)
	}
}
