package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/expense-analyzer/internal/dateutils"

	"github.com/shopspring/decimal"
)

// Transaction is one parsed and categorized CSV row. Values are passed by copy
// and never modified after the loader builds them.
type Transaction struct {
	Date        time.Time       `json:"date" yaml:"date"`
	Description string          `json:"description" yaml:"description"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Category    Category        `json:"category" yaml:"category"`
}

// IsIncome reports whether the amount is strictly positive.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the amount is zero or negative.
func (t Transaction) IsExpense() bool {
	return !t.IsIncome()
}

// MonthKey returns the YYYY-MM bucket of the transaction date.
func (t Transaction) MonthKey() string {
	return dateutils.MonthKey(t.Date)
}

// Validate checks that every field is populated.
func (t Transaction) Validate() error {
	var errs []error
	if t.Date.IsZero() {
		errs = append(errs, errors.New("date is required"))
	}
	if strings.TrimSpace(t.Description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if !t.Category.IsValid() {
		errs = append(errs, fmt.Errorf("unknown category %q", t.Category))
	}
	return errors.Join(errs...)
}
