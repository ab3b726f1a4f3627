// Package currencyutils provides amount parsing and decimal helpers.
package currencyutils

import (
	"errors"
	"regexp"

	"fjacquet/expense-analyzer/internal/parsererror"

	"github.com/shopspring/decimal"
)

// plain decimal: optional sign, digits with optional fraction, no exponent
var amountPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)$`)

var hundred = decimal.NewFromInt(100)

// ParseAmount parses a signed decimal string such as "-42.50" or "2500".
// Currency symbols, thousand separators, exponent notation and the empty
// string are rejected.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	if amountStr == "" {
		return decimal.Zero, amountError(amountStr, errors.New("empty amount"))
	}
	if !amountPattern.MatchString(amountStr) {
		return decimal.Zero, amountError(amountStr, errors.New("not a decimal number"))
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return decimal.Zero, amountError(amountStr, err)
	}
	return amount, nil
}

func amountError(value string, err error) error {
	return &parsererror.ParseError{
		Parser: "amount",
		Field:  "amount",
		Value:  value,
		Err:    err,
	}
}

// FormatAmount renders an amount with exactly two decimals.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// IsPositive checks if an amount is strictly greater than zero
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// Percentage returns part/whole*100, or zero when whole is not positive.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if !IsPositive(whole) {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}
