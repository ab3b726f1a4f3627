// Package categorizer assigns one category to each transaction.
// Positive amounts are income; everything else goes through a fixed, ordered
// keyword table and falls back to Other.
package categorizer

import (
	"github.com/shopspring/decimal"

	"fjacquet/expense-analyzer/internal/logging"
	"fjacquet/expense-analyzer/internal/models"
)

// Categorizer runs a chain of strategies and returns the first decision.
type Categorizer struct {
	strategies []CategorizationStrategy
	logger     logging.Logger
}

var defaultCategorizer = NewCategorizer(nil)

// NewCategorizer creates a Categorizer with the income and keyword strategies.
// A nil logger discards debug output.
func NewCategorizer(logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Categorizer{
		strategies: []CategorizationStrategy{
			IncomeStrategy{},
			NewKeywordStrategy(logger),
		},
		logger: logger,
	}
}

// Categorize returns the category of a description and signed amount.
// It never fails: unmatched expenses are Other.
func (c *Categorizer) Categorize(description string, amount decimal.Decimal) models.Category {
	tx := Transaction{Description: description, Amount: amount}

	for _, strategy := range c.strategies {
		if category, ok := strategy.Categorize(tx); ok {
			return category
		}
	}

	c.logger.Debug("No keyword matched, using fallback category",
		logging.Field{Key: logging.FieldDescription, Value: description},
		logging.Field{Key: logging.FieldCategory, Value: models.CategoryOther})
	return models.CategoryOther
}

// Categorize categorizes with a package-level Categorizer that does not log.
func Categorize(description string, amount decimal.Decimal) models.Category {
	return defaultCategorizer.Categorize(description, amount)
}
