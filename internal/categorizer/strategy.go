package categorizer

import (
	"github.com/shopspring/decimal"

	"fjacquet/expense-analyzer/internal/models"
)

// Transaction is the input of a categorization.
type Transaction struct {
	Description string
	Amount      decimal.Decimal
}

// CategorizationStrategy is one step of the categorization chain.
type CategorizationStrategy interface {
	// Categorize returns the category and true when the strategy decides,
	// or false to hand over to the next strategy.
	Categorize(tx Transaction) (models.Category, bool)

	// Name identifies the strategy in log output.
	Name() string
}

// IncomeStrategy labels every strictly positive amount as income.
type IncomeStrategy struct{}

// Name returns the name of this strategy for logging and debugging.
func (IncomeStrategy) Name() string {
	return "Income"
}

// Categorize implements CategorizationStrategy.
func (IncomeStrategy) Categorize(tx Transaction) (models.Category, bool) {
	if tx.Amount.IsPositive() {
		return models.CategoryIncome, true
	}
	return "", false
}
