package models

import (
	"sort"

	"github.com/shopspring/decimal"
)

// MonthlySummary aggregates the transactions of one calendar month.
// Expenses is the signed sum of non-positive amounts, so it is never above zero.
// Categories holds absolute expense magnitudes; income never appears in it.
type MonthlySummary struct {
	Month       string                       `json:"month" yaml:"month"`
	Income      decimal.Decimal              `json:"income" yaml:"income"`
	Expenses    decimal.Decimal              `json:"expenses" yaml:"expenses"`
	Savings     decimal.Decimal              `json:"savings" yaml:"savings"`
	SavingsRate decimal.Decimal              `json:"savings_rate" yaml:"savings_rate"`
	Categories  map[Category]decimal.Decimal `json:"categories" yaml:"categories"`
}

// CategoryTotal is one entry of a month's category breakdown.
type CategoryTotal struct {
	Category Category
	Amount   decimal.Decimal
}

// SortedCategories returns the category breakdown, largest amount first.
// Ties are broken by category name.
func (s MonthlySummary) SortedCategories() []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(s.Categories))
	for category, amount := range s.Categories {
		totals = append(totals, CategoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(totals, func(i, j int) bool {
		if cmp := totals[i].Amount.Cmp(totals[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}
