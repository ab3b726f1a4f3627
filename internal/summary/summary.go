// Package summary aggregates transactions into monthly income, expense and
// savings figures.
package summary

import (
	"sort"

	"fjacquet/expense-analyzer/internal/currencyutils"
	"fjacquet/expense-analyzer/internal/models"

	"github.com/shopspring/decimal"
)

// TotalKey is the Month value of the summary returned by Totals.
const TotalKey = "total"

// Summarize groups transactions by YYYY-MM and computes one MonthlySummary per
// month. The map is built from scratch on every call.
func Summarize(transactions []models.Transaction) map[string]models.MonthlySummary {
	months := make(map[string]*models.MonthlySummary)

	for _, tx := range transactions {
		key := tx.MonthKey()
		bucket, ok := months[key]
		if !ok {
			bucket = newBucket(key)
			months[key] = bucket
		}
		add(bucket, tx)
	}

	result := make(map[string]models.MonthlySummary, len(months))
	for key, bucket := range months {
		finalize(bucket)
		result[key] = *bucket
	}
	return result
}

// SortedMonths returns the month keys in ascending order.
func SortedMonths(months map[string]models.MonthlySummary) []string {
	keys := make([]string, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Totals folds every month into one summary keyed TotalKey, with the savings
// rate recomputed over the combined income.
func Totals(months map[string]models.MonthlySummary) models.MonthlySummary {
	total := newBucket(TotalKey)
	for _, month := range months {
		total.Income = total.Income.Add(month.Income)
		total.Expenses = total.Expenses.Add(month.Expenses)
		for category, amount := range month.Categories {
			total.Categories[category] = total.Categories[category].Add(amount)
		}
	}
	finalize(total)
	return *total
}

func newBucket(key string) *models.MonthlySummary {
	return &models.MonthlySummary{
		Month:       key,
		Income:      decimal.Zero,
		Expenses:    decimal.Zero,
		Savings:     decimal.Zero,
		SavingsRate: decimal.Zero,
		Categories:  make(map[models.Category]decimal.Decimal),
	}
}

// add books one transaction. Zero amounts are expenses of zero magnitude.
func add(bucket *models.MonthlySummary, tx models.Transaction) {
	if tx.IsIncome() {
		bucket.Income = bucket.Income.Add(tx.Amount)
		return
	}
	bucket.Expenses = bucket.Expenses.Add(tx.Amount)
	bucket.Categories[tx.Category] = bucket.Categories[tx.Category].Add(tx.Amount.Abs())
}

func finalize(bucket *models.MonthlySummary) {
	bucket.Savings = bucket.Income.Add(bucket.Expenses)
	bucket.SavingsRate = currencyutils.Percentage(bucket.Savings, bucket.Income)
}
