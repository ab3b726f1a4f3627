// Package common provides the CSV export shared by the CLI commands.
package common

import (
	"encoding/csv"
	"fmt"
	"io"

	"fjacquet/expense-analyzer/internal/currencyutils"
	"fjacquet/expense-analyzer/internal/dateutils"
	"fjacquet/expense-analyzer/internal/fileutils"
	"fjacquet/expense-analyzer/internal/logging"
	"fjacquet/expense-analyzer/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is used when no delimiter is configured.
const DefaultDelimiter = ','

// ExportRow is the flat CSV shape of a categorized transaction.
type ExportRow struct {
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
}

// ToExportRows converts transactions to export rows with ISO dates and
// two-decimal amounts.
func ToExportRows(transactions []models.Transaction) []ExportRow {
	rows := make([]ExportRow, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, ExportRow{
			Date:        dateutils.ToISODate(tx.Date),
			Description: tx.Description,
			Amount:      currencyutils.FormatAmount(tx.Amount),
			Category:    tx.Category.String(),
		})
	}
	return rows
}

// WriteTransactions writes the header and one row per transaction to w.
func WriteTransactions(w io.Writer, transactions []models.Transaction, delimiter rune) error {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	rows := ToExportRows(transactions)
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteTransactionsToCSV writes transactions to csvFile, creating parent
// directories as needed.
func WriteTransactionsToCSV(transactions []models.Transaction, csvFile string, delimiter rune, logger logging.Logger) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to CSV")
	}
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	logger = logger.WithField(logging.FieldOutputFile, csvFile)

	logger.Info("Writing transactions to CSV file",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})

	file, err := fileutils.CreateFile(csvFile)
	if err != nil {
		logger.WithError(err).Error("Failed to create CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteTransactions(file, transactions, delimiter); err != nil {
		logger.WithError(err).Error("Failed to marshal transactions to CSV")
		return err
	}

	logger.Info("Successfully wrote transactions to CSV file",
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})
	return nil
}
