package csvparser

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"fjacquet/expense-analyzer/internal/logging"
	"fjacquet/expense-analyzer/internal/models"
	"fjacquet/expense-analyzer/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(opts ...Option) (*Loader, *logging.MockLogger) {
	mock := logging.NewMockLogger()
	return NewLoader(nil, mock, opts...), mock
}

func TestLoad_ValidFile(t *testing.T) {
	content := `date,description,amount
2024-03-15,Paycheck,2500.00
2024-03-16,Monthly gas bill payment,-60.00
2024-03-17,XYZ Mystery Corp,-10.00
`
	loader, _ := newTestLoader()

	result, err := loader.Load(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 3)
	assert.Empty(t, result.Skipped)

	first := result.Transactions[0]
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "Paycheck", first.Description)
	assert.True(t, decimal.NewFromInt(2500).Equal(first.Amount))
	assert.Equal(t, models.CategoryIncome, first.Category)

	assert.Equal(t, models.CategoryTransport, result.Transactions[1].Category)
	assert.Equal(t, models.CategoryOther, result.Transactions[2].Category)

	assert.Equal(t, models.LoadStats{Total: 3, Loaded: 3, Skipped: 0}, result.Stats)
}

func TestLoad_SkipsBadRows(t *testing.T) {
	content := "date,description,amount\n" +
		"2024-01-05,Starbucks,-4.50\n" + // row 2 ok
		"2024-01-06,Groceries,\n" + // row 3 empty amount
		"2024-13-01,Uber,-12.00\n" + // row 4 bad date
		"2024-01-07,Lyft,twelve\n" + // row 5 bad amount
		"2024-01-08,Netflix\n" + // row 6 short row
		"2024-01-09,Samsung TV 55\" Best Buy,-399.00\n" + // row 7 bare quote is text
		"2024-01-10,Caf\xe9,-3.00\n" + // row 8 invalid UTF-8
		"   ,  ,  \n" + // row 9 blank fields
		"2024-01-11,Rent,-1500\n" // row 10 ok
	loader, mock := newTestLoader()

	result, err := loader.Load(strings.NewReader(content))
	require.NoError(t, err)

	require.Len(t, result.Transactions, 3)
	assert.Equal(t, "Starbucks", result.Transactions[0].Description)
	assert.Equal(t, `Samsung TV 55" Best Buy`, result.Transactions[1].Description)
	assert.Equal(t, "Rent", result.Transactions[2].Description)

	expected := []struct {
		row    int
		reason SkipReason
	}{
		{3, ReasonMissingFields},
		{4, ReasonParseError},
		{5, ReasonParseError},
		{6, ReasonMissingFields},
		{8, ReasonMalformedRow},
		{9, ReasonMissingFields},
	}
	require.Len(t, result.Skipped, len(expected))
	for i, e := range expected {
		assert.Equal(t, e.row, result.Skipped[i].Row, "skip %d", i)
		assert.Equal(t, e.reason, result.Skipped[i].Reason, "skip %d", i)
	}

	assert.Equal(t, 9, result.Stats.Total)
	assert.Equal(t, result.Stats.Total, len(result.Transactions)+len(result.Skipped))

	warnings := mock.GetEntriesByLevel("WARN")
	require.Len(t, warnings, len(expected))
	row, ok := warnings[0].FieldValue(logging.FieldRow)
	assert.True(t, ok)
	assert.Equal(t, 3, row)
	reason, _ := warnings[0].FieldValue(logging.FieldReason)
	assert.Equal(t, "missing fields", reason)
	reason, _ = warnings[1].FieldValue(logging.FieldReason)
	assert.Equal(t, "parsing error", reason)
}

func TestLoad_ParseErrorCarriesCause(t *testing.T) {
	loader, _ := newTestLoader()

	result, err := loader.Load(strings.NewReader("date,description,amount\n2024-02-30,Bakery,-2\n"))
	require.NoError(t, err)
	require.Len(t, result.Skipped, 1)

	var parseErr *parsererror.ParseError
	require.ErrorAs(t, result.Skipped[0].Err, &parseErr)
	assert.Equal(t, "date", parseErr.Field)
	assert.Equal(t, "2024-02-30", parseErr.Value)
	assert.Contains(t, result.Skipped[0].String(), "row 2: parsing error")
}

func TestLoad_MissingColumns(t *testing.T) {
	loader, mock := newTestLoader()

	result, err := loader.Load(strings.NewReader("date,amount\n2024-01-01,-5\n"))
	require.Error(t, err)

	var loadErr *parsererror.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, []string{"description"}, loadErr.Missing)
	assert.ErrorIs(t, err, parsererror.ErrMissingColumns)
	assert.Contains(t, err.Error(), "description")

	require.NotNil(t, result)
	assert.Empty(t, result.Transactions)
	assert.Empty(t, result.Skipped)
	assert.True(t, mock.HasEntry("ERROR", "CSV is missing required columns"))
}

func TestLoad_AllColumnsMissingSorted(t *testing.T) {
	loader, _ := newTestLoader()

	_, err := loader.Load(strings.NewReader("when,what,how much\n"))

	var loadErr *parsererror.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, []string{"amount", "date", "description"}, loadErr.Missing)
}

func TestLoad_NoHeader(t *testing.T) {
	loader, mock := newTestLoader()

	result, err := loader.Load(strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, parsererror.ErrNoHeader)
	assert.True(t, parsererror.IsFatal(err))

	require.NotNil(t, result)
	assert.Empty(t, result.Transactions)
	assert.True(t, mock.HasEntry("ERROR", "CSV has no header row"))
}

func TestLoad_HeaderOnly(t *testing.T) {
	loader, _ := newTestLoader()

	result, err := loader.Load(strings.NewReader("date,description,amount\n"))
	require.NoError(t, err)
	assert.Empty(t, result.Transactions)
	assert.Equal(t, 0, result.Stats.Total)
}

func TestLoad_HeaderCaseOrderAndExtras(t *testing.T) {
	content := "\ufeffAmount, Notes ,DESCRIPTION,Date\n" +
		" -82.10 ,weekly,  Whole Foods  , 2024-02-03 \n"
	loader, _ := newTestLoader()

	result, err := loader.Load(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)

	tx := result.Transactions[0]
	assert.Equal(t, "Whole Foods", tx.Description)
	assert.True(t, decimal.RequireFromString("-82.10").Equal(tx.Amount))
	assert.Equal(t, models.CategoryFood, tx.Category)
	assert.Equal(t, "2024-02", tx.MonthKey())
}

func TestLoad_InchMarksInDescription(t *testing.T) {
	content := "date,description,amount\n" +
		"2024-01-02,Samsung TV 55\" Best Buy,-399.00\n" +
		"2024-01-03,12\" sub at cafe,-8.50\n"
	loader, _ := newTestLoader()

	result, err := loader.Load(strings.NewReader(content))
	require.NoError(t, err)
	assert.Empty(t, result.Skipped)
	require.Len(t, result.Transactions, 2)

	assert.Equal(t, `Samsung TV 55" Best Buy`, result.Transactions[0].Description)
	assert.True(t, decimal.RequireFromString("-399").Equal(result.Transactions[0].Amount))
	assert.Equal(t, models.CategoryShopping, result.Transactions[0].Category)
	assert.Equal(t, models.CategoryFood, result.Transactions[1].Category)
}

func TestLoad_ExponentAmountSkipped(t *testing.T) {
	content := "date,description,amount\n" +
		"2024-01-02,Cafe,-1e900000000\n" +
		"2024-01-03,Cafe,-4.00\n"
	loader, _ := newTestLoader()

	result, err := loader.Load(strings.NewReader(content))
	require.NoError(t, err)

	require.Len(t, result.Skipped, 1)
	assert.Equal(t, 2, result.Skipped[0].Row)
	assert.Equal(t, ReasonParseError, result.Skipped[0].Reason)

	require.Len(t, result.Transactions, 1)
	assert.True(t, decimal.NewFromInt(-4).Equal(result.Transactions[0].Amount))
}

func TestLoad_DuplicateColumnLastWins(t *testing.T) {
	content := "date,description,amount,Description\n" +
		"2024-01-02,ignored,-5,Uber ride\n"
	loader, _ := newTestLoader()

	result, err := loader.Load(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Uber ride", result.Transactions[0].Description)
	assert.Equal(t, models.CategoryTransport, result.Transactions[0].Category)
}

func TestLoad_Delimiter(t *testing.T) {
	loader, _ := newTestLoader(WithDelimiter(';'))

	result, err := loader.Load(strings.NewReader("date;description;amount\n2024-05-01;Spotify;-9.99\n"))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, models.CategorySubscriptions, result.Transactions[0].Category)
}

func TestLoad_QuotedFields(t *testing.T) {
	content := "date,description,amount\n2024-05-01,\"Chipotle, downtown\",\"-11.25\"\n"
	loader, _ := newTestLoader()

	result, err := loader.Load(strings.NewReader(content))
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "Chipotle, downtown", result.Transactions[0].Description)
}

func TestLoad_ReaderFailureAborts(t *testing.T) {
	loader, _ := newTestLoader()
	r := io.MultiReader(strings.NewReader("date,description,amount\n"), iotest.ErrReader(errors.New("disk gone")))

	_, err := loader.Load(r)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.False(t, parsererror.IsFatal(err))
}

type panickingCategorizer struct{}

func (panickingCategorizer) Categorize(description string, _ decimal.Decimal) models.Category {
	if description == "boom" {
		panic("categorizer exploded")
	}
	return models.CategoryOther
}

func TestLoad_RecoversFromRowPanic(t *testing.T) {
	loader := NewLoader(panickingCategorizer{}, logging.NewMockLogger())

	result, err := loader.Load(strings.NewReader("date,description,amount\n2024-01-01,boom,-1\n2024-01-02,fine,-2\n"))
	require.NoError(t, err)

	require.Len(t, result.Transactions, 1)
	assert.Equal(t, "fine", result.Transactions[0].Description)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, ReasonMalformedRow, result.Skipped[0].Reason)
	assert.Contains(t, result.Skipped[0].Err.Error(), "categorizer exploded")
}

func TestLoad_RunIDOnEveryEntry(t *testing.T) {
	loader, mock := newTestLoader()

	_, err := loader.Load(strings.NewReader("date,description,amount\n2024-01-01,,-1\n2024-01-02,Uber,-2\n"))
	require.NoError(t, err)

	var entries []logging.LogEntry
	for _, e := range mock.GetEntries() {
		if e.Level != "DEBUG" {
			entries = append(entries, e)
		}
	}
	require.Len(t, entries, 2)
	first, ok := entries[0].FieldValue(logging.FieldRunID)
	require.True(t, ok)
	for _, e := range entries {
		id, _ := e.FieldValue(logging.FieldRunID)
		assert.Equal(t, first, id)
	}
	assert.True(t, mock.HasEntry("INFO", "Load summary"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,description,amount\n2024-01-01,Amazon,-30\n"), 0600))

	loader, _ := newTestLoader()
	result, err := loader.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, result.Transactions, 1)
	assert.Equal(t, models.CategoryShopping, result.Transactions[0].Category)

	_, err = loader.LoadFile(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}

func TestLoadFile_MissingColumnsReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,amount\n"), 0600))

	loader, _ := newTestLoader()
	_, err := loader.LoadFile(path)

	var loadErr *parsererror.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.FilePath)
}
