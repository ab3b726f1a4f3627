// Package csvparser loads transaction CSV files into categorized transactions.
// A missing header or missing required columns aborts the load; any problem
// confined to one row skips that row, logs it and moves on.
package csvparser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"fjacquet/expense-analyzer/internal/categorizer"
	"fjacquet/expense-analyzer/internal/currencyutils"
	"fjacquet/expense-analyzer/internal/dateutils"
	"fjacquet/expense-analyzer/internal/logging"
	"fjacquet/expense-analyzer/internal/models"
	"fjacquet/expense-analyzer/internal/parsererror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StdinPath makes LoadFile read standard input.
const StdinPath = "-"

const utf8BOM = "\ufeff"

// SkipReason says why a row produced no transaction.
type SkipReason string

const (
	ReasonMissingFields SkipReason = "missing fields"
	ReasonParseError    SkipReason = "parsing error"
	ReasonMalformedRow  SkipReason = "malformed row"
)

// RowSkip describes one rejected row. Row is the 1-based record number,
// the header being row 1.
type RowSkip struct {
	Row    int
	Reason SkipReason
	Err    error
}

func (s RowSkip) String() string {
	if s.Err != nil {
		return fmt.Sprintf("row %d: %s: %v", s.Row, s.Reason, s.Err)
	}
	return fmt.Sprintf("row %d: %s", s.Row, s.Reason)
}

// Result is the outcome of one load. Transactions keep input order.
type Result struct {
	Transactions []models.Transaction
	Skipped      []RowSkip
	Stats        models.LoadStats
}

// Categorizer assigns a category to a description and signed amount.
type Categorizer interface {
	Categorize(description string, amount decimal.Decimal) models.Category
}

// Loader reads transaction CSV files.
type Loader struct {
	categorizer Categorizer
	logger      logging.Logger
	delimiter   rune
}

// Option configures a Loader.
type Option func(*Loader)

// WithDelimiter sets the field delimiter. The default is a comma.
func WithDelimiter(delim rune) Option {
	return func(l *Loader) {
		l.delimiter = delim
	}
}

// NewLoader creates a Loader. A nil categorizer uses the default keyword
// categorizer, a nil logger discards output.
func NewLoader(cat Categorizer, logger logging.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	if cat == nil {
		cat = categorizer.NewCategorizer(logger)
	}
	l := &Loader{
		categorizer: cat,
		logger:      logger,
		delimiter:   ',',
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFile opens filePath, loads it completely and closes it.
func (l *Loader) LoadFile(filePath string) (*Result, error) {
	if filePath == StdinPath {
		return l.load(os.Stdin, "stdin")
	}

	l.logger.WithField(logging.FieldFile, filePath).Info("Reading transactions CSV file")

	file, err := os.Open(filePath) // #nosec G304 -- path comes from the command line
	if err != nil {
		l.logger.WithError(err).Error("Failed to open CSV file")
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			l.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	return l.load(file, filePath)
}

// Load reads CSV data from r.
func (l *Loader) Load(r io.Reader) (*Result, error) {
	return l.load(r, "")
}

func (l *Loader) load(r io.Reader, source string) (*Result, error) {
	log := l.logger.WithFields(
		logging.Field{Key: logging.FieldRunID, Value: uuid.NewString()},
		logging.Field{Key: logging.FieldFile, Value: source},
	)

	result := &Result{Transactions: []models.Transaction{}}

	reader := csv.NewReader(r)
	reader.Comma = l.delimiter
	reader.FieldsPerRecord = -1
	// a bare " inside an unquoted field is text, e.g. 55" TV
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		log.Error("CSV has no header row")
		return result, &parsererror.LoadError{FilePath: source, Err: parsererror.ErrNoHeader}
	}
	if err != nil {
		log.WithError(err).Error("Failed to read CSV header")
		return result, fmt.Errorf("error reading CSV header: %w", err)
	}

	cols := indexColumns(header)
	if missing := cols.missing(models.RequiredColumns); len(missing) > 0 {
		log.Error("CSV is missing required columns",
			logging.Field{Key: logging.FieldMissing, Value: strings.Join(missing, ", ")})
		return result, &parsererror.LoadError{
			FilePath: source,
			Missing:  missing,
			Err:      parsererror.ErrMissingColumns,
		}
	}

	row := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++

		if err != nil {
			var csvErr *csv.ParseError
			if !errors.As(err, &csvErr) {
				log.WithError(err).Error("Failed to read CSV data")
				return result, fmt.Errorf("error reading CSV row %d: %w", row, err)
			}
			result.addSkip(log, RowSkip{Row: row, Reason: ReasonMalformedRow, Err: err})
			continue
		}

		tx, skip := l.processRow(record, cols, row)
		if skip != nil {
			result.addSkip(log, *skip)
			continue
		}
		result.Transactions = append(result.Transactions, tx)
		result.Stats.RecordLoaded()
	}

	result.Stats.LogSummary(log, source)
	return result, nil
}

func (res *Result) addSkip(log logging.Logger, s RowSkip) {
	entry := log
	if s.Err != nil {
		entry = log.WithError(s.Err)
	}
	entry.Warn("Skipping malformed row",
		logging.Field{Key: logging.FieldRow, Value: s.Row},
		logging.Field{Key: logging.FieldReason, Value: string(s.Reason)})

	res.Skipped = append(res.Skipped, s)
	res.Stats.RecordSkipped()
}

// processRow turns one record into a transaction. A panic while handling the
// row is reported as a malformed row so that the load can go on.
func (l *Loader) processRow(record []string, cols columnIndex, row int) (tx models.Transaction, skip *RowSkip) {
	defer func() {
		if r := recover(); r != nil {
			tx = models.Transaction{}
			skip = &RowSkip{Row: row, Reason: ReasonMalformedRow, Err: fmt.Errorf("unexpected failure: %v", r)}
		}
	}()

	dateStr := strings.TrimSpace(cols.value(record, models.ColumnDate))
	description := strings.TrimSpace(cols.value(record, models.ColumnDescription))
	amountStr := strings.TrimSpace(cols.value(record, models.ColumnAmount))

	for _, field := range []string{dateStr, description, amountStr} {
		if !utf8.ValidString(field) {
			return models.Transaction{}, &RowSkip{Row: row, Reason: ReasonMalformedRow, Err: errors.New("invalid UTF-8 text")}
		}
	}

	if dateStr == "" || description == "" || amountStr == "" {
		return models.Transaction{}, &RowSkip{Row: row, Reason: ReasonMissingFields}
	}

	date, dateErr := dateutils.ParseISODate(dateStr)
	amount, amountErr := currencyutils.ParseAmount(amountStr)
	if err := errors.Join(dateErr, amountErr); err != nil {
		return models.Transaction{}, &RowSkip{Row: row, Reason: ReasonParseError, Err: err}
	}

	return models.Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Category:    l.categorizer.Categorize(description, amount),
	}, nil
}

// columnIndex maps lower-cased header names to record positions. When a name
// repeats, the last column wins.
type columnIndex map[string]int

func indexColumns(header []string) columnIndex {
	cols := make(columnIndex, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		key := strings.ToLower(strings.TrimSpace(name))
		cols[key] = i
	}
	return cols
}

// missing returns the required names absent from the header, sorted.
func (c columnIndex) missing(required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := c[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// value returns the field for column name, or "" when the record is too short.
func (c columnIndex) value(record []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}
