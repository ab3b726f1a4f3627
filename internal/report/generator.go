// Package report renders monthly summaries as text, JSON, YAML or CSV.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"fjacquet/expense-analyzer/internal/currencyutils"
	"fjacquet/expense-analyzer/internal/logging"
	"fjacquet/expense-analyzer/internal/models"
	"fjacquet/expense-analyzer/internal/summary"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Generator renders aggregated months in the requested format.
type Generator struct {
	logger        logging.Logger
	topCategories int
}

// Option configures a Generator.
type Option func(*Generator)

// WithTopCategories limits the category lines printed per month in text
// output. Zero or less prints every category.
func WithTopCategories(n int) Option {
	return func(g *Generator) {
		g.topCategories = n
	}
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger, opts ...Option) *Generator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	g := &Generator{
		logger: logger.WithField(logging.FieldComponent, "report"),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// TopCategories returns the per-month category limit of text output.
func (g *Generator) TopCategories() int {
	return g.topCategories
}

// Generate renders months, keyed by YYYY-MM, in ascending month order.
func (g *Generator) Generate(months map[string]models.MonthlySummary, format string) ([]byte, error) {
	g.logger.Debug("Generating report",
		logging.Field{Key: logging.FieldFormat, Value: format},
		logging.Field{Key: logging.FieldCount, Value: len(months)})

	switch strings.ToLower(format) {
	case FormatText:
		return g.generateText(months)
	case FormatJSON:
		return g.generateJSON(months)
	case FormatYAML:
		return g.generateYAML(months)
	case FormatCSV:
		return g.generateCSV(months)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

type categoryView struct {
	Category string `json:"category" yaml:"category"`
	Amount   string `json:"amount" yaml:"amount"`
}

type monthView struct {
	Month       string         `json:"month" yaml:"month"`
	Income      string         `json:"income" yaml:"income"`
	Expenses    string         `json:"expenses" yaml:"expenses"`
	Savings     string         `json:"savings" yaml:"savings"`
	SavingsRate string         `json:"savings_rate" yaml:"savings_rate"`
	Categories  []categoryView `json:"categories" yaml:"categories"`
}

type monthRow struct {
	Month       string `csv:"month"`
	Income      string `csv:"income"`
	Expenses    string `csv:"expenses"`
	Savings     string `csv:"savings"`
	SavingsRate string `csv:"savings_rate"`
}

func toView(m models.MonthlySummary) monthView {
	sorted := m.SortedCategories()
	categories := make([]categoryView, 0, len(sorted))
	for _, c := range sorted {
		categories = append(categories, categoryView{
			Category: c.Category.String(),
			Amount:   currencyutils.FormatAmount(c.Amount),
		})
	}
	return monthView{
		Month:       m.Month,
		Income:      currencyutils.FormatAmount(m.Income),
		Expenses:    currencyutils.FormatAmount(m.Expenses),
		Savings:     currencyutils.FormatAmount(m.Savings),
		SavingsRate: m.SavingsRate.StringFixed(1),
		Categories:  categories,
	}
}

func orderedViews(months map[string]models.MonthlySummary) []monthView {
	keys := summary.SortedMonths(months)
	views := make([]monthView, 0, len(keys))
	for _, key := range keys {
		views = append(views, toView(months[key]))
	}
	return views
}

func (g *Generator) generateText(months map[string]models.MonthlySummary) ([]byte, error) {
	if len(months) == 0 {
		return []byte("No transactions.\n"), nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tSAVINGS\tRATE\t")
	for _, view := range orderedViews(months) {
		g.writeTextMonth(w, view)
	}
	g.writeTextMonth(w, toView(summary.Totals(months)))

	if err := w.Flush(); err != nil {
		g.logger.WithError(err).Error("Failed to render text report")
		return nil, fmt.Errorf("failed to render text report: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeTextMonth(w *tabwriter.Writer, view monthView) {
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s%%\t\n",
		view.Month, view.Income, view.Expenses, view.Savings, view.SavingsRate)

	categories := view.Categories
	if g.topCategories > 0 && len(categories) > g.topCategories {
		categories = categories[:g.topCategories]
	}
	for _, c := range categories {
		fmt.Fprintf(w, "%s\t\t%s\t\t\t\n", c.Category, c.Amount)
	}
}

func (g *Generator) generateJSON(months map[string]models.MonthlySummary) ([]byte, error) {
	out, err := json.MarshalIndent(orderedViews(months), "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return append(out, '\n'), nil
}

func (g *Generator) generateYAML(months map[string]models.MonthlySummary) ([]byte, error) {
	doc := struct {
		Months []monthView `yaml:"months"`
	}{Months: orderedViews(months)}

	out, err := yaml.Marshal(doc)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return out, nil
}

func (g *Generator) generateCSV(months map[string]models.MonthlySummary) ([]byte, error) {
	views := orderedViews(months)
	rows := make([]monthRow, 0, len(views))
	for _, v := range views {
		rows = append(rows, monthRow{
			Month:       v.Month,
			Income:      v.Income,
			Expenses:    v.Expenses,
			Savings:     v.Savings,
			SavingsRate: v.SavingsRate,
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal CSV report")
		return nil, fmt.Errorf("failed to marshal CSV report: %w", err)
	}
	return out, nil
}
