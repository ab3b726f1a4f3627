// Package summary prints the monthly income and expense report
package summary

import (
	"fjacquet/expense-analyzer/cmd/common"
	"fjacquet/expense-analyzer/cmd/root"
	"fjacquet/expense-analyzer/internal/fileutils"
	"fjacquet/expense-analyzer/internal/logging"
	"fjacquet/expense-analyzer/internal/report"
	aggregate "fjacquet/expense-analyzer/internal/summary"
	"fjacquet/expense-analyzer/internal/validation"

	"github.com/spf13/cobra"
)

var (
	format string
	top    int
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarize transactions by month",
	Long: `Load a transactions CSV file and report, per month, income, expenses,
savings, savings rate and the expense breakdown by category.`,
	RunE: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "", "Report format (text, json, yaml, csv); defaults to report.format")
	Cmd.Flags().IntVarP(&top, "top", "t", 0, "Categories per month in text output (0 = all); defaults to report.top_categories")
}

func summaryFunc(cmd *cobra.Command, args []string) error {
	output := root.SharedFlags.Output
	if output != "" {
		if err := validation.IsValidOutputPath(output); err != nil {
			return err
		}
	}

	res, err := common.LoadInput(root.AppContainer, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	months := aggregate.Summarize(res.Transactions)

	generator := root.AppContainer.GetReportGenerator()
	if cmd.Flags().Changed("top") {
		generator = report.NewGenerator(root.AppContainer.GetLogger(), report.WithTopCategories(top))
	}

	reportFormat := format
	if reportFormat == "" {
		reportFormat = root.AppContainer.GetConfig().Report.Format
	}

	data, err := generator.Generate(months, reportFormat)
	if err != nil {
		return err
	}

	if output != "" && output != validation.StdStream {
		return writeFile(output, data, root.AppContainer.GetLogger())
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func writeFile(path string, data []byte, logger logging.Logger) error {
	if err := fileutils.WriteFile(path, data); err != nil {
		logger.WithError(err).Error("Failed to write report")
		return err
	}
	logger.Info("Report written", logging.Field{Key: logging.FieldOutputFile, Value: path})
	return nil
}
