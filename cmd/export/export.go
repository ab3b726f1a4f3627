// Package export writes categorized transactions back to CSV
package export

import (
	"errors"

	cmdcommon "fjacquet/expense-analyzer/cmd/common"
	"fjacquet/expense-analyzer/cmd/root"
	"fjacquet/expense-analyzer/internal/common"
	"fjacquet/expense-analyzer/internal/validation"

	"github.com/spf13/cobra"
)

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export categorized transactions to CSV",
	Long: `Load a transactions CSV file and write it back with a category column.
Use --output - to write to stdout.`,
	RunE: exportFunc,
}

func exportFunc(cmd *cobra.Command, args []string) error {
	output := root.SharedFlags.Output
	if output == "" {
		return errors.New("output file is required (use --output, or - for stdout)")
	}
	if err := validation.IsValidOutputPath(output); err != nil {
		return err
	}

	res, err := cmdcommon.LoadInput(root.AppContainer, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	delimiter := root.AppContainer.GetConfig().DelimiterRune()
	if output == validation.StdStream {
		if err := common.WriteTransactions(cmd.OutOrStdout(), res.Transactions, delimiter); err != nil {
			return err
		}
	} else if err := common.WriteTransactionsToCSV(res.Transactions, output, delimiter, root.AppContainer.GetLogger()); err != nil {
		return err
	}

	cmdcommon.PrintSkipped(cmd.ErrOrStderr(), res)
	return nil
}
