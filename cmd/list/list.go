// Package list prints the categorized transactions of a CSV file
package list

import (
	"fmt"
	"io"

	"fjacquet/expense-analyzer/cmd/common"
	"fjacquet/expense-analyzer/cmd/root"
	"fjacquet/expense-analyzer/internal/currencyutils"
	"fjacquet/expense-analyzer/internal/dateutils"
	"fjacquet/expense-analyzer/internal/models"

	"github.com/spf13/cobra"
)

const descriptionWidth = 40

// Cmd represents the list command
var Cmd = &cobra.Command{
	Use:   "list",
	Short: "List categorized transactions",
	Long:  `Load a transactions CSV file and print every transaction with its category.`,
	RunE:  listFunc,
}

func listFunc(cmd *cobra.Command, args []string) error {
	res, err := common.LoadInput(root.AppContainer, root.SharedFlags.Input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, tx := range res.Transactions {
		printTransaction(out, tx)
	}
	fmt.Fprintf(out, "\n%d transactions, %d rows skipped\n", len(res.Transactions), len(res.Skipped))
	common.PrintSkipped(cmd.ErrOrStderr(), res)
	return nil
}

func printTransaction(w io.Writer, tx models.Transaction) {
	fmt.Fprintf(w, "%s | %-*s | %10s | %s\n",
		dateutils.ToISODate(tx.Date),
		descriptionWidth, truncate(tx.Description, descriptionWidth),
		currencyutils.FormatAmount(tx.Amount),
		tx.Category)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
