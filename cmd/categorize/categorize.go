// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"

	"fjacquet/expense-analyzer/cmd/root"
	"fjacquet/expense-analyzer/internal/currencyutils"

	"github.com/spf13/cobra"
)

var (
	description string
	amount      string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction",
	Long: `Categorize a single transaction from its description and signed amount.
Positive amounts are income; expenses are matched against the keyword table.`,
	RunE: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&description, "description", "d", "", "Transaction description")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "0", "Signed transaction amount (negative for expenses)")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) error {
	if root.AppContainer == nil {
		return fmt.Errorf("application container is not initialized")
	}

	value, err := currencyutils.ParseAmount(amount)
	if err != nil {
		return err
	}

	category := root.AppContainer.GetCategorizer().Categorize(description, value)
	fmt.Fprintln(cmd.OutOrStdout(), category)
	return nil
}
