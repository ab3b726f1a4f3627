// Package categories prints the keyword table used for categorization
package categories

import (
	"fmt"
	"strings"

	"fjacquet/expense-analyzer/internal/categorizer"
	"fjacquet/expense-analyzer/internal/models"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var format string

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Show the category keyword table",
	Long: `Show the keywords of each expense category in match order.
The first category with a matching keyword wins.`,
	RunE: categoriesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, yaml)")
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	table := categorizer.Keywords()
	out := cmd.OutOrStdout()

	switch strings.ToLower(format) {
	case "text":
		for _, c := range table {
			fmt.Fprintf(out, "%s: %s\n", c.Name, strings.Join(c.Keywords, ", "))
		}
		fmt.Fprintf(out, "%s: any positive amount\n", models.CategoryIncome)
		fmt.Fprintf(out, "%s: no keyword matched\n", models.CategoryOther)
		return nil
	case "yaml":
		data, err := yaml.Marshal(models.CategoriesConfig{Categories: table})
		if err != nil {
			return fmt.Errorf("failed to marshal categories: %w", err)
		}
		_, err = out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}
