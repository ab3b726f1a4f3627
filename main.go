package main

import (
	"fmt"
	"os"

	"fjacquet/expense-analyzer/cmd/categories"
	"fjacquet/expense-analyzer/cmd/categorize"
	"fjacquet/expense-analyzer/cmd/export"
	"fjacquet/expense-analyzer/cmd/list"
	"fjacquet/expense-analyzer/cmd/root"
	"fjacquet/expense-analyzer/cmd/summary"
	"fjacquet/expense-analyzer/internal/config"
)

func init() {
	// .env must be loaded before viper reads the environment
	_, _ = config.LoadEnv()

	root.Init()

	root.Cmd.AddCommand(list.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(summary.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
