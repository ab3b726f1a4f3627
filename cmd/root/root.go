// Package root contains the root command for the application
package root

import (
	"fmt"

	"fjacquet/expense-analyzer/internal/config"
	"fjacquet/expense-analyzer/internal/container"
	"fjacquet/expense-analyzer/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input     string
	Output    string
	Config    string
	LogLevel  string
	LogFormat string
	Delimiter string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer holds the wired components once PersistentPreRunE has run
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-analyzer",
		Short: "A CLI tool to categorize bank transactions from CSV and summarize them by month.",
		Long: `expense-analyzer reads a CSV file of transactions (date, description, amount),
assigns each one a spending category from a fixed keyword table and reports monthly
income, expenses, savings and savings rate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				_ = AppContainer.Close()
			}
		},
	}

	// SharedFlags holds the persistent flag values
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input CSV file (- for stdin)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Config, "config", "", "Config file (default: config.yaml in $HOME/.expense-analyzer, ./.expense-analyzer or .)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogFormat, "log-format", "", "Log format (text, json)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Delimiter, "csv-delimiter", "", "CSV field delimiter")
}

// Setup loads the configuration, applies flag overrides and builds the
// container. LOG_LEVEL applies when neither --log-level nor
// EXPENSE_LOG_LEVEL is set.
func Setup() error {
	cfg, err := config.LoadConfig(SharedFlags.Config)
	if err != nil {
		return err
	}

	applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c, err := container.NewContainer(cfg)
	if err != nil {
		return err
	}

	AppContainer = c
	Log = c.GetLogger()
	return nil
}

func applyOverrides(cfg *config.Config) {
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	} else if level := config.GetEnv("LOG_LEVEL", ""); level != "" && config.GetEnv("EXPENSE_LOG_LEVEL", "") == "" {
		cfg.Log.Level = level
	}
	if SharedFlags.LogFormat != "" {
		cfg.Log.Format = SharedFlags.LogFormat
	}
	if SharedFlags.Delimiter != "" {
		cfg.CSV.Delimiter = SharedFlags.Delimiter
	}
}
