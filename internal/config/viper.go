package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/expense-analyzer/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. EXPENSE_LOG_LEVEL.
const EnvPrefix = "EXPENSE"

// LogConfig selects the logger level and output format.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig describes the CSV dialect of input and export files.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// ReportConfig controls the summary report.
type ReportConfig struct {
	Format        string `mapstructure:"format" yaml:"format"`
	TopCategories int    `mapstructure:"top_categories" yaml:"top_categories"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	CSV    CSVConfig    `mapstructure:"csv" yaml:"csv"`
	Report ReportConfig `mapstructure:"report" yaml:"report"`
}

// ReportFormats lists the accepted report.format values.
var ReportFormats = []string{"text", "json", "yaml", "csv"}

// InitializeConfig loads configuration from the standard locations.
func InitializeConfig() (*Config, error) {
	return LoadConfig("")
}

// LoadConfig loads configuration with this precedence, lowest first:
// defaults, config file, EXPENSE_* environment variables.
// An empty configFile searches config.yaml in $HOME/.expense-analyzer,
// ./.expense-analyzer and the current directory, and tolerates its absence.
// An explicit configFile must exist.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.expense-analyzer")
		v.AddConfigPath(".expense-analyzer")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var config Config
	_ = v.Unmarshal(&config)
	return &config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("report.format", "text")
	v.SetDefault("report.top_categories", 0)
}

// Validate checks the configuration after flag overrides have been applied.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}
	if d := config.DelimiterRune(); d == '"' || d == '\r' || d == '\n' || d == utf8.RuneError {
		return fmt.Errorf("CSV delimiter cannot be %q", config.CSV.Delimiter)
	}

	if !isReportFormat(config.Report.Format) {
		return fmt.Errorf("invalid report format: %s (must be one of %s)",
			config.Report.Format, strings.Join(ReportFormats, ", "))
	}

	if config.Report.TopCategories < 0 {
		return fmt.Errorf("report.top_categories must be zero or positive, got: %d", config.Report.TopCategories)
	}

	return nil
}

func isReportFormat(format string) bool {
	for _, f := range ReportFormats {
		if f == format {
			return true
		}
	}
	return false
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// ConfigureLoggingFromConfig builds a logrus logger from the log settings.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	return logging.NewLogrusLogger(config.Log.Level, config.Log.Format)
}
