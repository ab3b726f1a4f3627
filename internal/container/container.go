// Package container wires the analyzer's components from a configuration.
package container

import (
	"fmt"

	"fjacquet/expense-analyzer/internal/categorizer"
	"fjacquet/expense-analyzer/internal/config"
	"fjacquet/expense-analyzer/internal/csvparser"
	"fjacquet/expense-analyzer/internal/logging"
	"fjacquet/expense-analyzer/internal/report"
)

// Container holds the application dependencies. It is immutable after
// creation; use the getters to reach each component.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	categorizer *categorizer.Categorizer
	loader      *csvparser.Loader
	reporter    *report.Generator
}

// NewContainer creates a logrus-backed logger from cfg and wires every
// component to it.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	logger := logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger wires the components to an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	cat := categorizer.NewCategorizer(logger)
	loader := csvparser.NewLoader(cat, logger, csvparser.WithDelimiter(cfg.DelimiterRune()))
	reporter := report.NewGenerator(logger, report.WithTopCategories(cfg.Report.TopCategories))

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldDelimiter, Value: cfg.CSV.Delimiter},
		logging.Field{Key: logging.FieldFormat, Value: cfg.Report.Format})

	return &Container{
		logger:      logger,
		config:      cfg,
		categorizer: cat,
		loader:      loader,
		reporter:    reporter,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetLoader returns the transaction loader, set up with the configured
// CSV delimiter.
func (c *Container) GetLoader() *csvparser.Loader {
	return c.loader
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.reporter
}

// Close releases container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
