package models

import (
	"fjacquet/expense-analyzer/internal/logging"
)

// LoadStats counts what happened to the data rows of one input file.
type LoadStats struct {
	Total   int // data rows read, header excluded
	Loaded  int // rows turned into transactions
	Skipped int // rows rejected
}

// LogSummary logs the statistics of a finished load
func (ls LoadStats) LogSummary(logger logging.Logger, source string) {
	if logger == nil {
		return
	}

	logger.Info("Load summary",
		logging.Field{Key: logging.FieldFile, Value: source},
		logging.Field{Key: "total_rows", Value: ls.Total},
		logging.Field{Key: "loaded", Value: ls.Loaded},
		logging.Field{Key: logging.FieldSkipped, Value: ls.Skipped},
		logging.Field{Key: "success_rate", Value: ls.GetSuccessRate()},
	)
}

// GetSuccessRate returns the loaded share of rows as a percentage
func (ls LoadStats) GetSuccessRate() float64 {
	if ls.Total == 0 {
		return 0.0
	}
	return float64(ls.Loaded) / float64(ls.Total) * 100.0
}

// RecordLoaded counts one row turned into a transaction
func (ls *LoadStats) RecordLoaded() {
	ls.Total++
	ls.Loaded++
}

// RecordSkipped counts one rejected row
func (ls *LoadStats) RecordSkipped() {
	ls.Total++
	ls.Skipped++
}
