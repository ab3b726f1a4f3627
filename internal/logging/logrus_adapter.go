package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusAdapter sends Logger events to a logrus entry. Children created with
// the With* methods share the parent's *logrus.Logger, so SetOutput and the
// level apply to the whole tree.
type LogrusAdapter struct {
	logger *logrus.Logger
	entry  *logrus.Entry
}

// NewLogrusLogger builds the *logrus.Logger used by the CLI. An unknown level
// is reported on the logger itself and replaced by info; "json" (any case)
// selects JSON output and every other format gets timestamped text.
func NewLogrusLogger(level, format string) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}

// NewLogrusAdapter is NewLogrusLogger wrapped as a Logger.
func NewLogrusAdapter(level, format string) Logger {
	return NewLogrusAdapterFromLogger(NewLogrusLogger(level, format))
}

// NewLogrusAdapterFromLogger wraps logger, or a fresh logrus logger when nil.
func NewLogrusAdapterFromLogger(logger *logrus.Logger) Logger {
	if logger == nil {
		logger = logrus.New()
	}
	return &LogrusAdapter{logger: logger, entry: logrus.NewEntry(logger)}
}

// NewDiscardLogger is the Logger components fall back to when given nil.
func NewDiscardLogger() Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.PanicLevel)
	return NewLogrusAdapterFromLogger(logger)
}

// SetOutput redirects every logger sharing this adapter's root.
func (l *LogrusAdapter) SetOutput(w io.Writer) {
	l.logger.SetOutput(w)
}

func (l *LogrusAdapter) emit(level logrus.Level, msg string, fields []Field) {
	entry := l.entry
	if len(fields) > 0 {
		entry = entry.WithFields(convertFields(fields))
	}
	entry.Log(level, msg)
}

func (l *LogrusAdapter) Debug(msg string, fields ...Field) { l.emit(logrus.DebugLevel, msg, fields) }
func (l *LogrusAdapter) Info(msg string, fields ...Field)  { l.emit(logrus.InfoLevel, msg, fields) }
func (l *LogrusAdapter) Warn(msg string, fields ...Field)  { l.emit(logrus.WarnLevel, msg, fields) }
func (l *LogrusAdapter) Error(msg string, fields ...Field) { l.emit(logrus.ErrorLevel, msg, fields) }

// Fatal exits through logrus, which runs its exit handlers first.
func (l *LogrusAdapter) Fatal(msg string, fields ...Field) {
	entry := l.entry
	if len(fields) > 0 {
		entry = entry.WithFields(convertFields(fields))
	}
	entry.Fatal(msg)
}

// Fatalf is Fatal with a format string and no fields.
func (l *LogrusAdapter) Fatalf(msg string, args ...interface{}) {
	l.entry.Fatalf(msg, args...)
}

func (l *LogrusAdapter) child(entry *logrus.Entry) Logger {
	return &LogrusAdapter{logger: l.logger, entry: entry}
}

func (l *LogrusAdapter) WithError(err error) Logger {
	return l.child(l.entry.WithError(err))
}

func (l *LogrusAdapter) WithField(key string, value interface{}) Logger {
	return l.child(l.entry.WithField(key, value))
}

func (l *LogrusAdapter) WithFields(fields ...Field) Logger {
	return l.child(l.entry.WithFields(convertFields(fields)))
}

// convertFields turns Fields into logrus.Fields; a repeated key keeps its
// last value.
func convertFields(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}
