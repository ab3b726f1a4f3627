// Package logging is the analyzer's logging seam. Loader, categorizer, report
// and commands log through Logger; main wires logrus behind it and tests use
// MockLogger.
package logging

// Logger emits levelled events. Fields passed to an event apply to that event
// only; fields added with the With* methods stick to the returned child.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	// Warn is used for rows the loader skips.
	Warn(msg string, fields ...Field)
	// Error is used for loads that abort and for I/O failures.
	Error(msg string, fields ...Field)

	// Fatal and Fatalf log, then terminate the process.
	Fatal(msg string, fields ...Field)
	Fatalf(msg string, args ...interface{})

	WithError(err error) Logger
	WithField(key string, value interface{}) Logger
	WithFields(fields ...Field) Logger
}

// Field is one key/value attached to an event, e.g. {FieldRow, 7}.
type Field struct {
	Key   string
	Value interface{}
}
