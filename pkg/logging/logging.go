// Package logging wraps logr.Logger with the three verbosity levels used
// throughout the write pipeline (info, debug, trace) plus a colored
// stderr-friendly sink for CLI use.
package logging

import (
	"github.com/go-logr/logr"
)

const (
	LEVEL_INFO  = 0
	LEVEL_DEBUG = 1
	LEVEL_TRACE = 2
)

// NewLogger creates a new Logger instance with the given configuration
func NewLogger(log logr.Logger) *Logger {
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	return &Logger{log: log}
}

// DefaultLogger returns a Logger that discards all output.
func DefaultLogger() *Logger {
	//return &Logger{log: NewSimpleLogger(os.Stdout, LEVEL_TRACE, true)}
	return &Logger{log: logr.Discard()}
}

// Logger is a struct that wraps the logr.Logger interface.
type Logger struct {
	log logr.Logger
}

// Log methods (minimizing footprint in the rest of the library)
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.V(LEVEL_DEBUG).Info(msg, keysAndValues...)
}

func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Info(msg, keysAndValues...)
}

func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.log.V(LEVEL_TRACE).Info(msg, keysAndValues...)
}

func (l *Logger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(err, msg, keysAndValues...)
}

// LogicalRecord traces one assembled logical record: the set type that
// produced it (or "FRAME-DATA" for an IFLR) and its encoded body length.
// Called once per EFLR during pkg/dlis.Writer.assemble, mirroring the
// teacher's per-field trace texture for on-disk structures.
func (l *Logger) LogicalRecord(setType string, bodyBytes int) {
	l.Trace("logical record", "setType", setType, "bytes", bodyBytes)
}

// VisibleRecordStream logs the result of packing a file's logical records
// into Visible Records: the total encoded length and how many logical
// records went into it.
func (l *Logger) VisibleRecordStream(totalBytes int, logicalRecords int) {
	l.Debug("visible record stream packed", "bytes", totalBytes, "logicalRecords", logicalRecords)
}
