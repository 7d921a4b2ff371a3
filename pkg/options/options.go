// Package options provides the functional-options surface used to configure
// a dlis.Writer.
package options

import (
	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/go-logr/logr"
)

// ProgressCallback is invoked as the writer flushes output chunks, so a
// caller can drive a progress bar or spinner.
type ProgressCallback func(bytesWritten int64, totalBytesEstimate int64, logicalRecordsWritten int, logicalRecordsTotal int)

// Options holds the resolved configuration for a Writer.
type Options struct {
	VisibleRecordLength int
	InputChunkSize      int
	OutputChunkSize     int64
	HighCompatibility   bool
	Logger              logr.Logger
	Progress            ProgressCallback
}

// Default returns the Options a Writer uses when no Option overrides them.
func Default() Options {
	return Options{
		VisibleRecordLength: consts.VisibleRecordMaxLength,
		InputChunkSize:      100_000,
		OutputChunkSize:     1 << 32,
		HighCompatibility:   false,
		Logger:              logr.Discard(),
	}
}

// Option mutates an Options in place.
type Option func(*Options)

// WithVisibleRecordLength sets the maximum length of each Visible Record.
// Must be even and within [consts.VisibleRecordMinLength,
// consts.VisibleRecordMaxLength]; out-of-range values are not checked here
// or by NewWriter, but rejected when Writer.Write builds its segmenter.
func WithVisibleRecordLength(length int) Option {
	return func(o *Options) {
		o.VisibleRecordLength = length
	}
}

// WithInputChunkSize sets how many rows of source data the writer pulls from
// the SourceData adapter at a time.
func WithInputChunkSize(rows int) Option {
	return func(o *Options) {
		o.InputChunkSize = rows
	}
}

// WithOutputChunkSize sets how many encoded bytes the writer buffers before
// issuing a single write to the destination.
func WithOutputChunkSize(bytes int64) Option {
	return func(o *Options) {
		o.OutputChunkSize = bytes
	}
}

// WithHighCompatibility escalates the non-standard frame index type warning
// into a SchemaViolation error instead of logging it and continuing. Units
// and index spacing are not checked, so they produce neither a warning nor
// an error in either mode.
func WithHighCompatibility(enabled bool) Option {
	return func(o *Options) {
		o.HighCompatibility = enabled
	}
}

// WithLogger sets the logr.Logger used throughout the write pipeline.
func WithLogger(logger logr.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithProgress registers a callback invoked after each output chunk flush.
func WithProgress(callback ProgressCallback) Option {
	return func(o *Options) {
		o.Progress = callback
	}
}
