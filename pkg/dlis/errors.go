// Package dlis assembles the top-level Writer: the file-scoped registry,
// the FrameData pull-loop, and the final Segmenter/SUL byte stream (§5,
// §6.1), generalizing the teacher's ISO9660 `Create`/`Save` control flow
// (pkg/iso9660/iso9660.go) to DLIS's logical-record model.
package dlis

import "fmt"

// SchemaViolation reports an attribute value of the wrong kind, an enum
// value outside its allowed set, or a cross-reference to an item that was
// never registered (§7).
type SchemaViolation struct {
	Item      string
	Attribute string
	Err       error
}

func (e *SchemaViolation) Error() string {
	if e.Attribute != "" {
		return fmt.Sprintf("dlis: schema violation: %s.%s: %v", e.Item, e.Attribute, e.Err)
	}
	return fmt.Sprintf("dlis: schema violation: %s: %v", e.Item, e.Err)
}

func (e *SchemaViolation) Unwrap() error { return e.Err }

// EncodingOverflow reports a value that exceeds the range of its
// representation code: a UVARI over 2^30-1, a year outside 0-255, an
// IDENT string over 255 bytes, or a channel's sample count not matching
// its declared dimension (§7).
type EncodingOverflow struct {
	Item      string
	Attribute string
	Err       error
}

func (e *EncodingOverflow) Error() string {
	return fmt.Sprintf("dlis: encoding overflow: %s.%s: %v", e.Item, e.Attribute, e.Err)
}

func (e *EncodingOverflow) Unwrap() error { return e.Err }

// ConfigConflict reports an attribute assigned two incompatible values,
// most commonly a representation code reassigned after being fixed (§7).
type ConfigConflict struct {
	Item string
	Err  error
}

func (e *ConfigConflict) Error() string {
	return fmt.Sprintf("dlis: config conflict: %s: %v", e.Item, e.Err)
}

func (e *ConfigConflict) Unwrap() error { return e.Err }

// InvariantBroken signals a violation of an internal invariant that should
// never surface from correct caller usage: a segment fragment smaller than
// the minimum size, or a second attempt to assign a file's ORIGIN
// file-set-number (§7, §4.7 Origin write-once).
type InvariantBroken struct {
	Err error
}

func (e *InvariantBroken) Error() string {
	return fmt.Sprintf("dlis: internal invariant broken: %v", e.Err)
}

func (e *InvariantBroken) Unwrap() error { return e.Err }

// IOError wraps a failure from the output destination (§7).
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("dlis: output error: %v", e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
