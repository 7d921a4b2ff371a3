package reprcode

import (
	"fmt"
	"time"
)

// kind classifies a Go value for representation-code inference purposes.
type kind int

const (
	kindInt kind = iota
	kindFloat
	kindString
	kindTime
	kindUnknown
)

func classify(v interface{}) kind {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return kindInt
	case float32, float64:
		return kindFloat
	case string:
		return kindString
	case time.Time, DTime:
		return kindTime
	default:
		return kindUnknown
	}
}

// Infer picks the default representation code for a single scalar value,
// used when a schema field's representation code is not explicitly set
// (§4.1): int values default to SLONG, float values to FDOUBL, strings to
// ASCII, and date/time values to DTIME.
func Infer(v interface{}) (Code, error) {
	switch classify(v) {
	case kindInt:
		return SLONG, nil
	case kindFloat:
		return FDOUBL, nil
	case kindString:
		return ASCII, nil
	case kindTime:
		return DTIME, nil
	default:
		return 0, fmt.Errorf("reprcode: cannot infer a representation code for %T", v)
	}
}

// InferMultivalued picks the representation code for a slice of scalar
// values, following the tie-break rules used by schema fields whose
// cardinality is greater than one (§4.1):
//
//   - if any value is a float, the widest float code (FDOUBL) wins;
//   - else SLONG when any value is negative, ULONG otherwise (narrower
//     integer codes are never chosen);
//   - a mix of strings with numbers, or of date/time values with any other
//     kind, is a SchemaViolation-shaped error.
func InferMultivalued(values []interface{}) (Code, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("reprcode: cannot infer a representation code for an empty value set")
	}

	seen := map[kind]bool{}
	hasNegative := false
	for _, v := range values {
		k := classify(v)
		if k == kindUnknown {
			return 0, fmt.Errorf("reprcode: cannot infer a representation code for %T", v)
		}
		seen[k] = true
		if k == kindInt {
			if n, err := toInt64(v); err == nil && n < 0 {
				hasNegative = true
			}
		}
	}

	if seen[kindString] && (seen[kindInt] || seen[kindFloat] || seen[kindTime]) {
		return 0, fmt.Errorf("reprcode: cannot mix strings with numbers or date/time values")
	}
	if seen[kindTime] && (seen[kindInt] || seen[kindFloat]) {
		return 0, fmt.Errorf("reprcode: cannot mix date/time values with numbers")
	}
	if seen[kindString] {
		return ASCII, nil
	}
	if seen[kindTime] {
		return DTIME, nil
	}
	if seen[kindFloat] {
		return FDOUBL, nil
	}
	if hasNegative {
		return SLONG, nil
	}
	return ULONG, nil
}
