// Package schema defines the per-type EFLR templates and item constructors
// named in §4.7: Channel, Frame, Origin, File-Header, Well-Reference-Point,
// Axis, Equipment, Zone, Parameter, Path, Tool, Calibration-Coefficient,
// Calibration-Measurement, Computation, Process, Splice, Group, Long-Name,
// Message, Comment, and No-Format. Each type exposes a Template() table
// consumed by both the EFLRSet's template encoding and its items' body
// encoding, rather than reflecting over struct fields at runtime (§9).
package schema

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// intValues converts a slice of ints to the []interface{} eflr.Vector wants.
func intValues(vs []int) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// strValues converts a slice of strings to the []interface{} eflr.Vector
// wants.
func strValues(vs []string) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// objRefValues converts a slice of ObjRef to the []interface{} eflr.Vector
// wants.
func objRefValues(vs []reprcode.ObjRef) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// scalarOrAbsentString builds a scalar AttributeValue, or an absent one when s is
// the empty string.
func scalarOrAbsentString(code reprcode.Code, s string) eflr.AttributeValue {
	if s == "" {
		return eflr.Absent(code)
	}
	return eflr.Scalar(code, s)
}

// vectorOrAbsentInt builds a vector AttributeValue, or an absent one when
// vs is empty.
func vectorOrAbsentInt(code reprcode.Code, vs []int) eflr.AttributeValue {
	if len(vs) == 0 {
		return eflr.Absent(code)
	}
	return eflr.Vector(code, intValues(vs))
}

// vectorOrAbsentString builds a vector AttributeValue, or an absent one
// when vs is empty.
func vectorOrAbsentString(code reprcode.Code, vs []string) eflr.AttributeValue {
	if len(vs) == 0 {
		return eflr.Absent(code)
	}
	return eflr.Vector(code, strValues(vs))
}

// vectorOrAbsentObjRef builds a vector AttributeValue, or an absent one
// when vs is empty.
func vectorOrAbsentObjRef(code reprcode.Code, vs []reprcode.ObjRef) eflr.AttributeValue {
	if len(vs) == 0 {
		return eflr.Absent(code)
	}
	return eflr.Vector(code, objRefValues(vs))
}

// objRefOrAbsent builds a scalar ObjRef AttributeValue, or an absent one
// when ref is nil.
func objRefOrAbsent(code reprcode.Code, ref *reprcode.ObjRef) eflr.AttributeValue {
	if ref == nil {
		return eflr.Absent(code)
	}
	return eflr.Scalar(code, *ref)
}

// requireName validates the one invariant every schema type shares: a
// non-empty name. The IDENT character set is not checked here.
func requireName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("schema: %s requires a non-empty name", kind)
	}
	return nil
}

// numericOrAbsent builds a scalar FDOUBL AttributeValue, or an absent one
// when v is nil. FDOUBL is the default representation code the source
// schema's NumericAttribute falls back to when no narrower code is given.
func numericOrAbsent(v interface{}) eflr.AttributeValue {
	if v == nil {
		return eflr.Absent(reprcode.FDOUBL)
	}
	return eflr.Scalar(reprcode.FDOUBL, v)
}

// numericVectorOrAbsent builds a vector FDOUBL AttributeValue, or an absent
// one when vs is empty.
func numericVectorOrAbsent(vs []interface{}) eflr.AttributeValue {
	if len(vs) == 0 {
		return eflr.Absent(reprcode.FDOUBL)
	}
	return eflr.Vector(reprcode.FDOUBL, vs)
}

// intOrAbsent builds a scalar ULONG AttributeValue, or an absent one when
// set is false: used for int_only NumericAttributes such as sample_count.
func intOrAbsent(set bool, v int) eflr.AttributeValue {
	if !set {
		return eflr.Absent(reprcode.ULONG)
	}
	return eflr.Scalar(reprcode.ULONG, uint32(v))
}
