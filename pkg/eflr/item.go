// Package eflr implements the Explicitly Formatted Logical Record model
// (§3.2, §4.4): ordered attribute values grouped into Items, Items grouped
// into type-homogeneous Sets, and a file-scoped Registry that replaces the
// source implementation's class-level mutable instance dictionaries (§9).
package eflr

import "github.com/bgrewell/dlis-kit/pkg/reprcode"

// AttributeValue is one item's value for a single template attribute slot.
// An empty Values encodes as RP66's "absent attribute" component; Values
// with more than one element encodes as a counted vector. Units is only
// set for the handful of attributes whose units vary per item rather than
// being fixed by the template (e.g. Frame's SPACING/INDEX-MIN/INDEX-MAX,
// inherited from whichever channel indexes the frame, §4.7); it is left
// empty for everything else.
type AttributeValue struct {
	ReprCode reprcode.Code
	Values   []interface{}
	Units    string
}

// Scalar builds an AttributeValue holding exactly one value.
func Scalar(code reprcode.Code, v interface{}) AttributeValue {
	return AttributeValue{ReprCode: code, Values: []interface{}{v}}
}

// ScalarWithUnits builds a Scalar AttributeValue carrying a per-item units
// override (§4.7).
func ScalarWithUnits(code reprcode.Code, v interface{}, units string) AttributeValue {
	return AttributeValue{ReprCode: code, Values: []interface{}{v}, Units: units}
}

// Vector builds an AttributeValue holding a sequence of values.
func Vector(code reprcode.Code, v []interface{}) AttributeValue {
	return AttributeValue{ReprCode: code, Values: v}
}

// Absent builds an AttributeValue with no value set.
func Absent(code reprcode.Code) AttributeValue {
	return AttributeValue{ReprCode: code}
}

// Item is one object belonging to an EFLRSet: a name plus one AttributeValue
// per slot in its Set's template, in template order (§4.4).
type Item struct {
	name       string
	copyNumber uint8
	values     []AttributeValue
}

// NewItem constructs an Item. values must have the same length and order as
// the owning Set's template; Set.AddItem checks this.
func NewItem(name string, values []AttributeValue) *Item {
	return &Item{name: name, values: values}
}

// Name returns the item's IDENT name, as carried in its OBNAME (§3.2).
func (it *Item) Name() string { return it.name }

// CopyNumber distinguishes items that share a name within the same set; it
// is assigned by Set.AddItem, not by the caller.
func (it *Item) CopyNumber() uint8 { return it.copyNumber }

// AttributeValues returns the item's values in template order.
func (it *Item) AttributeValues() []AttributeValue { return it.values }
