package schema

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// ComputationTemplate is the COMPUTATION EFLR's attribute template (§4.7).
func ComputationTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "LONG-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "PROPERTIES", ReprCode: reprcode.IDENT, Count: 0},
		{Label: "DIMENSION", ReprCode: reprcode.UVARI, Count: 0},
		{Label: "AXIS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "ZONES", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "VALUES", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "SOURCE", ReprCode: reprcode.OBJREF, Count: 1},
	}
}

// ComputationConfig describes one COMPUTATION object. Dimension defaults
// to []int{1} when unset. When both Values and Zones are set they must
// carry the same element count, matching the source schema's
// _run_checks_and_set_defaults.
type ComputationConfig struct {
	Name       string
	LongName   string
	Properties []string
	Dimension  []int
	Axis       []reprcode.ObjRef
	Zones      []reprcode.ObjRef
	Values     []interface{}
	Source     *reprcode.ObjRef
}

// NewComputation builds a COMPUTATION item in template order.
func NewComputation(c ComputationConfig) (*eflr.Item, error) {
	if err := requireName("COMPUTATION", c.Name); err != nil {
		return nil, err
	}
	if len(c.Values) > 0 && len(c.Zones) > 0 && len(c.Values) != len(c.Zones) {
		return nil, fmt.Errorf("schema: computation %q: values (%d) and zones (%d) counts must match", c.Name, len(c.Values), len(c.Zones))
	}
	if len(c.Dimension) == 0 {
		c.Dimension = []int{1}
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.LongName),
		vectorOrAbsentString(reprcode.IDENT, c.Properties),
		vectorOrAbsentInt(reprcode.UVARI, c.Dimension),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Axis),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Zones),
		numericVectorOrAbsent(c.Values),
		objRefOrAbsent(reprcode.OBJREF, c.Source),
	}
	return eflr.NewItem(c.Name, values), nil
}
