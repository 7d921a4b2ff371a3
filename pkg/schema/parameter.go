package schema

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// ParameterTemplate is the PARAMETER EFLR's attribute template (§4.7).
func ParameterTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "LONG-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "DIMENSION", ReprCode: reprcode.UVARI, Count: 0},
		{Label: "AXIS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "ZONES", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "VALUES", ReprCode: reprcode.FDOUBL, Count: 0},
	}
}

// ParameterConfig describes one PARAMETER object. Dimension defaults to
// []int{1} when left unset, matching the source schema's _set_defaults.
// Values may hold numbers or strings. Strings are not parsed as numbers; a
// mix that InferMultivalued rejects is turned into strings and tagged ASCII
// as a whole. The PARAMETER set encodes VALUES with its template's FDOUBL
// code, so string values fail when the Writer encodes the set.
type ParameterConfig struct {
	Name      string
	LongName  string
	Dimension []int
	Axis      []reprcode.ObjRef
	Zones     []reprcode.ObjRef
	Values    []interface{}
}

// NewParameter builds a PARAMETER item in template order.
func NewParameter(c ParameterConfig) (*eflr.Item, error) {
	if err := requireName("PARAMETER", c.Name); err != nil {
		return nil, err
	}
	if len(c.Dimension) == 0 {
		c.Dimension = []int{1}
	}

	values := eflr.Absent(reprcode.FDOUBL)
	if len(c.Values) > 0 {
		code, err := reprcode.InferMultivalued(c.Values)
		if err != nil {
			values = eflr.Vector(reprcode.ASCII, stringifyAll(c.Values))
		} else {
			values = eflr.Vector(code, c.Values)
		}
	}

	out := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.LongName),
		vectorOrAbsentInt(reprcode.UVARI, c.Dimension),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Axis),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Zones),
		values,
	}
	return eflr.NewItem(c.Name, out), nil
}

func stringifyAll(vs []interface{}) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprintf("%v", v)
	}
	return out
}
