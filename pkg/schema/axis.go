package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// AxisTemplate is the AXIS EFLR's attribute template (§4.7).
func AxisTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "AXIS-ID", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "COORDINATES", ReprCode: reprcode.FDOUBL, Count: 0},
		{Label: "SPACING", ReprCode: reprcode.FDOUBL, Count: 1},
	}
}

// AxisConfig describes one AXIS object. Coordinates may hold numbers or
// strings, matching the source schema's convert_maybe_numeric; NewAxis
// infers one representation code for the whole vector. The AXIS set
// encodes COORDINATES with its template's FDOUBL code, so string
// coordinates fail when the Writer encodes the set.
type AxisConfig struct {
	Name        string
	AxisID      string
	Coordinates []interface{}
	Spacing     interface{}
}

// NewAxis builds an AXIS item in template order.
func NewAxis(c AxisConfig) (*eflr.Item, error) {
	if err := requireName("AXIS", c.Name); err != nil {
		return nil, err
	}

	coords := eflr.Absent(reprcode.FDOUBL)
	if len(c.Coordinates) > 0 {
		code, err := reprcode.InferMultivalued(c.Coordinates)
		if err != nil {
			return nil, err
		}
		coords = eflr.Vector(code, c.Coordinates)
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.IDENT, c.AxisID),
		coords,
		numericOrAbsent(c.Spacing),
	}
	return eflr.NewItem(c.Name, values), nil
}
