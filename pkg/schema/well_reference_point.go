package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// WellReferencePointTemplate is the WELL-REFERENCE EFLR's attribute
// template (§4.7).
func WellReferencePointTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "PERMANENT-DATUM", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "VERTICAL-ZERO", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "PERMANENT-DATUM-ELEVATION", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "ABOVE-PERMANENT-DATUM", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "MAGNETIC-DECLINATION", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "COORDINATE-1-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "COORDINATE-1-VALUE", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "COORDINATE-2-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "COORDINATE-2-VALUE", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "COORDINATE-3-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "COORDINATE-3-VALUE", ReprCode: reprcode.FDOUBL, Count: 1},
	}
}

// WellReferencePointConfig describes one WELL-REFERENCE object.
type WellReferencePointConfig struct {
	Name                    string
	PermanentDatum          string
	VerticalZero            string
	PermanentDatumElevation interface{}
	AbovePermanentDatum     interface{}
	MagneticDeclination     interface{}
	Coordinate1Name         string
	Coordinate1Value        interface{}
	Coordinate2Name         string
	Coordinate2Value        interface{}
	Coordinate3Name         string
	Coordinate3Value        interface{}
}

// NewWellReferencePoint builds a WELL-REFERENCE item in template order.
func NewWellReferencePoint(c WellReferencePointConfig) (*eflr.Item, error) {
	if err := requireName("WELL-REFERENCE", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.PermanentDatum),
		scalarOrAbsentString(reprcode.ASCII, c.VerticalZero),
		numericOrAbsent(c.PermanentDatumElevation),
		numericOrAbsent(c.AbovePermanentDatum),
		numericOrAbsent(c.MagneticDeclination),
		scalarOrAbsentString(reprcode.ASCII, c.Coordinate1Name),
		numericOrAbsent(c.Coordinate1Value),
		scalarOrAbsentString(reprcode.ASCII, c.Coordinate2Name),
		numericOrAbsent(c.Coordinate2Value),
		scalarOrAbsentString(reprcode.ASCII, c.Coordinate3Name),
		numericOrAbsent(c.Coordinate3Value),
	}
	return eflr.NewItem(c.Name, values), nil
}
