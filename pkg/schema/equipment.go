package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// EquipmentTemplate is the EQUIPMENT EFLR's attribute template (§4.7).
func EquipmentTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "TRADEMARK-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "STATUS", ReprCode: reprcode.STATUS, Count: 1},
		{Label: "TYPE", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "SERIAL-NUMBER", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "LOCATION", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "HEIGHT", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "LENGTH", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "MINIMUM-DIAMETER", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "MAXIMUM-DIAMETER", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "VOLUME", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "WEIGHT", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "HOLE-SIZE", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "PRESSURE", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "TEMPERATURE", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "VERTICAL-DEPTH", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "RADIAL-DRIFT", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "ANGULAR-DRIFT", ReprCode: reprcode.FDOUBL, Count: 1},
	}
}

// EquipmentConfig describes one EQUIPMENT object.
type EquipmentConfig struct {
	Name             string
	TrademarkName    string
	Status           bool
	Type             string
	SerialNumber     string
	Location         string
	Height           interface{}
	Length           interface{}
	MinimumDiameter  interface{}
	MaximumDiameter  interface{}
	Volume           interface{}
	Weight           interface{}
	HoleSize         interface{}
	Pressure         interface{}
	Temperature      interface{}
	VerticalDepth    interface{}
	RadialDrift      interface{}
	AngularDrift     interface{}
}

// NewEquipment builds an EQUIPMENT item in template order.
func NewEquipment(c EquipmentConfig) (*eflr.Item, error) {
	if err := requireName("EQUIPMENT", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.TrademarkName),
		eflr.Scalar(reprcode.STATUS, c.Status),
		scalarOrAbsentString(reprcode.IDENT, c.Type),
		scalarOrAbsentString(reprcode.IDENT, c.SerialNumber),
		scalarOrAbsentString(reprcode.IDENT, c.Location),
		numericOrAbsent(c.Height),
		numericOrAbsent(c.Length),
		numericOrAbsent(c.MinimumDiameter),
		numericOrAbsent(c.MaximumDiameter),
		numericOrAbsent(c.Volume),
		numericOrAbsent(c.Weight),
		numericOrAbsent(c.HoleSize),
		numericOrAbsent(c.Pressure),
		numericOrAbsent(c.Temperature),
		numericOrAbsent(c.VerticalDepth),
		numericOrAbsent(c.RadialDrift),
		numericOrAbsent(c.AngularDrift),
	}
	return eflr.NewItem(c.Name, values), nil
}
