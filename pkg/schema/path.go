package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// PathTemplate is the PATH EFLR's attribute template (§4.7).
func PathTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "FRAME-TYPE", ReprCode: reprcode.OBJREF, Count: 1},
		{Label: "WELL-REFERENCE-POINT", ReprCode: reprcode.OBJREF, Count: 1},
		{Label: "VALUE", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "BOREHOLE-DEPTH", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "VERTICAL-DEPTH", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "RADIAL-DRIFT", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "ANGULAR-DRIFT", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "TIME", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "DEPTH-OFFSET", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "MEASURE-POINT-OFFSET", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "TOOL-ZERO-OFFSET", ReprCode: reprcode.FDOUBL, Count: 1},
	}
}

// PathConfig describes one PATH object.
type PathConfig struct {
	Name                string
	FrameType           *reprcode.ObjRef
	WellReferencePoint  *reprcode.ObjRef
	Value               []reprcode.ObjRef
	BoreholeDepth       interface{}
	VerticalDepth       interface{}
	RadialDrift         interface{}
	AngularDrift        interface{}
	Time                interface{}
	DepthOffset         interface{}
	MeasurePointOffset  interface{}
	ToolZeroOffset      interface{}
}

// NewPath builds a PATH item in template order.
func NewPath(c PathConfig) (*eflr.Item, error) {
	if err := requireName("PATH", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		objRefOrAbsent(reprcode.OBJREF, c.FrameType),
		objRefOrAbsent(reprcode.OBJREF, c.WellReferencePoint),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Value),
		numericOrAbsent(c.BoreholeDepth),
		numericOrAbsent(c.VerticalDepth),
		numericOrAbsent(c.RadialDrift),
		numericOrAbsent(c.AngularDrift),
		numericOrAbsent(c.Time),
		numericOrAbsent(c.DepthOffset),
		numericOrAbsent(c.MeasurePointOffset),
		numericOrAbsent(c.ToolZeroOffset),
	}
	return eflr.NewItem(c.Name, values), nil
}
