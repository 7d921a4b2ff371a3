package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// ToolTemplate is the TOOL EFLR's attribute template (§4.7).
func ToolTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "DESCRIPTION", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "TRADEMARK-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "GENERIC-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "PARTS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "STATUS", ReprCode: reprcode.STATUS, Count: 1},
		{Label: "CHANNELS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "PARAMETERS", ReprCode: reprcode.OBJREF, Count: 0},
	}
}

// ToolConfig describes one TOOL object.
type ToolConfig struct {
	Name          string
	Description   string
	TrademarkName string
	GenericName   string
	Parts         []reprcode.ObjRef
	Status        bool
	Channels      []reprcode.ObjRef
	Parameters    []reprcode.ObjRef
}

// NewTool builds a TOOL item in template order.
func NewTool(c ToolConfig) (*eflr.Item, error) {
	if err := requireName("TOOL", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.Description),
		scalarOrAbsentString(reprcode.ASCII, c.TrademarkName),
		scalarOrAbsentString(reprcode.ASCII, c.GenericName),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Parts),
		eflr.Scalar(reprcode.STATUS, c.Status),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Channels),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Parameters),
	}
	return eflr.NewItem(c.Name, values), nil
}
