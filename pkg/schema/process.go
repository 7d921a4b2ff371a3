package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// ProcessTemplate is the PROCESS EFLR's attribute template (§4.7).
func ProcessTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "DESCRIPTION", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "TRADEMARK-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "VERSION", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "PROPERTIES", ReprCode: reprcode.IDENT, Count: 0},
		{Label: "STATUS", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "INPUT-CHANNELS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "OUTPUT-CHANNELS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "INPUT-COMPUTATIONS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "OUTPUT-COMPUTATIONS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "PARAMETERS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "COMMENTS", ReprCode: reprcode.ASCII, Count: 0},
	}
}

// ProcessConfig describes one PROCESS object.
type ProcessConfig struct {
	Name               string
	Description        string
	TrademarkName      string
	Version            string
	Properties         []string
	Status             string
	InputChannels      []reprcode.ObjRef
	OutputChannels     []reprcode.ObjRef
	InputComputations  []reprcode.ObjRef
	OutputComputations []reprcode.ObjRef
	Parameters         []reprcode.ObjRef
	Comments           []string
}

// NewProcess builds a PROCESS item in template order.
func NewProcess(c ProcessConfig) (*eflr.Item, error) {
	if err := requireName("PROCESS", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.Description),
		scalarOrAbsentString(reprcode.ASCII, c.TrademarkName),
		scalarOrAbsentString(reprcode.ASCII, c.Version),
		vectorOrAbsentString(reprcode.IDENT, c.Properties),
		scalarOrAbsentString(reprcode.IDENT, c.Status),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.InputChannels),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.OutputChannels),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.InputComputations),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.OutputComputations),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Parameters),
		vectorOrAbsentString(reprcode.ASCII, c.Comments),
	}
	return eflr.NewItem(c.Name, values), nil
}
