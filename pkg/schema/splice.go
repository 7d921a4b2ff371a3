package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// SpliceTemplate is the SPLICE EFLR's attribute template (§4.7).
func SpliceTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "OUTPUT-CHANNEL", ReprCode: reprcode.OBJREF, Count: 1},
		{Label: "INPUT-CHANNELS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "ZONES", ReprCode: reprcode.OBJREF, Count: 0},
	}
}

// SpliceConfig describes one SPLICE object.
type SpliceConfig struct {
	Name          string
	OutputChannel *reprcode.ObjRef
	InputChannels []reprcode.ObjRef
	Zones         []reprcode.ObjRef
}

// NewSplice builds a SPLICE item in template order.
func NewSplice(c SpliceConfig) (*eflr.Item, error) {
	if err := requireName("SPLICE", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		objRefOrAbsent(reprcode.OBJREF, c.OutputChannel),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.InputChannels),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Zones),
	}
	return eflr.NewItem(c.Name, values), nil
}
