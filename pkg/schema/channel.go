package schema

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// ChannelTemplate is the CHANNEL EFLR's attribute template (§4.7).
func ChannelTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "LONG-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "PROPERTIES", ReprCode: reprcode.IDENT, Count: 0},
		{Label: "REPRESENTATION-CODE", ReprCode: reprcode.USHORT, Count: 1},
		{Label: "UNITS", ReprCode: reprcode.UNITS, Count: 1},
		{Label: "DIMENSION", ReprCode: reprcode.UVARI, Count: 0},
		{Label: "AXIS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "ELEMENT-LIMIT", ReprCode: reprcode.UVARI, Count: 0},
		{Label: "SOURCE", ReprCode: reprcode.OBJREF, Count: 1},
	}
}

// ChannelConfig describes one CHANNEL object. Dimension and ElementLimit
// mutually default to one another when only one is set, matching the
// source schema's _set_defaults (§4.7); when neither is set both default
// to []int{1} (a single scalar sample per frame).
type ChannelConfig struct {
	Name          string
	LongName      string
	Properties    []string
	ReprCode      reprcode.Code
	Units         string
	Dimension     []int
	ElementLimit  []int
	Axis          []reprcode.ObjRef
	Source        *reprcode.ObjRef
}

// Samples returns the number of scalar values one frame contributes for
// this channel: the product of Dimension, or of ElementLimit when
// Dimension is unset (1 when both are unset).
func (c ChannelConfig) Samples() int {
	dims := c.Dimension
	if len(dims) == 0 {
		dims = c.ElementLimit
	}
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// NewChannel validates and defaults a ChannelConfig and builds its
// eflr.Item in CHANNEL template order.
func NewChannel(c ChannelConfig) (*eflr.Item, error) {
	if err := requireName("CHANNEL", c.Name); err != nil {
		return nil, err
	}
	if c.ReprCode == 0 {
		return nil, fmt.Errorf("schema: channel %q requires an explicit representation code", c.Name)
	}

	switch {
	case len(c.Dimension) == 0 && len(c.ElementLimit) == 0:
		c.Dimension = []int{1}
		c.ElementLimit = []int{1}
	case len(c.Dimension) == 0:
		c.Dimension = append([]int(nil), c.ElementLimit...)
	case len(c.ElementLimit) == 0:
		c.ElementLimit = append([]int(nil), c.Dimension...)
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.LongName),
		vectorOrAbsentString(reprcode.IDENT, c.Properties),
		eflr.Scalar(reprcode.USHORT, uint8(c.ReprCode)),
		scalarOrAbsentString(reprcode.UNITS, c.Units),
		vectorOrAbsentInt(reprcode.UVARI, c.Dimension),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Axis),
		vectorOrAbsentInt(reprcode.UVARI, c.ElementLimit),
		objRefOrAbsent(reprcode.OBJREF, c.Source),
	}
	return eflr.NewItem(c.Name, values), nil
}
