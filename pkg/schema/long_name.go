package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// LongNameTemplate is the LONG-NAME EFLR's attribute template (§4.7).
func LongNameTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "GENERAL-MODIFIER", ReprCode: reprcode.ASCII, Count: 0},
		{Label: "QUANTITY", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "QUANTITY-MODIFIER", ReprCode: reprcode.ASCII, Count: 0},
		{Label: "ALTERED-FORM", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "ENTITY", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "ENTITY-MODIFIER", ReprCode: reprcode.ASCII, Count: 0},
		{Label: "ENTITY-NUMBER", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "ENTITY-PART", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "ENTITY-PART-NUMBER", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "GENERIC-SOURCE", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "SOURCE-PART", ReprCode: reprcode.ASCII, Count: 0},
		{Label: "SOURCE-PART-NUMBER", ReprCode: reprcode.ASCII, Count: 0},
		{Label: "CONDITIONS", ReprCode: reprcode.ASCII, Count: 0},
		{Label: "STANDARD-SYMBOL", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "PRIVATE-SYMBOL", ReprCode: reprcode.ASCII, Count: 1},
	}
}

// LongNameConfig describes one LONG-NAME object: the fifteen descriptive
// fragments RP66 composes a channel or parameter's human-readable name
// from (§4.7).
type LongNameConfig struct {
	Name              string
	GeneralModifier   []string
	Quantity          string
	QuantityModifier  []string
	AlteredForm       string
	Entity            string
	EntityModifier    []string
	EntityNumber      string
	EntityPart        string
	EntityPartNumber  string
	GenericSource     string
	SourcePart        []string
	SourcePartNumber  []string
	Conditions        []string
	StandardSymbol    string
	PrivateSymbol     string
}

// NewLongName builds a LONG-NAME item in template order.
func NewLongName(c LongNameConfig) (*eflr.Item, error) {
	if err := requireName("LONG-NAME", c.Name); err != nil {
		return nil, err
	}

	values := []eflr.AttributeValue{
		vectorOrAbsentString(reprcode.ASCII, c.GeneralModifier),
		scalarOrAbsentString(reprcode.ASCII, c.Quantity),
		vectorOrAbsentString(reprcode.ASCII, c.QuantityModifier),
		scalarOrAbsentString(reprcode.ASCII, c.AlteredForm),
		scalarOrAbsentString(reprcode.ASCII, c.Entity),
		vectorOrAbsentString(reprcode.ASCII, c.EntityModifier),
		scalarOrAbsentString(reprcode.ASCII, c.EntityNumber),
		scalarOrAbsentString(reprcode.ASCII, c.EntityPart),
		scalarOrAbsentString(reprcode.ASCII, c.EntityPartNumber),
		scalarOrAbsentString(reprcode.ASCII, c.GenericSource),
		vectorOrAbsentString(reprcode.ASCII, c.SourcePart),
		vectorOrAbsentString(reprcode.ASCII, c.SourcePartNumber),
		vectorOrAbsentString(reprcode.ASCII, c.Conditions),
		scalarOrAbsentString(reprcode.ASCII, c.StandardSymbol),
		scalarOrAbsentString(reprcode.ASCII, c.PrivateSymbol),
	}
	return eflr.NewItem(c.Name, values), nil
}
