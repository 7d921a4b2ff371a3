package schema

import (
	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/eflr"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// FrameIndexTypes are the allowed values for a Frame's INDEX-TYPE
// attribute (§4.7). The source schema's own five-value tuple omits TIME;
// this list includes it per the specification's explicit six-value list.
var FrameIndexTypes = []string{
	"ANGULAR-DRIFT", "BOREHOLE-DEPTH", "NON-STANDARD",
	"RADIAL-DRIFT", "VERTICAL-DEPTH", "TIME",
}

// ValidFrameIndexType reports whether s is one of FrameIndexTypes. The
// Writer decides whether an invalid value is a warning or a
// SchemaViolation, depending on its HighCompatibility option.
func ValidFrameIndexType(s string) bool {
	for _, t := range FrameIndexTypes {
		if s == t {
			return true
		}
	}
	return false
}

// FrameTemplate is the FRAME EFLR's attribute template (§4.7).
func FrameTemplate() []attribute.Spec {
	return []attribute.Spec{
		{Label: "DESCRIPTION", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "CHANNELS", ReprCode: reprcode.OBJREF, Count: 0},
		{Label: "INDEX-TYPE", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "DIRECTION", ReprCode: reprcode.IDENT, Count: 1},
		{Label: "SPACING", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "ENCRYPTED", ReprCode: reprcode.STATUS, Count: 1},
		{Label: "INDEX-MIN", ReprCode: reprcode.FDOUBL, Count: 1},
		{Label: "INDEX-MAX", ReprCode: reprcode.FDOUBL, Count: 1},
	}
}

// FrameConfig describes one FRAME object. pkg/dlis.Writer.AddFrame fills
// SpacingCode, IndexMinCode, IndexMaxCode and IndexUnits from the index
// channel where the caller left them unset (§4.7, SPEC_FULL.md §12's
// direction-inference supplement); that inference runs in pkg/dlis, which
// has access to the raw index samples and the index channel's config this
// package does not. The three codes are kept on the attribute values, but
// the FRAME set encodes SPACING, INDEX-MIN and INDEX-MAX with its
// template's FDOUBL code whatever they say. IndexUnits is carried on the
// SPACING/INDEX-MIN/INDEX-MAX attribute values themselves rather than as a
// separate template attribute, matching the source schema's
// assign_if_none(at, key='units', ...) on each of those three attributes.
type FrameConfig struct {
	Name         string
	Description  string
	Channels     []reprcode.ObjRef
	IndexType    string
	Direction    string
	SpacingCode  reprcode.Code
	Spacing      interface{}
	Encrypted    bool
	IndexMinCode reprcode.Code
	IndexMin     interface{}
	IndexMaxCode reprcode.Code
	IndexMax     interface{}
	IndexUnits   string
}

// NewFrame builds a FRAME item's eflr.Item in template order.
func NewFrame(c FrameConfig) (*eflr.Item, error) {
	if err := requireName("FRAME", c.Name); err != nil {
		return nil, err
	}

	spacingCode := c.SpacingCode
	if spacingCode == 0 {
		spacingCode = reprcode.FDOUBL
	}
	minCode := c.IndexMinCode
	if minCode == 0 {
		minCode = reprcode.FDOUBL
	}
	maxCode := c.IndexMaxCode
	if maxCode == 0 {
		maxCode = reprcode.FDOUBL
	}

	spacing := eflr.Absent(spacingCode)
	if c.Spacing != nil {
		spacing = eflr.ScalarWithUnits(spacingCode, c.Spacing, c.IndexUnits)
	}
	indexMin := eflr.Absent(minCode)
	if c.IndexMin != nil {
		indexMin = eflr.ScalarWithUnits(minCode, c.IndexMin, c.IndexUnits)
	}
	indexMax := eflr.Absent(maxCode)
	if c.IndexMax != nil {
		indexMax = eflr.ScalarWithUnits(maxCode, c.IndexMax, c.IndexUnits)
	}

	values := []eflr.AttributeValue{
		scalarOrAbsentString(reprcode.ASCII, c.Description),
		vectorOrAbsentObjRef(reprcode.OBJREF, c.Channels),
		scalarOrAbsentString(reprcode.IDENT, c.IndexType),
		scalarOrAbsentString(reprcode.IDENT, c.Direction),
		spacing,
		eflr.Scalar(reprcode.STATUS, c.Encrypted),
		indexMin,
		indexMax,
	}
	return eflr.NewItem(c.Name, values), nil
}
