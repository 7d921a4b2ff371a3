package attribute

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// Spec declares one attribute slot in an EFLRSet's template (§4.2): its
// label, the representation code values are encoded with, and its default
// cardinality (1 for scalar attributes, >1 for a fixed-size vector, 0 for a
// variable-length vector whose count is restated on every item).
type Spec struct {
	Label    string
	ReprCode reprcode.Code
	Count    int
	Units    string
}

// EncodeTemplate writes one template attribute component: a descriptor
// byte, the attribute's IDENT label, its representation code, and, when
// spec.Units is set, a fixed units string every item of this type shares
// (e.g. a schema that always reports depth in "m"). RP66 template
// attributes name the attribute and its representation code once;
// individual items then only need to carry values (§4.2, §4.4). An
// attribute whose units vary per item (Frame's SPACING/INDEX-MIN/INDEX-MAX,
// inherited from whichever channel indexes the frame) leaves spec.Units
// empty and carries its units on the object's AttributeValue instead.
func EncodeTemplate(spec Spec) ([]byte, error) {
	labelBytes, err := reprcode.EncodeIdent(spec.Label)
	if err != nil {
		return nil, fmt.Errorf("attribute: template label: %w", err)
	}
	reprByte, err := reprcode.EncodeFixed(reprcode.USHORT, uint8(spec.ReprCode))
	if err != nil {
		return nil, fmt.Errorf("attribute: template representation code: %w", err)
	}

	flags := uint8(consts.AttrHasLabelMask | consts.AttrHasReprCodeMask)
	var unitsBytes []byte
	if spec.Units != "" {
		flags |= consts.AttrHasUnitsMask
		unitsBytes, err = reprcode.EncodeIdent(spec.Units)
		if err != nil {
			return nil, fmt.Errorf("attribute: template units: %w", err)
		}
	}

	desc := descriptor(consts.ComponentRoleAttribute, flags)
	b := make([]byte, 0, 1+len(labelBytes)+len(reprByte)+len(unitsBytes))
	b = append(b, desc)
	b = append(b, labelBytes...)
	b = append(b, reprByte...)
	b = append(b, unitsBytes...)
	return b, nil
}

// EncodeAbsent writes the component for an attribute an item does not set:
// a bare descriptor byte with no characteristic flags and no following
// bytes (§4.2's "no value" case).
func EncodeAbsent() []byte {
	return []byte{descriptor(consts.ComponentRoleAttribute, 0)}
}

// EncodeValue writes one item's attribute component: a descriptor byte
// followed by an optional count (when values is not a single scalar), an
// optional units override, and the encoded value bytes. values holds one
// element for a scalar attribute and any number for a vector attribute; an
// empty values encodes as absent regardless of units. units is only
// emitted when non-empty, for the attributes whose units are inherited
// per-item rather than fixed by the template (§4.7).
func EncodeValue(reprCode reprcode.Code, values []interface{}, units string) ([]byte, error) {
	if len(values) == 0 {
		return EncodeAbsent(), nil
	}

	flags := uint8(consts.AttrHasValueMask)
	var countBytes []byte
	if len(values) != 1 {
		flags |= consts.AttrHasCountMask
		cb, err := reprcode.EncodeUVARI(uint32(len(values)))
		if err != nil {
			return nil, fmt.Errorf("attribute: value count: %w", err)
		}
		countBytes = cb
	}

	var unitsBytes []byte
	if units != "" {
		flags |= consts.AttrHasUnitsMask
		ub, err := reprcode.EncodeIdent(units)
		if err != nil {
			return nil, fmt.Errorf("attribute: value units: %w", err)
		}
		unitsBytes = ub
	}

	var valueBytes []byte
	for i, v := range values {
		vb, err := reprcode.Encode(reprCode, v)
		if err != nil {
			return nil, fmt.Errorf("attribute: value %d: %w", i, err)
		}
		valueBytes = append(valueBytes, vb...)
	}

	b := make([]byte, 0, 1+len(countBytes)+len(unitsBytes)+len(valueBytes))
	b = append(b, descriptor(consts.ComponentRoleAttribute, flags))
	b = append(b, countBytes...)
	b = append(b, unitsBytes...)
	b = append(b, valueBytes...)
	return b, nil
}
