package schema

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/helpers"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// FileHeaderIdentifierLimit is the hard 65-character cap RP66 places on the
// File-Header's ID field (§4.7).
const FileHeaderIdentifierLimit = 65

// fileHeaderSequenceNumberWidth is the fixed width of the SEQUENCE-NUMBER
// value field.
const fileHeaderSequenceNumberWidth = 10

// FileHeaderConfig describes the single object every FILE-HEADER EFLR
// carries.
type FileHeaderConfig struct {
	Identifier     string
	SequenceNumber int
}

// EncodeFileHeader writes the complete FILE-HEADER EFLR body by hand,
// bypassing pkg/attribute and pkg/eflr entirely: unlike every other EFLR,
// the File-Header's SEQUENCE-NUMBER and ID attributes are fixed-width,
// right/left-justified ASCII fields (widths 10 and 65) rather than
// UVARI-length-prefixed ASCII, so the generic Attribute encoder cannot
// produce them (§4.4, §4.7).
func EncodeFileHeader(c FileHeaderConfig) ([]byte, error) {
	if len(c.Identifier) > FileHeaderIdentifierLimit {
		return nil, fmt.Errorf("schema: file header identifier %q exceeds %d characters", c.Identifier, FileHeaderIdentifierLimit)
	}

	var b []byte

	// SET component: role SET, type present, no name (0xF0).
	setType, err := reprcode.EncodeIdent(consts.SetTypeFileHeader)
	if err != nil {
		return nil, err
	}
	b = append(b, byte(consts.ComponentRoleSet<<5)|consts.SetHasTypeMask)
	b = append(b, setType...)

	// TEMPLATE: two attribute components, each with LABEL+REPR-CODE
	// present (descriptor 0b00110100), naming SEQUENCE-NUMBER and ID, both
	// declared as ASCII (repr code 20) even though their actual encoding
	// below is fixed-width, matching the source schema's own template
	// bytes exactly.
	templateDescriptor := byte(consts.ComponentRoleAttribute<<5) | consts.AttrHasLabelMask | consts.AttrHasReprCodeMask
	seqLabel, err := reprcode.EncodeIdent("SEQUENCE-NUMBER")
	if err != nil {
		return nil, err
	}
	idLabel, err := reprcode.EncodeIdent("ID")
	if err != nil {
		return nil, err
	}
	asciiCode, err := reprcode.EncodeFixed(reprcode.USHORT, uint8(reprcode.ASCII))
	if err != nil {
		return nil, err
	}
	b = append(b, templateDescriptor)
	b = append(b, seqLabel...)
	b = append(b, asciiCode...)
	b = append(b, templateDescriptor)
	b = append(b, idLabel...)
	b = append(b, asciiCode...)

	// OBJECT: the File-Header always has exactly one object named "0".
	objName, err := reprcode.EncodeOBNAME(reprcode.OName{OriginReference: 0, CopyNumber: 0, Name: "0"})
	if err != nil {
		return nil, err
	}
	b = append(b, byte(consts.ComponentRoleObject<<5)|consts.ObjectHasNameMask)
	b = append(b, objName...)

	// Values: attribute component with VALUE only (descriptor 0b00100001),
	// followed by the fixed-width field, no length prefix.
	valueDescriptor := byte(consts.ComponentRoleAttribute<<5) | consts.AttrHasValueMask
	b = append(b, valueDescriptor)
	b = append(b, rightJustifyASCII(fmt.Sprintf("%d", c.SequenceNumber), fileHeaderSequenceNumberWidth)...)
	b = append(b, valueDescriptor)
	b = append(b, helpers.PadString(c.Identifier, FileHeaderIdentifierLimit)...)

	return b, nil
}

func rightJustifyASCII(s string, width int) []byte {
	b := make([]byte, width)
	for i := range b {
		b[i] = ' '
	}
	if len(s) > width {
		s = s[len(s)-width:]
	}
	copy(b[width-len(s):], s)
	return b
}
