// Package sul encodes the Storage Unit Label (§3.6): the fixed 80-byte
// ASCII record that opens every DLIS file, preceding any Visible Record.
package sul

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/helpers"
)

// StorageUnitLabel holds the five fields RP66 V1 packs into the SUL.
type StorageUnitLabel struct {
	// StorageUnitSequenceNumber is almost always 1; it numbers this file
	// within a multi-file storage set.
	StorageUnitSequenceNumber int
	// MaxRecordLength is the Visible Record length the Segmenter was
	// configured with.
	MaxRecordLength int
	// StorageSetIdentifier is a free-form 60-character description of the
	// storage set.
	StorageSetIdentifier string
}

// Encode writes the label's fixed 80-byte layout: right-justified sequence
// number, the literal DLIS version and structure strings, right-justified
// max record length, and the left-justified, space-padded set identifier.
func (l StorageUnitLabel) Encode() ([]byte, error) {
	if l.StorageUnitSequenceNumber < 0 || l.StorageUnitSequenceNumber > 9999 {
		return nil, fmt.Errorf("sul: storage unit sequence number %d does not fit in 4 digits", l.StorageUnitSequenceNumber)
	}
	if l.MaxRecordLength < consts.VisibleRecordMinLength || l.MaxRecordLength > consts.VisibleRecordMaxLength {
		return nil, fmt.Errorf("sul: max record length %d outside [%d, %d]",
			l.MaxRecordLength, consts.VisibleRecordMinLength, consts.VisibleRecordMaxLength)
	}
	if len(l.StorageSetIdentifier) > consts.SULStorageSetIdentifierSize {
		return nil, fmt.Errorf("sul: storage set identifier exceeds %d characters", consts.SULStorageSetIdentifierSize)
	}

	b := make([]byte, 0, consts.SULSize)
	b = append(b, rightJustifiedDigits(l.StorageUnitSequenceNumber, consts.SULStorageUnitSequenceNumberSize)...)
	b = append(b, helpers.PadString(consts.SULDLISVersion, consts.SULDLISVersionSize)...)
	b = append(b, helpers.PadString(consts.SULStorageUnitStructure, consts.SULStorageUnitStructureSize)...)
	b = append(b, rightJustifiedDigits(l.MaxRecordLength, consts.SULMaximumRecordLengthSize)...)
	b = append(b, helpers.PadString(l.StorageSetIdentifier, consts.SULStorageSetIdentifierSize)...)

	if len(b) != consts.SULSize {
		return nil, fmt.Errorf("sul: encoded label is %d bytes, want %d", len(b), consts.SULSize)
	}
	return b, nil
}

// rightJustifiedDigits renders n as decimal digits, right-justified and
// space-padded to width, matching the File-Header EFLR's SEQUENCE-NUMBER
// convention for numeric fixed-width ASCII fields.
func rightJustifiedDigits(n int, width int) []byte {
	s := fmt.Sprintf("%d", n)
	b := make([]byte, width)
	for i := range b {
		b[i] = ' '
	}
	copy(b[width-len(s):], s)
	return b
}
