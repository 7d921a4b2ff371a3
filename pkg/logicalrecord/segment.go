// Package logicalrecord implements the Logical Record Segment header and
// the two logical record body kinds: EFLR (wrapping an eflr.Set's encoded
// bytes) and IFLR FrameData (§3.3, §4.3, §4.5).
package logicalrecord

import (
	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// SegmentAttributes models the 8-bit flag byte carried in every Logical
// Record Segment header, in the fixed order RP66 defines (§4.3): whether
// the record is EFLR or IFLR, whether this segment has a predecessor or
// successor (i.e. the logical record was fragmented), and four flags this
// writer never sets (encrypted, has-encryption-packet, has-checksum,
// has-trailing-length) plus whether a padding byte was appended.
type SegmentAttributes struct {
	IsEFLR            bool
	HasPredecessor    bool
	HasSuccessor      bool
	IsEncrypted       bool
	HasEncryptionInfo bool
	HasChecksum       bool
	HasTrailingLength bool
	HasPadding        bool
}

// Encode packs the flags into their single wire byte, most-significant-bit
// first in the order listed on SegmentAttributes.
func (a SegmentAttributes) Encode() byte {
	bits := []bool{
		a.IsEFLR, a.HasPredecessor, a.HasSuccessor, a.IsEncrypted,
		a.HasEncryptionInfo, a.HasChecksum, a.HasTrailingLength, a.HasPadding,
	}
	var b byte
	for _, set := range bits {
		b <<= 1
		if set {
			b |= 1
		}
	}
	return b
}

// DecodeSegmentAttributes unpacks a wire byte back into its flags.
func DecodeSegmentAttributes(b byte) SegmentAttributes {
	bit := func(pos uint) bool { return b&(1<<(7-pos)) != 0 }
	return SegmentAttributes{
		IsEFLR:            bit(0),
		HasPredecessor:    bit(1),
		HasSuccessor:      bit(2),
		IsEncrypted:       bit(3),
		HasEncryptionInfo: bit(4),
		HasChecksum:       bit(5),
		HasTrailingLength: bit(6),
		HasPadding:        bit(7),
	}
}

// EncodeHeader writes a 4-byte Logical Record Segment header: UNORM length,
// the attribute byte, and the USHORT logical-record-type code (§4.3).
func EncodeHeader(length uint16, attrs SegmentAttributes, lrType consts.LogicalRecordType) ([]byte, error) {
	lengthBytes, err := reprcode.EncodeFixed(reprcode.UNORM, length)
	if err != nil {
		return nil, err
	}
	b := make([]byte, 0, consts.LogicalRecordSegmentHeaderSize)
	b = append(b, lengthBytes...)
	b = append(b, attrs.Encode())
	b = append(b, byte(lrType))
	return b, nil
}
