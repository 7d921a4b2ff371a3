package logicalrecord

import "github.com/bgrewell/dlis-kit/pkg/consts"

// Record is one unfragmented logical record: its type code, whether it is
// an EFLR or IFLR, and its already-encoded body bytes. The Segmenter
// (pkg/segmenter) is responsible for splitting Body across one or more
// Logical Record Segments and packing those into Visible Records.
type Record struct {
	IsEFLR bool
	Type   consts.LogicalRecordType
	Body   []byte
}
