package logicalrecord

import (
	"testing"

	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentAttributesRoundTrip(t *testing.T) {
	a := SegmentAttributes{IsEFLR: true, HasPredecessor: false, HasSuccessor: true}
	b := a.Encode()
	got := DecodeSegmentAttributes(b)
	assert.Equal(t, a, got)
}

func TestSegmentAttributesBitOrder(t *testing.T) {
	// EFLR, first segment, no successor: only the IsEFLR bit set -> 0x80.
	a := SegmentAttributes{IsEFLR: true}
	assert.Equal(t, byte(0x80), a.Encode())
}

func TestEncodeHeaderLength(t *testing.T) {
	h, err := EncodeHeader(42, SegmentAttributes{IsEFLR: true}, consts.LRTypeChannel)
	require.NoError(t, err)
	require.Len(t, h, consts.LogicalRecordSegmentHeaderSize)
	assert.Equal(t, byte(0), h[0])
	assert.Equal(t, byte(42), h[1])
	assert.Equal(t, byte(0x80), h[2])
	assert.Equal(t, byte(consts.LRTypeChannel), h[3])
}

func TestFrameDataPayloadByteCount(t *testing.T) {
	frame := reprcode.OName{OriginReference: 1, CopyNumber: 0, Name: "MAIN"}
	channels := []ChannelLayout{
		{ReprCode: reprcode.FDOUBL, Samples: 1},
		{ReprCode: reprcode.FDOUBL, Samples: 128},
	}
	row := [][]interface{}{
		{1.0},
		make([]interface{}, 128),
	}
	for i := range row[1] {
		row[1][i] = float64(i)
	}

	b, err := EncodeFrameData(frame, 1, channels, row)
	require.NoError(t, err)

	frameNameBytes, _ := reprcode.EncodeOBNAME(frame)
	frameNumberBytes, _ := reprcode.EncodeUVARI(1) // UVARI frame_number (§4.5), one byte for frame 1
	expectedLen := len(frameNameBytes) + len(frameNumberBytes) + 8*1 + 8*128
	assert.Len(t, b, expectedLen)
}

func TestFrameDataFrameNumberIsUVARI(t *testing.T) {
	frame := reprcode.OName{OriginReference: 1, Name: "MAIN"}
	channels := []ChannelLayout{{ReprCode: reprcode.FDOUBL, Samples: 1}}

	// Frame number 200 needs two UVARI bytes, not the four a fixed ULONG
	// would burn; a regression back to ULONG would make this assertion fail.
	b, err := EncodeFrameData(frame, 200, channels, [][]interface{}{{1.0}})
	require.NoError(t, err)

	frameNameBytes, _ := reprcode.EncodeOBNAME(frame)
	frameNumberBytes, _ := reprcode.EncodeUVARI(200)
	require.Len(t, frameNumberBytes, 2)
	assert.Len(t, b, len(frameNameBytes)+len(frameNumberBytes)+8)
}

func TestFrameDataArityMismatch(t *testing.T) {
	frame := reprcode.OName{OriginReference: 1, Name: "MAIN"}
	channels := []ChannelLayout{{ReprCode: reprcode.FDOUBL, Samples: 1}}
	_, err := EncodeFrameData(frame, 1, channels, [][]interface{}{{1.0}, {2.0}})
	assert.Error(t, err)
}
