package segmenter

import (
	"testing"

	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/logicalrecord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodedRecord is what reconstruct recovers from a packed byte stream.
type decodedRecord struct {
	isEFLR bool
	lrType consts.LogicalRecordType
	body   []byte
}

// reconstruct walks a Visible-Record-framed stream and reassembles the
// original logical records, concatenating fragments across segments and
// visible records. It mirrors a minimal reader, used only to verify Pack's
// output round-trips.
func reconstruct(t *testing.T, stream []byte) []decodedRecord {
	t.Helper()
	var records []decodedRecord
	var current *decodedRecord
	pos := 0
	for pos < len(stream) {
		require.GreaterOrEqual(t, len(stream)-pos, 4, "truncated visible record header")
		vrLen := int(stream[pos])<<8 | int(stream[pos+1])
		require.Equal(t, byte(consts.VisibleRecordFFByte), stream[pos+2])
		require.Equal(t, byte(consts.VisibleRecordVersByte), stream[pos+3])
		vrEnd := pos + vrLen
		pos += 4

		for pos < vrEnd {
			require.LessOrEqual(t, pos+4, vrEnd)
			length := int(stream[pos])<<8 | int(stream[pos+1])
			attrs := logicalrecord.DecodeSegmentAttributes(stream[pos+2])
			lrType := consts.LogicalRecordType(stream[pos+3])
			segStart := pos + 4
			segBodyEnd := pos + length
			bodyBytes := stream[segStart:segBodyEnd]
			if attrs.HasPadding {
				bodyBytes = bodyBytes[:len(bodyBytes)-1]
			}

			if !attrs.HasPredecessor {
				current = &decodedRecord{isEFLR: attrs.IsEFLR, lrType: lrType}
			}
			current.body = append(current.body, bodyBytes...)
			if !attrs.HasSuccessor {
				records = append(records, *current)
				current = nil
			}

			pos = segBodyEnd
		}
		require.Equal(t, vrEnd, pos)
	}
	return records
}

func TestPackSmallRecordRoundTrip(t *testing.T) {
	s, err := New(consts.VisibleRecordMinLength)
	require.NoError(t, err)

	rec := logicalrecord.Record{IsEFLR: true, Type: consts.LRTypeChannel, Body: []byte("hello")}
	stream, err := s.Pack([]logicalrecord.Record{rec})
	require.NoError(t, err)

	got := reconstruct(t, stream)
	require.Len(t, got, 1)
	assert.Equal(t, rec.Body, got[0].body)
	assert.True(t, got[0].isEFLR)
	assert.Equal(t, rec.Type, got[0].lrType)
}

func TestPackFragmentsAcrossVisibleRecords(t *testing.T) {
	s, err := New(consts.VisibleRecordMinLength) // 20 bytes per VR, 4 header -> 16 bytes of segments
	require.NoError(t, err)

	body := make([]byte, 200)
	for i := range body {
		body[i] = byte(i)
	}
	rec := logicalrecord.Record{IsEFLR: false, Type: consts.LRTypeFrameData, Body: body}
	stream, err := s.Pack([]logicalrecord.Record{rec})
	require.NoError(t, err)

	got := reconstruct(t, stream)
	require.Len(t, got, 1)
	assert.Equal(t, body, got[0].body)
}

func TestPackMultipleRecords(t *testing.T) {
	s, err := New(64)
	require.NoError(t, err)

	recs := []logicalrecord.Record{
		{IsEFLR: true, Type: consts.LRTypeFileHeader, Body: []byte("file-header-body")},
		{IsEFLR: true, Type: consts.LRTypeOrigin, Body: []byte("origin-body-data-longer-than-one-segment-maybe")},
		{IsEFLR: false, Type: consts.LRTypeFrameData, Body: []byte("framedata")},
	}
	stream, err := s.Pack(recs)
	require.NoError(t, err)

	got := reconstruct(t, stream)
	require.Len(t, got, len(recs))
	for i, r := range recs {
		assert.Equal(t, r.Body, got[i].body, "record %d", i)
	}
}

func TestEveryVisibleRecordLengthEvenAndBounded(t *testing.T) {
	s, err := New(32)
	require.NoError(t, err)
	body := make([]byte, 500)
	stream, err := s.Pack([]logicalrecord.Record{{IsEFLR: true, Type: consts.LRTypeChannel, Body: body}})
	require.NoError(t, err)

	pos := 0
	for pos < len(stream) {
		vrLen := int(stream[pos])<<8 | int(stream[pos+1])
		assert.Equal(t, 0, vrLen%2, "visible record length must be even")
		assert.LessOrEqual(t, vrLen, consts.VisibleRecordMaxLength)
		assert.GreaterOrEqual(t, vrLen, consts.VisibleRecordMinLength)
		pos += vrLen
	}
}

func TestNewRejectsOddLength(t *testing.T) {
	_, err := New(21)
	assert.Error(t, err)
}

func TestNewRejectsOutOfBounds(t *testing.T) {
	_, err := New(4)
	assert.Error(t, err)
	_, err = New(1 << 20)
	assert.Error(t, err)
}

func TestEmptyRecordListProducesNoBytes(t *testing.T) {
	s, err := New(consts.VisibleRecordMinLength)
	require.NoError(t, err)
	stream, err := s.Pack(nil)
	require.NoError(t, err)
	assert.Empty(t, stream)
}
