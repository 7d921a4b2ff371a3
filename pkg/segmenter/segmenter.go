// Package segmenter packs a stream of logical records into RP66 Visible
// Records (§3.5, §4.6). It deliberately does not follow the source
// implementation's in-place-bytearray-splice strategy of writing every
// logical record first and retroactively inserting Visible Record and
// segment headers afterward (file.py's create_visible_record_dictionary /
// insert_header_bytes_into_raw); §9 flags that approach for replacement.
// Instead, each Logical Record Segment's length is computed from the
// remaining room in the current Visible Record *before* any bytes for it
// are written, so every byte is written exactly once, forward-only.
package segmenter

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/logicalrecord"
)

// Segmenter packs Records into a Visible-Record-framed byte stream.
type Segmenter struct {
	maxVRLength int
}

// New validates maxVRLength against RP66's bounds (even, within
// [VisibleRecordMinLength, VisibleRecordMaxLength]) and returns a Segmenter.
func New(maxVRLength int) (*Segmenter, error) {
	if maxVRLength < consts.VisibleRecordMinLength || maxVRLength > consts.VisibleRecordMaxLength {
		return nil, fmt.Errorf("segmenter: visible record length %d outside [%d, %d]",
			maxVRLength, consts.VisibleRecordMinLength, consts.VisibleRecordMaxLength)
	}
	if maxVRLength%2 != 0 {
		return nil, fmt.Errorf("segmenter: visible record length %d must be even", maxVRLength)
	}
	return &Segmenter{maxVRLength: maxVRLength}, nil
}

// state accumulates the Visible Record currently being filled.
type state struct {
	out []byte
	vr  []byte
}

// remaining returns how many bytes (header + body) are still free in the
// Visible Record currently being filled.
func (s *Segmenter) remaining(st *state) int {
	return s.maxVRLength - 4 /* VR's own length+0xFF01 header */ - len(st.vr)
}

func (s *Segmenter) flush(st *state) {
	if len(st.vr) == 0 {
		return
	}
	length := len(st.vr) + 4
	lengthBytes := []byte{byte(length >> 8), byte(length)}
	st.out = append(st.out, lengthBytes...)
	st.out = append(st.out, consts.VisibleRecordFFByte, consts.VisibleRecordVersByte)
	st.out = append(st.out, st.vr...)
	st.vr = nil
}

// Pack encodes every record into a single Visible-Record-framed byte
// stream, fragmenting each record's body across as many Logical Record
// Segments as needed (§4.6).
func (s *Segmenter) Pack(records []logicalrecord.Record) ([]byte, error) {
	st := &state{}

	for _, rec := range records {
		if err := s.packOne(st, rec); err != nil {
			return nil, err
		}
	}
	s.flush(st)
	return st.out, nil
}

func (s *Segmenter) packOne(st *state, rec logicalrecord.Record) error {
	offset := 0
	bodyLen := len(rec.Body)
	segmentsWritten := 0

	for {
		capacity := s.remaining(st)
		if capacity < consts.LogicalRecordSegmentMinSize {
			s.flush(st)
			capacity = s.maxVRLength - 4
		}

		maxBodyBytes := capacity - consts.LogicalRecordSegmentHeaderSize
		remainingBody := bodyLen - offset

		fragLen := remainingBody
		hasSuccessor := false
		if fragLen > maxBodyBytes {
			fragLen = maxBodyBytes
			hasSuccessor = true
		}

		segLen := consts.LogicalRecordSegmentHeaderSize + fragLen
		hasPadding := false
		if segLen%2 != 0 {
			hasPadding = true
			segLen++
		}
		if segLen > capacity {
			// The parity byte pushed us over budget; trim one body byte
			// and mark this fragment as non-final, leaving the rest for
			// the next segment.
			fragLen--
			hasSuccessor = true
			segLen = consts.LogicalRecordSegmentHeaderSize + fragLen
			hasPadding = segLen%2 != 0
			if hasPadding {
				segLen++
			}
		}
		if segLen > s.maxVRLength-4 {
			return fmt.Errorf("segmenter: visible record length %d too small to hold any fragment of a %d-byte record",
				s.maxVRLength, bodyLen)
		}

		attrs := logicalrecord.SegmentAttributes{
			IsEFLR:         rec.IsEFLR,
			HasPredecessor: segmentsWritten > 0,
			HasSuccessor:   hasSuccessor,
			HasPadding:     hasPadding,
		}
		header, err := logicalrecord.EncodeHeader(uint16(segLen), attrs, rec.Type)
		if err != nil {
			return fmt.Errorf("segmenter: %w", err)
		}

		st.vr = append(st.vr, header...)
		st.vr = append(st.vr, rec.Body[offset:offset+fragLen]...)
		if hasPadding {
			st.vr = append(st.vr, consts.LogicalRecordSegmentPadByte)
		}

		offset += fragLen
		segmentsWritten++
		if !hasSuccessor {
			return nil
		}
	}
}
