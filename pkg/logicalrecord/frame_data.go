package logicalrecord

import (
	"fmt"

	"github.com/bgrewell/dlis-kit/pkg/reprcode"
)

// ChannelLayout describes how one Channel's samples are packed into every
// FrameData body for its Frame: its representation code and how many
// scalar values it contributes per frame (the product of its dimension, §4.7).
type ChannelLayout struct {
	ReprCode Code
	Samples  int
}

// Code is a local alias kept so callers don't need to import pkg/reprcode
// just to build a ChannelLayout.
type Code = reprcode.Code

// EncodeFrameData writes one IFLR FrameData body: the OBNAME of the Frame
// it belongs to, the frame number, and the dense concatenation of every
// channel's sample values, in the order and widths fixed by the Frame's
// channel list (§4.5). Unlike an EFLR, no component descriptors separate
// the values — the reader already knows the layout from the Frame/Channel
// EFLRs.
func EncodeFrameData(frame reprcode.OName, frameNumber uint32, channels []ChannelLayout, row [][]interface{}) ([]byte, error) {
	if len(channels) != len(row) {
		return nil, fmt.Errorf("logicalrecord: frame data has %d channel value slices for %d channels", len(row), len(channels))
	}

	frameNameBytes, err := reprcode.EncodeOBNAME(frame)
	if err != nil {
		return nil, fmt.Errorf("logicalrecord: frame data object name: %w", err)
	}
	frameNumberBytes, err := reprcode.EncodeUVARI(frameNumber)
	if err != nil {
		return nil, fmt.Errorf("logicalrecord: frame data frame number: %w", err)
	}

	b := make([]byte, 0, len(frameNameBytes)+len(frameNumberBytes))
	b = append(b, frameNameBytes...)
	b = append(b, frameNumberBytes...)

	for i, ch := range channels {
		values := row[i]
		if len(values) != ch.Samples {
			return nil, fmt.Errorf("logicalrecord: channel %d expects %d samples, got %d", i, ch.Samples, len(values))
		}
		for j, v := range values {
			vb, err := reprcode.Encode(ch.ReprCode, v)
			if err != nil {
				return nil, fmt.Errorf("logicalrecord: channel %d sample %d: %w", i, j, err)
			}
			b = append(b, vb...)
		}
	}
	return b, nil
}
