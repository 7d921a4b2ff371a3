package dlis

import (
	"context"
	"fmt"
	"sort"

	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/logicalrecord"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
	"github.com/bgrewell/dlis-kit/pkg/schema"
	"github.com/bgrewell/dlis-kit/pkg/sourcedata"
)

// recordChannelLayout stashes a channel's config by name after AddChannel
// registers its CHANNEL object, so a later AddFrame/WriteFrameData can
// recover each channel's representation code and per-frame sample count.
func (w *Writer) recordChannelLayout(name string, c schema.ChannelConfig) {
	if w.channels == nil {
		w.channels = map[string]schema.ChannelConfig{}
	}
	w.channels[name] = c
}

// channelLayoutsFor resolves a Frame's ordered channel references into the
// ChannelLayout slice logicalrecord.EncodeFrameData needs.
func (w *Writer) channelLayoutsFor(refs []reprcode.ObjRef) ([]logicalrecord.ChannelLayout, error) {
	layouts := make([]logicalrecord.ChannelLayout, len(refs))
	for i, ref := range refs {
		cc, ok := w.channels[ref.Name.Name]
		if !ok {
			return nil, &SchemaViolation{Item: ref.Name.Name, Err: fmt.Errorf("frame channel %q was never added with AddChannel", ref.Name.Name)}
		}
		layouts[i] = logicalrecord.ChannelLayout{ReprCode: cc.ReprCode, Samples: cc.Samples()}
	}
	return layouts, nil
}

// AddFrame registers one FRAME object. indexSamples, the raw scalar samples
// of the first channel in c.Channels (the index channel, §4.5), drives the
// direction/spacing/index-min/index-max inference SPEC_FULL.md's §12
// supplement calls for: a Frame's own schema package has no access to raw
// sample data, so that inference lives here instead (see pkg/schema/frame.go's
// doc comment). The index channel's Units is likewise inherited onto
// SPACING/INDEX-MIN/INDEX-MAX when c.IndexUnits is left unset, matching the
// original schema's per-attribute assign_if_none(..., key='units', ...).
func (w *Writer) AddFrame(c schema.FrameConfig, indexSamples []float64) (reprcode.ObjRef, error) {
	if len(c.Channels) == 0 {
		return reprcode.ObjRef{}, &ConfigConflict{Item: c.Name, Err: fmt.Errorf("frame requires at least one channel")}
	}
	indexName := c.Channels[0].Name.Name
	indexChannel, ok := w.channels[indexName]
	if !ok {
		return reprcode.ObjRef{}, &SchemaViolation{Item: indexName, Err: fmt.Errorf("frame index channel %q was never added with AddChannel", indexName)}
	}

	if c.Direction == "" && len(indexSamples) >= 2 {
		c.Direction = inferDirection(indexSamples)
	}
	if c.SpacingCode == 0 {
		c.SpacingCode = indexChannel.ReprCode
	}
	if c.IndexMinCode == 0 {
		c.IndexMinCode = indexChannel.ReprCode
	}
	if c.IndexMaxCode == 0 {
		c.IndexMaxCode = indexChannel.ReprCode
	}
	if c.IndexUnits == "" {
		c.IndexUnits = indexChannel.Units
	}
	if len(indexSamples) > 0 {
		lo, hi := indexSamples[0], indexSamples[0]
		for _, v := range indexSamples {
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if c.IndexMin == nil {
			c.IndexMin = lo
		}
		if c.IndexMax == nil {
			c.IndexMax = hi
		}
		if c.Spacing == nil && len(indexSamples) >= 2 {
			c.Spacing = medianDelta(indexSamples)
		}
	}
	if c.IndexType != "" && !schema.ValidFrameIndexType(c.IndexType) {
		if w.opts.HighCompatibility {
			return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Attribute: "INDEX-TYPE", Err: fmt.Errorf("%q is not a standard frame index type", c.IndexType)}
		}
		w.logger().Info("non-standard frame index type", "frame", c.Name, "indexType", c.IndexType)
	}

	layouts, err := w.channelLayoutsFor(c.Channels)
	if err != nil {
		return reprcode.ObjRef{}, err
	}

	item, err := schema.NewFrame(c)
	if err != nil {
		return reprcode.ObjRef{}, &SchemaViolation{Item: c.Name, Err: err}
	}
	ref, err := w.addObject(consts.SetTypeFrame, schema.FrameTemplate(), item)
	if err != nil {
		return reprcode.ObjRef{}, err
	}

	if w.frames == nil {
		w.frames = map[string]*frameState{}
	}
	w.frames[c.Name] = &frameState{name: ref.Name, channels: layouts, nextNumber: 1}

	if w.frameChannelOrder == nil {
		w.frameChannelOrder = map[string][]string{}
	}
	names := make([]string, len(c.Channels))
	for i, r := range c.Channels {
		names[i] = r.Name.Name
	}
	w.frameChannelOrder[c.Name] = names
	return ref, nil
}

// inferDirection classifies an index as INCREASING or DECREASING by the
// sign of the median sample-to-sample delta, robust to the occasional
// out-of-order sample a monotonicity check on the raw deltas is not (§4.5,
// SPEC_FULL.md §12).
func inferDirection(samples []float64) string {
	if medianDelta(samples) < 0 {
		return "DECREASING"
	}
	return "INCREASING"
}

func medianDelta(samples []float64) float64 {
	deltas := make([]float64, 0, len(samples)-1)
	for i := 1; i < len(samples); i++ {
		deltas = append(deltas, samples[i]-samples[i-1])
	}
	sort.Float64s(deltas)
	n := len(deltas)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return deltas[n/2]
	}
	return (deltas[n/2-1] + deltas[n/2]) / 2
}

// WriteFrameData pulls every row from src in InputChunkSize-row chunks and
// appends one IFLR FrameData record per row to the Writer's buffered output,
// in adapter row order (§4.5, §6.1). frameName must already have been
// registered with AddFrame. The channel order src.ChannelNames() reports is
// matched to the frame's declared channel order by name.
func (w *Writer) WriteFrameData(ctx context.Context, frameName string, src sourcedata.Adapter) error {
	fs, ok := w.frames[frameName]
	if !ok {
		return &ConfigConflict{Item: frameName, Err: fmt.Errorf("frame %q was never added with AddFrame", frameName)}
	}

	srcNames := src.ChannelNames()
	colIndex := make(map[string]int, len(srcNames))
	for i, n := range srcNames {
		colIndex[n] = i
	}

	ref, ok := w.frameChannelNames(frameName)
	if !ok {
		return &InvariantBroken{Err: fmt.Errorf("frame %q has no recorded channel order", frameName)}
	}
	order := make([]int, len(ref))
	for i, name := range ref {
		idx, ok := colIndex[name]
		if !ok {
			return &ConfigConflict{Item: frameName, Err: fmt.Errorf("source data has no column for channel %q", name)}
		}
		order[i] = idx
	}

	chunk := w.opts.InputChunkSize
	if chunk <= 0 {
		chunk = src.NRows()
	}
	total := src.NRows()
	for start := 0; start < total; start += chunk {
		select {
		case <-ctx.Done():
			return &IOError{Err: ctx.Err()}
		default:
		}
		stop := start + chunk
		if stop > total {
			stop = total
		}
		rows, err := src.LoadChunk(start, stop)
		if err != nil {
			return &IOError{Err: err}
		}
		for _, row := range rows {
			ordered := make([][]interface{}, len(order))
			for i, idx := range order {
				ordered[i] = row[idx]
			}
			body, err := logicalrecord.EncodeFrameData(fs.name, fs.nextNumber, fs.channels, ordered)
			if err != nil {
				return &EncodingOverflow{Item: frameName, Err: err}
			}
			fs.nextNumber++
			w.iflrRecords = append(w.iflrRecords, logicalrecord.Record{
				IsEFLR: false,
				Type:   consts.LRTypeFrameData,
				Body:   body,
			})
		}
	}
	return nil
}

// frameChannelOrder, kept alongside frameState, tracks the channel names (in
// template order) a Frame was registered with, so WriteFrameData can map
// adapter columns onto them by name instead of index.
func (w *Writer) frameChannelNames(frameName string) ([]string, bool) {
	names, ok := w.frameChannelOrder[frameName]
	return names, ok
}
