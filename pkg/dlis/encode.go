package dlis

import (
	"fmt"
	"io"

	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/bgrewell/dlis-kit/pkg/logicalrecord"
	"github.com/bgrewell/dlis-kit/pkg/schema"
	"github.com/bgrewell/dlis-kit/pkg/segmenter"
	"github.com/bgrewell/dlis-kit/pkg/sul"
)

// Record describes one already-assembled logical record, the unit
// cmd/dlisplan inspects to print a file's planned layout before any bytes
// are written (SPEC_FULL.md §12).
type Record struct {
	SetType string
	IsEFLR  bool
	Type    consts.LogicalRecordType
	Size    int
}

// assemble builds the complete ordered sequence of logicalrecord.Record the
// Segmenter packs: the FILE-HEADER, then ORIGIN, then every other
// registered EFLRSet in registration order, then every buffered IFLR
// FrameData record (§5, §6.1). Every EFLRSet with zero items is skipped, the
// same "empty set produces no bytes" rule eflr.Set.EncodeBody enforces.
func (w *Writer) assemble() ([]logicalrecord.Record, error) {
	if w.fileHeader == nil {
		return nil, &ConfigConflict{Item: "FILE-HEADER", Err: fmt.Errorf("SetFileHeader was never called")}
	}
	if !w.originSet {
		return nil, &ConfigConflict{Item: "ORIGIN", Err: fmt.Errorf("SetOrigin was never called")}
	}

	var out []logicalrecord.Record

	fhBody, err := schema.EncodeFileHeader(*w.fileHeader)
	if err != nil {
		return nil, &SchemaViolation{Item: "FILE-HEADER", Err: err}
	}
	out = append(out, logicalrecord.Record{IsEFLR: true, Type: consts.LRTypeFileHeader, Body: fhBody})
	w.logger().LogicalRecord(consts.SetTypeFileHeader, len(fhBody))

	for _, set := range w.registry.Sets() {
		body, err := set.EncodeBody(w.originRef)
		if err != nil {
			return nil, &SchemaViolation{Item: set.SetType(), Err: err}
		}
		if len(body) == 0 {
			continue
		}
		out = append(out, logicalrecord.Record{
			IsEFLR: true,
			Type:   consts.LRTypeForSetType(set.SetType()),
			Body:   body,
		})
		w.logger().LogicalRecord(set.SetType(), len(body))
	}

	if len(w.iflrRecords) > 0 {
		w.logger().Debug("buffered frame data", "records", len(w.iflrRecords))
	}
	out = append(out, w.iflrRecords...)
	return out, nil
}

// Write assembles the file's complete logical record sequence, packs it
// into Visible Records via pkg/segmenter, prefixes the Storage Unit Label,
// and writes the result to dst in OutputChunkSize-byte pieces, invoking the
// configured ProgressCallback after each chunk (§3.5, §3.6, §4.8). Per §4.8
// this is a pure batch operation: any error returned here means dst
// received either none of the encoded bytes or, if a chunk write itself
// failed partway through, an unspecified partial prefix — callers that need
// an atomic on-disk result should write to a temporary file and rename it
// into place only after Write returns nil.
func (w *Writer) Write(dst io.Writer) error {
	records, err := w.assemble()
	if err != nil {
		return err
	}

	seg, err := segmenter.New(w.opts.VisibleRecordLength)
	if err != nil {
		return &ConfigConflict{Item: "VisibleRecordLength", Err: err}
	}
	packed, err := seg.Pack(records)
	if err != nil {
		return &InvariantBroken{Err: err}
	}
	w.logger().VisibleRecordStream(len(packed), len(records))

	sulBytes, err := sul.StorageUnitLabel{
		StorageUnitSequenceNumber: 1,
		MaxRecordLength:           w.opts.VisibleRecordLength,
		StorageSetIdentifier:      "",
	}.Encode()
	if err != nil {
		return &InvariantBroken{Err: err}
	}

	full := append(sulBytes, packed...)
	total := int64(len(full))
	chunk := w.opts.OutputChunkSize
	if chunk <= 0 {
		chunk = total
	}

	var written int64
	for written < total {
		end := written + chunk
		if end > total {
			end = total
		}
		n, err := dst.Write(full[written:end])
		written += int64(n)
		if err != nil {
			return &IOError{Err: err}
		}
		if w.opts.Progress != nil {
			w.opts.Progress(written, total, len(records), len(records))
		}
	}
	return nil
}

// Plan returns the planned logical record sequence without writing any
// bytes, the data cmd/dlisplan renders as a layout preview (SPEC_FULL.md
// §12, modeled on the teacher's pkg/iso9660/info planned-layout printer).
// Unlike assemble, it labels each record with the set type (or FRAME-DATA)
// that produced it, since the layout printer's whole job is to show that.
func (w *Writer) Plan() ([]Record, error) {
	if w.fileHeader == nil {
		return nil, &ConfigConflict{Item: "FILE-HEADER", Err: fmt.Errorf("SetFileHeader was never called")}
	}
	if !w.originSet {
		return nil, &ConfigConflict{Item: "ORIGIN", Err: fmt.Errorf("SetOrigin was never called")}
	}

	var plan []Record

	fhBody, err := schema.EncodeFileHeader(*w.fileHeader)
	if err != nil {
		return nil, &SchemaViolation{Item: "FILE-HEADER", Err: err}
	}
	plan = append(plan, Record{SetType: consts.SetTypeFileHeader, IsEFLR: true, Type: consts.LRTypeFileHeader, Size: len(fhBody)})

	for _, set := range w.registry.Sets() {
		body, err := set.EncodeBody(w.originRef)
		if err != nil {
			return nil, &SchemaViolation{Item: set.SetType(), Err: err}
		}
		if len(body) == 0 {
			continue
		}
		plan = append(plan, Record{
			SetType: set.SetType(),
			IsEFLR:  true,
			Type:    consts.LRTypeForSetType(set.SetType()),
			Size:    len(body),
		})
	}

	for _, r := range w.iflrRecords {
		plan = append(plan, Record{SetType: "FRAME-DATA", IsEFLR: false, Type: r.Type, Size: len(r.Body)})
	}
	return plan, nil
}
