// Package sourcedata defines the bulk-numeric-array adapter the writer pulls
// rows from (§6.2): an opaque iterator over row chunks, kept external to the
// encoding core so the writer never depends on HDF5, NumPy, or any other
// concrete storage format. An in-memory implementation is provided for
// tests and for the CLI demo's synthetic data generator (SPEC_FULL.md §12).
package sourcedata

import "fmt"

// Adapter is the external collaborator a Writer pulls row chunks from for
// one Frame's IFLR (FrameData) payloads. Implementations are free to back
// it with HDF5, in-memory arrays, or dict-of-arrays storage; the writer
// treats it as opaque (§6.2).
type Adapter interface {
	// NRows returns the total number of rows (frames) available.
	NRows() int

	// ChannelNames returns the adapter's channel names in the order
	// samples for each row are laid out by LoadChunk. It returns names
	// only; no mapping from Channel name to dataset key is exposed.
	ChannelNames() []string

	// LoadChunk fills a structured row block for rows [start, stop). The
	// returned slice has stop-start rows; each row is a slice with one
	// element per channel in ChannelNames order, and that element is
	// itself a slice of the channel's per-row sample values (length equal
	// to the channel's declared dimension product).
	LoadChunk(start, stop int) ([][][]interface{}, error)
}

// KnownDTypes is implemented by adapters that can report an explicit
// per-channel data type ahead of writing (§6.2's optional known_dtypes()).
// pkg/dlis.Writer does not consult it: Channel representation codes come
// from ChannelConfig.ReprCode.
type KnownDTypes interface {
	KnownDTypes() map[string]string
}

// InMemory is the simplest Adapter: every channel's full column is already
// resident as a Go slice. It is the adapter used by the CLI demo and by
// tests that don't need chunked-loading behavior exercised.
type InMemory struct {
	names    []string
	columns  map[string][][]interface{}
	nRows    int
	dtypes   map[string]string
}

// NewInMemory builds an InMemory adapter from column data: columns maps a
// channel name to its rows, each row itself a slice of sample values (more
// than one only for multi-sample-per-frame channels). Every column must
// have the same row count.
func NewInMemory(order []string, columns map[string][][]interface{}) (*InMemory, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("sourcedata: in-memory adapter requires at least one channel")
	}
	n := -1
	for _, name := range order {
		col, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("sourcedata: no column registered for channel %q", name)
		}
		if n == -1 {
			n = len(col)
		} else if len(col) != n {
			return nil, fmt.Errorf("sourcedata: channel %q has %d rows, expected %d", name, len(col), n)
		}
	}
	return &InMemory{names: order, columns: columns, nRows: n}, nil
}

// WithDTypes attaches explicit per-channel dtype hints, surfaced through
// KnownDTypes.
func (a *InMemory) WithDTypes(dtypes map[string]string) *InMemory {
	a.dtypes = dtypes
	return a
}

// NRows implements Adapter.
func (a *InMemory) NRows() int { return a.nRows }

// ChannelNames implements Adapter.
func (a *InMemory) ChannelNames() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// LoadChunk implements Adapter.
func (a *InMemory) LoadChunk(start, stop int) ([][][]interface{}, error) {
	if start < 0 || stop > a.nRows || start > stop {
		return nil, fmt.Errorf("sourcedata: chunk [%d, %d) out of range [0, %d)", start, stop, a.nRows)
	}
	rows := make([][][]interface{}, stop-start)
	for i := range rows {
		row := make([][]interface{}, len(a.names))
		for j, name := range a.names {
			row[j] = a.columns[name][start+i]
		}
		rows[i] = row
	}
	return rows, nil
}

// KnownDTypes implements the optional KnownDTypes interface.
func (a *InMemory) KnownDTypes() map[string]string {
	return a.dtypes
}
