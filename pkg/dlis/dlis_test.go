package dlis

import (
	"bytes"
	"context"
	"testing"

	"github.com/bgrewell/dlis-kit/pkg/options"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
	"github.com/bgrewell/dlis-kit/pkg/schema"
	"github.com/bgrewell/dlis-kit/pkg/sourcedata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalWriter(t *testing.T) *Writer {
	t.Helper()
	w := NewWriter()
	require.NoError(t, w.SetFileHeader(schema.FileHeaderConfig{Identifier: "TEST", SequenceNumber: 1}))
	_, err := w.SetOrigin(schema.OriginConfig{Name: "ORIGIN", FileSetNumber: 42})
	require.NoError(t, err)
	return w
}

func TestWriteMinimalFile(t *testing.T) {
	w := minimalWriter(t)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))
	assert.Greater(t, buf.Len(), 80) // SUL alone is 80 bytes
}

func TestWriteRequiresFileHeaderAndOrigin(t *testing.T) {
	w := NewWriter()
	var buf bytes.Buffer
	assert.Error(t, w.Write(&buf))

	require.NoError(t, w.SetFileHeader(schema.FileHeaderConfig{Identifier: "TEST", SequenceNumber: 1}))
	assert.Error(t, w.Write(&buf))
}

func TestSetFileHeaderTwiceIsConfigConflict(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.SetFileHeader(schema.FileHeaderConfig{Identifier: "A", SequenceNumber: 1}))
	err := w.SetFileHeader(schema.FileHeaderConfig{Identifier: "B", SequenceNumber: 2})
	require.Error(t, err)
	var cc *ConfigConflict
	assert.ErrorAs(t, err, &cc)
}

func TestSetOriginTwiceIsInvariantBroken(t *testing.T) {
	w := NewWriter()
	_, err := w.SetOrigin(schema.OriginConfig{Name: "ORIGIN", FileSetNumber: 1})
	require.NoError(t, err)
	_, err = w.SetOrigin(schema.OriginConfig{Name: "ORIGIN", FileSetNumber: 2})
	require.Error(t, err)
	var ib *InvariantBroken
	assert.ErrorAs(t, err, &ib)
}

func TestOriginFileSetNumberDefaultsWhenUnset(t *testing.T) {
	w := NewWriter()
	name, err := w.SetOrigin(schema.OriginConfig{Name: "ORIGIN"})
	require.NoError(t, err)
	assert.NotZero(t, name.OriginReference)
	assert.Equal(t, name.OriginReference, w.OriginReference())
}

func TestAddChannelRequiresRegisteredOrigin(t *testing.T) {
	_, err := NewWriter().AddChannel(schema.ChannelConfig{Name: "DEPTH", ReprCode: reprcode.FDOUBL})
	var cc *ConfigConflict
	assert.ErrorAs(t, err, &cc)

	w := minimalWriter(t)
	ref, err := w.AddChannel(schema.ChannelConfig{Name: "DEPTH", ReprCode: reprcode.FDOUBL})
	require.NoError(t, err)
	assert.Equal(t, "DEPTH", ref.Name.Name)
	assert.Equal(t, "CHANNEL", ref.SetType)
}

func TestFrameDirectionInference(t *testing.T) {
	w := minimalWriter(t)
	depthRef, err := w.AddChannel(schema.ChannelConfig{Name: "DEPTH", ReprCode: reprcode.FDOUBL})
	require.NoError(t, err)

	_, err = w.AddFrame(schema.FrameConfig{
		Name:      "MAIN",
		Channels:  []reprcode.ObjRef{depthRef},
		IndexType: "BOREHOLE-DEPTH",
	}, []float64{100, 90, 80, 70})
	require.NoError(t, err)

	fs := w.frames["MAIN"]
	require.NotNil(t, fs)

	set, ok := w.registry.Lookup("FRAME", "")
	require.True(t, ok)
	assert.Equal(t, []interface{}{"DECREASING"}, set.Items()[0].AttributeValues()[3].Values)
}

func TestAddFrameRequiresKnownChannels(t *testing.T) {
	w := minimalWriter(t)
	_, err := w.AddFrame(schema.FrameConfig{
		Name:     "MAIN",
		Channels: []reprcode.ObjRef{{SetType: "CHANNEL", Name: reprcode.OName{Name: "GHOST"}}},
	}, nil)
	require.Error(t, err)
	var sv *SchemaViolation
	assert.ErrorAs(t, err, &sv)
}

func TestWriteFrameDataEndToEnd(t *testing.T) {
	w := minimalWriter(t)
	timeRef, err := w.AddChannel(schema.ChannelConfig{Name: "TIME", ReprCode: reprcode.FDOUBL})
	require.NoError(t, err)
	rpmRef, err := w.AddChannel(schema.ChannelConfig{Name: "RPM", ReprCode: reprcode.FDOUBL})
	require.NoError(t, err)

	src, err := sourcedata.NewInMemory([]string{"TIME", "RPM"}, map[string][][]interface{}{
		"TIME": {{0.0}, {1.0}, {2.0}},
		"RPM":  {{10.0}, {11.0}, {12.0}},
	})
	require.NoError(t, err)

	_, err = w.AddFrame(schema.FrameConfig{
		Name:      "MAIN",
		Channels:  []reprcode.ObjRef{timeRef, rpmRef},
		IndexType: "TIME",
	}, []float64{0, 1, 2})
	require.NoError(t, err)

	require.NoError(t, w.WriteFrameData(context.Background(), "MAIN", src))
	assert.Len(t, w.iflrRecords, 3)

	var buf bytes.Buffer
	require.NoError(t, w.Write(&buf))
	assert.Greater(t, buf.Len(), 80)
}

func TestResetClearsState(t *testing.T) {
	w := minimalWriter(t)
	_, err := w.AddChannel(schema.ChannelConfig{Name: "DEPTH", ReprCode: reprcode.FDOUBL})
	require.NoError(t, err)

	w.Reset()
	var buf bytes.Buffer
	assert.Error(t, w.Write(&buf))
	assert.False(t, w.originSet)
}

func TestHighCompatibilityRejectsNonStandardIndexType(t *testing.T) {
	w := NewWriter(options.WithHighCompatibility(true))
	require.NoError(t, w.SetFileHeader(schema.FileHeaderConfig{Identifier: "T", SequenceNumber: 1}))
	_, err := w.SetOrigin(schema.OriginConfig{Name: "ORIGIN", FileSetNumber: 1})
	require.NoError(t, err)

	depthRef, err := w.AddChannel(schema.ChannelConfig{Name: "DEPTH", ReprCode: reprcode.FDOUBL})
	require.NoError(t, err)

	_, err = w.AddFrame(schema.FrameConfig{
		Name:      "MAIN",
		Channels:  []reprcode.ObjRef{depthRef},
		IndexType: "NOT-A-REAL-TYPE",
	}, []float64{1, 2, 3})
	require.Error(t, err)
	var sv *SchemaViolation
	assert.ErrorAs(t, err, &sv)
}
