package sourcedata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryRequiresAtLeastOneChannel(t *testing.T) {
	_, err := NewInMemory(nil, map[string][][]interface{}{})
	assert.Error(t, err)
}

func TestInMemoryRejectsMismatchedRowCounts(t *testing.T) {
	_, err := NewInMemory([]string{"a", "b"}, map[string][][]interface{}{
		"a": {{1.0}, {2.0}},
		"b": {{1.0}},
	})
	assert.Error(t, err)
}

func TestInMemoryLoadChunk(t *testing.T) {
	a, err := NewInMemory([]string{"time", "rpm"}, map[string][][]interface{}{
		"time": {{0.0}, {1.0}, {2.0}, {3.0}},
		"rpm":  {{10.0}, {11.0}, {12.0}, {13.0}},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, a.NRows())

	rows, err := a.LoadChunk(1, 3)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []interface{}{1.0}, rows[0][0])
	assert.Equal(t, []interface{}{11.0}, rows[0][1])
	assert.Equal(t, []interface{}{2.0}, rows[1][0])
}

func TestInMemoryLoadChunkOutOfRange(t *testing.T) {
	a, err := NewInMemory([]string{"time"}, map[string][][]interface{}{"time": {{0.0}, {1.0}}})
	require.NoError(t, err)
	_, err = a.LoadChunk(0, 5)
	assert.Error(t, err)
	_, err = a.LoadChunk(-1, 1)
	assert.Error(t, err)
}

func TestInMemoryKnownDTypes(t *testing.T) {
	a, err := NewInMemory([]string{"time"}, map[string][][]interface{}{"time": {{0.0}}})
	require.NoError(t, err)
	assert.Nil(t, a.KnownDTypes())
	a.WithDTypes(map[string]string{"time": "float64"})
	assert.Equal(t, "float64", a.KnownDTypes()["time"])
}

func TestGenerateSyntheticShape(t *testing.T) {
	src, err := GenerateSynthetic(SyntheticConfig{NPoints: 50, NImages: 2, NCols: 16})
	require.NoError(t, err)
	assert.Equal(t, 50, src.NRows())

	names := src.ChannelNames()
	assert.Contains(t, names, "time")
	assert.Contains(t, names, "rpm")
	assert.Contains(t, names, "col3")
	assert.Contains(t, names, "image0")
	assert.Contains(t, names, "image1")

	rows, err := src.LoadChunk(0, 1)
	require.NoError(t, err)
	image0Idx := -1
	for i, n := range names {
		if n == "image0" {
			image0Idx = i
		}
	}
	require.GreaterOrEqual(t, image0Idx, 0)
	assert.Len(t, rows[0][image0Idx], 16)
}

func TestGenerateSyntheticDepthBased(t *testing.T) {
	src, err := GenerateSynthetic(SyntheticConfig{NPoints: 10, DepthBased: true})
	require.NoError(t, err)
	assert.Contains(t, src.ChannelNames(), "depth")
}

func TestGenerateSyntheticRequiresPoints(t *testing.T) {
	_, err := GenerateSynthetic(SyntheticConfig{NPoints: 0})
	assert.Error(t, err)
}
