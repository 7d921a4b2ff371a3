package eflr

import (
	"testing"

	"github.com/bgrewell/dlis-kit/pkg/attribute"
	"github.com/bgrewell/dlis-kit/pkg/reprcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func template() []attribute.Spec {
	return []attribute.Spec{
		{Label: "LONG-NAME", ReprCode: reprcode.ASCII, Count: 1},
		{Label: "DIMENSION", ReprCode: reprcode.ULONG, Count: 0},
	}
}

func TestEmptySetProducesNoBytes(t *testing.T) {
	s := NewSet("CHANNEL", "", template())
	b, err := s.EncodeBody(1)
	require.NoError(t, err)
	assert.Nil(t, b)
}

func TestSetEncodeBodyNonEmpty(t *testing.T) {
	s := NewSet("CHANNEL", "", template())
	it := NewItem("DEPTH", []AttributeValue{
		Scalar(reprcode.ASCII, "Depth channel"),
		Vector(reprcode.ULONG, []interface{}{1}),
	})
	require.NoError(t, s.AddItem(it))

	b, err := s.EncodeBody(1)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestAddItemWrongArity(t *testing.T) {
	s := NewSet("CHANNEL", "", template())
	it := NewItem("DEPTH", []AttributeValue{Scalar(reprcode.ASCII, "only one value")})
	assert.Error(t, s.AddItem(it))
}

func TestCopyNumberAssignedOnDuplicateName(t *testing.T) {
	s := NewSet("CHANNEL", "", template())
	a := NewItem("DEPTH", []AttributeValue{Scalar(reprcode.ASCII, "a"), Absent(reprcode.ULONG)})
	b := NewItem("DEPTH", []AttributeValue{Scalar(reprcode.ASCII, "b"), Absent(reprcode.ULONG)})
	require.NoError(t, s.AddItem(a))
	require.NoError(t, s.AddItem(b))
	assert.Equal(t, uint8(0), a.CopyNumber())
	assert.Equal(t, uint8(1), b.CopyNumber())
}

func TestRegistryDuplicateSetRejected(t *testing.T) {
	r := NewRegistry()
	s1 := NewSet("ORIGIN", "", template())
	require.NoError(t, r.AddSet(s1))
	s2 := NewSet("ORIGIN", "", template())
	assert.Error(t, r.AddSet(s2))
}

func TestRegistryGetOrCreateReturnsExisting(t *testing.T) {
	r := NewRegistry()
	s1 := r.GetOrCreateSet("CHANNEL", "", template())
	s2 := r.GetOrCreateSet("CHANNEL", "", template())
	assert.Same(t, s1, s2)
}

func TestRegistryReset(t *testing.T) {
	r := NewRegistry()
	r.GetOrCreateSet("CHANNEL", "", template())
	require.Len(t, r.Sets(), 1)
	r.Reset()
	assert.Empty(t, r.Sets())
}
