package attribute

import (
	"testing"

	"github.com/bgrewell/dlis-kit/pkg/reprcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeTemplateFileHeaderSequenceNumber(t *testing.T) {
	// Matches the File-Header EFLR's SEQUENCE-NUMBER template attribute:
	// descriptor 0b00110100 (role ATTRIBUTE, label+repr-code present).
	b, err := EncodeTemplate(Spec{Label: "SEQUENCE-NUMBER", ReprCode: reprcode.ASCII, Count: 1})
	require.NoError(t, err)
	assert.Equal(t, byte(0b00110100), b[0])
}

func TestEncodeAbsent(t *testing.T) {
	b := EncodeAbsent()
	assert.Equal(t, []byte{byte(0b00100000)}, b)
}

func TestEncodeValueScalar(t *testing.T) {
	b, err := EncodeValue(reprcode.ULONG, []interface{}{42}, "")
	require.NoError(t, err)
	assert.Equal(t, byte(0b00100001), b[0])
	assert.Equal(t, []byte{0, 0, 0, 42}, b[1:])
}

func TestEncodeValueVector(t *testing.T) {
	b, err := EncodeValue(reprcode.ULONG, []interface{}{1, 2, 3}, "")
	require.NoError(t, err)
	// COUNT + VALUE flags set.
	assert.Equal(t, byte(0b00101001), b[0])
	// UVARI(3) is one byte, then three 4-byte ULONGs.
	assert.Equal(t, byte(3), b[1])
	assert.Len(t, b, 1+1+3*4)
}

func TestEncodeValueEmptyIsAbsent(t *testing.T) {
	b, err := EncodeValue(reprcode.ULONG, nil, "")
	require.NoError(t, err)
	assert.Equal(t, EncodeAbsent(), b)
}

func TestEncodeValueWithUnits(t *testing.T) {
	b, err := EncodeValue(reprcode.FDOUBL, []interface{}{1.5}, "m")
	require.NoError(t, err)
	// UNITS + VALUE flags set, no count (single scalar).
	assert.Equal(t, byte(0b00100011), b[0])

	unitsBytes, err := reprcode.EncodeIdent("m")
	require.NoError(t, err)
	assert.Equal(t, unitsBytes, b[1:1+len(unitsBytes)])

	valueBytes, err := reprcode.Encode(reprcode.FDOUBL, 1.5)
	require.NoError(t, err)
	assert.Equal(t, valueBytes, b[1+len(unitsBytes):])
}

func TestEncodeTemplateWithUnits(t *testing.T) {
	b, err := EncodeTemplate(Spec{Label: "SPACING", ReprCode: reprcode.FDOUBL, Units: "s"})
	require.NoError(t, err)
	// LABEL + REPR-CODE + UNITS flags set.
	assert.Equal(t, byte(0b00110110), b[0])
}
