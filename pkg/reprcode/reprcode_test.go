package reprcode

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUVARIBoundaries(t *testing.T) {
	cases := []struct {
		v       uint32
		nBytes  int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 4},
		{1<<30 - 1, 4},
	}
	for _, c := range cases {
		b, err := EncodeUVARI(c.v)
		require.NoError(t, err)
		assert.Lenf(t, b, c.nBytes, "EncodeUVARI(%d)", c.v)

		got, n, err := DecodeUVARI(b)
		require.NoError(t, err)
		assert.Equal(t, c.v, got)
		assert.Equal(t, c.nBytes, n)
	}
}

func TestUVARIOverflow(t *testing.T) {
	_, err := EncodeUVARI(1 << 30)
	assert.Error(t, err)
}

func TestUVARIRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 126, 127, 128, 129, 16383, 16384, 20000, 1 << 29} {
		b, err := EncodeUVARI(v)
		require.NoError(t, err)
		got, n, err := DecodeUVARI(b)
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.Equal(t, len(b), n)
	}
}

func TestEncodeIdentLengthLimit(t *testing.T) {
	_, err := EncodeIdent(string(make([]byte, 256)))
	assert.Error(t, err)

	b, err := EncodeIdent("DEPTH")
	require.NoError(t, err)
	assert.Equal(t, byte(5), b[0])
	assert.Equal(t, "DEPTH", string(b[1:]))
}

func TestEncodeDTimeExample(t *testing.T) {
	// 1987-04-19T21:20:15.620, the worked example from the struct-writer
	// reference: year byte 87, month 4, day 19, hour 21, minute 20,
	// second 15, milliseconds 620.
	ts := time.Date(1987, time.April, 19, 21, 20, 15, 620*1_000_000, time.UTC)
	b, err := EncodeDTime(DTime{Time: ts, TimeZone: TimeZoneLocalStandard})
	require.NoError(t, err)
	require.Len(t, b, 8)
	assert.Equal(t, byte(87), b[0])
	assert.Equal(t, byte(4), b[1])
	assert.Equal(t, byte(19), b[2])
	assert.Equal(t, byte(21), b[3])
	assert.Equal(t, byte(20), b[4])
	assert.Equal(t, byte(15), b[5])

	decoded, err := DecodeDTime(b)
	require.NoError(t, err)
	assert.Equal(t, ts.Year(), decoded.Time.Year())
	assert.Equal(t, ts.Month(), decoded.Time.Month())
	assert.Equal(t, ts.Day(), decoded.Time.Day())
	assert.Equal(t, 620, decoded.Time.Nanosecond()/1_000_000)
}

func TestEncodeFixedOverflow(t *testing.T) {
	_, err := EncodeFixed(USHORT, 256)
	assert.Error(t, err)

	b, err := EncodeFixed(USHORT, 255)
	require.NoError(t, err)
	assert.Equal(t, []byte{255}, b)
}

func TestEncodeFixedSigned(t *testing.T) {
	b, err := EncodeFixed(SLONG, -1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, b)
}

func TestOBNAMERoundTrip(t *testing.T) {
	o := OName{OriginReference: 1, CopyNumber: 0, Name: "CHANNEL-1"}
	b, err := EncodeOBNAME(o)
	require.NoError(t, err)
	got, n, err := DecodeOBNAME(b)
	require.NoError(t, err)
	assert.Equal(t, o, got)
	assert.Equal(t, len(b), n)
}

func TestInferMultivaluedMixErrors(t *testing.T) {
	_, err := InferMultivalued([]interface{}{"a", 1})
	assert.Error(t, err)

	_, err = InferMultivalued([]interface{}{time.Now(), 1.0})
	assert.Error(t, err)
}

func TestInferMultivaluedIntegers(t *testing.T) {
	c, err := InferMultivalued([]interface{}{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, ULONG, c)

	c, err = InferMultivalued([]interface{}{1, -2, 3})
	require.NoError(t, err)
	assert.Equal(t, SLONG, c)
}

func TestInferMultivaluedFloatWins(t *testing.T) {
	c, err := InferMultivalued([]interface{}{1, 2.5, 3})
	require.NoError(t, err)
	assert.Equal(t, FDOUBL, c)
}
