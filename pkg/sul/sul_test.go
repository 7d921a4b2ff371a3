package sul

import (
	"testing"

	"github.com/bgrewell/dlis-kit/pkg/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSizeAndFields(t *testing.T) {
	l := StorageUnitLabel{
		StorageUnitSequenceNumber: 1,
		MaxRecordLength:           8192,
		StorageSetIdentifier:      "Example Well Log",
	}
	b, err := l.Encode()
	require.NoError(t, err)
	require.Len(t, b, consts.SULSize)

	assert.Equal(t, "   1", string(b[0:4]))
	assert.Equal(t, "V1.00", string(b[4:9]))
	assert.Equal(t, "RECORD", string(b[9:15]))
	assert.Equal(t, " 8192", string(b[15:20]))
	assert.Equal(t, "Example Well Log", string(b[20:80][:len("Example Well Log")]))
	assert.Equal(t, " ", string(b[79]))
}

func TestEncodeRejectsOutOfRangeMaxRecordLength(t *testing.T) {
	l := StorageUnitLabel{StorageUnitSequenceNumber: 1, MaxRecordLength: 3, StorageSetIdentifier: "x"}
	_, err := l.Encode()
	assert.Error(t, err)
}

func TestEncodeRejectsOverlongIdentifier(t *testing.T) {
	l := StorageUnitLabel{
		StorageUnitSequenceNumber: 1,
		MaxRecordLength:           8192,
		StorageSetIdentifier:      string(make([]byte, 61)),
	}
	_, err := l.Encode()
	assert.Error(t, err)
}
