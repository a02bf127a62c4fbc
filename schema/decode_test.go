package schema

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float32Bytes(f float32) []byte {
	bits := math.Float32bits(f)
	return []byte{byte(bits), byte(bits >> 8), byte(bits >> 16), byte(bits >> 24)}
}

func TestDecodeResponse_fullPayloadDecodesAllFields(t *testing.T) {
	payload := append(append(float32Bytes(100.5), float32Bytes(12.25)...), float32Bytes(0.92)...)

	rec := DecodeResponse(0x20, payload)

	require.Len(t, rec.Fields, 3)
	assert.Equal(t, "ActiveEnergy", rec.Fields[0].Name)
	assert.InDelta(t, 100.5, rec.Fields[0].Value.Float, 0.0001)
	assert.Equal(t, "Demand", rec.Fields[1].Name)
	assert.Equal(t, "PF", rec.Fields[2].Name)
	for _, f := range rec.Fields {
		assert.False(t, f.Truncated)
		assert.NoError(t, f.Err)
	}
	assert.Equal(t, payload, rec.RawPayload)
}

func TestDecodeResponse_truncatedPayloadMarksFirstMissingField(t *testing.T) {
	// Only enough bytes for the first two F4 fields of command 0x20.
	payload := append(float32Bytes(100.5), float32Bytes(12.25)...)

	rec := DecodeResponse(0x20, payload)

	require.Len(t, rec.Fields, 3)
	assert.False(t, rec.Fields[0].Truncated)
	assert.False(t, rec.Fields[1].Truncated)
	assert.True(t, rec.Fields[2].Truncated)
	assert.Equal(t, "PF", rec.Fields[2].Name)
}

func TestDecodeResponse_unknownCommandHasNoSchema(t *testing.T) {
	rec := DecodeResponse(0xEE, []byte{0x01, 0x02, 0x03})
	assert.Empty(t, rec.Fields)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, rec.RawPayload)
}

func TestDecodeResponse_perFieldErrorAttachesToFieldAndKeepsRawPayload(t *testing.T) {
	// Command 0x12's single field is a 10-byte ASCII password; feed pure
	// non-ASCII garbage so it fails to decode, and confirm RawPayload still
	// carries the original bytes regardless.
	payload := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0A}
	rec := DecodeResponse(0x12, payload)

	require.Len(t, rec.Fields, 1)
	assert.ErrorIs(t, rec.Fields[0].Err, ErrBadEncoding)
	assert.Equal(t, payload, rec.RawPayload)
}
