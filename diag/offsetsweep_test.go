package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetSweep_boundsByPayloadLengthAndMaxOffset(t *testing.T) {
	results := OffsetSweep(0x23, make([]byte, 10))
	assert.Len(t, results, 10) // shorter than MaxSweepOffset+1, so len(payload) wins

	results = OffsetSweep(0x23, make([]byte, 40))
	assert.Len(t, results, MaxSweepOffset+1)
}

func TestOffsetSweep_decodesEachOffsetIndependently(t *testing.T) {
	// Command 0x23 is a single F4 field; placing a recognizable 4-byte
	// pattern at offset 3 should only decode cleanly starting there.
	payload := make([]byte, 20)
	copy(payload[3:], []byte{0x00, 0x00, 0xC8, 0x42}) // 100.0 as little-endian binary32

	results := OffsetSweep(0x23, payload)
	require.Greater(t, len(results), 3)

	at3 := results[3]
	require.Len(t, at3.Record.Fields, 1)
	assert.NoError(t, at3.Record.Fields[0].Err)
	assert.InDelta(t, 100.0, at3.Record.Fields[0].Value.Float, 0.0001)
}

func TestFormatSweep_rendersOffsetHeaderAndTruncatedMarker(t *testing.T) {
	results := OffsetSweep(0x23, []byte{0x01, 0x02})
	out := FormatSweep(results)

	assert.Contains(t, out, "--- offset 00 ---")
	assert.Contains(t, out, "insufficient data")
	assert.True(t, strings.Count(out, "--- offset") >= 1)
}
