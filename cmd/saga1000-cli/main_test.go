package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSerial_hexAndDecimal(t *testing.T) {
	v, err := parseSerial("0x010203")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x010203), v)

	v, err = parseSerial("66051") // == 0x010203
	require.NoError(t, err)
	assert.Equal(t, uint32(0x010203), v)
}

func TestParseSerial_masksTo24Bits(t *testing.T) {
	v, err := parseSerial("0xFFFFFFFF")
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFF), v)
}

func TestParseSerial_rejectsGarbage(t *testing.T) {
	_, err := parseSerial("not-a-number")
	assert.Error(t, err)
}
