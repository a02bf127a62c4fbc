package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCRC16_emptyInputReturnsInitialRegister(t *testing.T) {
	assert.Equal(t, uint16(0xFFFF), CRC16(nil))
}

func TestCRC16_deterministic(t *testing.T) {
	data := append([]byte{0x14, 0x01, 0x02, 0x03}, make([]byte, 60)...)
	assert.Equal(t, CRC16(data), CRC16(data))
	assert.NotEqual(t, CRC16(data), CRC16(append(data, 0x01)))
}

func TestCRC16_matchesReferenceAlgorithm(t *testing.T) {
	inputs := [][]byte{
		{0x01, 0x04, 0x02, 0xFF, 0xFF},
		{0x14, 0x01, 0x02, 0x03},
		{0x01, 0x99, 0x51, 0x00, 0x00},
	}
	for _, in := range inputs {
		assert.Equal(t, crc16Reference(in), CRC16(in))
	}
}

// crc16Reference is an independent restatement of the CRC-16 shift
// algorithm, kept separate from CRC16's own code so the test can catch a
// regression in either.
func crc16Reference(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x8005
			} else {
				crc = crc << 1
			}
		}
	}
	return crc
}
