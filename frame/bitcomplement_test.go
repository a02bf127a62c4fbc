package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplement_isInvolution(t *testing.T) {
	inputs := [][]byte{
		{},
		{0x00},
		{0xFF},
		{0x01, 0x02, 0x03, 0xFE, 0xFD, 0xFC},
		make([]byte, 66),
	}
	for _, in := range inputs {
		assert.Equal(t, in, Complement(Complement(in)))
	}
}

func TestComplement_flipsEveryBit(t *testing.T) {
	assert.Equal(t, []byte{0xFE, 0xFD, 0xFC}, Complement([]byte{0x01, 0x02, 0x03}))
}
