package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_knownCommand(t *testing.T) {
	spec, ok := Lookup(0x14)
	require.True(t, ok)
	require.Len(t, spec, 4)
	assert.Equal(t, "DateTime", spec[0].Name)
	assert.Equal(t, FieldType("T6"), spec[0].Type)
}

func TestLookup_unknownCommand(t *testing.T) {
	_, ok := Lookup(0xEE)
	assert.False(t, ok)
}

func TestSubLookup_alwaysFalse(t *testing.T) {
	// The 0x98 sub-command dispatch is intentionally unimplemented: any
	// sub-code reports NoSchema rather than guess at a layout.
	_, ok := SubLookup(0x01)
	assert.False(t, ok)
}

func TestRegistry_everyFieldTypeTagParses(t *testing.T) {
	for cmd, fields := range Registry {
		for _, f := range fields {
			_, err := f.Type.Width()
			assert.NoErrorf(t, err, "command 0x%02X field %s has malformed type tag %q", cmd, f.Name, f.Type)
		}
	}
}
