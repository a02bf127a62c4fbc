package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_StringFormatsFloatsToFourDecimals(t *testing.T) {
	v := Value{Kind: KindFloat, Float: 220.5}
	assert.Equal(t, "220.5000", v.String())
}

func TestValue_StringRendersInvalidDateTimeSentinel(t *testing.T) {
	v := Value{Kind: KindDateTime, DateTime: DateTime{Valid: false}}
	assert.Equal(t, "[data/hora inválida]", v.String())
}

func TestValue_AnyReturnsNilForInvalidDateTime(t *testing.T) {
	v := Value{Kind: KindDateTime, DateTime: DateTime{Valid: false}}
	assert.Nil(t, v.Any())
}

func TestValue_AnyReturnsDateTimeWhenValid(t *testing.T) {
	dt := DateTime{Valid: true, Year: 2024, Month: 6, Day: 26, Hour: 15, Minute: 30, Second: 45}
	v := Value{Kind: KindDateTime, DateTime: dt}
	assert.Equal(t, dt, v.Any())
}

func TestValue_AnyReturnsUnderlyingScalars(t *testing.T) {
	assert.Equal(t, 1.5, Value{Kind: KindFloat, Float: 1.5}.Any())
	assert.Equal(t, int64(7), Value{Kind: KindInt, Int: 7}.Any())
	assert.Equal(t, "hi", Value{Kind: KindText, Text: "hi"}.Any())
	assert.Equal(t, "0b1", Value{Kind: KindBits, Bits: "0b1"}.Any())
}
