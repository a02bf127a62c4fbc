// Package frame implements the ABNT NBR 14522 wire framing used by the
// Saga 1000 meter family: link-control bytes, the 16-bit CRC, bit
// complement encoding and the two request/response dialects observed in
// the field (the ENQ-prefixed complemented ABNT dialect, and a `01 99`
// prefixed generic dialect with a little-endian CRC).
package frame

// Link-control bytes, per ABNT NBR 14522.
const (
	ENQ  = 0x05 // Enquiry: begin exchange
	ACK  = 0x06 // positive acknowledge
	NAK  = 0x15 // negative acknowledge
	WAIT = 0x10 // device busy, wait for next ENQ
	ALO  = 0xFF // Saga 1000 wake-up byte (not a control character)
)

// GenericHeader is the two-byte marker the generic dialect's response
// frames begin with.
var GenericHeader = [2]byte{0x01, 0x99}

// fillerBytes are bytes known Saga 1000 firmware inserts before the start
// of a generic-dialect response; findGenericStart skips over them.
var fillerBytes = map[byte]struct{}{
	0xFF: {},
	0xFD: {},
	0xFB: {},
}

// FrameSize is the fixed length, in bytes, of every request and response
// frame body (excluding the leading ENQ byte the ABNT dialect prepends on
// the wire).
const FrameSize = 66

// PayloadSize is FrameSize minus the trailing 2-byte CRC.
const PayloadSize = FrameSize - 2

// Dialect distinguishes the two wire formats this client must speak.
// It is never picked implicitly - callers of FrameBuilder/FrameParser
// always name one explicitly.
type Dialect uint8

const (
	// DialectABNT is the ENQ-prefixed, bit-complemented frame used by
	// meters in normal ABNT NBR 14522 mode.
	DialectABNT Dialect = iota + 1
	// DialectGeneric is the `01 99`-prefixed, little-endian-CRC frame used
	// by meters running in the alternate test/diagnostic mode.
	DialectGeneric
)

func (d Dialect) String() string {
	switch d {
	case DialectABNT:
		return "abnt"
	case DialectGeneric:
		return "generic"
	default:
		return "unknown"
	}
}
