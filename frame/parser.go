package frame

import "errors"

// Parse errors returned by ParseResponse.
var (
	// ErrTooShort is returned when data is shorter than 3 bytes - too short
	// to contain even a minimal command byte plus CRC - or when fewer than
	// FrameSize bytes are available from the frame's start.
	ErrTooShort = errors.New("frame: data too short to be a response")
	// ErrNoStart is returned, generic dialect only, when the `01 99` start
	// marker can not be located in data.
	ErrNoStart = errors.New("frame: generic dialect start marker (01 99) not found")
	// ErrBadCRC is returned when the frame's trailing CRC does not match
	// the CRC computed over its payload.
	ErrBadCRC = errors.New("frame: CRC check failed")
)

// Frame is a parsed, CRC-verified response: the command/control byte plus
// the payload bytes, up to (not including) the trailing CRC. In the ABNT
// dialect the payload follows the command byte directly; in the generic
// dialect it starts at offset 4, after `01 99`, the command and one byte.
type Frame struct {
	Command byte
	Payload []byte
}

// ParseResponse locates and validates a 66-byte response frame within
// data, according to dialect:
//
//   - DialectGeneric scans for the `01 99` marker, first trimming any
//     leading filler bytes ({0xFF, 0xFB, 0xFD}) known Saga 1000 firmware
//     inserts, then verifies a little-endian CRC over the 64 bytes that
//     follow.
//   - DialectABNT undoes the bit-complement FrameBuilder applies when
//     constructing an ABNT request (the response is complemented the same
//     way on the wire) and verifies a big-endian CRC over bytes [0, len-2)
//     of the recovered plaintext.
//
// The returned Frame's Payload shares no memory with data.
func ParseResponse(data []byte, dialect Dialect) (Frame, error) {
	if len(data) < 3 {
		return Frame{}, ErrTooShort
	}

	switch dialect {
	case DialectGeneric:
		return parseGeneric(data)
	default:
		return parseABNT(data)
	}
}

func parseGeneric(data []byte) (Frame, error) {
	start := findGenericStart(data)
	if start == -1 {
		return Frame{}, ErrNoStart
	}
	msg := data[start:]
	if len(msg) < FrameSize {
		return Frame{}, ErrTooShort
	}
	msg = msg[:FrameSize]

	want := CRC16(msg[:PayloadSize])
	got := readCRC(msg, DialectGeneric)
	if want != got {
		return Frame{}, ErrBadCRC
	}

	payload := make([]byte, PayloadSize-4)
	copy(payload, msg[4:PayloadSize])
	return Frame{Command: msg[2], Payload: payload}, nil
}

func parseABNT(data []byte) (Frame, error) {
	if len(data) < FrameSize {
		return Frame{}, ErrTooShort
	}
	msg := Complement(data[:FrameSize])

	want := CRC16(msg[:PayloadSize])
	got := readCRC(msg, DialectABNT)
	if want != got {
		return Frame{}, ErrBadCRC
	}

	payload := make([]byte, PayloadSize-1)
	copy(payload, msg[1:PayloadSize])
	return Frame{Command: msg[0], Payload: payload}, nil
}

// findGenericStart skips known filler bytes and returns the index of the
// `01 99` start marker in data, or -1 if not found.
func findGenericStart(data []byte) int {
	i := 0
	for i < len(data) {
		if _, isFiller := fillerBytes[data[i]]; !isFiller {
			break
		}
		i++
	}
	for j := i; j+1 < len(data); j++ {
		if data[j] == GenericHeader[0] && data[j+1] == GenericHeader[1] {
			return j
		}
	}
	return -1
}
