package frame

// BuildGeneric assembles a 66-byte request frame in the generic dialect:
// `01 99 command reader param` zero-padded to 64 bytes, with a
// little-endian CRC-16 (computed over bytes [0,64)) appended. The result
// is not bit-complemented and has no leading ENQ byte; neither this
// function nor LinkStateMachine adds them.
func BuildGeneric(command, reader, param byte) []byte {
	buf := make([]byte, FrameSize)
	buf[0], buf[1] = GenericHeader[0], GenericHeader[1]
	buf[2] = command
	buf[3] = reader
	buf[4] = param
	// buf[5:64] already zero

	crc := CRC16(buf[:PayloadSize])
	putCRC(buf, crc, DialectGeneric)
	return buf
}

// BuildABNT assembles a 66-byte request frame in the ABNT dialect:
// `command || payload` zero-padded to 64 bytes, a big-endian CRC-16
// appended, then the entire 66-byte buffer bit-complemented. payload is
// truncated if it would overflow the 63 bytes available after the command
// byte.
func BuildABNT(command byte, payload []byte) []byte {
	buf := make([]byte, FrameSize)
	buf[0] = command
	n := copy(buf[1:PayloadSize], payload)
	_ = n
	// buf[1+len(payload):64] already zero

	crc := CRC16(buf[:PayloadSize])
	putCRC(buf, crc, DialectABNT)
	return Complement(buf)
}

// BuildCmd14 assembles the command-0x14 ABNT request: the 24-bit reader
// serial number, big-endian, followed by 60 zero bytes, built with
// BuildABNT.
func BuildCmd14(serial uint32) []byte {
	payload := make([]byte, 63)
	payload[0] = byte(serial >> 16)
	payload[1] = byte(serial >> 8)
	payload[2] = byte(serial)
	return BuildABNT(0x14, payload)
}
