package frame

// Complement returns a new slice holding the bytewise one's-complement of
// data: each output byte is ^input[i]. Complement is its own inverse,
// Complement(Complement(b)) always equals b.
func Complement(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = ^b
	}
	return out
}
