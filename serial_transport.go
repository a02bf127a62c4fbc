package saga1000

import (
	"io"
	"time"
)

// settleDelay is how long SerialTransport waits after a write before it
// starts reading: some serial gateways need time to start responding, and
// reading immediately is unreliable.
const settleDelay = 30 * time.Millisecond

// SerialTransport is a Transport backed by an io.ReadWriteCloser, for Saga
// 1000 installations reached over an RS-485-to-serial gateway rather than
// raw TCP (e.g. via github.com/tarm/serial's *serial.Port). Deadlines are
// enforced with a read-until-available loop rather than
// SetReadDeadline, since many serial port implementations do not support
// per-call read deadlines.
type SerialTransport struct {
	port     io.ReadWriteCloser
	peerName string

	lastWriteAt time.Time
}

// NewSerialTransport wraps an already-opened serial port. peerName is a
// human-readable label (e.g. the device path) returned by PeerAddr.
func NewSerialTransport(port io.ReadWriteCloser, peerName string) *SerialTransport {
	return &SerialTransport{port: port, peerName: peerName}
}

// Send implements Transport.
func (t *SerialTransport) Send(data []byte) error {
	_, err := t.port.Write(data)
	t.lastWriteAt = time.Now()
	return err
}

// Recv implements Transport. It polls the port in short bursts until at
// least one byte has arrived or deadline passes; this works whether or
// not the underlying port honors read deadlines itself.
func (t *SerialTransport) Recv(max int, deadline time.Time) ([]byte, error) {
	if settle := settleDelay - time.Since(t.lastWriteAt); settle > 0 {
		time.Sleep(settle)
	}

	buf := make([]byte, max)
	for time.Now().Before(deadline) {
		n, err := t.port.Read(buf)
		if n > 0 {
			return buf[:n], nil
		}
		if err != nil && err != io.EOF {
			return nil, err
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil, nil
}

// PeerAddr implements Transport.
func (t *SerialTransport) PeerAddr() string {
	return t.peerName
}

// Close implements Transport.
func (t *SerialTransport) Close() error {
	return t.port.Close()
}
