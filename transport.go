package saga1000

import (
	"context"
	"net"
	"time"
)

// Transport is the only dependency the core protocol logic imposes on the
// world: a byte-stream that can send, receive up to N bytes with a
// deadline, report its peer address and be closed. LinkStateMachine and
// Client are written entirely against this interface so that TCP, serial
// and test-double transports are interchangeable.
type Transport interface {
	// Send writes the entirety of data to the transport.
	Send(data []byte) error
	// Recv reads up to max bytes, blocking at most until deadline. It
	// returns the bytes actually read (possibly zero on a timeout) and a
	// non-nil error only for unrecoverable I/O failures; deadline expiry
	// alone is reported as (0, nil) so callers can distinguish "nothing
	// arrived yet" from "connection broke".
	Recv(max int, deadline time.Time) ([]byte, error)
	// PeerAddr reports the address of the remote endpoint.
	PeerAddr() string
	// Close releases the transport's underlying resources.
	Close() error
}

// TCPTransport is a Transport backed by a net.Conn, used for the
// production TCP tunnel to the meter.
type TCPTransport struct {
	conn net.Conn
}

// DialTCP opens a TCP connection to addr (host:port), bounded by the given
// connect deadline.
func DialTCP(ctx context.Context, addr string, connectDeadline time.Duration) (*TCPTransport, error) {
	dialer := &net.Dialer{Timeout: connectDeadline}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, wrapLinkError(KindConnectFailed, err)
	}
	return &TCPTransport{conn: conn}, nil
}

// Send implements Transport.
func (t *TCPTransport) Send(data []byte) error {
	_, err := t.conn.Write(data)
	return err
}

// Recv implements Transport.
func (t *TCPTransport) Recv(max int, deadline time.Time) ([]byte, error) {
	if err := t.conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}
	buf := make([]byte, max)
	n, err := t.conn.Read(buf)
	if err != nil {
		if isTimeout(err) {
			return buf[:n], nil
		}
		return buf[:n], err
	}
	return buf[:n], nil
}

// PeerAddr implements Transport.
func (t *TCPTransport) PeerAddr() string {
	return t.conn.RemoteAddr().String()
}

// Close implements Transport.
func (t *TCPTransport) Close() error {
	return t.conn.Close()
}

type timeouter interface{ Timeout() bool }

func isTimeout(err error) bool {
	te, ok := err.(timeouter)
	return ok && te.Timeout()
}
