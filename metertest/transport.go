package metertest

import (
	"errors"
	"time"
)

// ScriptedTransport is an in-memory Transport double driven by a queue of
// canned replies, for unit-testing LinkStateMachine without real sockets.
// It satisfies saga1000.Transport structurally.
type ScriptedTransport struct {
	// Replies is consumed one entry per Recv call; each entry is
	// delivered as a single read, cut to max bytes if it is longer (the
	// rest of that entry is dropped).
	Replies [][]byte
	// Sent records every Send call's argument, in order.
	Sent [][]byte

	pos int
}

// Send implements Transport.
func (t *ScriptedTransport) Send(data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	t.Sent = append(t.Sent, cp)
	return nil
}

// Recv implements Transport. Once Replies is exhausted it returns (nil,
// nil) forever, simulating a read timeout.
func (t *ScriptedTransport) Recv(max int, deadline time.Time) ([]byte, error) {
	if t.pos >= len(t.Replies) {
		return nil, nil
	}
	reply := t.Replies[t.pos]
	t.pos++
	if len(reply) > max {
		reply = reply[:max]
	}
	return reply, nil
}

// PeerAddr implements Transport.
func (t *ScriptedTransport) PeerAddr() string { return "scripted:0" }

// Close implements Transport.
func (t *ScriptedTransport) Close() error { return nil }

// ErrScriptExhausted names the "ran out of scripted replies" condition.
// ScriptedTransport.Recv does not return it: it reports exhaustion as a
// timeout, (nil, nil).
var ErrScriptExhausted = errors.New("metertest: scripted transport replies exhausted")
