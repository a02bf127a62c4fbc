package saga1000

import (
	"context"
	"log/slog"
	"time"

	"github.com/jkgomes/saga1000-client/frame"
)

// Bounds on the session counters.
const (
	maxNaks    = 7
	maxWaits   = 12
	maxRetries = 7
)

const (
	enqDeadline = 20 * time.Second
	aloCount    = 5
	maxReplyLen = 512
)

// LinkStateMachine drives one ALO->ENQ->send->classify-reply session
// against a Transport. It exclusively owns its counters and the borrowed
// Transport for the duration of one SendCommand call; counters are zeroed
// on entry and never carried over between invocations.
type LinkStateMachine struct {
	// ReplyTimeout bounds each "await reply" read. Defaults to 5 seconds.
	ReplyTimeout time.Duration

	// EnqTimeout bounds each "await ENQ" read. Defaults to 20 seconds;
	// tests override it to keep timeout scenarios fast.
	EnqTimeout time.Duration

	// Dialect selects which framing SendCommand's reply is parsed against.
	Dialect frame.Dialect

	// Activate is invoked (best-effort) after an invalid-CRC reply, before
	// retransmitting, to try to revive a stuck meter. May be nil.
	Activate func(ctx context.Context)

	Logger *slog.Logger

	naks, waits, retries int
}

// newBoundedErr builds a LinkError stamped with the counters reached so
// far this session, for callers that inspect LinkError.Naks/Waits/Retries.
func (m *LinkStateMachine) newBoundedErr(kind Kind, message string) *LinkError {
	return &LinkError{Kind: kind, Message: message, Naks: m.naks, Waits: m.waits, Retries: m.retries}
}

func (m *LinkStateMachine) wrapBoundedErr(kind Kind, err error) *LinkError {
	return &LinkError{Kind: kind, Err: err, Naks: m.naks, Waits: m.waits, Retries: m.retries}
}

func (m *LinkStateMachine) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

func (m *LinkStateMachine) replyTimeout() time.Duration {
	if m.ReplyTimeout > 0 {
		return m.ReplyTimeout
	}
	return 5 * time.Second
}

func (m *LinkStateMachine) enqTimeout() time.Duration {
	if m.EnqTimeout > 0 {
		return m.EnqTimeout
	}
	return enqDeadline
}

// SendCommand runs one full session: wake the meter, await its ENQ, send
// frame (a complete wire-ready request, already ENQ-prefixed for the ABNT
// dialect if required), and classify what comes back until a verified
// data frame, or a bound is exceeded.
func (m *LinkStateMachine) SendCommand(ctx context.Context, transport Transport, request []byte) ([]byte, error) {
	m.naks, m.waits, m.retries = 0, 0, 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, m.wrapBoundedErr(KindCancelled, err)
		}
		if m.retries > maxRetries {
			return nil, m.newBoundedErr(KindMaxRetries, "exceeded maximum retransmission attempts")
		}

		if err := m.wake(transport); err != nil {
			return nil, err
		}
		if err := m.awaitEnq(ctx, transport); err != nil {
			if le, ok := err.(*LinkError); ok && le.Kind == KindTimeoutEnq {
				m.retries++
				continue
			}
			return nil, err
		}

		data, done, err := m.sendAndClassify(ctx, transport, request)
		if err != nil {
			return nil, err
		}
		if done {
			return data, nil
		}
		// classification asked for a full retransmit cycle
	}
}

// wake sends the ALO wake-up byte aloCount times.
func (m *LinkStateMachine) wake(transport Transport) error {
	alo := []byte{frame.ALO}
	for i := 0; i < aloCount; i++ {
		if err := transport.Send(alo); err != nil {
			return m.wrapBoundedErr(KindConnectFailed, err)
		}
	}
	return nil
}

// awaitEnq reads one byte at a time, discarding anything that is not ENQ,
// until ENQ arrives or the EnqTimeout deadline (20 seconds by default)
// expires.
func (m *LinkStateMachine) awaitEnq(ctx context.Context, transport Transport) error {
	deadline := time.Now().Add(m.enqTimeout())
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return m.wrapBoundedErr(KindCancelled, err)
		}
		b, err := transport.Recv(1, deadline)
		if err != nil {
			return m.wrapBoundedErr(KindConnectFailed, err)
		}
		if len(b) == 0 {
			time.Sleep(time.Millisecond)
			continue
		}
		if b[0] == frame.ENQ {
			return nil
		}
	}
	return m.newBoundedErr(KindTimeoutEnq, "timed out waiting for ENQ")
}

// sendAndClassify writes request, reads one reply, and classifies its
// first byte against the link control bytes. done=true means data is
// the verified payload to return; done=false means the caller should loop
// back to wake()/awaitEnq() for a fresh retransmit cycle.
func (m *LinkStateMachine) sendAndClassify(ctx context.Context, transport Transport, request []byte) (data []byte, done bool, err error) {
	if err := transport.Send(request); err != nil {
		return nil, false, m.wrapBoundedErr(KindConnectFailed, err)
	}

	for {
		reply, err := m.awaitReply(ctx, transport)
		if err != nil {
			if le, ok := err.(*LinkError); ok && le.Kind == KindTimeoutReply {
				m.retries++
				return nil, false, nil
			}
			return nil, false, err
		}
		if len(reply) == 0 {
			m.retries++
			return nil, false, nil
		}

		switch reply[0] {
		case frame.WAIT:
			m.waits++
			if m.waits > maxWaits {
				return nil, false, m.newBoundedErr(KindMaxWaits, "exceeded maximum WAIT responses")
			}
			if err := m.awaitEnq(ctx, transport); err != nil {
				return nil, false, err
			}
			if err := transport.Send(request); err != nil {
				return nil, false, m.wrapBoundedErr(KindConnectFailed, err)
			}
			continue
		case frame.NAK:
			m.naks++
			if m.naks > maxNaks {
				return nil, false, m.newBoundedErr(KindMaxNaks, "exceeded maximum NAK responses")
			}
			return nil, false, nil
		case frame.ENQ:
			m.logger().Debug("unexpected ENQ, resending command")
			if err := transport.Send(request); err != nil {
				return nil, false, m.wrapBoundedErr(KindConnectFailed, err)
			}
			continue
		case frame.ACK:
			m.logger().Debug("unexpected ACK, continuing to await reply")
			continue
		default:
			f, parseErr := frame.ParseResponse(reply, m.Dialect)
			if parseErr != nil {
				m.logger().Warn("invalid CRC on data reply", "err", parseErr)
				_ = transport.Send([]byte{frame.NAK})
				m.naks++
				if m.naks > maxNaks {
					return nil, false, m.newBoundedErr(KindMaxNaks, "exceeded maximum NAK responses")
				}
				if m.Activate != nil {
					m.Activate(ctx)
				}
				return nil, false, nil
			}
			if err := transport.Send([]byte{frame.ACK}); err != nil {
				return nil, false, m.wrapBoundedErr(KindConnectFailed, err)
			}
			raw := make([]byte, len(reply))
			copy(raw, reply)
			_ = f
			return raw, true, nil
		}
	}
}

// awaitReply reads up to maxReplyLen bytes, bounded by ReplyTimeout. If
// the transport returns a partial read, it reads again until at least one
// byte is available or the deadline fires.
func (m *LinkStateMachine) awaitReply(ctx context.Context, transport Transport) ([]byte, error) {
	deadline := time.Now().Add(m.replyTimeout())
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return nil, m.wrapBoundedErr(KindCancelled, err)
		}
		b, err := transport.Recv(maxReplyLen, deadline)
		if err != nil {
			return nil, m.wrapBoundedErr(KindConnectFailed, err)
		}
		if len(b) > 0 {
			return b, nil
		}
		time.Sleep(time.Millisecond)
	}
	return nil, m.newBoundedErr(KindTimeoutReply, "timed out waiting for reply")
}
