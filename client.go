// Package saga1000 is a client for electrical energy meters of the
// "Saga 1000" family, speaking the ABNT NBR 14522 serial-protocol framing
// tunneled over TCP, with an auxiliary UDP activation step.
package saga1000

import (
	"context"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/jkgomes/saga1000-client/frame"
	"github.com/jkgomes/saga1000-client/schema"
)

const (
	defaultConnectDeadline = 5 * time.Second
	defaultReplyTimeout    = 5 * time.Second

	// cmd14 is the command code that uses the specialized serial-number
	// request builder instead of the generic ABNT form.
	cmd14 = 0x14
)

// Record is the decoded result of one command exchange, delivered to a
// Sink.
type Record = schema.Record

// Sink receives decoded records. It is the only interface the core
// imposes on whatever persists or displays readings.
type Sink interface {
	Receive(Record) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(Record) error

// Receive implements Sink.
func (f SinkFunc) Receive(r Record) error { return f(r) }

// ClientConfig configures a Client.
type ClientConfig struct {
	// ConnectDeadline bounds opening the TCP transport. Defaults to 5s.
	ConnectDeadline time.Duration
	// ReplyTimeout bounds each "await reply" read during a session.
	// Defaults to 5s.
	ReplyTimeout time.Duration
	// Logger receives best-effort diagnostics (activation probe failures,
	// unexpected control bytes). Defaults to slog.Default().
	Logger *slog.Logger
	// SkipActivation disables the UDP activation probe preceding every
	// session, for meters/tests that do not need it.
	SkipActivation bool
}

// Client is the top-level coordinator: given (target, command, args), it
// runs activation, opens a TCP transport, drives the link state machine,
// decodes the response and delivers it to a Sink.
type Client struct {
	conf ClientConfig
}

// NewClient creates a Client with the given configuration.
func NewClient(conf ClientConfig) *Client {
	if conf.ConnectDeadline <= 0 {
		conf.ConnectDeadline = defaultConnectDeadline
	}
	if conf.ReplyTimeout <= 0 {
		conf.ReplyTimeout = defaultReplyTimeout
	}
	if conf.Logger == nil {
		conf.Logger = slog.Default()
	}
	return &Client{conf: conf}
}

// Query opens a connection to targetIP:tcpPort, runs the full command
// exchange for command (building the request from args the way the
// command's dialect requires), and returns the decoded Record.
//
// args is interpreted per command: for cmd14 args.Serial is the 24-bit
// reader serial number; all other commands use args.Reader/args.Param as
// the ABNT payload's first two bytes (zero-padded beyond that).
func (c *Client) Query(ctx context.Context, targetIP string, tcpPort int, command byte, args Args) (Record, error) {
	if !c.conf.SkipActivation {
		ActivationProbe(ctx, targetIP, c.conf.Logger)
	}

	addr := net.JoinHostPort(targetIP, strconv.Itoa(tcpPort))
	transport, err := DialTCP(ctx, addr, c.conf.ConnectDeadline)
	if err != nil {
		return Record{}, err
	}
	defer transport.Close()

	return c.QueryTransport(ctx, transport, targetIP, command, args)
}

// QueryTransport runs the command exchange over an already-open
// Transport, without dialing and without the initial activation probe;
// unless SkipActivation is set, the probe still runs after an invalid-CRC
// reply. Exposed for callers that manage their own transport (e.g.
// SerialTransport, or tests).
func (c *Client) QueryTransport(ctx context.Context, transport Transport, targetIP string, command byte, args Args) (Record, error) {
	request, dialect := BuildRequest(command, args)

	lsm := &LinkStateMachine{
		ReplyTimeout: c.conf.ReplyTimeout,
		Dialect:      dialect,
		Logger:       c.conf.Logger,
	}
	if !c.conf.SkipActivation {
		lsm.Activate = func(probeCtx context.Context) {
			ActivationProbe(probeCtx, targetIP, c.conf.Logger)
		}
	}

	reply, err := lsm.SendCommand(ctx, transport, request)
	if err != nil {
		return Record{}, err
	}

	f, err := frame.ParseResponse(reply, dialect)
	if err != nil {
		return Record{}, wrapLinkError(KindBadCRC, err)
	}
	return schema.DecodeResponse(f.Command, f.Payload), nil
}

// Args are the per-command request parameters.
type Args struct {
	// Serial is the 24-bit reader serial number, used only by cmd14.
	Serial uint32
	// Reader and Param are the ABNT payload's leading bytes for commands
	// other than cmd14.
	Reader byte
	Param  byte
}

// BuildRequest builds the wire-ready request frame for command (including
// the leading ENQ byte the ABNT dialect requires on the wire) and reports
// which dialect the response should be parsed with.
//
// cmd14 uses the specialized serial-number builder; every other command
// uses the ABNT form with Reader/Param as its first two payload bytes.
func BuildRequest(command byte, args Args) (request []byte, dialect frame.Dialect) {
	var body []byte
	if command == cmd14 {
		body = frame.BuildCmd14(args.Serial)
	} else {
		body = frame.BuildABNT(command, []byte{args.Reader, args.Param})
	}
	request = make([]byte, 0, len(body)+1)
	request = append(request, frame.ENQ)
	request = append(request, body...)
	return request, frame.DialectABNT
}
