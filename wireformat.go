package stomp

import (
	"bufio"
	"io"
)

// SessionState records the CONNECT/CONNECTED/DISCONNECT lifecycle a
// WireFormat passes through across Marshal/Unmarshal calls (§5). Marshal and
// Unmarshal update it but do not consult it. Any unmarshal in
// StateFresh that isn't CONNECTED is still parsed normally; only a
// CONNECTED arriving with no pending CONNECT is rejected.
type SessionState int

const (
	StateFresh SessionState = iota
	StateConnectPending
	StateConnected
	StateDisconnected
)

// Transport receives the Responses synthesized by Unmarshal or Marshal: one
// manufactured for a generic command that requests a response, one for the
// pending CONNECT when CONNECTED arrives, and one for an incoming RECEIPT or
// ERROR frame whose receipt-id is ignore-prefixed. An ExceptionResponse is
// never delivered here. It is the caller's job to correlate these against whatever
// bookkeeping it keeps by CommandID (§1 Non-goals: that bookkeeping is not
// part of this codec).
//
// Grounded on senojj-stomp/session.go's channel-based delivery, replaced
// here with a plain interface call since the goroutine/channel machinery
// that drove it belongs to the session-level dispatcher this codec
// deliberately excludes (§1).
type Transport interface {
	Command(cmd Command)
}

// WireFormat is a single STOMP connection's read/write session: the
// negotiated header-encoding mode, the CONNECT/CONNECTED correlation state
// machine, and the persistent buffered reader a live connection requires
// (§4.F).
//
// A WireFormat is not safe for concurrent use; §5 assumes a single reader
// and a single writer using it in strict request/response lockstep, exactly
// as senojj-stomp/connect.go drives its net.Conn.
type WireFormat struct {
	Config Config

	// EncodeHeaders is true once CONNECTED has reported a protocol version
	// greater than 1.0; it governs both outbound and inbound header
	// escaping from that point on (§4.B).
	EncodeHeaders bool

	// PendingConnectCorrelation holds the CommandID of an in-flight CONNECT
	// awaiting its CONNECTED reply, or nil when none is outstanding.
	PendingConnectCorrelation *int

	// RemoteWireInfo is the most recently unmarshalled CONNECTED frame's
	// reconstructed view, or nil before the handshake completes.
	RemoteWireInfo *WireFormatInfo

	// Transport, if set, receives the Responses Unmarshal or Marshal
	// synthesize (see the Transport type). Unmarshal still returns every
	// command it reconstructs, whether or not a copy was delivered here; a
	// nil Transport means synthesized Responses are logged and dropped.
	Transport Transport

	state SessionState
	br    *bufio.Reader
}

// State returns the WireFormat's current SessionState.
func (wf *WireFormat) State() SessionState { return wf.state }

// NewWireFormat returns a WireFormat with the given options applied over
// DefaultConfig (§3, §6).
func NewWireFormat(opts ...ConfigOption) *WireFormat {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &WireFormat{Config: cfg}
}

// Marshal writes cmd to w in STOMP wire format, or — for a command that
// produces no frame — hands a synthesized Response to wf.Transport instead.
// If no Transport is wired, the synthesized Response is logged and dropped;
// Marshal still succeeds. Grounded on senojj-stomp/connect.go's
// Conn.sendFrame, generalized from a single hardcoded CONNECT frame to the
// full §4.D dispatch in buildFrame.
func (wf *WireFormat) Marshal(cmd Command, w io.Writer) error {
	f, resp, err := wf.buildFrame(cmd)
	if err != nil {
		return err
	}
	if f != nil {
		if _, err := f.WriteTo(w, wf.EncodeHeaders); err != nil {
			return err
		}
	}
	if _, ok := cmd.(*ConnectionInfo); ok {
		wf.state = StateConnectPending
	}
	if _, ok := cmd.(*ShutdownInfo); ok {
		wf.state = StateDisconnected
	}
	wf.deliver(resp)
	return nil
}

// deliver hands cmd to wf.Transport, or logs and drops it if no Transport is
// wired. cmd may be nil, in which case deliver is a no-op.
func (wf *WireFormat) deliver(cmd *Response) {
	if cmd == nil {
		return
	}
	if wf.Transport == nil {
		logger.WithField("command_id", cmd.commandID()).Debug("stomp: dropping synthesized command, no transport wired")
		return
	}
	wf.Transport.Command(cmd)
}

// Unmarshal reads a single frame from r and returns the Command it
// represents. r's underlying bufio.Reader is created on first use and
// reused on every subsequent call against the same WireFormat — passing a
// different r on a later call is a caller error, since any bytes already
// buffered past the previous frame's terminator belong to r's stream, not
// the new one.
//
// RECEIPT and ERROR both unmarshal to a Response when their receipt-id is
// ignore-prefixed (ERROR otherwise unmarshals to an ExceptionResponse). An
// ignore-prefixed Response is additionally handed to wf.Transport, mirroring
// Marshal's treatment of a synthesized response; a plain receipt-id is only
// returned, since its sender already correlates it against Unmarshal's
// return value directly.
func (wf *WireFormat) Unmarshal(r io.Reader) (Command, error) {
	if wf.br == nil {
		wf.br = bufio.NewReader(r)
	}

	f, err := readFrame(wf.br, wf.EncodeHeaders)
	if err != nil {
		return nil, err
	}

	cmd, resp, err := wf.unmarshalFrame(f)
	if err != nil {
		return nil, err
	}
	if _, ok := cmd.(*WireFormatInfo); ok {
		wf.state = StateConnected
	}
	wf.deliver(resp)
	if cmd == nil && resp != nil {
		return resp, nil
	}
	return cmd, nil
}
