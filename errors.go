package stomp

import (
	"fmt"

	"github.com/pkg/errors"
)

// MalformedFrame reports a structural framing violation: a bad header
// line, an unparseable content-length, or a stream that ended before the
// frame terminator.
type MalformedFrame struct {
	cause error
}

// NewMalformedFrame builds a MalformedFrame from a printf-style message.
func NewMalformedFrame(format string, args ...interface{}) *MalformedFrame {
	return &MalformedFrame{cause: errors.Errorf(format, args...)}
}

func (e *MalformedFrame) Error() string { return "stomp: malformed frame: " + e.cause.Error() }
func (e *MalformedFrame) Unwrap() error { return e.cause }

// MalformedHeader reports an invalid escape sequence encountered while
// decoding a header name or value under STOMP >= 1.1 header encoding.
type MalformedHeader struct {
	cause error
}

// NewMalformedHeader builds a MalformedHeader from a printf-style message.
func NewMalformedHeader(format string, args ...interface{}) *MalformedHeader {
	return &MalformedHeader{cause: errors.Errorf(format, args...)}
}

func (e *MalformedHeader) Error() string { return "stomp: malformed header: " + e.cause.Error() }
func (e *MalformedHeader) Unwrap() error { return e.cause }

// ProtocolError reports a semantic violation of the CONNECT/CONNECTED or
// DISCONNECT handshake rules.
type ProtocolError struct {
	cause error
}

// NewProtocolError builds a ProtocolError from a printf-style message.
func NewProtocolError(format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{cause: errors.Errorf(format, args...)}
}

func (e *ProtocolError) Error() string { return "stomp: protocol error: " + e.cause.Error() }
func (e *ProtocolError) Unwrap() error { return e.cause }

// ErrConnectPending is returned by Marshal when a CONNECT is attempted
// while an earlier CONNECT is still awaiting its CONNECTED reply.
var ErrConnectPending = NewProtocolError("CONNECT already pending")

// ErrUnexpectedConnected is returned by Unmarshal when a CONNECTED frame
// arrives with no pending CONNECT correlation to satisfy.
var ErrUnexpectedConnected = NewProtocolError("CONNECTED received without a pending CONNECT")

// ErrDisconnectResponseRequired is returned by Marshal when a ShutdownInfo
// command requests a response; DISCONNECT never carries a receipt in this
// codec.
var ErrDisconnectResponseRequired = NewProtocolError("DISCONNECT must not request a response")

// TransportError wraps an I/O failure surfaced by the reader or writer
// supplied to Marshal/Unmarshal. It preserves the original error via
// Unwrap and pkg/errors' stack trace.
type TransportError struct {
	cause error
}

// NewTransportError wraps err as a TransportError. NewTransportError
// returns nil if err is nil.
func NewTransportError(err error) *TransportError {
	if err == nil {
		return nil
	}
	return &TransportError{cause: errors.Wrap(err, "stomp: transport error")}
}

func (e *TransportError) Error() string { return e.cause.Error() }
func (e *TransportError) Unwrap() error { return e.cause }

// UnknownCommand reports a frame verb this codec does not recognize.
// Per §7, this is never returned to a caller; Unmarshal logs it and
// returns (nil, nil) instead.
type UnknownCommand struct {
	Verb Verb
}

func (e *UnknownCommand) Error() string {
	return fmt.Sprintf("stomp: unknown command verb %q", string(e.Verb))
}
