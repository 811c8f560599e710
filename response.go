package stomp

// The command variants produced by Unmarshal (§4.E). None of these existed
// as first-class types in the teacher — senojj-stomp/processor.go inlined
// receipt/error handling directly into its goroutine loop instead of
// modeling them as data, which this codec's synchronous contract (§5)
// doesn't allow.

// Response is a synthesized or unmarshalled acknowledgement correlated back
// to the command that requested it, by CommandID.
type Response struct {
	CorrelationID int
}

func (r *Response) commandID() int { return r.CorrelationID }

// BrokerError is the message body of a STOMP ERROR frame.
type BrokerError struct {
	Message string
}

func (e *BrokerError) Error() string { return e.Message }

// ExceptionResponse is an unmarshalled ERROR frame that was not downgraded
// to a Response by the ignore-receipt convention (§4.E).
type ExceptionResponse struct {
	CorrelationID int
	Exception     *BrokerError
}

func (e *ExceptionResponse) commandID() int { return e.CorrelationID }

// WireFormatInfo is the reconstructed view of a CONNECTED frame: negotiated
// version, optional session id, and the heart-beat intervals the peer
// reported (write, read), from the peer's perspective (§4.E).
type WireFormatInfo struct {
	Version         float64
	SessionID       string
	WriteCheckInterval int
	ReadCheckInterval  int
}

func (WireFormatInfo) commandID() int { return 0 }

// MessageDispatch is the envelope Unmarshal builds for a MESSAGE frame: the
// target consumer id, and the reconstructed Message (§4.E).
type MessageDispatch struct {
	ConsumerID ConsumerID
	Message    *Message
}

func (MessageDispatch) commandID() int { return 0 }
