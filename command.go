package stomp

// Verb is a STOMP command line token, e.g. "CONNECT" or "MESSAGE".
type Verb string

// String satisfies fmt.Stringer.
func (v Verb) String() string {
	return string(v)
}

// The complete set of STOMP 1.0/1.1 verbs this codec reads or writes.
const (
	VerbConnect     Verb = "CONNECT"
	VerbConnected   Verb = "CONNECTED"
	VerbSend        Verb = "SEND"
	VerbSubscribe   Verb = "SUBSCRIBE"
	VerbUnsubscribe Verb = "UNSUBSCRIBE"
	VerbAck         Verb = "ACK"
	VerbNack        Verb = "NACK"
	VerbBegin       Verb = "BEGIN"
	VerbCommit      Verb = "COMMIT"
	VerbAbort       Verb = "ABORT"
	VerbDisconnect  Verb = "DISCONNECT"
	VerbMessage     Verb = "MESSAGE"
	VerbReceipt     Verb = "RECEIPT"
	VerbError       Verb = "ERROR"

	// VerbKeepAlive is a sentinel verb for the single-byte heart-beat
	// frame. It never appears on the wire as a verb line; readFrame and
	// Frame.WriteTo special-case it.
	VerbKeepAlive Verb = "\n"
)

// KeepAliveByte is the single byte written to the wire for a heart-beat.
const KeepAliveByte = byte('\n')
