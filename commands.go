package stomp

// Command is the marker interface implemented by every outbound
// command-object variant the marshaller understands (§3, §4.D).
type Command interface {
	commandID() int
}

// HasResponseRequired is implemented by any Command whose sender wants a
// receipt. The marshaller's default case (§4.D "generic command with
// response_required") type-asserts against this interface rather than the
// closed set of named variants.
type HasResponseRequired interface {
	Command
	ResponseRequired() bool
}

// AckMode is the acknowledgement mode of a subscription.
type AckMode int

const (
	AckAuto AckMode = iota
	AckClient
	AckClientIndividual
)

func (m AckMode) String() string {
	switch m {
	case AckClient:
		return "client"
	case AckClientIndividual:
		return "client-individual"
	default:
		return "auto"
	}
}

// TransactionType selects the verb a TransactionInfo marshals to.
type TransactionType int

const (
	TransactionBegin TransactionType = iota
	TransactionCommit
	TransactionRollback
)

// ConnectionInfo carries the fields needed to marshal a CONNECT frame
// (§4.D). MaxInactivityDuration overrides the WireFormat's own
// Config.MaxInactivityDuration for this CONNECT only; left at 0, the
// WireFormat's session-scoped Config is what actually drives the
// heart-beat header. A resulting duration of 0 (from both) disables
// heart-beat negotiation entirely.
type ConnectionInfo struct {
	ClientID              string
	UserName              string
	Password              string
	Host                  string
	CommandID             int
	MaxInactivityDuration int // milliseconds; 0 defers to WireFormat.Config
	ResponseRequiredFlag  bool
}

func (c *ConnectionInfo) commandID() int          { return c.CommandID }
func (c *ConnectionInfo) ResponseRequired() bool  { return c.ResponseRequiredFlag }

// MessageKind distinguishes a text payload from a binary one for the
// purposes of §3's content-length invariant.
type MessageKind int

const (
	MessageText MessageKind = iota
	MessageBytes
)

// Message is the superset of BytesMessage/TextMessage the marshaller
// handles for SEND (§4.D) and the unmarshaller reconstructs for MESSAGE
// (§4.E).
type Message struct {
	Destination       Destination
	ReplyTo           Destination
	MessageID         string // set by the unmarshaller; ignored on outbound marshalling
	CorrelationID     string
	Expiration        int64
	Timestamp         int64
	Priority          byte // zero value is 0, not DefaultPriority; a 0 is written as priority:0
	Type              string
	TransactionID     string
	Persistent        bool
	GroupID           string
	GroupSeq          int
	Kind              MessageKind
	Content           []byte // wire body, whichever Kind
	Headers           map[string]string
	CommandID         int
	ResponseRequiredFlag bool

	// RedeliveryCounter is only meaningful on inbound messages
	// reconstructed by the unmarshaller (§4.E); it is ignored on outbound
	// marshalling.
	RedeliveryCounter int
}

func (m *Message) commandID() int         { return m.CommandID }
func (m *Message) ResponseRequired() bool { return m.ResponseRequiredFlag }

// DefaultPriority is the STOMP default message priority. A Message with
// this priority omits the priority header entirely (§4.D, testable
// property 6).
const DefaultPriority byte = 4

// ConsumerID identifies a subscription. RemoveInfo.ObjectID must hold one
// of these for UNSUBSCRIBE to be emitted (§4.D).
type ConsumerID string

// ObjectID is implemented by anything RemoveInfo can carry. Only
// ConsumerID satisfies it in this codec; RemoveInfo values carrying any
// other kind of identifier are silently dropped by the marshaller per §4.D
// (testable property 7).
type ObjectID interface {
	isObjectID()
}

func (ConsumerID) isObjectID() {}

// ConsumerInfo carries the fields needed to marshal a SUBSCRIBE frame
// (§4.D).
type ConsumerInfo struct {
	ConsumerID                 ConsumerID
	Destination                Destination
	SubscriptionName           string
	Selector                   string
	AckMode                    AckMode
	NoLocal                    bool
	DispatchAsync              bool
	Exclusive                  bool
	MaximumPendingMessageLimit int
	PrefetchSize               int
	Priority                   int
	Retroactive                bool
	Transformation             string
	CommandID                  int
	ResponseRequiredFlag       bool
}

func (c *ConsumerInfo) commandID() int         { return c.CommandID }
func (c *ConsumerInfo) ResponseRequired() bool { return c.ResponseRequiredFlag }

// MessageAck carries the fields needed to marshal an ACK frame (§4.D).
type MessageAck struct {
	ConsumerID           ConsumerID
	LastMessageID        string
	TransactionID        string
	CommandID            int
	ResponseRequiredFlag bool
}

func (a *MessageAck) commandID() int         { return a.CommandID }
func (a *MessageAck) ResponseRequired() bool { return a.ResponseRequiredFlag }

// TransactionInfo carries the fields needed to marshal BEGIN/COMMIT/ABORT
// (§4.D). Commit and Rollback force a response regardless of
// ResponseRequiredFlag, per §4.D.
type TransactionInfo struct {
	TransactionID        string
	Type                 TransactionType
	CommandID            int
	ResponseRequiredFlag bool
}

func (t *TransactionInfo) commandID() int { return t.CommandID }
func (t *TransactionInfo) ResponseRequired() bool {
	return t.ResponseRequiredFlag || t.Type == TransactionCommit || t.Type == TransactionRollback
}

// RemoveInfo carries the fields needed to marshal UNSUBSCRIBE (§4.D). Only
// produces a frame when ObjectID is a ConsumerID.
type RemoveInfo struct {
	ObjectID             ObjectID
	CommandID            int
	ResponseRequiredFlag bool
}

func (r *RemoveInfo) commandID() int         { return r.CommandID }
func (r *RemoveInfo) ResponseRequired() bool { return r.ResponseRequiredFlag }

// ShutdownInfo marshals to DISCONNECT (§4.D). ResponseRequiredFlag must be
// false; a true value is a ProtocolError.
type ShutdownInfo struct {
	CommandID            int
	ResponseRequiredFlag bool
}

func (s *ShutdownInfo) commandID() int         { return s.CommandID }
func (s *ShutdownInfo) ResponseRequired() bool { return s.ResponseRequiredFlag }

// KeepAliveInfo marshals to (and is produced by unmarshalling) the
// single-byte heart-beat frame.
type KeepAliveInfo struct{}

func (KeepAliveInfo) commandID() int { return 0 }
