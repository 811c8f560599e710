package stomp

// Reserved header names recognized by the marshaller and unmarshaller.
// Grounded on senojj-stomp/header.go's HdrXxx constant block, extended with
// the ActiveMQ extension headers (activemq.*, NMSX*, JMSX*) that block
// didn't cover but §4.D/§4.E require.
const (
	hdrReceipt         = "receipt"
	hdrReceiptID       = "receipt-id"
	hdrAcceptVersion   = "accept-version"
	hdrHost            = "host"
	hdrVersion         = "version"
	hdrLogin           = "login"
	hdrPasscode        = "passcode"
	hdrHeartBeat       = "heart-beat"
	hdrSession         = "session"
	hdrClientID        = "client-id"
	hdrDestination     = "destination"
	hdrReplyTo         = "reply-to"
	hdrCorrelationID   = "correlation-id"
	hdrExpires         = "expires"
	hdrTimestamp       = "timestamp"
	hdrPriority        = "priority"
	hdrType            = "type"
	hdrTransaction     = "transaction"
	hdrPersistent      = "persistent"
	hdrNMSXDelivery    = "NMSXDeliveryMode"
	hdrJMSXGroupID     = "JMSXGroupID"
	hdrNMSXGroupID     = "NMSXGroupID"
	hdrJMSXGroupSeq    = "JMSXGroupSeq"
	hdrNMSXGroupSeq    = "NMSXGroupSeq"
	hdrContentLength   = "content-length"
	hdrTransformation  = "transformation"
	hdrID              = "id"
	hdrDurableSubName  = "durable-subscriber-name"
	hdrSelector        = "selector"
	hdrAck             = "ack"
	hdrNoLocal         = "no-local"
	hdrAMQDispatchAsync = "activemq.dispatchAsync"
	hdrAMQExclusive    = "activemq.exclusive"
	hdrAMQSubName      = "activemq.subscriptionName"
	hdrAMQSubNameTypo  = "activemq.subcriptionName"
	hdrAMQMaxPending   = "activemq.maximumPendingMessageLimit"
	hdrAMQPrefetch     = "activemq.prefetchSize"
	hdrAMQPriority     = "activemq.priority"
	hdrAMQRetroactive  = "activemq.retroactive"
	hdrMessageID       = "message-id"
	hdrSubscription    = "subscription"
	hdrMessage         = "message"
	hdrRedelivered     = "redelivered"
)
