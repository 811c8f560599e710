// Package stomp implements the wire-format codec for a STOMP 1.0/1.1
// client, with the ActiveMQ header extensions used to interoperate with
// brokers such as Apache ActiveMQ.
//
// The package sits between an in-memory command object model (ConnectionInfo,
// Message, ConsumerInfo, MessageAck, TransactionInfo, RemoveInfo,
// ShutdownInfo) and a byte-oriented transport such as a TCP socket. Apart
// from the Dial and DialTLS conveniences, which only open a connection, it
// does not manage connections, retry, or dispatch consumer callbacks; those
// are the job of a session layer built on top of WireFormat.
//
// A minimal round trip looks like:
//
//	wf := stomp.NewWireFormat()
//	err := wf.Marshal(&stomp.ConnectionInfo{
//		ClientID:  "c1",
//		Host:      "broker.example.com",
//		CommandID: 1,
//	}, conn)
//	cmd, err := wf.Unmarshal(conn) // expect a *stomp.WireFormatInfo
package stomp
