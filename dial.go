package stomp

import (
	"crypto/tls"
	"net"
)

// Dial opens network/address with net.Dial and returns the connection
// together with a new WireFormat from NewWireFormat; the WireFormat keeps no
// reference to the connection, which the caller passes to Marshal/Unmarshal.
// It does not perform the CONNECT/CONNECTED handshake;
// that remains the caller's responsibility via Marshal/Unmarshal, keeping
// session-level orchestration out of this codec (§1). Grounded on
// senojj-stomp/connect_test.go's net.Dial/tls.Dial usage.
func Dial(network, address string, opts ...ConfigOption) (*WireFormat, net.Conn, error) {
	conn, err := net.Dial(network, address)
	if err != nil {
		return nil, nil, NewTransportError(err)
	}
	return NewWireFormat(opts...), conn, nil
}

// DialTLS opens network/address with tls.Dial and returns the connection
// together with a new WireFormat, with the same contract as Dial.
func DialTLS(network, address string, tlsConfig *tls.Config, opts ...ConfigOption) (*WireFormat, net.Conn, error) {
	conn, err := tls.Dial(network, address, tlsConfig)
	if err != nil {
		return nil, nil, NewTransportError(err)
	}
	return NewWireFormat(opts...), conn, nil
}
