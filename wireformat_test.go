package stomp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConnectSendDisconnectLifecycle realizes the CONNECT/CONNECTED/SEND/
// DISCONNECT lifecycle end to end against a single WireFormat.
func TestConnectSendDisconnectLifecycle(t *testing.T) {
	require := require.New(t)

	client := NewWireFormat()
	var wire bytes.Buffer

	require.NoError(client.Marshal(&ConnectionInfo{
		ClientID:  "c1",
		Host:      "broker",
		CommandID: 1,
	}, &wire))
	require.True(bytes.HasPrefix(wire.Bytes(), []byte("CONNECT\n")))

	// simulate the broker's reply arriving on the same WireFormat's reader.
	wire.Reset()
	wire.WriteString("CONNECTED\nversion:1.0\nsession:s-1\n\n\x00")
	cmd, err := client.Unmarshal(&wire)
	require.NoError(err)
	info, ok := cmd.(*WireFormatInfo)
	require.True(ok)
	require.Equal("s-1", info.SessionID)
	require.False(client.EncodeHeaders)
	require.Nil(client.PendingConnectCorrelation)

	var sendBuf bytes.Buffer
	require.NoError(client.Marshal(&Message{
		Destination: Destination{Kind: DestinationQueue, Name: "orders"},
		Priority:    DefaultPriority,
		Content:     []byte("payload"),
	}, &sendBuf))
	require.Contains(sendBuf.String(), "SEND\n")
	require.Contains(sendBuf.String(), "destination:/queue/orders\n")

	var disconnectBuf bytes.Buffer
	require.NoError(client.Marshal(&ShutdownInfo{}, &disconnectBuf))
	require.Equal("DISCONNECT\n\n\x00", disconnectBuf.String())
}

func TestUnmarshalReusesBufferedReaderAcrossCalls(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	raw := "MESSAGE\ndestination:/queue/a\n\nfirst\x00MESSAGE\ndestination:/queue/b\n\nsecond\x00"
	r := bytes.NewBufferString(raw)

	first, err := wf.Unmarshal(r)
	require.NoError(err)
	m1 := first.(*MessageDispatch).Message
	require.Equal("a", m1.Destination.Name)

	second, err := wf.Unmarshal(r)
	require.NoError(err)
	m2 := second.(*MessageDispatch).Message
	require.Equal("b", m2.Destination.Name)
}

func TestSessionStateTransitions(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	require.Equal(StateFresh, wf.State())

	var buf bytes.Buffer
	require.NoError(wf.Marshal(&ConnectionInfo{ClientID: "c1", Host: "h", CommandID: 1}, &buf))
	require.Equal(StateConnectPending, wf.State())

	buf.Reset()
	buf.WriteString("CONNECTED\nversion:1.0\n\n\x00")
	_, err := wf.Unmarshal(&buf)
	require.NoError(err)
	require.Equal(StateConnected, wf.State())

	var discBuf bytes.Buffer
	require.NoError(wf.Marshal(&ShutdownInfo{}, &discBuf))
	require.Equal(StateDisconnected, wf.State())
}

func TestUnmarshalNoTransportWiredStillSucceeds(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	cmd, err := wf.Unmarshal(bytes.NewBufferString("RECEIPT\nreceipt-id:ignore:1\n\n\x00"))
	require.NoError(err)
	resp, ok := cmd.(*Response)
	require.True(ok)
	require.Equal(1, resp.CorrelationID)
}
