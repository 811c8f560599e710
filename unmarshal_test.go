package stomp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRead(t *testing.T, wf *WireFormat, raw string) Command {
	t.Helper()
	cmd, err := wf.Unmarshal(bytes.NewBufferString(raw))
	require.NoError(t, err)
	return cmd
}

func TestUnmarshalConnectedSynthesizesResponse(t *testing.T) {
	require := require.New(t)

	tp := &capturingTransport{}
	wf := NewWireFormat()
	wf.Transport = tp
	id := 9
	wf.PendingConnectCorrelation = &id

	cmd := mustRead(t, wf, "CONNECTED\nversion:1.1\nsession:sess-1\nheart-beat:5000,6000\n\n\x00")

	info, ok := cmd.(*WireFormatInfo)
	require.True(ok)
	require.Equal(1.1, info.Version)
	require.Equal("sess-1", info.SessionID)
	require.Equal(5000, info.WriteCheckInterval)
	require.Equal(6000, info.ReadCheckInterval)
	require.True(wf.EncodeHeaders)
	require.Nil(wf.PendingConnectCorrelation)

	require.Len(tp.received, 1)
	resp, ok := tp.received[0].(*Response)
	require.True(ok)
	require.Equal(9, resp.CorrelationID)
}

func TestUnmarshalConnectedWithoutPendingIsProtocolError(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	_, err := wf.Unmarshal(bytes.NewBufferString("CONNECTED\nversion:1.0\n\n\x00"))
	require.Equal(ErrUnexpectedConnected, err)
}

func TestUnmarshalReceiptIgnorePrefix(t *testing.T) {
	require := require.New(t)

	tp := &capturingTransport{}
	wf := NewWireFormat()
	wf.Transport = tp

	cmd := mustRead(t, wf, "RECEIPT\nreceipt-id:ignore:42\n\n\x00")
	resp, ok := cmd.(*Response)
	require.True(ok)
	require.Equal(42, resp.CorrelationID)

	require.Len(tp.received, 1)
	delivered, ok := tp.received[0].(*Response)
	require.True(ok)
	require.Equal(42, delivered.CorrelationID)
}

func TestUnmarshalReceiptPlainIsReturnedOnlyNotDelivered(t *testing.T) {
	require := require.New(t)

	tp := &capturingTransport{}
	wf := NewWireFormat()
	wf.Transport = tp

	cmd := mustRead(t, wf, "RECEIPT\nreceipt-id:42\n\n\x00")
	resp, ok := cmd.(*Response)
	require.True(ok)
	require.Equal(42, resp.CorrelationID)
	require.Empty(tp.received)
}

func TestUnmarshalErrorIgnorePrefixDowngradesToResponse(t *testing.T) {
	require := require.New(t)

	tp := &capturingTransport{}
	wf := NewWireFormat()
	wf.Transport = tp

	cmd := mustRead(t, wf, "ERROR\nreceipt-id:ignore:7\nmessage:boom\n\n\x00")
	resp, ok := cmd.(*Response)
	require.True(ok)
	require.Equal(7, resp.CorrelationID)

	require.Len(tp.received, 1)
	delivered, ok := tp.received[0].(*Response)
	require.True(ok)
	require.Equal(7, delivered.CorrelationID)
}

func TestUnmarshalErrorWithoutIgnorePrefixIsExceptionResponse(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	cmd := mustRead(t, wf, "ERROR\nreceipt-id:7\nmessage:boom\n\n\x00")
	ex, ok := cmd.(*ExceptionResponse)
	require.True(ok)
	require.Equal(7, ex.CorrelationID)
	require.Equal("boom", ex.Exception.Message)
}

func TestUnmarshalMessageTextReconstructsFields(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	raw := "MESSAGE\ndestination:/queue/orders\nmessage-id:m-1\nsubscription:sub-1\n" +
		"correlation-id:c-1\npriority:9\ntimestamp:100\nexpires:200\npersistent:true\n" +
		"custom:hi\n\nhello\x00"
	cmd := mustRead(t, wf, raw)
	dispatch, ok := cmd.(*MessageDispatch)
	require.True(ok)
	require.Equal(ConsumerID("sub-1"), dispatch.ConsumerID)

	m := dispatch.Message
	require.Equal(Destination{Kind: DestinationQueue, Name: "orders"}, m.Destination)
	require.Equal("m-1", m.MessageID)
	require.Equal("c-1", m.CorrelationID)
	require.Equal(byte(9), m.Priority)
	require.Equal(int64(100), m.Timestamp)
	require.Equal(int64(200), m.Expiration)
	require.True(m.Persistent)
	require.Equal(MessageText, m.Kind)
	require.Equal([]byte("hello"), m.Content)
	require.Equal("hi", m.Headers["custom"])
	require.NotContains(m.Headers, "destination")
	require.NotContains(m.Headers, "message-id")
}

func TestUnmarshalMessageBinaryByContentLength(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	raw := "MESSAGE\ndestination:/queue/orders\ncontent-length:4\n\nbin\x00\x00"
	cmd := mustRead(t, wf, raw)
	dispatch := cmd.(*MessageDispatch)
	require.Equal(MessageBytes, dispatch.Message.Kind)
	require.Equal([]byte("bin\x00"), dispatch.Message.Content)
	require.NotContains(dispatch.Message.Headers, "content-length")
}

func TestUnmarshalMessageDefaultPriority(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	cmd := mustRead(t, wf, "MESSAGE\ndestination:/queue/orders\n\n\x00")
	dispatch := cmd.(*MessageDispatch)
	require.Equal(DefaultPriority, dispatch.Message.Priority)
}

func TestUnmarshalMessageRedelivered(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	cmd := mustRead(t, wf, "MESSAGE\ndestination:/queue/orders\nredelivered:true\n\n\x00")
	dispatch := cmd.(*MessageDispatch)
	require.Equal(1, dispatch.Message.RedeliveryCounter)
}

func TestUnmarshalKeepAlive(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	cmd := mustRead(t, wf, "\n")
	_, ok := cmd.(*KeepAliveInfo)
	require.True(ok)
}

func TestUnmarshalUnknownVerbReturnsNil(t *testing.T) {
	require := require.New(t)

	wf := NewWireFormat()
	cmd, err := wf.Unmarshal(bytes.NewBufferString("BOGUS\n\n\x00"))
	require.NoError(err)
	require.Nil(cmd)
}
