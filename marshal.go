package stomp

import "strconv"

// buildFrame dispatches cmd to its wire representation per §4.D. It may
// return:
//   - a non-nil frame to write to the wire;
//   - a non-nil synthesized Response to hand to wf.Transport without
//     writing anything (the generic HasResponseRequired fallback);
//   - neither, when the command is silently dropped (RemoveInfo whose
//     ObjectID isn't a ConsumerID; a generic command with no response
//     requirement, which is logged before being dropped);
//   - an error for a validation failure (ErrConnectPending,
//     ErrDisconnectResponseRequired).
//
// Grounded on senojj-stomp/connect.go (CONNECT header construction),
// session.go (SEND/SUBSCRIBE/UNSUBSCRIBE), and option.go, generalized from
// that file's functional-option header mutation into a straight-line
// per-variant type switch, the way a closed variant set should be
// dispatched (§9 Design Notes).
func (wf *WireFormat) buildFrame(cmd Command) (*Frame, *Response, error) {
	switch c := cmd.(type) {
	case *ConnectionInfo:
		return wf.buildConnect(c)
	case *Message:
		return wf.buildSend(c)
	case *ConsumerInfo:
		return wf.buildSubscribe(c)
	case *RemoveInfo:
		return wf.buildUnsubscribe(c)
	case *MessageAck:
		return wf.buildAck(c)
	case *TransactionInfo:
		return wf.buildTransaction(c)
	case *ShutdownInfo:
		return wf.buildDisconnect(c)
	case *KeepAliveInfo:
		return NewFrame(VerbKeepAlive), nil, nil
	default:
		return wf.buildGeneric(cmd)
	}
}

func (wf *WireFormat) buildConnect(c *ConnectionInfo) (*Frame, *Response, error) {
	if wf.PendingConnectCorrelation != nil {
		return nil, nil, ErrConnectPending
	}
	f := NewFrame(VerbConnect)
	f.Header.Set(hdrClientID, c.ClientID)
	if c.UserName != "" {
		f.Header.Set(hdrLogin, c.UserName)
	}
	if c.Password != "" {
		f.Header.Set(hdrPasscode, c.Password)
	}
	f.Header.Set(hdrHost, c.Host)
	f.Header.Set(hdrAcceptVersion, "1.0,1.1")

	duration := c.MaxInactivityDuration
	if duration == 0 {
		duration = wf.Config.MaxInactivityDuration
	}
	if duration != 0 {
		cfg := Config{MaxInactivityDuration: duration}
		f.Header.Set(hdrHeartBeat, strconv.Itoa(cfg.WriteCheckInterval())+","+strconv.Itoa(cfg.ReadCheckInterval()))
	}

	id := c.CommandID
	wf.PendingConnectCorrelation = &id
	return f, nil, nil
}

func (wf *WireFormat) buildSend(m *Message) (*Frame, *Response, error) {
	f := NewFrame(VerbSend)
	if m.ResponseRequiredFlag {
		f.Header.Set(hdrReceipt, strconv.Itoa(m.CommandID))
	}
	f.Header.Set(hdrDestination, m.Destination.String())
	if m.ReplyTo.Kind != DestinationNone || m.ReplyTo.Name != "" {
		f.Header.Set(hdrReplyTo, m.ReplyTo.String())
	}
	if m.CorrelationID != "" {
		f.Header.Set(hdrCorrelationID, m.CorrelationID)
	}
	if m.Expiration != 0 {
		f.Header.Set(hdrExpires, strconv.FormatInt(m.Expiration, 10))
	}
	if m.Timestamp != 0 {
		f.Header.Set(hdrTimestamp, strconv.FormatInt(m.Timestamp, 10))
	}
	if m.Priority != DefaultPriority {
		f.Header.Set(hdrPriority, strconv.Itoa(int(m.Priority)))
	}
	if m.Type != "" {
		f.Header.Set(hdrType, m.Type)
	}
	if m.TransactionID != "" {
		f.Header.Set(hdrTransaction, m.TransactionID)
	}
	f.Header.Set(hdrPersistent, formatBool(m.Persistent))
	f.Header.Set(hdrNMSXDelivery, formatBool(m.Persistent))
	if m.GroupID != "" {
		f.Header.Set(hdrJMSXGroupID, m.GroupID)
		f.Header.Set(hdrNMSXGroupID, m.GroupID)
		f.Header.Set(hdrJMSXGroupSeq, strconv.Itoa(m.GroupSeq))
		f.Header.Set(hdrNMSXGroupSeq, strconv.Itoa(m.GroupSeq))
	}

	f.Body = m.Content
	if m.Kind == MessageBytes && len(m.Body()) > 0 {
		f.Header.Set(hdrContentLength, strconv.Itoa(len(f.Body)))
		f.Header.Set(hdrTransformation, "jms-byte")
	}

	for k, v := range m.Headers {
		if !f.Header.Has(k) {
			f.Header.Set(k, v)
		}
	}
	return f, nil, nil
}

// Body returns the message's wire content. It exists so buildSend can be
// written the same way regardless of future body-materialization schemes;
// today it is a plain accessor over Content.
func (m *Message) Body() []byte { return m.Content }

func (wf *WireFormat) buildSubscribe(c *ConsumerInfo) (*Frame, *Response, error) {
	f := NewFrame(VerbSubscribe)
	if c.ResponseRequiredFlag {
		f.Header.Set(hdrReceipt, strconv.Itoa(c.CommandID))
	}
	f.Header.Set(hdrDestination, c.Destination.String())
	f.Header.Set(hdrID, string(c.ConsumerID))
	if c.SubscriptionName != "" {
		f.Header.Set(hdrDurableSubName, c.SubscriptionName)
	}
	if c.Selector != "" {
		f.Header.Set(hdrSelector, c.Selector)
	}
	f.Header.Set(hdrAck, c.AckMode.String())
	if c.NoLocal {
		f.Header.Set(hdrNoLocal, "True")
	}
	transformation := c.Transformation
	if transformation == "" {
		transformation = "jms-xml"
	}
	f.Header.Set(hdrTransformation, transformation)
	f.Header.Set(hdrAMQDispatchAsync, formatBool(c.DispatchAsync))
	if c.Exclusive {
		f.Header.Set(hdrAMQExclusive, formatBool(true))
	}
	if c.SubscriptionName != "" {
		f.Header.Set(hdrAMQSubName, c.SubscriptionName)
		f.Header.Set(hdrAMQSubNameTypo, c.SubscriptionName)
	}
	f.Header.Set(hdrAMQMaxPending, strconv.Itoa(c.MaximumPendingMessageLimit))
	f.Header.Set(hdrAMQPrefetch, strconv.Itoa(c.PrefetchSize))
	f.Header.Set(hdrAMQPriority, strconv.Itoa(c.Priority))
	if c.Retroactive {
		f.Header.Set(hdrAMQRetroactive, formatBool(true))
	}
	return f, nil, nil
}

func (wf *WireFormat) buildUnsubscribe(r *RemoveInfo) (*Frame, *Response, error) {
	consumerID, ok := r.ObjectID.(ConsumerID)
	if !ok {
		return nil, nil, nil
	}
	f := NewFrame(VerbUnsubscribe)
	if r.ResponseRequiredFlag {
		f.Header.Set(hdrReceipt, strconv.Itoa(r.CommandID))
	}
	f.Header.Set(hdrID, string(consumerID))
	return f, nil, nil
}

func (wf *WireFormat) buildAck(a *MessageAck) (*Frame, *Response, error) {
	f := NewFrame(VerbAck)
	f.Header.Set(hdrMessageID, a.LastMessageID)
	f.Header.Set(hdrSubscription, string(a.ConsumerID))
	if a.TransactionID != "" {
		f.Header.Set(hdrTransaction, a.TransactionID)
	}
	if a.ResponseRequiredFlag {
		f.Header.Set(hdrReceipt, "ignore:"+strconv.Itoa(a.CommandID))
	}
	return f, nil, nil
}

func (wf *WireFormat) buildTransaction(t *TransactionInfo) (*Frame, *Response, error) {
	var verb Verb
	switch t.Type {
	case TransactionCommit:
		verb = VerbCommit
	case TransactionRollback:
		verb = VerbAbort
	default:
		verb = VerbBegin
	}
	f := NewFrame(verb)
	if t.ResponseRequired() {
		f.Header.Set(hdrReceipt, strconv.Itoa(t.CommandID))
	}
	f.Header.Set(hdrTransaction, t.TransactionID)
	return f, nil, nil
}

func (wf *WireFormat) buildDisconnect(s *ShutdownInfo) (*Frame, *Response, error) {
	if s.ResponseRequiredFlag {
		return nil, nil, ErrDisconnectResponseRequired
	}
	return NewFrame(VerbDisconnect), nil, nil
}

// buildGeneric handles any Command that isn't one of the named variants
// (§4.D "generic command with response_required"). If it requests a
// response, a Response is synthesized without writing a frame; otherwise
// it is logged and dropped.
func (wf *WireFormat) buildGeneric(cmd Command) (*Frame, *Response, error) {
	hrr, ok := cmd.(HasResponseRequired)
	if !ok || !hrr.ResponseRequired() {
		logger.WithField("command_id", cmd.commandID()).Warn("stomp: dropping command with no wire representation and no response requirement")
		return nil, nil, nil
	}
	return nil, &Response{CorrelationID: hrr.commandID()}, nil
}

func formatBool(v bool) string {
	if v {
		return "true"
	}
	return "false"
}
