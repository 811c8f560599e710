package stomp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
)

const maxHeaderBytes = 1 << 20 // 1 MB, guards against a broker that never sends a blank line.

// Frame is an in-memory STOMP frame: a verb, an ordered set of headers, and
// an optional body. Frame is constructed per I/O operation and discarded;
// it owns no external resources (§5).
type Frame struct {
	Verb   Verb
	Header *Header
	Body   []byte
}

// NewFrame returns an empty Frame for verb, ready to have headers set on it.
func NewFrame(verb Verb) *Frame {
	return &Frame{Verb: verb, Header: NewHeader()}
}

// WriteTo writes f to w in STOMP wire format. When encodeHeaders is true
// (negotiated protocol >= 1.1), every header name and value passes through
// the §4.B escape encoder first. Grounded on senojj-stomp/frame.go's
// Frame.Write, adapted from a streaming io.ReadCloser body to the []byte
// body this codec's data model uses (§3).
func (f *Frame) WriteTo(w io.Writer, encodeHeaders bool) (int64, error) {
	if f.Verb == VerbKeepAlive {
		n, err := w.Write([]byte{KeepAliveByte})
		return int64(n), err
	}

	bw, flush := bufferedWriter(w)
	var written int64

	n, err := fmt.Fprintf(bw, "%s\n", f.Verb)
	written += int64(n)
	if err != nil {
		return written, err
	}

	if f.Header != nil {
		var werr error
		f.Header.Range(func(name, value string) bool {
			hn, hv := name, value
			if encodeHeaders {
				hn, hv = encodeHeaderToken(hn), encodeHeaderToken(hv)
			}
			var b int
			b, werr = fmt.Fprintf(bw, "%s:%s\n", hn, hv)
			written += int64(b)
			return werr == nil
		})
		if werr != nil {
			return written, werr
		}
	}

	n, err = bw.Write([]byte{'\n'})
	written += int64(n)
	if err != nil {
		return written, err
	}

	if len(f.Body) > 0 {
		n, err = bw.Write(f.Body)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}

	n, err = bw.Write([]byte{0})
	written += int64(n)
	if err != nil {
		return written, err
	}

	if flush != nil {
		if err := flush(); err != nil {
			return written, err
		}
	}
	return written, nil
}

// bufferedWriter returns w as a *bufio.Writer (wrapping it if necessary)
// and a flush func to call once writing is complete. If w is already
// buffered, flush is nil and the caller need not flush explicitly — mirrors
// senojj-stomp/frame.go's io.ByteWriter check, generalized to *bufio.Writer.
func bufferedWriter(w io.Writer) (*bufio.Writer, func() error) {
	if bw, ok := w.(*bufio.Writer); ok {
		return bw, nil
	}
	bw := bufio.NewWriter(w)
	return bw, bw.Flush
}

// readFrame reads a single frame from br. br must be reused across calls
// for the same underlying stream: allocating a fresh bufio.Reader per call
// would silently discard any bytes already buffered past the current
// frame's terminator. See WireFormat.Unmarshal.
//
// Grounded on senojj-stomp/frame.go's ReadFrame/readCommand/readHeader,
// rewritten around bufio.Reader.ReadBytes instead of a hand-rolled
// delimitedReader, and against the §3 body model ([]byte, not io.ReadCloser).
func readFrame(br *bufio.Reader, encodeHeaders bool) (*Frame, error) {
	verbLine, err := readKeepAliveOrLine(br)
	if err != nil {
		return nil, err
	}
	if verbLine == nil {
		return &Frame{Verb: VerbKeepAlive}, nil
	}

	header := NewHeader()
	headerBytes := 0
	for {
		line, err := readLine(br)
		if err != nil {
			return nil, err
		}
		if len(line) == 0 {
			break
		}
		headerBytes += len(line)
		if headerBytes > maxHeaderBytes {
			return nil, NewMalformedFrame("header block exceeds %d bytes", maxHeaderBytes)
		}
		idx := bytes.IndexByte(line, ':')
		if idx <= 0 {
			return nil, NewMalformedFrame("header line missing ':': %q", line)
		}
		name, value := string(line[:idx]), string(line[idx+1:])
		if encodeHeaders {
			name, err = decodeHeaderToken(name)
			if err != nil {
				return nil, err
			}
			value, err = decodeHeaderToken(value)
			if err != nil {
				return nil, err
			}
		}
		if !header.Has(name) {
			header.Set(name, value)
		}
	}

	body, err := readBody(br, header)
	if err != nil {
		return nil, err
	}

	return &Frame{Verb: Verb(verbLine), Header: header, Body: body}, nil
}

// readKeepAliveOrLine implements step 1 of §4.A's read contract: skip
// leading \r bytes, and if the first meaningful byte is \n, that is a
// heart-beat with nothing to parse as a verb. Otherwise it reads the full
// verb line (sans trailing \r) and returns it.
//
// io.EOF on the very first byte, before any byte of a new frame has been
// consumed, is a clean stream end and is returned unchanged (§4.F: neither
// wrapped as TransportError nor treated as a truncated frame); any other
// error there is wrapped as a TransportError. Any error after that point
// means a frame is already in progress, so EOF there is a premature
// truncation, not a clean close.
func readKeepAliveOrLine(br *bufio.Reader) ([]byte, error) {
	started := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if !started && err == io.EOF {
				return nil, err
			}
			return nil, wrapMidFrameErr(err)
		}
		started = true
		if b == '\r' {
			continue
		}
		if b == '\n' {
			return nil, nil
		}
		if uerr := br.UnreadByte(); uerr != nil {
			return nil, wrapMidFrameErr(uerr)
		}
		break
	}
	return readLine(br)
}

// readLine reads bytes up to and including the next '\n', strips the
// newline and any trailing '\r', and returns the remainder. Always called
// mid-frame, so a read error here — including EOF — means the stream ended
// before the frame's terminator.
func readLine(br *bufio.Reader) ([]byte, error) {
	line, err := br.ReadBytes('\n')
	if err != nil {
		return nil, wrapMidFrameErr(err)
	}
	line = line[:len(line)-1]
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, nil
}

// readBody implements steps 4-5 of §4.A: a present, well-formed
// content-length means read exactly that many bytes then require the
// terminator; otherwise read until the first NUL.
func readBody(br *bufio.Reader, header *Header) ([]byte, error) {
	if raw, ok := header.Get(hdrContentLength); ok {
		length, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || length < 0 {
			return nil, NewMalformedFrame("invalid content-length %q", raw)
		}
		body := make([]byte, length)
		if _, err := io.ReadFull(br, body); err != nil {
			return nil, wrapMidFrameErr(err)
		}
		term, err := br.ReadByte()
		if err != nil {
			return nil, wrapMidFrameErr(err)
		}
		if term != 0 {
			return nil, NewMalformedFrame("expected NUL terminator after content-length body, got %q", term)
		}
		return body, nil
	}

	body, err := br.ReadBytes(0)
	if err != nil {
		return nil, wrapMidFrameErr(err)
	}
	return body[:len(body)-1], nil
}

// wrapMidFrameErr classifies a read error encountered while a frame is
// already in progress. EOF or a short read there means the stream ended
// before the frame's terminator — a MalformedFrame per §4.A, not a
// transport failure. Anything else is a genuine transport error.
func wrapMidFrameErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return NewMalformedFrame("stream ended before frame terminator: %v", err)
	}
	return NewTransportError(err)
}
