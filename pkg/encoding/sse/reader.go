package sse

import (
	"io"
	"strings"
)

// DataPrefix marks the lines of the wire format that carry a payload.
const DataPrefix = "data: "

// defaultBufferSize is the size of the read buffer handed to the transport.
const defaultBufferSize = 4096

// LineReader re-segments a raw, chunked byte stream into complete,
// newline-terminated protocol lines. It maintains a single carry-over buffer
// holding the tail fragment after the last newline of the previous read; the
// fragment is completed by later chunks or, if the stream ends first,
// discarded. An unterminated fragment is never a complete line.
//
// LineReader performs exactly one read against the underlying stream per call
// to Next, so the caller controls backpressure: there is never more than one
// outstanding read.
type LineReader struct {
	r     io.Reader
	buf   []byte
	carry string
	err   error
}

// NewLineReader creates a LineReader over the given byte stream.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: r, buf: make([]byte, defaultBufferSize)}
}

// Next pulls one chunk from the underlying stream and returns the complete
// lines it finishes, in order. A pull that completes no line returns an empty
// slice with a nil error. At end of stream Next returns io.EOF; any other
// error is the transport's own read failure, propagated unmodified. When a
// pull both delivers data and fails, the completed lines are returned first
// and the error is reported on the following call.
//
// Line terminators are not included in the returned lines; a trailing
// carriage return is stripped.
func (lr *LineReader) Next() ([]string, error) {
	if lr.err != nil {
		return nil, lr.err
	}

	n, err := lr.r.Read(lr.buf)

	var lines []string
	if n > 0 {
		lr.carry += string(lr.buf[:n])
		if strings.Contains(lr.carry, "\n") {
			parts := strings.Split(lr.carry, "\n")
			lr.carry = parts[len(parts)-1]
			lines = parts[:len(parts)-1]
			for i, line := range lines {
				lines[i] = strings.TrimSuffix(line, "\r")
			}
		}
	}

	if err != nil {
		lr.err = err
		if len(lines) > 0 {
			return lines, nil
		}
		return nil, err
	}

	return lines, nil
}

// DataPayload extracts the payload of a data line. The second return value is
// false for lines that carry no payload: blank separators, comments, and any
// other non-data line of the wire format.
func DataPayload(line string) (string, bool) {
	if !strings.HasPrefix(line, DataPrefix) {
		return "", false
	}
	return line[len(DataPrefix):], true
}
