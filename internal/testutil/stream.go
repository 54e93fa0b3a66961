package testutil

import (
	"errors"
	"io"
	"sync"
)

// ErrStreamClosed is returned by reads on a stream that has been closed.
var ErrStreamClosed = errors.New("testutil: read on closed stream")

// ScriptedStream is an io.ReadCloser that replays a fixed sequence of chunks,
// one chunk per Read call, exactly as a transport with arbitrary chunk
// boundaries would deliver them. After the last chunk it returns io.EOF, or
// the error installed with FailWith. Close is counted so tests can assert the
// resource is released exactly once.
type ScriptedStream struct {
	mu         sync.Mutex
	chunks     []string
	current    string
	finalErr   error
	closed     bool
	closeCount int
}

// NewScriptedStream creates a stream that delivers each chunk in order.
func NewScriptedStream(chunks ...string) *ScriptedStream {
	return &ScriptedStream{chunks: chunks}
}

// FailWith makes the stream return err instead of io.EOF once its chunks are
// exhausted. It returns the stream for chaining.
func (s *ScriptedStream) FailWith(err error) *ScriptedStream {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalErr = err
	return s
}

func (s *ScriptedStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStreamClosed
	}

	if s.current == "" {
		if len(s.chunks) == 0 {
			if s.finalErr != nil {
				return 0, s.finalErr
			}
			return 0, io.EOF
		}
		s.current = s.chunks[0]
		s.chunks = s.chunks[1:]
	}

	n := copy(p, s.current)
	s.current = s.current[n:]
	return n, nil
}

func (s *ScriptedStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.closeCount++
	return nil
}

// CloseCount reports how many times Close has been called.
func (s *ScriptedStream) CloseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeCount
}

// BlockingStream is an io.ReadCloser whose Read blocks until the stream is
// closed, mimicking a transport that is waiting for the server's next chunk.
// Useful for exercising abandonment.
type BlockingStream struct {
	once       sync.Once
	unblock    chan struct{}
	mu         sync.Mutex
	closeCount int
}

// NewBlockingStream creates a stream that never delivers data.
func NewBlockingStream() *BlockingStream {
	return &BlockingStream{unblock: make(chan struct{})}
}

func (s *BlockingStream) Read(p []byte) (int, error) {
	<-s.unblock
	return 0, ErrStreamClosed
}

func (s *BlockingStream) Close() error {
	s.mu.Lock()
	s.closeCount++
	s.mu.Unlock()
	s.once.Do(func() { close(s.unblock) })
	return nil
}

// CloseCount reports how many times Close has been called.
func (s *BlockingStream) CloseCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeCount
}
