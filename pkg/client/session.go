package client

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/forgelabs/forge-go-sdk/pkg/core"
	"github.com/forgelabs/forge-go-sdk/pkg/core/events"
	"github.com/forgelabs/forge-go-sdk/pkg/encoding/sse"
)

// SessionState describes where a session is in its lifecycle.
type SessionState int32

const (
	SessionOpen SessionState = iota
	SessionReading
	SessionCompleted
	SessionFailed
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case SessionOpen:
		return "open"
	case SessionReading:
		return "reading"
	case SessionCompleted:
		return "completed"
	case SessionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session drives the read loop over one response stream. It is created per
// outgoing request, lives exactly as long as one Run, and is discarded on
// first exit; the underlying stream is closed exactly once on every exit
// path.
type Session struct {
	stream io.ReadCloser
	reader *sse.LineReader
	disp   *dispatcher
	log    *logrus.Entry

	state   atomic.Int32
	started atomic.Bool
	aborted atomic.Bool
	release sync.Once
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	logger *logrus.Logger
}

// WithLogger sets the logger the session and its dispatcher log through.
func WithLogger(logger *logrus.Logger) SessionOption {
	return func(c *sessionConfig) {
		c.logger = logger
	}
}

// NewSession creates a session over an open byte stream. The stream is owned
// by the session from this point on: it will be closed by Run or Abort, never
// by the caller.
func NewSession(stream io.ReadCloser, handlers Handlers, options ...SessionOption) (*Session, error) {
	if stream == nil {
		return nil, &core.ConfigError{
			Field: "stream",
			Value: stream,
			Err:   errors.New("stream cannot be nil"),
		}
	}

	if err := handlers.validate(); err != nil {
		return nil, &core.ConfigError{
			Field: "handlers",
			Value: nil,
			Err:   err,
		}
	}

	config := sessionConfig{logger: logrus.StandardLogger()}
	for _, opt := range options {
		opt(&config)
	}

	log := config.logger.WithField("component", "session")

	return &Session{
		stream: stream,
		reader: sse.NewLineReader(stream),
		disp:   newDispatcher(handlers, log),
		log:    log,
	}, nil
}

// State returns the session's current lifecycle state. An aborted session
// stays in SessionReading: abandonment is neither completion nor failure.
func (s *Session) State() SessionState {
	return SessionState(s.state.Load())
}

// Abort stops the session from awaiting further chunks and releases the
// stream immediately, without the terminal success or failure path. Safe to
// call from any goroutine, any number of times.
func (s *Session) Abort() {
	s.aborted.Store(true)
	s.close()
}

// Run executes the read loop until a terminal event, physical end of stream,
// or failure, and returns the accumulated Result. The Result is nil when the
// stream never produced metadata. Run consumes the session: a second call
// returns core.ErrSessionConsumed without touching the stream.
//
// Cancelling ctx abandons the session: the stream is released immediately and
// Run returns the context's error instead of a terminal result.
func (s *Session) Run(ctx context.Context) (*Result, error) {
	if !s.started.CompareAndSwap(false, true) {
		return nil, core.ErrSessionConsumed
	}
	defer s.close()

	// Tear the stream down as soon as the caller abandons the session, which
	// unblocks the pending read.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			s.Abort()
		case <-watchDone:
		}
	}()

	s.state.Store(int32(SessionReading))

	for {
		lines, err := s.reader.Next()

		for _, line := range lines {
			payload, ok := sse.DataPayload(line)
			if !ok {
				continue
			}

			event, ok := events.Decode([]byte(payload))
			if !ok {
				s.log.WithField("payload", truncatePayload(payload)).Debug("discarding malformed frame")
				continue
			}

			done, dispatchErr := s.disp.dispatch(event)
			if dispatchErr != nil {
				s.state.Store(int32(SessionFailed))
				return nil, dispatchErr
			}
			if done {
				// Anything buffered after the terminator is ignored.
				s.state.Store(int32(SessionCompleted))
				return s.disp.result, nil
			}
		}

		if err != nil {
			if s.aborted.Load() {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				return nil, core.ErrSessionAborted
			}
			if errors.Is(err, io.EOF) {
				// Absence of an explicit terminator is tolerated, not an
				// error.
				s.state.Store(int32(SessionCompleted))
				return s.disp.result, nil
			}
			s.state.Store(int32(SessionFailed))
			return nil, &core.TransportError{Operation: "read", Err: err}
		}
	}
}

func (s *Session) close() {
	s.release.Do(func() {
		if err := s.stream.Close(); err != nil {
			s.log.WithError(err).Debug("closing stream")
		}
	})
}

// truncatePayload keeps malformed-frame logging bounded.
func truncatePayload(payload string) string {
	const max = 256
	if len(payload) <= max {
		return payload
	}
	return payload[:max] + "..."
}
