package transport

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/forgelabs/forge-go-sdk/pkg/core"
)

// WebSocketConfig contains everything needed to open one WebSocket stream.
type WebSocketConfig struct {
	// URL is the ws:// or wss:// URL of the streaming endpoint
	URL string

	// Headers are sent with the handshake request
	Headers http.Header

	// Dialer is the WebSocket dialer to use; websocket.DefaultDialer when nil
	Dialer *websocket.Dialer
}

// OpenWebSocket dials the streaming endpoint and adapts its message stream to
// the same io.ReadCloser shape OpenSSE produces, so the one decoder serves
// both transports. Each WebSocket message carries raw protocol bytes
// (newline-delimited frames, same as the SSE body). A normal closure from the
// server surfaces as io.EOF; abnormal closures surface as the underlying
// error.
func OpenWebSocket(ctx context.Context, config WebSocketConfig) (io.ReadCloser, error) {
	dialer := config.Dialer
	if dialer == nil {
		dialer = websocket.DefaultDialer
	}

	conn, resp, err := dialer.DialContext(ctx, config.URL, config.Headers)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return nil, &core.TransportError{Operation: "dial", Err: err}
	}
	if resp != nil {
		resp.Body.Close()
	}

	pr, pw := io.Pipe()
	stream := &wsStream{conn: conn, pr: pr}

	// The pump copies messages into the pipe until the connection drops or
	// the stream is closed. conn.Close unblocks ReadMessage.
	stream.group.Go(func() error {
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				pw.CloseWithError(normalizeCloseError(err))
				return nil
			}
			if _, err := pw.Write(message); err != nil {
				// Reader side went away first; drain no further.
				return nil
			}
		}
	})

	return stream, nil
}

// normalizeCloseError maps a clean protocol-level closure to io.EOF so the
// decoder treats it as graceful end of stream.
func normalizeCloseError(err error) error {
	if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
		return io.EOF
	}
	return err
}

// wsStream adapts a WebSocket connection to io.ReadCloser.
type wsStream struct {
	conn  *websocket.Conn
	pr    *io.PipeReader
	group errgroup.Group
	once  sync.Once
}

func (s *wsStream) Read(p []byte) (int, error) {
	return s.pr.Read(p)
}

func (s *wsStream) Close() error {
	s.once.Do(func() {
		s.conn.Close()
		s.pr.CloseWithError(core.ErrStreamClosed)
		s.group.Wait()
	})
	return nil
}
