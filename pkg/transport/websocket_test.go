package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelabs/forge-go-sdk/pkg/core"
)

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestOpenWebSocket(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("data: one\n")))
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("data: two\n")))

		deadline := time.Now().Add(time.Second)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)

		// Wait for the client's close response before tearing down.
		conn.SetReadDeadline(deadline)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	stream, err := OpenWebSocket(context.Background(), WebSocketConfig{URL: wsURL(srv)})
	require.NoError(t, err)
	defer stream.Close()

	// A clean closure surfaces as plain end of stream.
	content, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "data: one\ndata: two\n", string(content))
}

func TestOpenWebSocketDialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	_, err := OpenWebSocket(context.Background(), WebSocketConfig{URL: wsURL(srv)})

	var transportErr *core.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "dial", transportErr.Operation)
}

func TestWebSocketStreamCloseIsIdempotent(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		// Hold the connection open until the client goes away.
		conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	stream, err := OpenWebSocket(context.Background(), WebSocketConfig{URL: wsURL(srv)})
	require.NoError(t, err)

	assert.NoError(t, stream.Close())
	assert.NoError(t, stream.Close())

	// Reads after close report the closed pipe.
	_, err = stream.Read(make([]byte, 16))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}
