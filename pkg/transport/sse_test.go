package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelabs/forge-go-sdk/pkg/core"
)

func TestOpenSSE(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "text/event-stream", r.Header.Get("Accept"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"prompt":"hi"}`, string(body))

		w.Header().Set("Content-Type", "text/event-stream; charset=utf-8")
		_, _ = w.Write([]byte("data: [DONE]\n"))
	}))
	defer srv.Close()

	stream, err := OpenSSE(context.Background(), SSEConfig{
		URL:     srv.URL,
		Body:    []byte(`{"prompt":"hi"}`),
		Headers: http.Header{"X-Request-Id": []string{"req-1"}},
	})
	require.NoError(t, err)
	defer stream.Close()

	content, err := io.ReadAll(stream)
	require.NoError(t, err)
	assert.Equal(t, "data: [DONE]\n", string(content))
}

func TestOpenSSEEmptyURL(t *testing.T) {
	_, err := OpenSSE(context.Background(), SSEConfig{})

	var configErr *core.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "URL", configErr.Field)
}

func TestOpenSSEUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := OpenSSE(context.Background(), SSEConfig{URL: srv.URL})

	var transportErr *core.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "connect", transportErr.Operation)
	assert.Contains(t, err.Error(), "503")
}

func TestOpenSSEUnexpectedContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := OpenSSE(context.Background(), SSEConfig{URL: srv.URL})

	var transportErr *core.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, err.Error(), "content type")
}

func TestOpenSSEConnectFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	_, err := OpenSSE(context.Background(), SSEConfig{URL: srv.URL})

	var transportErr *core.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, "connect", transportErr.Operation)
}
