package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"

	"golang.org/x/net/http2"

	"github.com/forgelabs/forge-go-sdk/pkg/core"
)

// contentTypeEventStream is the media type the server must answer with.
const contentTypeEventStream = "text/event-stream"

// SSEConfig contains everything needed to open one streaming request.
type SSEConfig struct {
	// URL is the absolute URL of the streaming endpoint
	URL string

	// Body is the JSON request body sent with the POST
	Body []byte

	// Headers are added to the request after the protocol headers
	Headers http.Header

	// Client is the HTTP client to use; DefaultHTTPClient() when nil
	Client *http.Client
}

// OpenSSE issues the streaming request and returns the response body as the
// raw byte stream the decoder consumes. The returned stream must be closed by
// the caller (pkg/client sessions do this on every exit path).
func OpenSSE(ctx context.Context, config SSEConfig) (io.ReadCloser, error) {
	if config.URL == "" {
		return nil, &core.ConfigError{
			Field: "URL",
			Value: config.URL,
			Err:   fmt.Errorf("streaming endpoint URL cannot be empty"),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.URL, bytes.NewReader(config.Body))
	if err != nil {
		return nil, &core.TransportError{Operation: "request", Err: err}
	}

	req.Header.Set("Accept", contentTypeEventStream)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	for key, values := range config.Headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	client := config.Client
	if client == nil {
		client = DefaultHTTPClient()
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &core.TransportError{Operation: "connect", Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &core.TransportError{
			Operation: "connect",
			Err:       fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != contentTypeEventStream {
		resp.Body.Close()
		return nil, &core.TransportError{
			Operation: "connect",
			Err:       fmt.Errorf("unexpected content type %q", resp.Header.Get("Content-Type")),
		}
	}

	return resp.Body, nil
}

// DefaultHTTPClient returns the HTTP client used when SSEConfig.Client is
// unset: HTTP/2-enabled, with no overall timeout. A client timeout would kill
// long-lived streams; timeout policy belongs to the caller's context.
func DefaultHTTPClient() *http.Client {
	tr := &http.Transport{}
	// Falls back to HTTP/1.1 if the handshake cannot be configured.
	http2.ConfigureTransport(tr)
	return &http.Client{Transport: tr}
}
