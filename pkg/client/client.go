package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/forgelabs/forge-go-sdk/pkg/core"
	"github.com/forgelabs/forge-go-sdk/pkg/transport"
)

// streamPath is the streaming endpoint relative to the server base URL.
const streamPath = "/v1/messages/stream"

// Client represents a connection to a Forge server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *logrus.Logger
}

// Config contains configuration options for the client.
type Config struct {
	// BaseURL is the base URL of the Forge server
	BaseURL string

	// HTTPClient overrides the default HTTP/2-enabled client
	HTTPClient *http.Client

	// Logger overrides the standard logrus logger
	Logger *logrus.Logger
}

// New creates a new Forge client with the specified configuration.
func New(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, &core.ConfigError{
			Field: "BaseURL",
			Value: config.BaseURL,
			Err:   errors.New("base URL cannot be empty"),
		}
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, &core.ConfigError{
			Field: "BaseURL",
			Value: config.BaseURL,
			Err:   fmt.Errorf("invalid base URL: %w", err),
		}
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = transport.DefaultHTTPClient()
	}

	logger := config.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// MessageRequest describes one outgoing message whose reply is streamed back.
type MessageRequest struct {
	// ConversationID continues an existing conversation when set
	ConversationID string `json:"conversationId,omitempty"`

	// Prompt is the user's message
	Prompt string `json:"prompt"`
}

// StreamMessage sends a message and consumes the streamed reply: each decoded
// event is delivered to its handler in arrival order, and the accumulated
// Result is returned once the stream terminates. A nil Result with a nil
// error means the stream completed without ever announcing metadata.
//
// The failure surfaced is either the producer's explicit error message
// (core.ProtocolError) or the transport's own failure (core.TransportError).
// Cancelling ctx abandons the stream and returns the context's error.
func (c *Client) StreamMessage(ctx context.Context, req MessageRequest, handlers Handlers) (*Result, error) {
	session, err := c.OpenSession(ctx, req, handlers)
	if err != nil {
		return nil, err
	}
	return session.Run(ctx)
}

// OpenSession opens the response stream for a message and returns the
// unstarted session, for callers that need to hold on to the session (e.g.
// to Abort it from another goroutine). Most callers want StreamMessage.
func (c *Client) OpenSession(ctx context.Context, req MessageRequest, handlers Handlers) (*Session, error) {
	if req.Prompt == "" {
		return nil, &core.ConfigError{
			Field: "Prompt",
			Value: req.Prompt,
			Err:   errors.New("prompt cannot be empty"),
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message request: %w", err)
	}

	requestID := uuid.NewString()
	endpoint := c.baseURL.JoinPath(streamPath)

	c.logger.WithFields(logrus.Fields{
		"requestId":      requestID,
		"conversationId": req.ConversationID,
	}).Debug("opening message stream")

	stream, err := transport.OpenSSE(ctx, transport.SSEConfig{
		URL:     endpoint.String(),
		Body:    body,
		Client:  c.httpClient,
		Headers: http.Header{"X-Request-Id": []string{requestID}},
	})
	if err != nil {
		return nil, err
	}

	session, err := NewSession(stream, handlers, WithLogger(c.logger))
	if err != nil {
		stream.Close()
		return nil, err
	}

	return session, nil
}
