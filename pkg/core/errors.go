package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrStreamClosed       = errors.New("stream closed")
	ErrSessionConsumed    = errors.New("session already consumed")
	ErrSessionAborted     = errors.New("session aborted")
	ErrMissingTextHandler = errors.New("text handler is required")
)

// ConfigError represents configuration-related errors
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ProtocolError represents a fatal error reported explicitly by the producer
// on the event stream. Message is the producer-supplied text.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s", e.Message)
}

// TransportError wraps a failure of the underlying byte stream, either while
// opening it or while reading from it.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error in %s: %v", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HandlerError wraps an error returned by a caller-supplied event handler
// during dispatch.
type HandlerError struct {
	EventType string
	Err       error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler for %s event failed: %v", e.EventType, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
