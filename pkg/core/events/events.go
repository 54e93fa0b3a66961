package events

import "fmt"

// EventType represents the discriminator of a Forge streaming event
type EventType string

// Forge event type constants - matching the wire protocol discriminators
const (
	EventTypeChunk       EventType = "chunk"
	EventTypeArtifact    EventType = "artifact"
	EventTypeBuildStatus EventType = "build_status"
	EventTypeMetadata    EventType = "metadata"
	EventTypeError       EventType = "error"

	// EventTypeDone is synthetic: the wire carries the bare terminator token
	// (see DoneToken) instead of a JSON envelope for this kind.
	EventTypeDone EventType = "done"
)

// DoneToken is the literal payload value that unconditionally ends a session
// successfully.
const DoneToken = "[DONE]"

// validEventTypes is a map for O(1) lookup of valid event types
var validEventTypes = map[EventType]bool{
	EventTypeChunk:       true,
	EventTypeArtifact:    true,
	EventTypeBuildStatus: true,
	EventTypeMetadata:    true,
	EventTypeError:       true,
	EventTypeDone:        true,
}

// Event defines the common interface for all Forge streaming events
type Event interface {
	// Type returns the event type
	Type() EventType

	// Validate validates the event structure and content
	Validate() error
}

// isValidEventType checks if the given event type is valid
func isValidEventType(eventType EventType) bool {
	return validEventTypes[eventType]
}

// ChunkEvent contains an incremental fragment of the assistant's text reply
type ChunkEvent struct {
	Text string `json:"text"`
}

// NewChunkEvent creates a new chunk event
func NewChunkEvent(text string) *ChunkEvent {
	return &ChunkEvent{Text: text}
}

// Type returns the event type
func (e *ChunkEvent) Type() EventType { return EventTypeChunk }

// Validate validates the chunk event. Empty fragments are legal: producers
// emit them around artifact boundaries.
func (e *ChunkEvent) Validate() error { return nil }

// Artifact describes a generated file or code artifact announced on the
// stream. StorageKey and StorageURL locate the artifact body; the body itself
// is never carried on the stream.
type Artifact struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Language   string `json:"language"`
	Kind       string `json:"kind"`
	StorageKey string `json:"storageKey"`
	StorageURL string `json:"storageUrl"`
	SizeBytes  int64  `json:"sizeBytes"`
}

// ArtifactEvent indicates that a generated artifact became available
type ArtifactEvent struct {
	Artifact
}

// NewArtifactEvent creates a new artifact event
func NewArtifactEvent(artifact Artifact) *ArtifactEvent {
	return &ArtifactEvent{Artifact: artifact}
}

// Type returns the event type
func (e *ArtifactEvent) Type() EventType { return EventTypeArtifact }

// Validate validates the artifact event
func (e *ArtifactEvent) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("ArtifactEvent validation failed: id field is required")
	}
	return nil
}

// Build status values reported by build_status events. The set is open:
// unrecognized values are passed through to the handler untouched.
const (
	BuildStatusQueued    = "queued"
	BuildStatusRunning   = "running"
	BuildStatusSucceeded = "succeeded"
	BuildStatusFailed    = "failed"
)

// BuildStatus describes the progress of an associated build step
type BuildStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	BuildID string `json:"buildId,omitempty"`
}

// BuildStatusEvent reports progress of an associated build step
type BuildStatusEvent struct {
	BuildStatus
}

// NewBuildStatusEvent creates a new build status event
func NewBuildStatusEvent(status BuildStatus) *BuildStatusEvent {
	return &BuildStatusEvent{BuildStatus: status}
}

// Type returns the event type
func (e *BuildStatusEvent) Type() EventType { return EventTypeBuildStatus }

// Validate validates the build status event
func (e *BuildStatusEvent) Validate() error {
	if e.Status == "" {
		return fmt.Errorf("BuildStatusEvent validation failed: status field is required")
	}
	return nil
}

// MetadataEvent carries the session identifiers, expected at most once and
// normally early in the stream
type MetadataEvent struct {
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
}

// NewMetadataEvent creates a new metadata event
func NewMetadataEvent(conversationID, messageID string) *MetadataEvent {
	return &MetadataEvent{ConversationID: conversationID, MessageID: messageID}
}

// Type returns the event type
func (e *MetadataEvent) Type() EventType { return EventTypeMetadata }

// Validate validates the metadata event
func (e *MetadataEvent) Validate() error { return nil }

// ErrorEvent is an explicit, fatal protocol-level error reported by the
// producer
type ErrorEvent struct {
	Message string `json:"error"`
}

// NewErrorEvent creates a new error event
func NewErrorEvent(message string) *ErrorEvent {
	return &ErrorEvent{Message: message}
}

// Type returns the event type
func (e *ErrorEvent) Type() EventType { return EventTypeError }

// Validate validates the error event
func (e *ErrorEvent) Validate() error {
	if e.Message == "" {
		return fmt.Errorf("ErrorEvent validation failed: error field is required")
	}
	return nil
}

// DoneEvent is the explicit terminator; no further events are valid after it
type DoneEvent struct{}

// NewDoneEvent creates a new done event
func NewDoneEvent() *DoneEvent { return &DoneEvent{} }

// Type returns the event type
func (e *DoneEvent) Type() EventType { return EventTypeDone }

// Validate validates the done event
func (e *DoneEvent) Validate() error { return nil }
