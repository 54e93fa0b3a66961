package events

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// genericErrorMessage stands in for the producer's message when an error
// payload itself is malformed. The error signal must still surface.
const genericErrorMessage = "producer reported an error with a malformed payload"

// envelope is the wire form of every structured payload
type envelope struct {
	Type EventType       `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Decode classifies a frame payload into an Event. The second return value
// reports whether the payload carried an event at all: blank, malformed, and
// unrecognized payloads yield (nil, false) and should be skipped by the
// caller.
//
// The terminator token is matched before any parse attempt. Payloads whose
// discriminator names the error kind never yield (nil, false): a malformed
// error payload decodes to an ErrorEvent with a generic message instead.
func Decode(payload []byte) (Event, bool) {
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, false
	}

	if string(payload) == DoneToken {
		return NewDoneEvent(), true
	}

	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, false
	}

	if env.Type == EventTypeError {
		var ev ErrorEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil || ev.Message == "" {
			return NewErrorEvent(genericErrorMessage), true
		}
		return &ev, true
	}

	var event Event
	switch env.Type {
	case EventTypeChunk:
		event = &ChunkEvent{}
	case EventTypeArtifact:
		event = &ArtifactEvent{}
	case EventTypeBuildStatus:
		event = &BuildStatusEvent{}
	case EventTypeMetadata:
		event = &MetadataEvent{}
	default:
		// Unknown discriminators are tolerated as noise
		return nil, false
	}

	if err := json.Unmarshal(env.Data, event); err != nil {
		return nil, false
	}

	if err := event.Validate(); err != nil {
		return nil, false
	}

	return event, true
}

// Encode serializes an event to its frame payload form: the terminator token
// for DoneEvent, a JSON envelope for everything else. It is the inverse of
// Decode and exists mainly for producers and test fixtures.
func Encode(event Event) ([]byte, error) {
	if event == nil {
		return nil, fmt.Errorf("event is nil")
	}

	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("cannot encode invalid event: %w", err)
	}

	if event.Type() == EventTypeDone {
		return []byte(DoneToken), nil
	}

	if !isValidEventType(event.Type()) {
		return nil, fmt.Errorf("unknown event type: %s", event.Type())
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event data: %w", err)
	}

	return json.Marshal(envelope{Type: event.Type(), Data: data})
}
