package client

import (
	"github.com/sirupsen/logrus"

	"github.com/forgelabs/forge-go-sdk/pkg/core"
	"github.com/forgelabs/forge-go-sdk/pkg/core/events"
)

// Result carries the session identifiers accumulated from metadata events. A
// stream that never produces metadata yields a nil *Result, which callers
// must tolerate.
type Result struct {
	ConversationID string
	MessageID      string
}

// dispatcher routes each decoded event to the handler registered for its
// kind, preserving arrival order, and accumulates the terminal Result.
// Metadata is state, not a push notification, so it updates the Result
// instead of invoking a handler; an error event is a control-flow signal and
// is returned to the session controller instead of being dispatched.
type dispatcher struct {
	handlers Handlers
	log      *logrus.Entry
	result   *Result
}

func newDispatcher(handlers Handlers, log *logrus.Entry) *dispatcher {
	return &dispatcher{handlers: handlers, log: log}
}

// dispatch routes one event. done reports that the explicit terminator was
// observed; err is non-nil for a producer error signal or a handler failure.
func (d *dispatcher) dispatch(event events.Event) (done bool, err error) {
	switch ev := event.(type) {
	case *events.ChunkEvent:
		if err := d.handlers.OnText(ev.Text); err != nil {
			return false, &core.HandlerError{EventType: string(event.Type()), Err: err}
		}

	case *events.ArtifactEvent:
		if d.handlers.OnArtifact == nil {
			d.log.WithField("artifactId", ev.ID).Debug("no artifact handler registered, dropping event")
			return false, nil
		}
		if err := d.handlers.OnArtifact(ev.Artifact); err != nil {
			return false, &core.HandlerError{EventType: string(event.Type()), Err: err}
		}

	case *events.BuildStatusEvent:
		if d.handlers.OnBuildStatus == nil {
			d.log.WithField("status", ev.Status).Debug("no build status handler registered, dropping event")
			return false, nil
		}
		if err := d.handlers.OnBuildStatus(ev.BuildStatus); err != nil {
			return false, &core.HandlerError{EventType: string(event.Type()), Err: err}
		}

	case *events.MetadataEvent:
		if d.result != nil {
			// Last metadata wins; duplicates are unexpected but tolerated.
			d.log.WithFields(logrus.Fields{
				"conversationId": ev.ConversationID,
				"messageId":      ev.MessageID,
			}).Warn("duplicate metadata event received")
		}
		d.result = &Result{ConversationID: ev.ConversationID, MessageID: ev.MessageID}

	case *events.ErrorEvent:
		return false, &core.ProtocolError{Message: ev.Message}

	case *events.DoneEvent:
		return true, nil

	default:
		d.log.WithField("type", event.Type()).Debug("no route for event type")
	}

	return false, nil
}
