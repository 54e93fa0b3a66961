package client

import (
	"github.com/forgelabs/forge-go-sdk/pkg/core"
	"github.com/forgelabs/forge-go-sdk/pkg/core/events"
)

// Handlers enumerates the callback slots a session recognizes. It decouples
// registration from call-site ordering: set the slots you care about by name.
//
// A handler returning a non-nil error fails the session; the stream is
// released and Run surfaces the error wrapped in core.HandlerError. Handlers
// are invoked synchronously from the read loop, one at a time, in event
// arrival order.
type Handlers struct {
	// OnText receives each incremental fragment of the assistant's text
	// reply. Required: text is the primary payload of every stream.
	OnText func(text string) error

	// OnArtifact is invoked when a generated artifact becomes available.
	// Optional.
	OnArtifact func(artifact events.Artifact) error

	// OnBuildStatus is invoked for build progress updates. Optional.
	OnBuildStatus func(status events.BuildStatus) error
}

func (h Handlers) validate() error {
	if h.OnText == nil {
		return core.ErrMissingTextHandler
	}
	return nil
}
