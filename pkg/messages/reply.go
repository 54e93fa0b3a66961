package messages

import (
	"fmt"
	"strings"
	"sync"

	"github.com/forgelabs/forge-go-sdk/pkg/client"
	"github.com/forgelabs/forge-go-sdk/pkg/core/events"
)

// Reply is one fully assembled assistant reply.
type Reply struct {
	// ConversationID and MessageID are empty when the stream never announced
	// metadata
	ConversationID string
	MessageID      string

	// Text is the complete natural-language reply
	Text string

	// Artifacts lists the generated artifacts in announcement order
	Artifacts []events.Artifact

	// Builds lists the build status updates in arrival order
	Builds []events.BuildStatus
}

// ReplyBuilder assembles a streamed reply incrementally. It is safe for
// concurrent use, although the decoder invokes handlers from a single
// goroutine.
type ReplyBuilder struct {
	mu        sync.Mutex
	text      strings.Builder
	artifacts []events.Artifact
	builds    []events.BuildStatus
	completed bool
}

// NewReplyBuilder creates an empty builder.
func NewReplyBuilder() *ReplyBuilder {
	return &ReplyBuilder{}
}

// AddText appends a text fragment to the reply being built.
func (b *ReplyBuilder) AddText(delta string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.completed {
		return fmt.Errorf("cannot add text to completed reply")
	}

	b.text.WriteString(delta)
	return nil
}

// AddArtifact records an announced artifact.
func (b *ReplyBuilder) AddArtifact(artifact events.Artifact) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.completed {
		return fmt.Errorf("cannot add artifact to completed reply")
	}

	b.artifacts = append(b.artifacts, artifact)
	return nil
}

// AddBuildStatus records a build progress update.
func (b *ReplyBuilder) AddBuildStatus(status events.BuildStatus) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.completed {
		return fmt.Errorf("cannot add build status to completed reply")
	}

	b.builds = append(b.builds, status)
	return nil
}

// Complete seals the builder and returns the assembled reply. result may be
// nil: a stream without metadata still assembles, just without identifiers.
// Completing twice is an error; the builder is as single-use as the session
// that feeds it.
func (b *ReplyBuilder) Complete(result *client.Result) (Reply, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.completed {
		return Reply{}, fmt.Errorf("reply already completed")
	}
	b.completed = true

	reply := Reply{
		Text:      b.text.String(),
		Artifacts: b.artifacts,
		Builds:    b.builds,
	}

	if result != nil {
		reply.ConversationID = result.ConversationID
		reply.MessageID = result.MessageID
	}

	return reply, nil
}

// Collect returns a handler set that feeds every event into the builder.
func Collect(builder *ReplyBuilder) client.Handlers {
	return client.Handlers{
		OnText:        builder.AddText,
		OnArtifact:    builder.AddArtifact,
		OnBuildStatus: builder.AddBuildStatus,
	}
}
