// Package client provides the client SDK for consuming Forge streaming
// replies.
//
// A Session owns the read loop over one response stream: it pulls chunks
// through the framing layer, decodes frames into typed events, and dispatches
// each event to the handler registered for its kind, in arrival order. The
// session terminates on the explicit terminator, on an explicit producer
// error, or on physical end of stream, and releases the underlying stream
// resource on every exit path, abandonment included.
//
// Handlers are a capability set rather than positional callbacks: OnText is
// required, OnArtifact and OnBuildStatus are optional. Metadata and error
// events never reach a handler; metadata accumulates into the session Result
// and an error event fails the session.
//
// Client wraps the transport layer for the common case:
//
//	c, err := client.New(client.Config{BaseURL: "https://forge.example.com"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := c.StreamMessage(ctx, client.MessageRequest{
//		Prompt: "Build me a landing page",
//	}, client.Handlers{
//		OnText: func(text string) error {
//			fmt.Print(text)
//			return nil
//		},
//	})
//
// Sessions are single-use: one session serves exactly one response stream and
// is discarded on first exit. Multiple independent sessions may run
// concurrently; a single session must not be shared.
package client
