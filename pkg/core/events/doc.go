// Package events provides the typed event model for the Forge streaming
// protocol and the decoder that classifies wire payloads into it.
//
// A Forge server streams an assistant's reply as newline-delimited frames.
// Each meaningful frame carries either the literal terminator token or a JSON
// envelope of the form
//
//	{"type": "<discriminator>", "data": {...}}
//
// The discriminator selects one of a closed set of event kinds:
//
//   - chunk: an incremental fragment of the assistant's text reply
//   - artifact: a generated file or code artifact became available
//   - build_status: progress of an associated build step
//   - metadata: conversation and message identifiers for the session
//   - error: an explicit, fatal error reported by the producer
//
// Decode is deliberately asymmetric in how it treats malformed input:
// payloads that fail to deserialize or classify are noise and yield an
// explicit not-an-event result, but a payload whose discriminator names the
// error kind always surfaces as an ErrorEvent, even when its body is
// malformed. An explicit error signal is never swallowed.
//
// # Basic Usage
//
//	import "github.com/forgelabs/forge-go-sdk/pkg/core/events"
//
//	ev, ok := events.Decode(payload)
//	if !ok {
//		// malformed or unrecognized payload, skip it
//	}
//
//	switch ev := ev.(type) {
//	case *events.ChunkEvent:
//		fmt.Print(ev.Text)
//	case *events.DoneEvent:
//		// stream finished
//	}
package events
