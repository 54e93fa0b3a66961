// Package core provides the foundational types and errors for the Forge
// streaming protocol client.
//
// Forge servers stream an assistant's reply to the caller while it is still
// being produced: the reply arrives as an ordered sequence of event-tagged
// frames carrying text deltas, generated artifacts, build progress, and
// session metadata. This package defines the shared error taxonomy used by
// the decoder and its transports:
//   - configuration errors raised while constructing clients and sessions
//   - protocol errors reported explicitly by the producer
//   - transport errors wrapping failures of the underlying byte stream
//
// The event model lives in the events subpackage; the read loop that consumes
// a stream lives in pkg/client.
package core
