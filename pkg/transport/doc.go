// Package transport provides byte stream sources for the Forge streaming
// protocol.
//
// The decoder in pkg/client consumes a plain io.ReadCloser; this package
// knows how to produce one. Two sources are supported:
//
//   - HTTP/SSE: OpenSSE issues the streaming request and hands back the
//     response body. This is the primary transport.
//   - WebSocket: OpenWebSocket dials the endpoint and adapts the message
//     stream to the same io.ReadCloser shape, so the one decoder serves both.
//
// The transport owns connection-level concerns only: request construction,
// status and content-type validation, and teardown. Retry, reconnection, and
// timeout policy are the caller's responsibility.
//
// Example usage:
//
//	stream, err := transport.OpenSSE(ctx, transport.SSEConfig{
//		URL:  "https://forge.example.com/v1/messages/stream",
//		Body: payload,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer stream.Close()
package transport
