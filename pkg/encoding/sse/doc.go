// Package sse provides the framing layer for the Forge streaming protocol.
//
// The transport delivers an ordered byte stream whose logical content is
// newline-delimited text, but nothing guarantees where chunk boundaries fall
// relative to line boundaries: a single line may arrive split across many
// chunks, and a single chunk may carry many complete lines. LineReader
// re-segments the chunk stream into complete protocol lines, carrying the
// unterminated tail fragment of each chunk forward into the next read.
//
// Meaningful lines use the "data: " prefix convention; DataPayload extracts
// their payload. Blank separator lines and comment lines carry no payload.
//
// Example usage:
//
//	reader := sse.NewLineReader(resp.Body)
//	for {
//		lines, err := reader.Next()
//		for _, line := range lines {
//			if payload, ok := sse.DataPayload(line); ok {
//				// decode the payload
//			}
//		}
//		if err != nil {
//			break // io.EOF or a transport failure
//		}
//	}
package sse
