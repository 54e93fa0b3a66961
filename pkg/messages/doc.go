// Package messages assembles streamed Forge replies into whole values.
//
// The decoder in pkg/client delivers a reply as a sequence of handler
// invocations; many callers just want the finished product. ReplyBuilder
// accumulates text fragments, artifacts, and build updates as they arrive and
// produces a single Reply when the stream completes. Collect wires a builder
// into a ready-made handler set:
//
//	builder := messages.NewReplyBuilder()
//	result, err := c.StreamMessage(ctx, req, messages.Collect(builder))
//	if err != nil {
//		log.Fatal(err)
//	}
//	reply, err := builder.Complete(result)
package messages
