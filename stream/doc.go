// Package stream defines the events a TreeML parser emits and the sinks
// that consume them.
//
// A parse emits EventStart, then per logical line an EventNodeName followed
// by any EventAddValue and EventDeclareList events for that node and
// exactly one EventAddNode, and finally EventEnd. Prolog and in-body tags
// arrive as EventTag. EventCharacter is only emitted when requested.
//
// Builder is the sink that assembles an *ir.Root:
//
//	b := stream.NewBuilder()
//	// hand b to a parser, then
//	root := b.Root()
//
// Handler adapts plain functions to a Sink, leaving unset events as no-ops.
package stream
