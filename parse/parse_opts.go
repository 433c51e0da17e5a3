package parse

import (
	"io"

	"github.com/agnes1/TreeML/debug"
	"github.com/agnes1/TreeML/stream"
)

type parseOpts struct {
	sinks      []stream.Sink
	characters bool
	streaming  bool
}

type ParseOption func(*parseOpts)

// ParseSinks adds sinks receiving the parse events, after the verbose and
// timing sinks and before the tree builder.
func ParseSinks(sinks ...stream.Sink) ParseOption {
	return func(o *parseOpts) { o.sinks = append(o.sinks, sinks...) }
}

// ParseCharacters enables EventCharacter events.
func ParseCharacters(v bool) ParseOption {
	return func(o *parseOpts) { o.characters = v }
}

// ParseVerbose describes each event on w.
func ParseVerbose(w io.Writer) ParseOption {
	return ParseSinks(debug.Verbose(w))
}

// ParseTimed reports the parse duration on w.
func ParseTimed(w io.Writer) ParseOption {
	return ParseSinks(debug.Timer(w))
}

// ParseStreaming disables building the tree; only the sinks see the
// document.
func ParseStreaming(v bool) ParseOption {
	return func(o *parseOpts) { o.streaming = v }
}
