package debug

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/agnes1/TreeML/stream"
)

// Verbose returns a sink describing each line event on w.
func Verbose(w io.Writer) stream.Sink {
	return stream.SinkFunc(func(e *stream.Event) error {
		var err error
		switch e.Type {
		case stream.EventTag:
			_, err = fmt.Fprintf(w, "#%s\n", e.Tag)
		case stream.EventNodeName:
			_, err = fmt.Fprintf(w, "Start node: %s [%d] %s\n", e.Name, e.Indent, e.Pos)
		case stream.EventAddValue:
			_, err = fmt.Fprintf(w, "Add value: %#v (%s) [%d]\n", e.Value, e.Hint, e.Indent)
		case stream.EventDeclareList:
			_, err = fmt.Fprintf(w, "Declare list [%d]\n", e.Indent)
		case stream.EventAddNode:
			_, err = fmt.Fprintf(w, "Add node at indent [%d]\n", e.Indent)
		}
		return err
	})
}

// Timer returns a sink reporting the time from start to end of a parse on w.
func Timer(w io.Writer) stream.Sink {
	var start time.Time
	return &stream.Handler{
		OnStart: func() error {
			start = time.Now()
			return nil
		},
		OnEnd: func() error {
			_, err := fmt.Fprintf(w, "Parse time: %s\n", time.Since(start))
			return err
		},
	}
}

var charEscaper = strings.NewReplacer(" ", `\s`, "\n", `\n`, "\t", `\t`)

// Characters returns a sink printing every character event on w together
// with the indent and the group that read it.
func Characters(w io.Writer) stream.Sink {
	return stream.SinkFunc(func(e *stream.Event) error {
		if e.Type != stream.EventCharacter {
			return nil
		}
		_, err := fmt.Fprintf(w, "%s\t%d\t:\t%s\n", charEscaper.Replace(string(e.Char)), e.Indent, e.Group)
		return err
	})
}
