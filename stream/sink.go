package stream

import (
	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/token"
)

// Sink consumes parser events. An error returned from Emit aborts the
// parse.
type Sink interface {
	Emit(*Event) error
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(*Event) error

func (f SinkFunc) Emit(e *Event) error { return f(e) }

// Handler is a Sink dispatching to per-event functions. Unset functions
// ignore their event.
type Handler struct {
	OnStart       func() error
	OnEnd         func() error
	OnTag         func(tag string, pos token.Pos) error
	OnNodeName    func(name string, indent int, pos token.Pos) error
	OnAddValue    func(v ir.Value, hint token.Hint, indent int, pos token.Pos) error
	OnDeclareList func(indent int, pos token.Pos) error
	OnAddNode     func(indent int, pos token.Pos) error
	OnCharacter   func(c rune, indent int, pos token.Pos, g token.Group) error
}

func (h *Handler) Emit(e *Event) error {
	switch e.Type {
	case EventStart:
		if h.OnStart != nil {
			return h.OnStart()
		}
	case EventEnd:
		if h.OnEnd != nil {
			return h.OnEnd()
		}
	case EventTag:
		if h.OnTag != nil {
			return h.OnTag(e.Tag, e.Pos)
		}
	case EventNodeName:
		if h.OnNodeName != nil {
			return h.OnNodeName(e.Name, e.Indent, e.Pos)
		}
	case EventAddValue:
		if h.OnAddValue != nil {
			return h.OnAddValue(e.Value, e.Hint, e.Indent, e.Pos)
		}
	case EventDeclareList:
		if h.OnDeclareList != nil {
			return h.OnDeclareList(e.Indent, e.Pos)
		}
	case EventAddNode:
		if h.OnAddNode != nil {
			return h.OnAddNode(e.Indent, e.Pos)
		}
	case EventCharacter:
		if h.OnCharacter != nil {
			return h.OnCharacter(e.Char, e.Indent, e.Pos, e.Group)
		}
	}
	return nil
}

// Multi fans events out to each sink in order, stopping at the first
// error.
type Multi []Sink

func (m Multi) Emit(e *Event) error {
	for _, s := range m {
		if err := s.Emit(e); err != nil {
			return err
		}
	}
	return nil
}

// Recorder keeps a copy of every event it receives.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Emit(e *Event) error {
	r.Events = append(r.Events, *e)
	return nil
}

// Types returns the recorded event types in order.
func (r *Recorder) Types() []EventType {
	res := make([]EventType, len(r.Events))
	for i := range r.Events {
		res[i] = r.Events[i].Type
	}
	return res
}
