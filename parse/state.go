package parse

import (
	"strings"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/stream"
	"github.com/agnes1/TreeML/token"
)

// State is the mutable state of one parse.
type State struct {
	Line   int
	Col    int
	Offset int

	Indent         int
	PreviousIndent int
	Curly          bool

	// buf is nil outside a lexeme; an empty buffer is a lexeme that has
	// started.
	buf    *strings.Builder
	escape bool
	hint   token.Hint
	last   rune
	body   bool

	sink       stream.Sink
	characters bool
}

func newState(sink stream.Sink, characters bool) *State {
	return &State{
		Line:           1,
		PreviousIndent: -1,
		sink:           sink,
		characters:     characters,
	}
}

func (s *State) pos() token.Pos {
	return token.Pos{Offset: s.Offset, Line: s.Line, Col: s.Col}
}

func (s *State) emit(e *stream.Event) error {
	e.Pos = s.pos()
	e.Indent = s.Indent
	if err := s.sink.Emit(e); err != nil {
		if _, ok := err.(*token.ParseErr); ok {
			return err
		}
		return token.NewParseErr(err, e.Pos)
	}
	return nil
}

func (s *State) startBuf() {
	s.buf = &strings.Builder{}
}

// endStatement finishes a logical line.
func (s *State) endStatement() {
	if !s.Curly {
		s.Indent = 0
	}
	s.buf = nil
}

func (s *State) addNode(g token.Group) error {
	if s.Indent < 0 || s.Indent > s.PreviousIndent+1 {
		return token.Errorf(token.ErrIllegalIndent, s.pos(), "%d --> %d", s.PreviousIndent, s.Indent)
	}
	s.PreviousIndent = s.Indent
	if err := s.emit(&stream.Event{Type: stream.EventAddNode, Group: g}); err != nil {
		return err
	}
	s.endStatement()
	return nil
}

func (s *State) addValue(v ir.Value, g token.Group, c rune) (token.Group, error) {
	hint := s.hint
	if !g.IsValue() {
		hint = token.NoHint
	}
	if err := s.emit(&stream.Event{Type: stream.EventAddValue, Value: v, Hint: hint, Group: g}); err != nil {
		return g, err
	}
	return s.enter(token.AfterValue, c)
}

func (s *State) declareList(g token.Group) error {
	if s.last == ',' {
		return token.NewParseErr(token.ErrRepeatedComma, s.pos())
	}
	return s.emit(&stream.Event{Type: stream.EventDeclareList, Group: g})
}

// checkCurly rejects a brace directly following the opposite brace.
func (s *State) checkCurly(c rune) error {
	if (c == '{' && s.last == '}') || (c == '}' && s.last == '{') {
		return token.Errorf(token.ErrIllegalCurly, s.pos(), "%c%c", s.last, c)
	}
	return nil
}
