package parse

import (
	"strconv"
	"strings"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/stream"
	"github.com/agnes1/TreeML/token"
)

// read feeds c to group g and returns the group for the next character.
func (s *State) read(g token.Group, c rune) (token.Group, error) {
	switch g {
	case token.Prolog:
		return s.prolog(c)
	case token.StartOfLine:
		return s.startOfLine(c)
	case token.Name:
		return s.name(c)
	case token.InterStage:
		return s.interStage(c)
	case token.BeforeValue:
		return s.beforeValue(c)
	case token.Token:
		return s.token(c)
	case token.NumberValue:
		return s.number(c)
	case token.StringValue:
		return s.str(c)
	case token.TimeValue:
		return s.time(c)
	case token.Continuation:
		return s.continuation(c)
	case token.AfterValue:
		return s.afterValue(c)
	case token.Comment:
		return s.comment(c)
	}
	panic("parse: unknown group " + g.String())
}

// enter switches to g, which re-reads c with a fresh lexeme.
func (s *State) enter(g token.Group, c rune) (token.Group, error) {
	s.buf = nil
	s.escape = false
	return s.read(g, c)
}

func (s *State) prolog(c rune) (token.Group, error) {
	switch {
	case c == '#' && s.buf == nil:
		s.startBuf()
	case c == '\n' || c == '\\':
		if s.buf != nil {
			if err := s.emit(&stream.Event{Type: stream.EventTag, Tag: s.buf.String(), Group: token.Prolog}); err != nil {
				return token.Prolog, err
			}
		}
		s.endStatement()
	case c == '{' && s.buf == nil && !s.body:
		s.Curly = true
	case s.buf != nil:
		s.buf.WriteRune(c)
	default:
		return s.enter(token.StartOfLine, c)
	}
	return token.Prolog, nil
}

func (s *State) startOfLine(c rune) (token.Group, error) {
	switch {
	case c == ' ':
	case c == '\t':
		if !s.Curly {
			s.Indent++
		}
	case c == '{' && s.Curly:
		if err := s.checkCurly(c); err != nil {
			return token.StartOfLine, err
		}
		s.Indent++
	case c == '}' && s.Curly:
		if err := s.checkCurly(c); err != nil {
			return token.StartOfLine, err
		}
		s.Indent--
	case c == '\n' || c == '\\':
		s.endStatement()
	case c == '/':
		s.endStatement()
		return s.enter(token.Comment, c)
	case c == '#':
		return s.enter(token.Prolog, c)
	case token.IsNameChar(c):
		return s.enter(token.Name, c)
	default:
		return token.StartOfLine, token.Errorf(token.ErrIllegalName, s.pos(), "%q", c)
	}
	return token.StartOfLine, nil
}

func (s *State) name(c rune) (token.Group, error) {
	if token.IsNameChar(c) {
		if s.buf == nil {
			s.startBuf()
		}
		s.buf.WriteRune(c)
		return token.Name, nil
	}
	s.body = true
	if err := s.emit(&stream.Event{Type: stream.EventNodeName, Name: s.buf.String(), Group: token.Name}); err != nil {
		return token.Name, err
	}
	return s.enter(token.InterStage, c)
}

func (s *State) interStage(c rune) (token.Group, error) {
	switch {
	case token.IsBlank(c):
		return token.InterStage, nil
	case c == ':':
		return s.enter(token.BeforeValue, ' ')
	}
	return token.InterStage, token.Errorf(token.ErrSeparator, s.pos(), "%q", c)
}

func (s *State) beforeValue(c rune) (token.Group, error) {
	switch {
	case token.IsTokenStart(c):
		s.hint = token.TokenHint
		return s.enter(token.Token, c)
	case token.IsBlank(c):
		return token.BeforeValue, nil
	case c == '"':
		s.hint = token.StringHint
		return s.enter(token.StringValue, c)
	case c == '@':
		s.hint = token.TimeHint
		return s.enter(token.TimeValue, c)
	case c == '\\':
		return s.enter(token.Continuation, c)
	case token.IsNumberStart(c):
		s.hint = token.LongHint
		return s.enter(token.NumberValue, c)
	case c == '\n':
		return s.enter(token.AfterValue, c)
	case c == ',':
		if err := s.declareList(token.BeforeValue); err != nil {
			return token.BeforeValue, err
		}
		return token.BeforeValue, nil
	case c == '{' && s.Curly:
		if err := s.checkCurly(c); err != nil {
			return token.BeforeValue, err
		}
		return s.addValue(ir.Null(), token.BeforeValue, c)
	case c == '}' && s.Curly:
		return s.addValue(ir.Null(), token.BeforeValue, c)
	}
	return token.BeforeValue, token.Errorf(token.ErrValueStart, s.pos(), "%q", c)
}

func (s *State) token(c rune) (token.Group, error) {
	if s.buf == nil {
		s.startBuf()
	}
	if token.IsTokenChar(c) {
		s.buf.WriteRune(c)
		return token.Token, nil
	}
	var v ir.Value
	switch x := s.buf.String(); x {
	case "null":
		v = ir.Null()
	case "true":
		v = ir.FromBool(true)
	case "false":
		v = ir.FromBool(false)
	default:
		v = ir.FromString(x)
	}
	return s.addValue(v, token.Token, c)
}

func (s *State) number(c rune) (token.Group, error) {
	if s.buf == nil {
		s.startBuf()
	}
	switch {
	case c == '.' || c == 'e':
		if strings.ContainsRune(s.buf.String(), c) {
			return token.NumberValue, token.Errorf(token.ErrNumber, s.pos(), "two %q in %s", c, s.buf.String())
		}
		s.hint = token.DoubleHint
		s.buf.WriteRune(c)
	case c == '-':
		x := s.buf.String()
		if x != "" && x[len(x)-1] != 'e' {
			return token.NumberValue, token.Errorf(token.ErrNumber, s.pos(), "misplaced - after %s", x)
		}
		s.buf.WriteRune(c)
	case c == '_':
	case token.IsNumberChar(c):
		s.buf.WriteRune(c)
	default:
		x := s.buf.String()
		var v ir.Value
		if s.hint == token.LongHint {
			i, err := strconv.ParseInt(x, 10, 64)
			if err != nil {
				return token.NumberValue, token.Errorf(token.ErrNumber, s.pos(), "%q", x)
			}
			v = ir.FromInt(i)
		} else {
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return token.NumberValue, token.Errorf(token.ErrNumber, s.pos(), "%q", x)
			}
			v = ir.FromFloat(f)
		}
		return s.addValue(v, token.NumberValue, c)
	}
	return token.NumberValue, nil
}

func (s *State) str(c rune) (token.Group, error) {
	switch {
	case s.buf == nil:
		// opening quote
		s.startBuf()
	case s.escape:
		s.escape = false
		switch c {
		case '\\', '"':
			s.buf.WriteRune(c)
		case 'r':
			s.buf.WriteByte('\r')
		case 'n':
			s.buf.WriteByte('\n')
		default:
			return token.StringValue, token.Errorf(token.ErrBadEscape, s.pos(), `\%c`, c)
		}
	case c == '\\':
		s.escape = true
	case c == '"':
		return s.addValue(ir.FromString(s.buf.String()), token.StringValue, ' ')
	default:
		s.buf.WriteRune(c)
	}
	return token.StringValue, nil
}

func (s *State) time(c rune) (token.Group, error) {
	switch {
	case s.buf == nil:
		// opening '@'
		s.startBuf()
	case token.IsTimeChar(c):
		s.buf.WriteRune(c)
	default:
		return s.addValue(ir.FromTime(s.buf.String()), token.TimeValue, c)
	}
	return token.TimeValue, nil
}

func (s *State) afterValue(c rune) (token.Group, error) {
	switch {
	case token.IsBlank(c):
		return token.AfterValue, nil
	case s.Curly && (c == '{' || c == '}'):
		if err := s.addNode(token.AfterValue); err != nil {
			return token.AfterValue, err
		}
		if c == '{' {
			s.Indent++
		} else {
			s.Indent--
		}
		return s.enter(token.StartOfLine, ' ')
	case c == '\\':
		return s.enter(token.Continuation, c)
	case c == ',':
		if err := s.declareList(token.AfterValue); err != nil {
			return token.AfterValue, err
		}
		return s.enter(token.BeforeValue, ' ')
	case c == '\n' || c == '/':
		if err := s.addNode(token.AfterValue); err != nil {
			return token.AfterValue, err
		}
		return s.enter(token.StartOfLine, c)
	}
	return token.AfterValue, token.Errorf(token.ErrAfterValue, s.pos(), "%q", c)
}

// continuation handles a backslash. A newline joins the next physical line
// to the current node; anything else on the same line starts a new node,
// with the tabs seen since the backslash as its depth in tab mode.
func (s *State) continuation(c rune) (token.Group, error) {
	switch {
	case c == '\\':
		s.startBuf()
	case c == '\n':
		return s.enter(token.BeforeValue, ' ')
	case c == ' ':
	case c == '\t' && !s.Curly:
		s.buf.WriteRune(c)
	case c == '\t':
		return token.Continuation, token.Errorf(token.ErrContinuation, s.pos(), "%q", c)
	default:
		tabs := s.buf.Len()
		if err := s.addNode(token.Continuation); err != nil {
			return token.Continuation, err
		}
		if !s.Curly {
			s.Indent = tabs
		}
		return s.enter(token.StartOfLine, c)
	}
	return token.Continuation, nil
}

func (s *State) comment(c rune) (token.Group, error) {
	switch {
	case s.buf == nil:
		if c != '/' {
			return token.Comment, token.Errorf(token.ErrComment, s.pos(), "%q", c)
		}
		s.startBuf()
		s.buf.WriteRune(c)
	case s.buf.Len() == 1:
		if c != '/' {
			return token.Comment, token.Errorf(token.ErrComment, s.pos(), "/%c", c)
		}
		s.buf.WriteRune(c)
	case c == '\n':
		s.endStatement()
		return s.enter(token.StartOfLine, c)
	}
	return token.Comment, nil
}
