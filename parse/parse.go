package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/agnes1/TreeML/debug"
	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/stream"
	"github.com/agnes1/TreeML/token"
)

// Parser parses one document at a time. Distinct parsers are independent.
type Parser struct {
	busy atomic.Bool
	opts parseOpts
}

func New(opts ...ParseOption) *Parser {
	p := &Parser{}
	for _, f := range opts {
		f(&p.opts)
	}
	return p
}

// Parse reads a whole document from r. While streaming it returns a nil
// root. Calling Parse on a parser that is already parsing fails with
// stream.ErrConcurrentParse.
func (p *Parser) Parse(r io.Reader) (*ir.Root, error) {
	if !p.busy.CompareAndSwap(false, true) {
		return nil, stream.ErrConcurrentParse
	}
	defer p.busy.Store(false)

	sinks := make(stream.Multi, 0, len(p.opts.sinks)+1)
	sinks = append(sinks, p.opts.sinks...)
	var b *stream.Builder
	if !p.opts.streaming {
		b = stream.NewBuilder()
		sinks = append(sinks, b)
	}
	s := newState(sinks, p.opts.characters)
	if err := sinks.Emit(&stream.Event{Type: stream.EventStart}); err != nil {
		return nil, err
	}
	err := s.run(bufio.NewReader(r))
	endErr := sinks.Emit(&stream.Event{Type: stream.EventEnd})
	if err != nil {
		return nil, err
	}
	if endErr != nil {
		return nil, endErr
	}
	if b == nil {
		return nil, nil
	}
	return b.Root(), nil
}

func Parse(r io.Reader, opts ...ParseOption) (*ir.Root, error) {
	return New(opts...).Parse(r)
}

func ParseString(s string, opts ...ParseOption) (*ir.Root, error) {
	return Parse(strings.NewReader(s), opts...)
}

func ParseBytes(d []byte, opts ...ParseOption) (*ir.Root, error) {
	return Parse(bytes.NewReader(d), opts...)
}

func ParseFile(path string, opts ...ParseOption) (*ir.Root, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func (s *State) run(r io.RuneReader) error {
	g := token.Prolog
	for {
		c, _, err := r.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading input %s: %w", s.pos(), err)
		}
		s.Offset++
		s.Col++
		if c != '\r' {
			next, err := s.read(g, c)
			if err != nil {
				return err
			}
			if debug.Parse() {
				debug.Logf("%q %s -> %s indent=%d\n", c, g, next, s.Indent)
			}
			g = next
			if s.characters {
				if err := s.emit(&stream.Event{Type: stream.EventCharacter, Char: c, Group: g}); err != nil {
					return err
				}
			}
			if token.IsSignificant(c) && g != token.Comment {
				s.last = c
			}
		}
		if c == '\n' {
			s.Line++
			s.Col = 0
			if !s.Curly && (g == token.StartOfLine || g == token.Prolog) {
				s.Indent = 0
			}
		}
	}
	g, err := s.read(g, '\n')
	if err != nil {
		return err
	}
	if g != token.StartOfLine && g != token.Prolog {
		return token.Errorf(token.ErrUnterminated, s.pos(), "in %s", g)
	}
	if s.Curly && s.Indent != -1 {
		return token.Errorf(token.ErrUnterminated, s.pos(), "curly depth %d", s.Indent)
	}
	return nil
}
