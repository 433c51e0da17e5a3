package token

import (
	"errors"
	"fmt"

	"github.com/agnes1/TreeML/ir"
)

var (
	ErrLexical    = errors.New("lexical error")
	ErrStructural = errors.New("structural error")
	ErrType       = errors.New("type error")
)

var (
	ErrIllegalName   = fmt.Errorf("%w: illegal start of a name", ErrLexical)
	ErrSeparator     = fmt.Errorf("%w: name:value not separated by legal character", ErrLexical)
	ErrValueStart    = fmt.Errorf("%w: value invalid start character", ErrLexical)
	ErrAfterValue    = fmt.Errorf("%w: value not followed by legal character", ErrLexical)
	ErrBadEscape     = fmt.Errorf("%w: invalid escape sequence", ErrLexical)
	ErrContinuation  = fmt.Errorf("%w: continuation not legal character", ErrLexical)
	ErrComment       = fmt.Errorf("%w: illegal start of a comment", ErrLexical)
	ErrIllegalIndent = fmt.Errorf("%w: %w", ErrStructural, ir.ErrIllegalIndent)
	ErrUnterminated  = fmt.Errorf("%w: unterminated document", ErrStructural)
	ErrIllegalCurly  = fmt.Errorf("%w: illogical curly braces", ErrStructural)
	ErrRepeatedComma = fmt.Errorf("%w: repeated comma", ErrStructural)
	ErrNumber        = fmt.Errorf("%w: invalid number", ErrType)
)

// ParseErr is a fatal parse error at a source position.
type ParseErr struct {
	Err error
	Pos Pos
}

func NewParseErr(e error, p Pos) *ParseErr {
	return &ParseErr{Err: e, Pos: p}
}

// Errorf returns a ParseErr wrapping e with extra detail.
func Errorf(e error, p Pos, format string, args ...any) *ParseErr {
	return &ParseErr{Err: fmt.Errorf("%w: "+format, append([]any{e}, args...)...), Pos: p}
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Error() string {
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Pos)
}
