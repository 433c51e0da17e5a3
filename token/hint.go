package token

// Hint is the lexeme type recorded when a value sub-lexer starts. It tells
// a number apart from a decimal and travels with each added value.
type Hint int

const (
	NoHint Hint = iota
	TokenHint
	StringHint
	LongHint
	TimeHint
	DoubleHint
)

func (h Hint) String() string {
	switch h {
	case TokenHint:
		return "token"
	case StringHint:
		return "string"
	case LongHint:
		return "long"
	case TimeHint:
		return "time"
	case DoubleHint:
		return "double"
	}
	return "none"
}
