package schema

import (
	"fmt"
	"strings"
)

// Code identifies a kind of validation diagnostic.
type Code string

const (
	CodeUnexpected    Code = "V001"
	CodeExhausted     Code = "V002"
	CodeChildren      Code = "V003"
	CodeWrongType     Code = "V004"
	CodeDuplicateID   Code = "V005"
	CodeInvalidID     Code = "V006"
	CodeInvalidToken  Code = "V007"
	CodeUnresolvedRef Code = "V008"
)

// Diagnostic is one validation finding, keyed by the source line of the
// offending document node.
type Diagnostic struct {
	Code     Code
	Line     int
	Name     string
	Value    string
	Expected string
}

func (d Diagnostic) String() string {
	var what string
	switch d.Code {
	case CodeUnexpected:
		what = fmt.Sprintf("[%s] not expected; expected = %s", d.Name, d.Expected)
	case CodeExhausted:
		what = fmt.Sprintf("[%s] not expected", d.Name)
	case CodeChildren:
		what = fmt.Sprintf("[%s] requires children", d.Name)
	case CodeWrongType:
		what = fmt.Sprintf("[%s] has value of wrong type", d.Name)
	case CodeDuplicateID:
		what = fmt.Sprintf("[%s:%s] token ID is not unique", d.Name, d.Value)
	case CodeInvalidID:
		what = fmt.Sprintf("[%s:%s] token ID is not a valid token", d.Name, d.Value)
	case CodeInvalidToken:
		what = fmt.Sprintf("[%s:%s] token is not a valid token", d.Name, d.Value)
	case CodeUnresolvedRef:
		what = fmt.Sprintf("[%s:%s] tokenidref does not refer to a preceding tokenid", d.Name, d.Value)
	default:
		what = fmt.Sprintf("[%s]", d.Name)
	}
	return fmt.Sprintf("Validation error %s: %s {line: %d}", d.Code, what, d.Line)
}

// ValidationError carries every diagnostic of a failed validation in
// document order.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s with %d errors", ErrValidation, len(e.Diagnostics))
}

// Messages returns the rendered diagnostics.
func (e *ValidationError) Messages() []string {
	res := make([]string, len(e.Diagnostics))
	for i := range e.Diagnostics {
		res[i] = e.Diagnostics[i].String()
	}
	return res
}

// Report renders the error followed by one diagnostic per line.
func (e *ValidationError) Report() string {
	return e.Error() + "\n" + strings.Join(e.Messages(), "\n") + "\n"
}
