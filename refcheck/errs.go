package refcheck

import (
	"errors"
	"fmt"
)

var (
	ErrReference = errors.New("reference error")
	ErrPath      = errors.New("bad reference path")
)

type Code string

const (
	CodeNameNotUnique  Code = "L0001"
	CodeValueNotUnique Code = "L0002"
	CodeNameMissing    Code = "L0003"
	CodeValueMissing   Code = "L0004"
)

// Issue is one reference finding at a document line.
type Issue struct {
	Code    Code
	Line    int
	Message string
}

func (i *Issue) Error() string {
	return fmt.Sprintf("%s: %s at line %d", i.Code, i.Message, i.Line)
}

func (i *Issue) Unwrap() error {
	return ErrReference
}

func (i *Issue) String() string {
	return fmt.Sprintf("%d : %s: %s", i.Line, i.Code, i.Message)
}
