package query

import "errors"

var (
	ErrSyntax   = errors.New("syntax error")
	ErrType     = errors.New("type error")
	ErrFunction = errors.New("unknown function")
)
