package ir

import "errors"

var (
	ErrIllegalIndent = errors.New("illegal indent")
	ErrNilNode       = errors.New("nil node")
)
