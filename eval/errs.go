package eval

import "errors"

var (
	ErrCompile = errors.New("script compile error")
	ErrRun     = errors.New("script run error")
	ErrResult  = errors.New("script result error")
	ErrBinding = errors.New("bad binding")
)
