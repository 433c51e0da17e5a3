package encode

import "errors"

var (
	ErrEncoding = errors.New("encoding error")
	ErrBadName  = errors.New("illegal node name")
)
