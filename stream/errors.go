package stream

import "errors"

var (
	ErrConcurrentParse = errors.New("concurrent parse attempt")
	ErrNoPendingNode   = errors.New("value event without a node name")
)
