package schema

import (
	"errors"
	"fmt"
)

var (
	ErrSchemaCompile   = errors.New("schema compile error")
	ErrDuplicateID     = fmt.Errorf("%w: duplicate ID declared for schema node", ErrSchemaCompile)
	ErrDuplicateChoice = fmt.Errorf("%w: duplicate choice group declared for schema node", ErrSchemaCompile)
	ErrUnknownWord     = fmt.Errorf("%w: unknown schema word", ErrSchemaCompile)
	ErrBadWord         = fmt.Errorf("%w: schema word must be a token", ErrSchemaCompile)

	ErrValidation = errors.New("validation failed")
	ErrNoDocument = errors.New("cannot validate without a document tree")
)
