package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	InstantType
	DurationType
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:     "Null",
		BoolType:     "Bool",
		IntType:      "Int",
		FloatType:    "Float",
		StringType:   "String",
		InstantType:  "Instant",
		DurationType: "Duration",
		ListType:     "List",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Null":     NullType,
		"Bool":     BoolType,
		"Int":      IntType,
		"Float":    FloatType,
		"String":   StringType,
		"Instant":  InstantType,
		"Duration": DurationType,
		"List":     ListType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		InstantType,
		DurationType,
		ListType,
	}
}

func (t Type) IsLeaf() bool {
	return t != ListType
}

// Kind is the coarse value classification used by structure hashes:
// 0 for null, 1 for any scalar and 2 for lists.
func (t Type) Kind() int {
	switch t {
	case NullType:
		return 0
	case ListType:
		return 2
	default:
		return 1
	}
}
