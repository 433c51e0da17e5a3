package ir

import (
	"strconv"
	"strings"
)

// Value is a TreeML value. Which fields are meaningful depends on Type:
// Bool for BoolType, Int for IntType, Float for FloatType, String for
// StringType, InstantType and DurationType (the source text without the
// leading '@') and List for ListType.
type Value struct {
	Type   Type
	Bool   bool
	Int    int64
	Float  float64
	String string
	List   []Value
}

func Null() Value {
	return Value{}
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) Value {
	return Value{Type: IntType, Int: v}
}

func FromFloat(f float64) Value {
	return Value{Type: FloatType, Float: f}
}

func FromString(v string) Value {
	return Value{Type: StringType, String: v}
}

func FromInstant(v string) Value {
	return Value{Type: InstantType, String: v}
}

func FromDuration(v string) Value {
	return Value{Type: DurationType, String: v}
}

func FromList(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{Type: ListType, List: vs}
}

// FromTime classifies an '@' literal body: a leading 'P' makes a duration,
// anything else an instant.
func FromTime(v string) Value {
	if strings.HasPrefix(v, "P") {
		return FromDuration(v)
	}
	return FromInstant(v)
}

func (v Value) IsNull() bool { return v.Type == NullType }
func (v Value) IsList() bool { return v.Type == ListType }

// Len returns the number of list elements, or 0 for scalars.
func (v Value) Len() int {
	return len(v.List)
}

// Index returns the i'th list element.
func (v Value) Index(i int) (Value, bool) {
	if v.Type != ListType || i < 0 || i >= len(v.List) {
		return Value{}, false
	}
	return v.List[i], true
}

// Append returns v with x appended, promoting a scalar v to a list whose
// first element is v.
func (v Value) Append(x Value) Value {
	if v.Type != ListType {
		return FromList(v, x)
	}
	res := make([]Value, len(v.List), len(v.List)+1)
	copy(res, v.List)
	return Value{Type: ListType, List: append(res, x)}
}

// Equal reports structural equality. Lists are equal when they have equal
// elements in the same order; values of different types are never equal.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case NullType:
		return true
	case BoolType:
		return v.Bool == o.Bool
	case IntType:
		return v.Int == o.Int
	case FloatType:
		return v.Float == o.Float
	case StringType, InstantType, DurationType:
		return v.String == o.String
	case ListType:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Contains reports whether the list v has an element equal to x.
func (v Value) Contains(x Value) bool {
	if v.Type != ListType {
		return false
	}
	for i := range v.List {
		if v.List[i].Equal(x) {
			return true
		}
	}
	return false
}

// Text coerces v to a display string. Lists are joined with ", ".
func (v Value) Text() string {
	switch v.Type {
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case IntType:
		return strconv.FormatInt(v.Int, 10)
	case FloatType:
		return formatFloat(v.Float)
	case StringType:
		return v.String
	case InstantType, DurationType:
		return "@" + v.String
	case ListType:
		parts := make([]string, len(v.List))
		for i := range v.List {
			parts[i] = v.List[i].Text()
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func (v Value) GoString() string {
	switch v.Type {
	case StringType:
		return strconv.Quote(v.String)
	case ListType:
		parts := make([]string, len(v.List))
		for i := range v.List {
			parts[i] = v.List[i].GoString()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return v.Type.String() + "(" + v.Text() + ")"
}

// Any converts v to plain Go data: nil, bool, int64, float64, string or
// []any. Instants and durations keep their '@' prefix.
func (v Value) Any() any {
	switch v.Type {
	case BoolType:
		return v.Bool
	case IntType:
		return v.Int
	case FloatType:
		return v.Float
	case StringType:
		return v.String
	case InstantType, DurationType:
		return "@" + v.String
	case ListType:
		res := make([]any, len(v.List))
		for i := range v.List {
			res[i] = v.List[i].Any()
		}
		return res
	}
	return nil
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

// Truth reports whether v is non-zero: false, 0, "", null and the empty
// list are false.
func Truth(v Value) bool {
	switch v.Type {
	case BoolType:
		return v.Bool
	case IntType:
		return v.Int != 0
	case FloatType:
		return v.Float != 0
	case StringType, InstantType, DurationType:
		return v.String != ""
	case ListType:
		return len(v.List) != 0
	}
	return false
}
