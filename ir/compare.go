package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b Value) int {
	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType, FloatType:
		return compareNumbers(a, b)
	case StringType, InstantType, DurationType:
		if a.Type != b.Type {
			return cmp.Compare(a.Type, b.Type)
		}
		return strings.Compare(a.String, b.String)
	case ListType:
		return compareLists(a, b)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String/Instant/Duration < List
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType, FloatType:
		return 2
	case StringType, InstantType, DurationType:
		return 3
	case ListType:
		return 4
	}
	return 100
}

func compareNumbers(a, b Value) int {
	if a.Type == IntType && b.Type == IntType {
		return cmp.Compare(a.Int, b.Int)
	}
	fa, fb := a.Float, b.Float
	if a.Type == IntType {
		fa = float64(a.Int)
	}
	if b.Type == IntType {
		fb = float64(b.Int)
	}
	if c := cmp.Compare(fa, fb); c != 0 {
		return c
	}
	// Int < Float when numerically equal
	return cmp.Compare(a.Type, b.Type)
}

func compareLists(a, b Value) int {
	n := min(len(a.List), len(b.List))
	for i := 0; i < n; i++ {
		if c := Compare(a.List[i], b.List[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.List), len(b.List))
}

// EqualTrees reports whether a and b have equal names, values and children,
// ignoring line numbers.
func EqualTrees(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Name != b.Name || !a.Value.Equal(b.Value) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !EqualTrees(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
