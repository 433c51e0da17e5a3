// Package ir provides the in-memory tree for TreeML documents.
//
// # Overview
//
// A TreeML document is a tree of name/value nodes. Each [Node] occupies one
// logical line of source and carries a name, a typed [Value], the 1-based
// source line and its ordered children. The document itself is a [Root],
// a node named "root" at line 0 with no value, which additionally records
// the document tags (`#...` lines).
//
// # Values
//
// A [Value] is a tagged union selected by its [Type]:
//
//   - NullType: null
//   - BoolType: true or false
//   - IntType: 64-bit signed integer
//   - FloatType: 64-bit IEEE float
//   - StringType: UTF-8 string
//   - InstantType: ISO-8601 timestamp kept in its source form
//   - DurationType: ISO-8601 duration kept in its source form
//   - ListType: ordered heterogeneous list of values
//
// Values compare structurally with [Value.Equal]; lists compare element by
// element. There is no arithmetic.
//
// # Creating Trees
//
//	root := ir.NewRoot()
//	a := ir.NewNode("a", ir.FromInt(1))
//	if err := root.Append(0, a); err != nil {
//	    return err
//	}
//	b := ir.NewNode("b", ir.FromList(ir.FromString("x"), ir.FromString("y")))
//	if err := root.Append(1, b); err != nil {
//	    return err
//	}
//
// Trees are built by a single owner (normally the parser's tree builder) and
// are read-only afterwards; they may then be shared between goroutines.
//
// # Related Packages
//
//   - github.com/agnes1/TreeML/parse - Parse text to a tree
//   - github.com/agnes1/TreeML/encode - Encode a tree to text
//   - github.com/agnes1/TreeML/query - Path expressions over a tree
package ir
