// Package query evaluates path expressions over TreeML trees.
//
// An expression is a dotted sequence of steps followed by an optional
// function:
//
//	item[1].name          second child named item, then its first name child
//	*[:'x']               first child of any name whose value is, or contains, x
//	item[:2](name)        name of the first item with value 2
//	tags(0)               first element of the list value of tags
//
// A step without a predicate selects the first child with that name; "*"
// matches any name. The function projects the selected node: "()" or
// nothing yields its value, "(name)" its name, "(integer)", "(double)",
// "(string)", "(boolean)" and "(list)" test its value type and "(k)"
// indexes a list value.
//
// An expression that is itself a literal (null, true, false, a number or a
// 'quoted' string) evaluates to that literal.
package query
