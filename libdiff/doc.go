// Package libdiff computes differences between TreeML documents.
//
// # Usage
//
//	// Merge patch turning a into b
//	patch, err := libdiff.Diff(a, b)
//
//	// Apply it to the flattened form of a
//	flat, err := libdiff.Apply(a, patch)
//
// A document is compared through its flattened form: a JSON object
// mapping the query path of every node (see ir.Node.Path) to its value.
// Diffs are RFC 7386 merge patches over that object, in which a removed
// node appears as null.
//
// DiffString gives a character level rendering of two strings and is used
// to explain mismatched structure hashes.
package libdiff
