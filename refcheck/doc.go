// Package refcheck checks references between TreeML documents.
//
// A source Group of documents and a Path such as "item.id.nodeValue"
// define a set of known names or values. Check then reports every node of
// a referrer document, reached by its own path, whose name or value is not
// in that set.
//
// Issues carry the codes L0001 (duplicate source name), L0002 (duplicate
// source value), L0003 (name not in source) and L0004 (value not in
// source).
package refcheck
