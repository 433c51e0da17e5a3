// Package encode writes TreeML documents.
//
// Trees encode to either TreeML surface syntax, tab indented or curly
// braced, and to plain JSON or YAML renderings of the node hierarchy.
//
//	root, _ := parse.ParseString("a : 1\n\tb : x, y\n")
//	err := encode.Encode(root, os.Stdout, encode.EncodeFormat(format.CurlyFormat))
//
// Output in a TreeML format parses back to an equal tree.
package encode
