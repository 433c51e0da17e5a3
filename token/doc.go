// Package token holds the lexical vocabulary of the TreeML parser: the
// parser state identities, value type hints, character classes, source
// positions and the parse error taxonomy.
package token
