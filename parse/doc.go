// Package parse reads TreeML documents.
//
// The parser is a character driven state machine. Each character is read by
// the current token.Group, which returns the group for the next character;
// entering a group resets the lexeme buffer and re-reads the triggering
// character. The parser emits stream events to its sinks, and unless
// streaming a stream.Builder turns them into an *ir.Root.
//
// Two surface syntaxes share the lexer. In tab mode leading tabs give the
// depth of a node. A document whose prolog contains a '{' is in curly mode,
// where '{' and '}' open and close child blocks:
//
//	#result::ok
//	{
//	a : "hello" {
//	  b : true
//	}
//	}
//
// The closing brace of the wrapper leaves the depth at -1, which is how the
// end of a curly document is recognised.
package parse
