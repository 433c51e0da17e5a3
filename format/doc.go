// Package format names the surface syntaxes understood by TreeML tooling.
//
// TreeML documents come in two surface syntaxes which share one lexer:
// tab-indented ([TabFormat]) and curly-braced ([CurlyFormat]). JSON and YAML
// are available as output formats only.
//
// # Related Packages
//
//   - github.com/agnes1/TreeML/parse - Parse text to a tree
//   - github.com/agnes1/TreeML/encode - Encode a tree to text
package format
