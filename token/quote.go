package token

import "strings"

var quoter = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\r", `\r`, "\n", `\n`)

// NeedsQuote reports whether s must be written as a quoted string to read
// back as the same string value.
func NeedsQuote(s string) bool {
	switch s {
	case "null", "true", "false":
		return true
	}
	return !IsIdentifier(s)
}

// Quote returns s as a double quoted string literal.
func Quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}
