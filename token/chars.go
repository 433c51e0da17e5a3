package token

import "strings"

const (
	nameChars        = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_"
	tokenStartChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_"
	numberStartChars = ".0123456789-"
	numberChars      = ".0123456789-_e"
	timeChars        = "0123456789+-THMSPZ:."
)

func in(c rune, set string) bool {
	return c < 0x80 && strings.IndexByte(set, byte(c)) >= 0
}

// IsNameChar reports whether c may appear in a node name. Names may start
// with a digit.
func IsNameChar(c rune) bool { return in(c, nameChars) }

// IsTokenStart reports whether c may start an unquoted token value.
func IsTokenStart(c rune) bool { return in(c, tokenStartChars) }

// IsTokenChar reports whether c may continue an unquoted token value.
func IsTokenChar(c rune) bool { return in(c, nameChars) }

func IsNumberStart(c rune) bool { return in(c, numberStartChars) }

func IsNumberChar(c rune) bool { return in(c, numberChars) }

// IsTimeChar reports whether c may appear in an instant or duration after
// the leading '@'.
func IsTimeChar(c rune) bool { return in(c, timeChars) }

// IsBlank reports whether c is a space or a tab.
func IsBlank(c rune) bool { return c == ' ' || c == '\t' }

// IsSignificant reports whether c counts as the last significant character
// for the repeated comma and adjacent brace checks.
func IsSignificant(c rune) bool { return c != ' ' && c != '\t' && c != '\n' }

// IsIdentifier reports whether s is a non-empty token that would lex as an
// unquoted value.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		if i == 0 && !IsTokenStart(c) {
			return false
		}
		if !IsTokenChar(c) {
			return false
		}
	}
	return true
}

// IsName reports whether s is a legal node name.
func IsName(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !IsNameChar(c) {
			return false
		}
	}
	return true
}
