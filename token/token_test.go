package token

import (
	"errors"
	"testing"

	"github.com/agnes1/TreeML/ir"
)

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		err  error
		want error
	}{
		{ErrIllegalName, ErrLexical},
		{ErrBadEscape, ErrLexical},
		{ErrIllegalIndent, ErrStructural},
		{ErrIllegalIndent, ir.ErrIllegalIndent},
		{ErrRepeatedComma, ErrStructural},
		{ErrUnterminated, ErrStructural},
		{ErrNumber, ErrType},
	}
	for _, tt := range tests {
		err := Errorf(tt.err, Pos{Line: 3, Col: 7}, "%q", 'x')
		if !errors.Is(err, tt.want) {
			t.Errorf("%v is not %v", err, tt.want)
		}
		if !errors.Is(err, tt.err) {
			t.Errorf("%v is not %v", err, tt.err)
		}
	}
}

func TestParseErrMessage(t *testing.T) {
	err := NewParseErr(ErrUnterminated, Pos{Offset: 20, Line: 4, Col: 2})
	want := "structural error: unterminated document {line 4, position 2}"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCharClasses(t *testing.T) {
	tests := []struct {
		s          string
		identifier bool
		name       bool
	}{
		{"abc", true, true},
		{"_x9", true, true},
		{"9lives", false, true},
		{"", false, false},
		{"a-b", false, false},
		{"héllo", false, false},
	}
	for _, tt := range tests {
		if got := IsIdentifier(tt.s); got != tt.identifier {
			t.Errorf("IsIdentifier(%q) = %v", tt.s, got)
		}
		if got := IsName(tt.s); got != tt.name {
			t.Errorf("IsName(%q) = %v", tt.s, got)
		}
	}
	for _, c := range "0123456789+-THMSPZ:." {
		if !IsTimeChar(c) {
			t.Errorf("%q should be a time char", c)
		}
	}
	if IsNumberStart('e') || !IsNumberChar('e') {
		t.Error("e continues but does not start a number")
	}
}

func TestGroupString(t *testing.T) {
	for _, g := range Groups() {
		if g.String() == "<unknown group>" {
			t.Errorf("group %d has no name", g)
		}
	}
	if Comment.String() != "Comment" || !StringValue.IsValue() || AfterValue.IsValue() {
		t.Error("group names")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		s     string
		needs bool
		quote string
	}{
		{"abc", false, `"abc"`},
		{"a_1", false, `"a_1"`},
		{"null", true, `"null"`},
		{"true", true, `"true"`},
		{"", true, `""`},
		{"1abc", true, `"1abc"`},
		{"two words", true, `"two words"`},
		{"say \"hi\"", true, `"say \"hi\""`},
		{"a\\b", true, `"a\\b"`},
		{"l1\r\nl2", true, `"l1\r\nl2"`},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.s); got != tt.needs {
			t.Errorf("NeedsQuote(%q) = %v", tt.s, got)
		}
		if got := Quote(tt.s); got != tt.quote {
			t.Errorf("Quote(%q) = %s, want %s", tt.s, got, tt.quote)
		}
	}
}
