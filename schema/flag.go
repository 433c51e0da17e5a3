package schema

import "strings"

// Flag is a set of schema vocabulary words.
type Flag uint32

const (
	Single Flag = 1 << iota
	Optional
	Token
	String
	TokenID
	TokenIDRef
	Integer
	Decimal
	Boolean
	Empty
	DateTime
	Duration
	List
	Set
)

var flagWords = []struct {
	f    Flag
	word string
}{
	{Single, "single"},
	{Optional, "optional"},
	{Token, "token"},
	{String, "string"},
	{TokenID, "tokenid"},
	{TokenIDRef, "tokenidref"},
	{Integer, "integer"},
	{Decimal, "decimal"},
	{Boolean, "boolean"},
	{Empty, "empty"},
	{DateTime, "dateTime"},
	{Duration, "duration"},
	{List, "list"},
	{Set, "set"},
}

// ParseFlag returns the flag named by word.
func ParseFlag(word string) (Flag, bool) {
	for _, fw := range flagWords {
		if fw.word == word {
			return fw.f, true
		}
	}
	return 0, false
}

func (f Flag) Has(g Flag) bool {
	return f&g == g
}

// Words returns the vocabulary words set in f, in vocabulary order.
func (f Flag) Words() []string {
	var res []string
	for _, fw := range flagWords {
		if f.Has(fw.f) {
			res = append(res, fw.word)
		}
	}
	return res
}

func (f Flag) String() string {
	return strings.Join(f.Words(), ", ")
}
