package token

// Group identifies a state of the parser. Each character of input is read
// by exactly one group, which decides the next group.
type Group int

const (
	Prolog Group = iota
	StartOfLine
	Name
	InterStage
	BeforeValue
	Token
	NumberValue
	StringValue
	TimeValue
	Continuation
	AfterValue
	Comment
)

var groupNames = [...]string{
	Prolog:       "Prolog",
	StartOfLine:  "StartOfLine",
	Name:         "Name",
	InterStage:   "InterStage",
	BeforeValue:  "BeforeValue",
	Token:        "Token",
	NumberValue:  "NumberValue",
	StringValue:  "StringValue",
	TimeValue:    "TimeValue",
	Continuation: "Continuation",
	AfterValue:   "AfterValue",
	Comment:      "Comment",
}

func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return "<unknown group>"
	}
	return groupNames[g]
}

// Groups returns all groups in declaration order.
func Groups() []Group {
	res := make([]Group, len(groupNames))
	for i := range res {
		res[i] = Group(i)
	}
	return res
}

// IsValue reports whether g is one of the value sub-lexers.
func (g Group) IsValue() bool {
	switch g {
	case Token, NumberValue, StringValue, TimeValue:
		return true
	}
	return false
}
