package token

import "fmt"

// Pos is a source position. Line is 1-based; Col counts the characters
// consumed on the current line, so the first character of a line is at 1.
// Offset counts every character read, including carriage returns.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("{line %d, position %d}", p.Line, p.Col)
}
