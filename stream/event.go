package stream

import (
	"fmt"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/token"
)

// EventType represents the type of a parser event.
type EventType int

const (
	EventStart EventType = iota
	EventEnd
	EventTag
	EventNodeName
	EventAddValue
	EventDeclareList
	EventAddNode
	EventCharacter
)

func (t EventType) String() string {
	switch t {
	case EventStart:
		return "Start"
	case EventEnd:
		return "End"
	case EventTag:
		return "Tag"
	case EventNodeName:
		return "NodeName"
	case EventAddValue:
		return "AddValue"
	case EventDeclareList:
		return "DeclareList"
	case EventAddNode:
		return "AddNode"
	case EventCharacter:
		return "Character"
	default:
		return fmt.Sprintf("EventType(%d)", t)
	}
}

// Event is one parser event. Only the fields relevant to Type are set.
type Event struct {
	Type EventType

	Tag  string // EventTag
	Name string // EventNodeName

	// EventAddValue
	Value ir.Value
	Hint  token.Hint

	// EventCharacter
	Char rune

	// Indent is the node depth for line events.
	Indent int
	Pos    token.Pos
	// Group is the parser state that produced the event.
	Group token.Group
}

func (e *Event) String() string {
	switch e.Type {
	case EventStart, EventEnd:
		return e.Type.String()
	case EventTag:
		return fmt.Sprintf("Tag %q %s", e.Tag, e.Pos)
	case EventNodeName:
		return fmt.Sprintf("NodeName %s indent=%d %s", e.Name, e.Indent, e.Pos)
	case EventAddValue:
		return fmt.Sprintf("AddValue %#v (%s) indent=%d %s", e.Value, e.Hint, e.Indent, e.Pos)
	case EventCharacter:
		return fmt.Sprintf("Character %q indent=%d %s %s", e.Char, e.Indent, e.Group, e.Pos)
	default:
		return fmt.Sprintf("%s indent=%d %s", e.Type, e.Indent, e.Pos)
	}
}
