package stream

import (
	"fmt"
	"sync/atomic"

	"github.com/agnes1/TreeML/ir"
)

// Builder is the sink that assembles parser events into an *ir.Root.
// A Builder builds one document at a time: EventStart while a document is
// in progress fails with ErrConcurrentParse.
type Builder struct {
	running atomic.Bool
	root    *ir.Root

	pending      *ir.Node
	valueSet     bool
	declaredList bool
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Root returns the document built by the last parse.
func (b *Builder) Root() *ir.Root {
	return b.root
}

func (b *Builder) Emit(e *Event) error {
	switch e.Type {
	case EventStart:
		if !b.running.CompareAndSwap(false, true) {
			return ErrConcurrentParse
		}
		b.root = ir.NewRoot()
		b.pending = nil
	case EventEnd:
		b.running.Store(false)
	case EventTag:
		b.root.AddTag(e.Tag)
	case EventNodeName:
		b.pending = ir.NewNode(e.Name, ir.Null()).WithLine(e.Pos.Line)
		b.valueSet = false
		b.declaredList = false
	case EventAddValue:
		if b.pending == nil {
			return fmt.Errorf("%w at %s", ErrNoPendingNode, e.Pos)
		}
		if !b.valueSet && !b.declaredList {
			b.pending.Value = e.Value
		} else {
			b.pending.Value = b.pending.Value.Append(e.Value)
		}
		b.valueSet = true
	case EventDeclareList:
		if b.pending == nil {
			return fmt.Errorf("%w at %s", ErrNoPendingNode, e.Pos)
		}
		switch {
		case b.pending.Value.IsList():
		case b.valueSet:
			b.pending.Value = ir.FromList(b.pending.Value)
		default:
			b.pending.Value = ir.FromList()
		}
		b.declaredList = true
	case EventAddNode:
		if b.pending == nil {
			return fmt.Errorf("%w at %s", ErrNoPendingNode, e.Pos)
		}
		if err := b.root.Append(e.Indent, b.pending); err != nil {
			return err
		}
		b.pending = nil
	}
	return nil
}
