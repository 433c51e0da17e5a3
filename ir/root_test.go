package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRoot(t *testing.T) *Root {
	t.Helper()
	root := NewRoot()
	steps := []struct {
		depth int
		node  *Node
	}{
		{0, NewNode("a", FromInt(1)).WithLine(1)},
		{1, NewNode("b", FromList(FromString("x"), FromString("y"))).WithLine(2)},
		{1, NewNode("c", Null()).WithLine(3)},
		{2, NewNode("d", FromBool(true)).WithLine(4)},
		{0, NewNode("a", FromInt(2)).WithLine(5)},
	}
	for _, s := range steps {
		if err := root.Append(s.depth, s.node); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestAppend(t *testing.T) {
	root := sampleRoot(t)
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 top level children, got %d", len(root.Children))
	}
	a := root.Children[0]
	if got := len(a.Children); got != 2 {
		t.Fatalf("a has %d children", got)
	}
	d := a.Children[1].Children[0]
	if d.Name != "d" || d.Parent.Name != "c" {
		t.Errorf("d misplaced: %s under %s", d.Name, d.Parent.Name)
	}
	if root.Line != 0 || !root.Value.IsNull() {
		t.Error("root must have line 0 and no value")
	}
}

func TestAppendIllegalIndent(t *testing.T) {
	root := NewRoot()
	err := root.Append(1, NewNode("a", Null()))
	if !errors.Is(err, ErrIllegalIndent) {
		t.Fatalf("expected ErrIllegalIndent, got %v", err)
	}
	if err := root.Append(0, NewNode("a", Null())); err != nil {
		t.Fatal(err)
	}
	if err := root.Append(2, NewNode("b", Null())); !errors.Is(err, ErrIllegalIndent) {
		t.Fatalf("expected ErrIllegalIndent for 0 -> 2, got %v", err)
	}
}

func TestStructureHash(t *testing.T) {
	root := sampleRoot(t)
	if got, want := StructureHash(&root.Node), "1:1;2:2;2:0;3:1;1:1;"; got != want {
		t.Errorf("StructureHash = %q, want %q", got, want)
	}
}

func TestNavigation(t *testing.T) {
	root := sampleRoot(t)
	v, ok := root.ValueAt("a.c.d")
	if !ok || !v.Equal(FromBool(true)) {
		t.Errorf("ValueAt(a.c.d) = %#v, %v", v, ok)
	}
	if _, ok := root.ValueAt("a.zz"); ok {
		t.Error("ValueAt should miss")
	}
	as := root.Nodes("a")
	if len(as) != 2 {
		t.Fatalf("Nodes(a) = %d", len(as))
	}
	if as[0].Next() != as[1] || as[1].Previous() != as[0] {
		t.Error("sibling links")
	}
	if got := as[0].Children[1].Children[0].Path(); got != "a.c.d" {
		t.Errorf("Path = %q", got)
	}
	if got := as[1].Path(); got != "a[1]" {
		t.Errorf("Path = %q", got)
	}
	var names []string
	root.Walk(func(depth int, n *Node) bool {
		names = append(names, n.Name)
		return true
	})
	if diff := cmp.Diff([]string{"root", "a", "b", "c", "d", "a"}, names); diff != "" {
		t.Errorf("walk order (-want +got):\n%s", diff)
	}
}

func TestCloneAndHash(t *testing.T) {
	root := sampleRoot(t)
	c := root.Node.Clone()
	if !EqualTrees(&root.Node, c) {
		t.Fatal("clone differs")
	}
	if root.Node.Hash() != c.Hash() {
		t.Error("hash of clone differs")
	}
	c.Children[0].Value = FromInt(9)
	if EqualTrees(&root.Node, c) || root.Children[0].Value.Int != 1 {
		t.Error("clone shares state with original")
	}
}

func TestTags(t *testing.T) {
	root := NewRoot()
	root.AddTag("requires::encyclopedia")
	root.AddTag("result::ok")
	root.AddTag("freeform")
	root.AddTag("eval::a=1")
	root.AddTag("eval::b=2")
	if v, ok := root.TagValue("result"); !ok || v != "ok" {
		t.Errorf("TagValue(result) = %q %v", v, ok)
	}
	if diff := cmp.Diff([]string{"a=1", "b=2"}, root.TagValues("eval")); diff != "" {
		t.Errorf("TagValues (-want +got):\n%s", diff)
	}
	if req, ok := root.Requires(); !ok || req != "encyclopedia" {
		t.Errorf("Requires = %q %v", req, ok)
	}
	if _, _, ok := SplitTag("freeform"); ok {
		t.Error("freeform tag should not split")
	}
}
