package refcheck

import (
	"errors"
	"testing"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/parse"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *ir.Root {
	t.Helper()
	root, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

const (
	items = "item : sword\n\tid : blade\nitem : shield\n\tid : buckler\n"
	parts = "item : hide\n\tid : fur\n"
	// creatures refers to item ids by node name under parts.
	creatures = "creature : wolf\n" +
		"\tparts : ,\n" +
		"\t\tfur : 1\n" +
		"\t\tclaw : 4\n" +
		"creature : knight\n" +
		"\tparts : ,\n" +
		"\t\tblade : 1\n" +
		"\tweapon : buckler\n" +
		"\tweapon : mace\n"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
		err  error
	}{
		{"item.id.nodeValue", Path{Steps: []string{"item", "id"}, Final: NodeValue}, nil},
		{"creature.parts.token.nodeName", Path{Steps: []string{"creature", "parts", "token"}, Final: NodeName}, nil},
		{"nodeName", Path{Steps: []string{}, Final: NodeName}, nil},
		{"item.id", Path{}, ErrPath},
		{"item..nodeName", Path{}, ErrPath},
	}
	for _, tt := range tests {
		got, err := ParsePath(tt.in)
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: got error %v, want %v", tt.in, err, tt.err)
			continue
		}
		if err != nil {
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: %s", tt.in, diff)
		}
		if got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestCheck(t *testing.T) {
	group := &Group{
		Documents: []*ir.Root{mustParse(t, items), mustParse(t, parts)},
		Path:      Path{Steps: []string{"item", "id"}, Final: NodeValue},
	}
	referrer := mustParse(t, creatures)
	tests := []struct {
		path string
		want []Issue
	}{
		{
			path: "creature.parts.token.nodeName",
			want: []Issue{{Code: CodeNameMissing, Line: 4, Message: "Node name not in source: claw"}},
		},
		{
			path: "creature.weapon.nodeValue",
			want: []Issue{{Code: CodeValueMissing, Line: 9, Message: "Node value not in source: mace"}},
		},
		{
			path: "creature.nodeValue",
			want: []Issue{
				{Code: CodeValueMissing, Line: 1, Message: "Node value not in source: wolf"},
				{Code: CodeValueMissing, Line: 5, Message: "Node value not in source: knight"},
			},
		},
		{
			path: "nobody.nodeName",
		},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Check(referrer, mustPath(t, tt.path), group)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func mustPath(t *testing.T, s string) Path {
	t.Helper()
	p, err := ParsePath(s)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCollect(t *testing.T) {
	tests := []struct {
		name string
		docs []string
		path string
		msg  string
		len  int
	}{
		{
			name: "duplicate value",
			docs: []string{items, items},
			path: "item.id.nodeValue",
			msg:  "L0002: Node value not unique: blade at line 2",
			len:  2,
		},
		{
			name: "duplicate name",
			docs: []string{"item : a\nitem : b\n"},
			path: "item.nodeName",
			msg:  "L0001: Node name not unique: item at line 2",
			len:  1,
		},
		{
			name: "distinct",
			docs: []string{items, parts},
			path: "item.nodeValue",
			len:  3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Group{Path: mustPath(t, tt.path)}
			for _, d := range tt.docs {
				g.Documents = append(g.Documents, mustParse(t, d))
			}
			set, err := g.Collect(true)
			if tt.msg == "" {
				if err != nil {
					t.Fatal(err)
				}
			} else {
				if !errors.Is(err, ErrReference) || err.Error() != tt.msg {
					t.Errorf("got %v, want %s", err, tt.msg)
				}
				set, err = g.Collect(false)
				if err != nil {
					t.Fatal(err)
				}
			}
			if set.Len() != tt.len {
				t.Errorf("got %d entries, want %d", set.Len(), tt.len)
			}
		})
	}
}

func TestNameMatchesStringValue(t *testing.T) {
	g := &Group{
		Documents: []*ir.Root{mustParse(t, "ids : a, b\n\tx : 1\n")},
		Path:      mustPath(t, "ids.token.nodeName"),
	}
	set, err := g.Collect(true)
	if err != nil {
		t.Fatal(err)
	}
	if !set.HasName("x") || !set.Has(ir.FromString("x")) || set.Has(ir.FromInt(1)) {
		t.Errorf("unexpected set contents")
	}
}

func TestNegativeZeroMatches(t *testing.T) {
	g := &Group{
		Documents: []*ir.Root{mustParse(t, "def : 0.0\n")},
		Path:      mustPath(t, "def.nodeValue"),
	}
	issues, err := Check(mustParse(t, "ref : -0.0\n"), mustPath(t, "ref.nodeValue"), g)
	if err != nil {
		t.Fatal(err)
	}
	if len(issues) != 0 {
		t.Errorf("unexpected issues %v", issues)
	}
}
