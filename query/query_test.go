package query

import (
	"errors"
	"testing"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/parse"
	"github.com/google/go-cmp/cmp"
)

const doc = `item : 1
	name : x
	tags : red, green
item : 2
	name : y
	tags : blue
	nested : true
		deep : 1.5
other : "two words"
empty :
list : null, 3, z
`

func mustParse(t *testing.T, s string) *ir.Root {
	t.Helper()
	root, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestEval(t *testing.T) {
	root := mustParse(t, doc)
	tests := []struct {
		expr string
		want ir.Value
	}{
		{"item", ir.FromInt(1)},
		{"item()", ir.FromInt(1)},
		{"item[1]", ir.FromInt(2)},
		{"item[1].name", ir.FromString("y")},
		{"item[1](name)", ir.FromString("item")},
		{"item[:2]", ir.FromInt(2)},
		{"item[:9]", ir.Null()},
		{"item[5]", ir.Null()},
		{"missing.name", ir.Null()},
		{"item[:2].name", ir.FromString("y")},
		{"*[:'two words'](name)", ir.FromString("other")},
		{"item.tags", ir.FromList(ir.FromString("red"), ir.FromString("green"))},
		{"item.tags(1)", ir.FromString("green")},
		{"*.tags[:'blue']", ir.Null()},
		{"item[1].*[:'blue'](name)", ir.FromString("tags")},
		{"item[1].nested.deep", ir.FromFloat(1.5)},
		{"item[1].nested.deep(double)", ir.FromBool(true)},
		{"item[1].nested(boolean)", ir.FromBool(true)},
		{"item(integer)", ir.FromBool(true)},
		{"item(string)", ir.FromBool(false)},
		{"other(string)", ir.FromBool(true)},
		{"list(list)", ir.FromBool(true)},
		{"list[:null](name)", ir.FromString("list")},
		{"*[:3](name)", ir.FromString("list")},
		{"*[:null](name)", ir.FromString("empty")},
		{"list(0)", ir.Null()},
		{"list(2)", ir.FromString("z")},
		{"*[2](name)", ir.FromString("other")},
		{"null", ir.Null()},
		{"true", ir.FromBool(true)},
		{"false", ir.FromBool(false)},
		{"42", ir.FromInt(42)},
		{"-4.5", ir.FromFloat(-4.5)},
		{"'lit'", ir.FromString("lit")},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Eval(&root.Node, tt.expr)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%s (-want +got):\n%s", tt.expr, diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	root := mustParse(t, doc)
	tests := []struct {
		expr string
		err  error
	}{
		{"", ErrSyntax},
		{"item[1", ErrSyntax},
		{"item[1][2]", ErrSyntax},
		{"item[x]", ErrSyntax},
		{"item[:'x]", ErrSyntax},
		{"item[:bogus]", ErrSyntax},
		{"'unclosed", ErrSyntax},
		{"item..name", ErrSyntax},
		{"it-em", ErrSyntax},
		{"item(name", ErrSyntax},
		{"item(name)x", ErrSyntax},
		{"item(shout)", ErrFunction},
		{"item(0)", ErrType},
		{"item.tags(7)", ErrType},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Eval(&root.Node, tt.expr)
			if !errors.Is(err, tt.err) {
				t.Errorf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestSelectComposes(t *testing.T) {
	root := mustParse(t, doc)
	for _, tt := range []struct{ first, rest string }{
		{"item[1]", "name"},
		{"item[1].nested", "deep"},
		{"item", "tags(0)"},
	} {
		whole, err := Eval(&root.Node, tt.first+"."+tt.rest)
		if err != nil {
			t.Fatal(err)
		}
		mid, err := Select(&root.Node, tt.first)
		if err != nil || mid == nil {
			t.Fatalf("select %s: %v", tt.first, err)
		}
		part, err := Eval(mid, tt.rest)
		if err != nil {
			t.Fatal(err)
		}
		if !whole.Equal(part) {
			t.Errorf("%s.%s = %#v but stepwise %#v", tt.first, tt.rest, whole, part)
		}
	}
}

func TestExprString(t *testing.T) {
	for _, s := range []string{"item[1].name", "*[:'a b'](name)", "x[:2].y(3)", "a(list)", "'lit'", "null"} {
		e, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := e.String(); got != s {
			t.Errorf("String() = %q, want %q", got, s)
		}
	}
}

func TestDigitLeadingName(t *testing.T) {
	root := mustParse(t, "2nd : second\n")
	v, err := Eval(&root.Node, "2nd")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(ir.FromString("second")) {
		t.Errorf("got %#v", v)
	}
}
