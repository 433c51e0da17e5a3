package schema

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
		t.Fatalf("parse %q: %v", s, err)
	}
	return root
}

func mustCompile(t *testing.T, s string) *Schema {
	t.Helper()
	sch, err := Compile(mustParse(t, s))
	if err != nil {
		t.Fatalf("compile %q: %v", s, err)
	}
	return sch
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		doc    string
		want   []string
	}{
		{
			name:   "wrong type",
			schema: "age : single, integer\n",
			doc:    "age : \"old\"\n",
			want:   []string{"Validation error V004: [age] has value of wrong type {line: 1}"},
		},
		{
			name:   "duplicate tokenid",
			schema: "item : tokenid\n",
			doc:    "item : foo\nitem : foo\n",
			want:   []string{"Validation error V005: [item:foo] token ID is not unique {line: 2}"},
		},
		{
			name:   "not expected",
			schema: "a : single\nb : single\n",
			doc:    "b :\n",
			want:   []string{"Validation error V001: [b] not expected; expected = a {line: 1}"},
		},
		{
			name:   "schema exhausted after single",
			schema: "a : single\n",
			doc:    "a :\nb :\n",
			want:   []string{"Validation error V002: [b] not expected {line: 2}"},
		},
		{
			name:   "schema exhausted by optional",
			schema: "a : optional\n",
			doc:    "b :\n",
			want:   []string{"Validation error V002: [b] not expected {line: 1}"},
		},
		{
			name:   "no schema children",
			schema: "a : single\n",
			doc:    "a :\n\tb : 1\n",
			want:   []string{"Validation error V002: [b] not expected {line: 2}"},
		},
		{
			name:   "requires children",
			schema: "a : single\n\tb : single\n",
			doc:    "a :\n",
			want:   []string{"Validation error V003: [a] requires children {line: 1}"},
		},
		{
			name:   "optional children",
			schema: "a : single\n\tb : optional, single\n",
			doc:    "a :\n",
		},
		{
			name:   "repetition then next",
			schema: "a : integer\nb : single, string\n",
			doc:    "a : 1\na : 2\nb : x\n",
		},
		{
			name:   "wildcard",
			schema: "token : integer\n",
			doc:    "x : 1\ny : 2\n",
		},
		{
			name:   "references",
			schema: "person : optional, tokenid\nfriend : optional, tokenidref\n",
			doc:    "person : ann\nperson : bob\nfriend : ann\nfriend : zed\n",
			want:   []string{"Validation error V008: [friend:zed] tokenidref does not refer to a preceding tokenid {line: 4}"},
		},
		{
			name:   "invalid tokenid",
			schema: "person : tokenid\n",
			doc:    "person : Ann\n",
			want:   []string{"Validation error V006: [person:Ann] token ID is not a valid token {line: 1}"},
		},
		{
			name:   "invalid token",
			schema: "t : token\n",
			doc:    "t : abc\nt : Abc\n",
			want:   []string{"Validation error V007: [t:Abc] token is not a valid token {line: 2}"},
		},
		{
			name:   "string accepts tokens",
			schema: "t : string\n",
			doc:    "t : Abc\nt : \"with space\"\n",
		},
		{
			name:   "lists and sets",
			schema: "l : single, list\ns : single, set\nx : integer\n",
			doc:    "l : 1, 2\ns : a, b\nx : 1, 2\n",
			want:   []string{"Validation error V004: [x] has value of wrong type {line: 3}"},
		},
		{
			name:   "times",
			schema: "d : single, duration\nt : dateTime\n",
			doc:    "d : @PT24H\nt : @2016-01-01\nt : @PT2H\n",
			want:   []string{"Validation error V004: [t] has value of wrong type {line: 3}"},
		},
		{
			name:   "null always accepted",
			schema: "x : single, integer\ny : single, boolean\nz : decimal\n",
			doc:    "x :\ny : true\nz : 1.5\nz : null\n",
		},
		{
			name:   "nested",
			schema: "person : single\n\tname : single, string\n\tage : optional, single, integer\n",
			doc:    "person :\n\tname : \"Ann Lee\"\n\tage : old\n",
			want:   []string{"Validation error V004: [age] has value of wrong type {line: 3}"},
		},
		{
			name:   "diagnostics in document order",
			schema: "p : tokenid\n\tq : single, integer\n",
			doc:    "p : a\n\tq : x\np : a\n\tq : 1\n",
			want: []string{
				"Validation error V004: [q] has value of wrong type {line: 2}",
				"Validation error V005: [p:a] token ID is not unique {line: 3}",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sch := mustCompile(t, tt.schema)
			err := sch.Validate(mustParse(t, tt.doc))
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("validation error should wrap ErrValidation")
			}
			if diff := cmp.Diff(tt.want, verr.Messages()); diff != "" {
				t.Errorf("diagnostics (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateResetsTokenIDs(t *testing.T) {
	sch := mustCompile(t, "person : optional, tokenid\nfriend : optional, tokenidref\n")
	people := mustParse(t, "person : ann\n")
	friends := mustParse(t, "friend : ann\n")
	if err := sch.ValidateAll(people, friends); err != nil {
		t.Fatalf("shared id space: %v", err)
	}
	if diff := cmp.Diff([]string{"ann"}, sch.TokenIDs()); diff != "" {
		t.Errorf("token ids (-want +got):\n%s", diff)
	}
	if err := sch.Validate(friends); !errors.Is(err, ErrValidation) {
		t.Errorf("expected unresolved reference after reset, got %v", err)
	}
	if err := sch.Validate(people); err != nil {
		t.Errorf("revalidation should not see earlier ids: %v", err)
	}
	sch.Reset()
	if len(sch.TokenIDs()) != 0 {
		t.Error("Reset should clear token ids")
	}
	if err := sch.Validate(nil); !errors.Is(err, ErrNoDocument) {
		t.Errorf("got %v", err)
	}
}

func TestPass(t *testing.T) {
	sch, err := Compile(mustParse(t, "#just a tag\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !sch.IsPass() || !Pass().IsPass() {
		t.Fatal("expected pass schema")
	}
	if err := sch.Validate(mustParse(t, "anything : 1\n\tgoes : x\n")); err != nil {
		t.Error(err)
	}
}

func TestCompile(t *testing.T) {
	sch := mustCompile(t, "root : single, idRoot, choiceA\n\ta : optional, enum, x, y\n\tb : items, integer\n\tc : range, 0, 10\n")
	top := sch.Top()
	if len(top) != 1 {
		t.Fatalf("top = %v", top)
	}
	r := sch.Node(top[0])
	if r.ID != "idRoot" || r.Choice != "choiceA" || !r.Has(Single) || r.Parent != None {
		t.Errorf("root node %#v", r)
	}
	if len(r.Children) != 3 {
		t.Fatalf("children = %v", r.Children)
	}
	a, b, c := sch.Node(r.Children[0]), sch.Node(r.Children[1]), sch.Node(r.Children[2])
	if a.Previous != None || a.Next != r.Children[1] || b.Previous != r.Children[0] || b.Next != r.Children[2] || c.Next != None {
		t.Error("sibling chain broken")
	}
	if a.Parent != top[0] || c.Parent != top[0] {
		t.Error("parent links broken")
	}
	if diff := cmp.Diff([]string{"x", "y"}, a.Enum); diff != "" {
		t.Errorf("enum (-want +got):\n%s", diff)
	}
	if !b.Has(List) || b.Flags.Has(Integer) {
		t.Errorf("items should imply list and capture the rest: %s %v", b.Flags, b.Items)
	}
	if diff := cmp.Diff([]string{"0", "10"}, c.Range); diff != "" {
		t.Errorf("range (-want +got):\n%s", diff)
	}
	if !sch.HasMandatoryChildren(top[0]) || sch.HasMandatoryChildren(r.Children[0]) {
		t.Error("HasMandatoryChildren")
	}
}

func TestSchemaString(t *testing.T) {
	src := "root : single, idRoot\n\ta : optional, string, enum, x, y\n\tb : list, items, integer\n"
	sch := mustCompile(t, src)
	if diff := cmp.Diff(src, sch.String()); diff != "" {
		t.Errorf("String (-want +got):\n%s", diff)
	}
	again := mustCompile(t, sch.String())
	if again.String() != sch.String() {
		t.Error("String does not round trip")
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		schema string
		err    error
	}{
		{"a : id1, id2\n", ErrDuplicateID},
		{"a : choiceA, choiceB\n", ErrDuplicateChoice},
		{"a : single, wibble\n", ErrUnknownWord},
		{"a : 5\n", ErrBadWord},
		{"a :\n\tb : idx, idy\n", ErrDuplicateID},
	}
	for _, tt := range tests {
		_, err := Compile(mustParse(t, tt.schema))
		if !errors.Is(err, tt.err) || !errors.Is(err, ErrSchemaCompile) {
			t.Errorf("%q: expected %v, got %v", tt.schema, tt.err, err)
		}
	}
}
