package libdiff

import (
	"testing"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/parse"

	"github.com/goccy/go-json"
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

func TestFlatten(t *testing.T) {
	root := mustParse(t, "a : 1\n\tb : x, y\nc : null\nc : @PT1M\n")
	want := map[string]any{
		"a":    int64(1),
		"a.b":  []any{"x", "y"},
		"c":    nil,
		"c[1]": "@PT1M",
	}
	if diff := cmp.Diff(want, Flatten(root)); diff != "" {
		t.Error(diff)
	}
}

func TestDiff(t *testing.T) {
	a := mustParse(t, "a : 1\n\tb : 2\nc : x\n")
	b := mustParse(t, "a : 1\n\tb : 3\nd : y\n")
	patch, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(patch, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"a.b": float64(3), "c": nil, "d": "y"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}

	applied, err := Apply(a, patch)
	if err != nil {
		t.Fatal(err)
	}
	wantApplied := map[string]any{"a": float64(1), "a.b": float64(3), "d": "y"}
	if diff := cmp.Diff(wantApplied, applied); diff != "" {
		t.Error(diff)
	}

	rev, err := Reverse(a, b)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Apply(b, rev)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"a": float64(1), "a.b": float64(2), "c": "x"}, back); diff != "" {
		t.Error(diff)
	}

	same, err := Diff(a, mustParse(t, "a : 1\n\tb : 2\nc : x\n"))
	if err != nil || same != nil {
		t.Errorf("equal documents: %s, %v", same, err)
	}
}

func TestApplyOps(t *testing.T) {
	a := mustParse(t, "a : 1\nb : 2\n")
	got, err := ApplyOps(a, []byte(`[{"op": "replace", "path": "/a", "value": 5}, {"op": "remove", "path": "/b"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]any{"a": float64(5)}, got); diff != "" {
		t.Error(diff)
	}
	if _, err := ApplyOps(a, []byte(`{`)); err == nil {
		t.Error("expected decode error")
	}
}

func TestDiffString(t *testing.T) {
	tests := []struct {
		from, to, want string
	}{
		{"1:1;2:1;", "1:1;2:1;", ""},
		{"1:1;2:1;", "1:1;2:2;", "1:1;2:[-1-]{+2+};"},
		{"1:1;", "1:1;2:0;", "1:1;{+2:0;+}"},
	}
	for _, tt := range tests {
		if got := DiffString(tt.from, tt.to); got != tt.want {
			t.Errorf("DiffString(%q, %q) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
