package eval

import (
	"errors"
	"testing"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/parse"

	"github.com/google/go-cmp/cmp"
)

const doc = "#env::prod\n" +
	"server : main\n" +
	"\tport : 8080\n" +
	"\thosts : a, b\n" +
	"\ttls : true\n" +
	"item : x\n" +
	"item : y\n" +
	"item : z\n"

func mustDoc(t *testing.T) *ir.Root {
	t.Helper()
	root, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestRun(t *testing.T) {
	root := mustDoc(t)
	tests := []struct {
		script string
		env    Env
		want   any
	}{
		{`get("server.port") + 1`, nil, 8081},
		{`get("server.port") > limit`, Env{"limit": 1024}, true},
		{`get("server")`, nil, "main"},
		{`get("server.hosts")`, nil, []any{"a", "b"}},
		{`get("missing")`, nil, nil},
		{`name("item[2]")`, nil, "item"},
		{`has("server.tls") && !has("server.cert")`, nil, true},
		{`count("", "item")`, nil, 3},
		{`count("server", "port")`, nil, 1},
		{`count("nowhere", "port")`, nil, 0},
		{`tag("env")`, nil, "prod"},
		{`tag("nope")`, nil, nil},
		{`get("item[1]") + "!"`, nil, "y!"},
	}
	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			got, err := Run(root, tt.script, tt.env)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Error(diff)
			}
		})
	}
}

func TestRunValue(t *testing.T) {
	root := mustDoc(t)
	got, err := RunValue(root, `[get("server.port"), "x", 1.5, nil]`, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromList(ir.FromInt(8080), ir.FromString("x"), ir.FromFloat(1.5), ir.Null())
	if !got.Equal(want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestRunErrors(t *testing.T) {
	root := mustDoc(t)
	tests := []struct {
		script string
		err    error
	}{
		{`get(`, ErrCompile},
		{`get("a[")`, ErrRun},
		{`get("server.port")`, ErrResult},
	}
	for _, tt := range tests {
		_, err := RunBool(root, tt.script, nil)
		if !errors.Is(err, tt.err) {
			t.Errorf("%s: got %v, want %v", tt.script, err, tt.err)
		}
	}
	if _, err := Run(nil, "1", nil); !errors.Is(err, ir.ErrNilNode) {
		t.Errorf("nil doc: got %v", err)
	}
}

func TestParseEnv(t *testing.T) {
	env, err := ParseEnv([]string{"n=3", "s=abc", "b=true"})
	if err != nil {
		t.Fatal(err)
	}
	for k, want := range map[string]ir.Value{
		"n": ir.FromInt(3),
		"s": ir.FromString("abc"),
		"b": ir.FromBool(true),
	} {
		got, err := FromAny(env[k])
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(want) {
			t.Errorf("%s: got %#v, want %#v", k, got, want)
		}
	}
	if _, err := ParseEnv([]string{"novalue"}); !errors.Is(err, ErrBinding) {
		t.Errorf("got %v", err)
	}
}

func TestSymbols(t *testing.T) {
	var names []string
	for _, s := range Symbols() {
		names = append(names, s.String())
	}
	want := []string{"count", "get", "getenv", "has", "name", "tag"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Error(diff)
	}
	if err := Register(Get()); !errors.Is(err, ErrSymbolExists) {
		t.Errorf("re-register: %v", err)
	}
}
