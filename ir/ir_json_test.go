package ir

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

func TestRootJSON(t *testing.T) {
	root := sampleRoot(t)
	root.AddTag("result::ok")
	root.Children[1].Value = FromList(FromInstant("2016-06-26"), FromDuration("PT1H"), FromFloat(1))
	d, err := json.Marshal(root)
	if err != nil {
		t.Fatal(err)
	}
	back := &Root{}
	if err := json.Unmarshal(d, back); err != nil {
		t.Fatal(err)
	}
	if !EqualTrees(&root.Node, &back.Node) {
		t.Errorf("json round trip differs:\n%s\n%s", root.Dump(), back.Dump())
	}
	if diff := cmp.Diff(root.Tags, back.Tags); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
	if back.Children[0].Children[0].Parent != back.Children[0] {
		t.Error("parent links not restored")
	}
}
