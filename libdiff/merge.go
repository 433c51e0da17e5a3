package libdiff

import (
	"bytes"
	"fmt"

	"github.com/agnes1/TreeML/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-json"
)

// Diff returns the merge patch which turns the flattened form of from into
// that of to, or nil if they are equal.
func Diff(from, to *ir.Root) ([]byte, error) {
	a, err := FlatJSON(from)
	if err != nil {
		return nil, fmt.Errorf("error encoding from: %w", err)
	}
	b, err := FlatJSON(to)
	if err != nil {
		return nil, fmt.Errorf("error encoding to: %w", err)
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(patch, []byte("{}")) {
		return nil, nil
	}
	return patch, nil
}

// Apply applies a merge patch to the flattened form of root.
func Apply(root *ir.Root, patch []byte) (map[string]any, error) {
	a, err := FlatJSON(root)
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.MergePatch(a, patch)
	if err != nil {
		return nil, err
	}
	res := map[string]any{}
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// Reverse returns the patch undoing Diff(from, to).
func Reverse(from, to *ir.Root) ([]byte, error) {
	return Diff(to, from)
}

// ApplyOps applies an RFC 6902 JSON patch to the flattened form of root.
func ApplyOps(root *ir.Root, ops []byte) (map[string]any, error) {
	patch, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("error decoding json patch: %w", err)
	}
	a, err := FlatJSON(root)
	if err != nil {
		return nil, err
	}
	d, err := patch.Apply(a)
	if err != nil {
		return nil, err
	}
	res := map[string]any{}
	if err := json.Unmarshal(d, &res); err != nil {
		return nil, err
	}
	return res, nil
}
