package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/agnes1/TreeML/format"
	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/token"
)

type EncState struct {
	depth  int
	indent string
	tags   bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: "\t"}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes the document root to w.
func Encode(root *ir.Root, w io.Writer, opts ...EncodeOption) error {
	es := newState(opts)
	switch es.format {
	case format.JSONFormat:
		if err := checkFinite(&root.Node); err != nil {
			return err
		}
		return encodeJSON(w, documentData(root, es.tags))
	case format.YAMLFormat:
		return encodeYAML(w, documentYAML(root, es.tags))
	case format.TabFormat, format.CurlyFormat:
	default:
		return fmt.Errorf("%w: unknown format %d", ErrEncoding, es.format)
	}
	if es.tags {
		for _, tag := range root.Tags {
			if strings.ContainsRune(tag, '\n') {
				return fmt.Errorf("%w: tag %q spans lines", ErrEncoding, tag)
			}
			if err := writeString(w, es.color(ir.NullType, TagColor, "#"+tag)+"\n"); err != nil {
				return err
			}
		}
	}
	curly := es.format.IsCurly() && len(root.Children) != 0
	if curly {
		if err := writeString(w, es.color(ir.NullType, BraceColor, "{")+"\n"); err != nil {
			return err
		}
	}
	for _, c := range root.Children {
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	if curly {
		return writeString(w, es.color(ir.NullType, BraceColor, "}")+"\n")
	}
	return nil
}

// EncodeNode writes n and its descendants to w with n at depth 0. In a
// TreeML format the output is a document whose only top level node is n.
func EncodeNode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	root := ir.NewRoot()
	root.Children = []*ir.Node{n}
	es := newState(opts)
	switch es.format {
	case format.JSONFormat:
		if err := checkFinite(n); err != nil {
			return err
		}
		return encodeJSON(w, nodeData(n))
	case format.YAMLFormat:
		return encodeYAML(w, nodeYAML(n))
	}
	return Encode(root, w, append(opts, EncodeTags(false))...)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	if !token.IsName(n.Name) {
		return fmt.Errorf("%w: %q (line %d)", ErrBadName, n.Name, n.Line)
	}
	v, err := es.value(n.Value)
	if err != nil {
		return fmt.Errorf("%w: %s (line %d)", err, n.Name, n.Line)
	}
	ind := es.indentation()
	line := ind + es.color(n.Value.Type, NameColor, n.Name) + " " + es.color(n.Value.Type, SepColor, ":") + " " + v
	if !es.format.IsCurly() || len(n.Children) == 0 {
		if err := writeString(w, line+"\n"); err != nil {
			return err
		}
		es.depth++
		defer func() { es.depth-- }()
		for _, c := range n.Children {
			if err := encode(c, w, es); err != nil {
				return err
			}
		}
		return nil
	}
	brace := es.color(n.Value.Type, BraceColor, "{")
	if opensOwnLine(n.Value) {
		line += "\n" + ind + brace + "\n"
	} else {
		line += " " + brace + "\n"
	}
	if err := writeString(w, line); err != nil {
		return err
	}
	es.depth++
	for _, c := range n.Children {
		if err := encode(c, w, es); err != nil {
			es.depth--
			return err
		}
	}
	es.depth--
	return writeString(w, ind+es.color(n.Value.Type, BraceColor, "}")+"\n")
}

// opensOwnLine reports whether a child block after v must start on its own
// line: a brace right after a trailing list comma would read as a null list
// element.
func opensOwnLine(v ir.Value) bool {
	return v.Type == ir.ListType && len(flatten(v.List, nil)) < 2
}

func (es *EncState) indentation() string {
	if es.format.IsCurly() {
		return strings.Repeat(es.indent, es.depth)
	}
	return strings.Repeat("\t", es.depth)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) value(v ir.Value) (string, error) {
	if v.Type != ir.ListType {
		s, err := scalar(v)
		if err != nil {
			return "", err
		}
		return es.color(v.Type, ValueColor, s), nil
	}
	items := flatten(v.List, nil)
	sep := es.color(ir.ListType, SepColor, ",")
	parts := make([]string, len(items))
	for i, x := range items {
		s, err := es.value(x)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	switch len(parts) {
	case 0:
		return sep, nil
	case 1:
		return parts[0] + sep, nil
	}
	return strings.Join(parts, sep+" "), nil
}

// flatten inlines nested lists, which have no TreeML syntax.
func flatten(vs []ir.Value, dst []ir.Value) []ir.Value {
	for _, v := range vs {
		if v.Type == ir.ListType {
			dst = flatten(v.List, dst)
			continue
		}
		dst = append(dst, v)
	}
	return dst
}

func scalar(v ir.Value) (string, error) {
	switch v.Type {
	case ir.NullType:
		return "null", nil
	case ir.BoolType:
		return strconv.FormatBool(v.Bool), nil
	case ir.IntType:
		return strconv.FormatInt(v.Int, 10), nil
	case ir.FloatType:
		return formatFloat(v.Float)
	case ir.StringType:
		if token.NeedsQuote(v.String) {
			return token.Quote(v.String), nil
		}
		return v.String, nil
	case ir.InstantType, ir.DurationType:
		for _, c := range v.String {
			if !token.IsTimeChar(c) {
				return "", fmt.Errorf("%w: %q is not a time literal", ErrEncoding, v.String)
			}
		}
		return "@" + v.String, nil
	}
	return "", fmt.Errorf("%w: unknown value type %s", ErrEncoding, v.Type)
}

// formatFloat writes very small and very large magnitudes in positional
// notation, and always includes a decimal point.
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v has no literal", ErrEncoding, f)
	}
	var s string
	if a := math.Abs(f); a < 0.001 || a > 999999 {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
