package format

import (
	"errors"
	"fmt"
)

// Format is a surface syntax. TabFormat and CurlyFormat are TreeML syntaxes
// which can be parsed and encoded; JSONFormat and YAMLFormat are output only.
type Format int

const (
	TabFormat Format = iota
	CurlyFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":     TabFormat,
		"tab":   TabFormat,
		"tree":  TabFormat,
		"c":     CurlyFormat,
		"curly": CurlyFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TabFormat:
		return []byte("tab"), nil
	case CurlyFormat:
		return []byte("curly"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsTab() bool   { return f == TabFormat }
func (f Format) IsCurly() bool { return f == CurlyFormat }
func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsYAML() bool  { return f == YAMLFormat }

// IsTreeML reports whether f is one of the TreeML surface syntaxes.
func (f Format) IsTreeML() bool { return f == TabFormat || f == CurlyFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case TabFormat, CurlyFormat:
		return ".tree"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{TabFormat, CurlyFormat, JSONFormat, YAMLFormat}
}
