package eval

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseBinding parses "key=value". The value is decoded as YAML, so
// "n=3" binds an integer and "s=abc" a string.
func ParseBinding(s string) (string, any, error) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return "", nil, fmt.Errorf("%w: %q is not key=value", ErrBinding, s)
	}
	var res any
	if err := yaml.Unmarshal([]byte(v), &res); err != nil {
		return "", nil, fmt.Errorf("%w: %s: %w", ErrBinding, k, err)
	}
	return k, res, nil
}

// ParseEnv builds an Env from "key=value" bindings.
func ParseEnv(bindings []string) (Env, error) {
	env := Env{}
	for _, b := range bindings {
		k, v, err := ParseBinding(b)
		if err != nil {
			return nil, err
		}
		env[k] = v
	}
	return env, nil
}
