// Package treeml ties the TreeML packages together.
//
// It parses and validates documents in one step, and runs conformance
// cases: documents whose tags state what parsing them should produce.
//
//	#result::ok
//	#structure::1:1;2:2;
//	#eval::a.b(1)='y'
//	a : 1
//		b : x, y
//
// The sub packages do the work: parse reads documents into ir trees,
// schema validates them, query and eval evaluate expressions against them,
// and encode writes them back out.
package treeml

import (
	"fmt"
	"io"
	"os"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/parse"
	"github.com/agnes1/TreeML/schema"
)

// ParseAndValidate parses a document from r and validates it against s. A
// nil schema accepts every document. When validation fails the parsed
// document is returned along with a *schema.ValidationError.
func ParseAndValidate(r io.Reader, s *schema.Schema, opts ...parse.ParseOption) (*ir.Root, error) {
	root, err := parse.Parse(r, opts...)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return root, nil
	}
	return root, s.Validate(root)
}

// ParseFileAndValidate is ParseAndValidate on a file.
func ParseFileAndValidate(path string, s *schema.Schema, opts ...parse.ParseOption) (*ir.Root, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := ParseAndValidate(f, s, opts...)
	if err != nil {
		return root, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// LoadSchema parses and compiles the schema document at path.
func LoadSchema(path string) (*schema.Schema, error) {
	root, err := parse.ParseFile(path)
	if err != nil {
		return nil, err
	}
	s, err := schema.Compile(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
