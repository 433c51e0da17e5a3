package main

import (
	"fmt"
	"os"

	"github.com/agnes1/TreeML/ir"
	"github.com/agnes1/TreeML/parse"
)

// eachDoc parses every file in args, or stdin when args is empty, and calls
// f on each document.
func eachDoc(args []string, f func(name string, doc *ir.Root) error, opts ...parse.ParseOption) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(arg, opts...)
		if err != nil {
			return err
		}
		if err := f(arg, doc); err != nil {
			return err
		}
	}
	return nil
}

func readDoc(path string, opts ...parse.ParseOption) (*ir.Root, error) {
	if path == "-" {
		doc, err := parse.Parse(os.Stdin, opts...)
		if err != nil {
			return nil, fmt.Errorf("error parsing stdin: %w", err)
		}
		return doc, nil
	}
	return parse.ParseFile(path, opts...)
}
