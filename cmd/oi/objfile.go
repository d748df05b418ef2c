package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// readDocs reads a YAML/JSON file ("-" for stdin) and decodes each
// "---" separated document into a generic value.
func readDocs(cc *cli.Context, file string) ([]any, error) {
	var r io.Reader
	if file == "-" {
		r = cc.In
	} else {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	docs := bytes.Split(in, []byte("\n---\n"))
	vals := make([]any, 0, len(docs))
	for i, doc := range docs {
		var v any
		if err := yaml.Unmarshal(doc, &v); err != nil {
			return nil, fmt.Errorf("error decoding document %d of %s: %w", i, file, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func docTitle(file string, i, n int) string {
	base := filepath.Base(file)
	if file == "-" {
		base = "stdin"
	}
	if n > 1 {
		return fmt.Sprintf("%s[%d]", base, i)
	}
	return base
}
