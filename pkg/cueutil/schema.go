// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Schema is a compiled CUE definition that documents are unified with.
// A Schema is safe for concurrent use.
type Schema struct {
	mu         sync.Mutex
	ctx        *cue.Context
	root       cue.Value
	definition string
}

// CompileSchema compiles src and looks up definition (for example
// "#CommandFile") in it.
func CompileSchema(src []byte, definition string) (*Schema, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileBytes(src, cue.Filename("schema.cue"))
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	root := compiled.LookupPath(cue.ParsePath(definition))
	if err := root.Err(); err != nil {
		return nil, fmt.Errorf("schema definition %s not found: %w", definition, err)
	}

	return &Schema{ctx: ctx, root: root, definition: definition}, nil
}

// MustCompileSchema is like CompileSchema but panics on error. It is meant
// for package-level variables holding embedded schemas.
func MustCompileSchema(src []byte, definition string) *Schema {
	s, err := CompileSchema(src, definition)
	if err != nil {
		panic(err)
	}
	return s
}

// Definition returns the path of the definition documents are checked against.
func (s *Schema) Definition() string {
	return s.definition
}

// Decode compiles CUE source data, unifies it with the schema and decodes the
// result into a new T.
func Decode[T any](s *Schema, data []byte, opts ...Option) (*T, error) {
	o := newDecodeOptions(opts)
	if err := CheckFileSize(data, o.maxFileSize, o.filename); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.ctx.CompileBytes(data, cue.Filename(o.filename))
	if err := doc.Err(); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return decodeUnified[T](s.root.Unify(doc), o)
}

// DecodeValue encodes an already decoded Go value (typically the
// map[string]any produced by a TOML or YAML decoder) into CUE, unifies it with
// the schema and decodes the result into a new T. Defaults declared in the
// schema are applied on the way.
func DecodeValue[T any](s *Schema, v any, opts ...Option) (*T, error) {
	o := newDecodeOptions(opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.ctx.Encode(v)
	if err := doc.Err(); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return decodeUnified[T](s.root.Unify(doc), o)
}

func decodeUnified[T any](unified cue.Value, o decodeOptions) (*T, error) {
	if err := unified.Validate(cue.Concrete(o.concrete)); err != nil {
		return nil, FormatError(err, o.filename)
	}

	var out T
	if err := unified.Decode(&out); err != nil {
		return nil, FormatError(err, o.filename)
	}
	return &out, nil
}
