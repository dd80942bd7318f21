// SPDX-License-Identifier: MPL-2.0

// Package cueutil validates and decodes documents against an embedded CUE
// schema definition.
//
// A Schema is compiled once and reused. Documents can be CUE source, or Go
// values produced by another decoder (TOML, Viper settings) which are encoded
// into CUE before unification, so every format shares one set of constraints:
//
//	//go:embed commandfile_schema.cue
//	var schemaSource []byte
//
//	var schema = cueutil.MustCompileSchema(schemaSource, "#CommandFile")
//
//	file, err := cueutil.Decode[File](schema, data, cueutil.WithFilename(path))
//	if err != nil {
//	    return nil, err // *cueutil.DecodeError with JSON-style field paths
//	}
package cueutil
