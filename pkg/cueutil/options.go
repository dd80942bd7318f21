// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize is the largest document accepted unless WithMaxFileSize
// says otherwise (5MB).
const DefaultMaxFileSize int64 = 5 * 1024 * 1024

// defaultFilename labels documents decoded without WithFilename.
const defaultFilename = "<input>"

type (
	decodeOptions struct {
		maxFileSize int64
		concrete    bool
		filename    string
	}

	// Option configures a single decode.
	Option func(*decodeOptions)
)

func newDecodeOptions(opts []Option) decodeOptions {
	o := decodeOptions{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
		filename:    defaultFilename,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithMaxFileSize limits the size of CUE source accepted by Decode.
func WithMaxFileSize(size int64) Option {
	return func(o *decodeOptions) {
		o.maxFileSize = size
	}
}

// WithConcrete sets whether every field must be concrete after unification.
// Defaults to true. Configuration documents, where most fields are optional,
// turn it off.
func WithConcrete(concrete bool) Option {
	return func(o *decodeOptions) {
		o.concrete = concrete
	}
}

// WithFilename names the document in error messages.
func WithFilename(name string) Option {
	return func(o *decodeOptions) {
		if name != "" {
			o.filename = name
		}
	}
}
