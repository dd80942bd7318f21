// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects where configuration is read from. Empty fields fall
	// back to the standard lookup.
	LoadOptions struct {
		// ConfigFilePath is an explicit file, typically from --config. It must
		// exist.
		ConfigFilePath string
		// ConfigDirPath replaces ConfigDir().
		ConfigDirPath string
		// WorkDir is where a local config.cue is looked for.
		WorkDir string
	}

	// Provider is the configuration source the CLI depends on.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
	}

	// ProviderFunc adapts a function to Provider.
	ProviderFunc func(ctx context.Context, opts LoadOptions) (*Config, error)
)

// Load calls f.
func (f ProviderFunc) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	return f(ctx, opts)
}

// NewProvider returns the Provider backed by LoadWithSource.
func NewProvider() Provider {
	return ProviderFunc(func(ctx context.Context, opts LoadOptions) (*Config, error) {
		cfg, _, err := LoadWithSource(ctx, opts)
		return cfg, err
	})
}
