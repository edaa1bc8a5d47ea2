package config

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	lenserr "github.com/arthur-debert/monolens/pkg/errors"
	"github.com/arthur-debert/monolens/pkg/types"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the user-configurable surface of monolens.
type Config struct {
	Dependencies DependenciesConfig `koanf:"dependencies"`
	Discovery    DiscoveryConfig    `koanf:"discovery"`
}

// DependenciesConfig holds the three dependency-class toggles.
type DependenciesConfig struct {
	Production  bool `koanf:"production"`
	Development bool `koanf:"development"`
	Optional    bool `koanf:"optional"`
}

// DiscoveryConfig holds discovery tuning.
type DiscoveryConfig struct {
	// Exclude lists extra directory patterns merged with DefaultExcludes
	Exclude []string `koanf:"exclude"`
}

// ClassFilter converts the dependency toggles to the resolver's filter
func (c *Config) ClassFilter() types.ClassFilter {
	return types.ClassFilter{
		Production:  c.Dependencies.Production,
		Development: c.Dependencies.Development,
		Optional:    c.Dependencies.Optional,
	}
}

// DefaultExcludes are the directory patterns discovery always skips:
// dependency installs, version-control metadata, and build output.
func DefaultExcludes() []string {
	return []string{
		"node_modules",
		".git",
		"dist",
		"build",
		"out",
		"coverage",
		".turbo",
		".next",
	}
}

// Excludes merges the built-in exclude set with the configured extras
func (c *Config) Excludes() []string {
	merged := DefaultExcludes()
	for _, pattern := range c.Discovery.Exclude {
		if pattern != "" {
			merged = append(merged, pattern)
		}
	}
	return merged
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the configuration for the given workspace root.
// Layering: embedded defaults, then .monolens.toml (or monolens.toml)
// at the root if present, then MONOLENS_* environment variables.
func Load(root string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, lenserr.Wrap(err, lenserr.ErrConfigLoad, "failed to load default config")
	}

	// 2. Root config if it exists
	for _, filename := range []string{".monolens.toml", "monolens.toml"} {
		path := filepath.Join(root, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, lenserr.Wrap(err, lenserr.ErrConfigParse, "failed to load root config").
					WithDetail("path", path)
			}
			break
		}
	}

	// 3. Environment variables: MONOLENS_DEPENDENCIES_OPTIONAL=false
	// maps to dependencies.optional.
	err := k.Load(env.Provider("MONOLENS_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "MONOLENS_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, lenserr.Wrap(err, lenserr.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, lenserr.Wrap(err, lenserr.ErrConfigInvalid, "failed to unmarshal configuration")
	}

	return &cfg, nil
}
