// Package config parses the engine's static configuration document. The host
// compiler owns where the bytes come from (files, embedded assets, env); this
// package only turns a YAML/JSON payload into a validated Config that the
// engine consumes once at construction time.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-accessor/pkg/shape"
)

// Config captures the tunable resolution behaviour. The zero value is the
// engine default: case-sensitive lookups, every shape enabled, standard
// truthiness exclusions.
type Config struct {
	// IgnoreCase makes key lookups case-insensitive by default for callers
	// using the engine's default case mode.
	IgnoreCase bool `json:"ignore_case" yaml:"ignore_case"`
	// DisabledShapes lists shape names (shape.Shape.String values) whose
	// strategy binding is removed from the registry.
	DisabledShapes []string `json:"disabled_shapes" yaml:"disabled_shapes"`
	// Truthiness tunes the section-truthiness exclusion list.
	Truthiness Truthiness `json:"truthiness" yaml:"truthiness"`
	// MemberCacheSize caps the shared member-table cache. Zero keeps the
	// builtin default.
	MemberCacheSize int `json:"member_cache_size" yaml:"member_cache_size"`
}

// Truthiness re-includes shapes the engine excludes from nonempty-container
// section semantics by default.
type Truthiness struct {
	KeepStrings bool `json:"keep_strings" yaml:"keep_strings"`
	KeepMaps    bool `json:"keep_maps" yaml:"keep_maps"`
}

// Parse decodes and validates a configuration document. YAML being a JSON
// superset, both serialisations are accepted.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the document against the closed shape vocabulary.
func (c Config) Validate() error {
	if c.MemberCacheSize < 0 {
		return fmt.Errorf("config: member_cache_size must not be negative, got %d", c.MemberCacheSize)
	}
	for _, name := range c.DisabledShapes {
		if _, ok := shape.Parse(name); !ok {
			return fmt.Errorf("config: unknown shape %q in disabled_shapes", name)
		}
	}
	return nil
}

// Disabled resolves DisabledShapes into shape values. Call Validate (or
// Parse) first; unknown names are silently skipped here.
func (c Config) Disabled() []shape.Shape {
	out := make([]shape.Shape, 0, len(c.DisabledShapes))
	for _, name := range c.DisabledShapes {
		if s, ok := shape.Parse(name); ok {
			out = append(out, s)
		}
	}
	return out
}
