package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MIMIC_CONFIG is set
//  3. env (prefix MIMIC_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MIMIC_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: MIMIC_THRESHOLD, MIMIC_TRACES_DIR, ...
	// Underscores are preserved to match the koanf tags on the struct.
	envProvider := env.Provider("MIMIC_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "mimic_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks the invariants a batch cannot start without.
func (c *Config) validate() error {
	if c.Threshold <= 0 {
		return fmt.Errorf("%w: threshold must be positive", ErrInvalidConfig)
	}
	if c.TracesDir == "" {
		return fmt.Errorf("%w: traces_dir must not be empty", ErrInvalidConfig)
	}
	if c.Mode == "double" && c.TracesDirB == "" {
		return fmt.Errorf("%w: double mode needs traces_dir_b", ErrInvalidConfig)
	}
	return nil
}
