// Package config resolves a puzzle configuration from layered sources:
// built-in defaults, then an optional TOML file, then RIVERCROSS_*
// environment variables. Command-line flags are applied by the caller.
//
// A file looks like:
//
//	missionaries  = 3
//	cannibals     = 3
//	boat_capacity = 2
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/rivercross/river"
)

// EnvPrefix namespaces the environment variables read by ParseEnv.
const EnvPrefix = "RIVERCROSS_"

// ErrUnknownKey is returned when a config file carries keys Config lacks.
var ErrUnknownKey = errors.New("config: unknown key")

// Load returns defaults overlaid with the file at path (skipped when empty)
// and the environment, validated.
func Load(path string) (river.Config, error) {
	cfg := river.DefaultConfig()
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return river.Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return river.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return river.Config{}, err
	}
	return cfg, nil
}

// LoadFile decodes the TOML file at path over cfg. Keys missing from the
// file keep their current value.
func LoadFile(path string, cfg *river.Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}
	return nil
}

// ParseEnv overlays RIVERCROSS_* environment variables on cfg.
// Unset variables leave fields untouched.
func ParseEnv(cfg *river.Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}
