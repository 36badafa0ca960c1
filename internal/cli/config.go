package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/hillclimb/search"
	"github.com/katalvlaran/hillclimb/terrain"
)

// ErrConfig wraps every configuration problem.
var ErrConfig = errors.New("hillclimb: invalid configuration")

// Config is the on-disk configuration, normally hillclimb.toml:
//
//	strategy = "heap"      # or "queue"
//	trail_elevation = 0    # elevation the trail command searches for
//	verbose = false
//
//	[render]
//	color = true
type Config struct {
	Strategy       string       `toml:"strategy"`
	TrailElevation int          `toml:"trail_elevation"`
	Verbose        bool         `toml:"verbose"`
	Render         RenderConfig `toml:"render"`
}

// RenderConfig holds output styling settings.
type RenderConfig struct {
	Color bool `toml:"color"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Strategy:       search.Heap.String(),
		TrailElevation: terrain.MinElevation,
		Render:         RenderConfig{Color: true},
	}
}

// LoadConfig reads path over DefaultConfig and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrConfig, path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := search.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if c.TrailElevation < terrain.MinElevation || c.TrailElevation > terrain.MaxElevation {
		return fmt.Errorf("%w: trail_elevation %d outside %d..%d",
			ErrConfig, c.TrailElevation, terrain.MinElevation, terrain.MaxElevation)
	}
	return nil
}

// SearchStrategy returns the parsed strategy; call Validate first.
func (c Config) SearchStrategy() search.Strategy {
	s, _ := search.ParseStrategy(c.Strategy)
	return s
}
