// Package config holds the run configuration of the drainflow command.
//
// A configuration file is TOML:
//
//	[flow]
//	model = "mfd"      # d8, rho8, dinf or mfd
//	converge = 1.1     # MFD exponent
//	seed = 7           # Rho8 seed
//
//	[accumulation]
//	clamp_negative = true
//	loss = false
//	path_length = false
//
//	[basins]
//	channel_threshold = 250   # cells of D8 accumulation
//	subbasins = true
//	distance = false
//
// Keys left out keep the values of Default.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/drainflow/flowdir"
)

var (
	// ErrUnknownModel indicates a flow model name that is not recognised.
	ErrUnknownModel = errors.New("config: unknown flow model")
	// ErrBadValue indicates an out-of-range setting.
	ErrBadValue = errors.New("config: invalid value")
	// ErrUnknownKey indicates keys in the file that map to no setting.
	ErrUnknownKey = errors.New("config: unknown key")
)

// Flow configures direction routing.
type Flow struct {
	Model    string  `toml:"model"`
	Converge float64 `toml:"converge"`
	Seed     int64   `toml:"seed"`
}

// Accumulation configures flow accumulation.
type Accumulation struct {
	ClampNegative bool `toml:"clamp_negative"`
	Loss          bool `toml:"loss"`
	PathLength    bool `toml:"path_length"`
}

// Basins configures basin delineation.
type Basins struct {
	// ChannelThreshold is the D8 accumulation, in cells, from which a cell
	// is part of the channel network.
	ChannelThreshold float64 `toml:"channel_threshold"`
	Subbasins        bool    `toml:"subbasins"`
	Distance         bool    `toml:"distance"`
}

// Config is the complete run configuration.
type Config struct {
	Flow         Flow         `toml:"flow"`
	Accumulation Accumulation `toml:"accumulation"`
	Basins       Basins       `toml:"basins"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Flow:   Flow{Model: "d8", Converge: flowdir.DefaultConverge, Seed: 1},
		Basins: Basins{ChannelThreshold: 100},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return c, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, strings.Join(keys, ", "))
	}

	return c, c.Validate()
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, ok := flowdir.ParseModel(c.Flow.Model, c.Flow.Converge, c.Flow.Seed); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownModel, c.Flow.Model)
	}
	if !(c.Flow.Converge > 0) {
		return fmt.Errorf("%w: converge must be positive, got %v", ErrBadValue, c.Flow.Converge)
	}
	if !(c.Basins.ChannelThreshold >= 1) {
		return fmt.Errorf("%w: channel_threshold must be at least 1, got %v", ErrBadValue, c.Basins.ChannelThreshold)
	}

	return nil
}

// Model returns the flow model selected by c.
func (c Config) Model() flowdir.Model {
	m, ok := flowdir.ParseModel(c.Flow.Model, c.Flow.Converge, c.Flow.Seed)
	if !ok {
		return flowdir.D8{}
	}

	return m
}
