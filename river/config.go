package river

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a Config cannot describe a puzzle.
var ErrInvalidConfig = errors.New("river: invalid config")

// Classic puzzle parameters.
const (
	DefaultMissionaries = 3
	DefaultCannibals    = 3
	DefaultBoatCapacity = 2
)

// Config sizes a puzzle instance. The struct tags let internal/config fill it
// from a TOML file and from RIVERCROSS_* environment variables.
type Config struct {
	// Missionaries initially on the start bank.
	Missionaries int `toml:"missionaries" env:"MISSIONARIES"`

	// Cannibals initially on the start bank.
	Cannibals int `toml:"cannibals" env:"CANNIBALS"`

	// BoatCapacity is the most people one crossing carries. The boat never
	// crosses empty.
	BoatCapacity int `toml:"boat_capacity" env:"BOAT_CAPACITY"`
}

// DefaultConfig returns the classic 3/3/2 instance.
func DefaultConfig() Config {
	return Config{
		Missionaries: DefaultMissionaries,
		Cannibals:    DefaultCannibals,
		BoatCapacity: DefaultBoatCapacity,
	}
}

// Validate reports the first field that makes c unusable. An instance whose
// start state is already unsafe is rejected as well.
func (c Config) Validate() error {
	switch {
	case c.Missionaries < 0:
		return fmt.Errorf("%w: missionaries cannot be negative (%d)", ErrInvalidConfig, c.Missionaries)
	case c.Cannibals < 0:
		return fmt.Errorf("%w: cannibals cannot be negative (%d)", ErrInvalidConfig, c.Cannibals)
	case c.BoatCapacity < 1:
		return fmt.Errorf("%w: boat capacity must be at least 1 (%d)", ErrInvalidConfig, c.BoatCapacity)
	case c.Missionaries > 0 && c.Missionaries < c.Cannibals:
		return fmt.Errorf("%w: %d cannibals outnumber %d missionaries on the start bank",
			ErrInvalidConfig, c.Cannibals, c.Missionaries)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("%dM/%dC boat=%d", c.Missionaries, c.Cannibals, c.BoatCapacity)
}
