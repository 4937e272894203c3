// Package structs contains the model used by the application
package structs

import (
	"errors"
	"fmt"
)

// ErrNegativeCount is returned by Validate when a count is below zero.
var ErrNegativeCount = errors.New("count must not be negative")

// Config holds all configuration options for the xkcdpwgen application.
//
// Args:
// Words: int - Number of words in the password.
// Caps: int - Number of words whose first letter is capitalized.
// Numbers: int - Number of random digits inserted in the password.
// Symbols: int - Number of random symbols inserted in the password.
//
// Returns:
// Config - Configuration object for the application.
type Config struct {
	Words   int
	Caps    int
	Numbers int
	Symbols int
}

// DefaultConfig returns the configuration used when no flags are given.
//
// Returns:
// Config - Four words, no capitals, numbers or symbols.
func DefaultConfig() Config {
	return Config{Words: 4}
}

// Validate rejects configurations with negative counts.
//
// Returns:
// error - ErrNegativeCount naming the first offending field, or nil.
func (c Config) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"words", c.Words},
		{"caps", c.Caps},
		{"numbers", c.Numbers},
		{"symbols", c.Symbols},
	}

	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("invalid %s value %d: %w", f.name, f.value, ErrNegativeCount)
		}
	}

	return nil
}

// Budget is the number of capitals, numbers and symbols still to be
// inserted while a password is being built. It is derived from a Config
// and consumed by the generator; the Config itself is never modified.
type Budget struct {
	Caps    int
	Numbers int
	Symbols int
}

// NewBudget returns a fresh Budget holding the insertion counts of cfg.
func NewBudget(cfg Config) Budget {
	return Budget{
		Caps:    cfg.Caps,
		Numbers: cfg.Numbers,
		Symbols: cfg.Symbols,
	}
}
