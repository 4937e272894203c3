package structs

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings holds the options read from the environment rather than from
// command-line flags.
//
// Args:
// WordList: string - Path to a line-delimited word list. Empty selects the
// word list embedded in the binary.
type Settings struct {
	WordList string `env:"XKCDPWGEN_WORDLIST"`
}

// LoadSettings loads an optional .env file from the working directory and
// parses the environment into a Settings value.
//
// Returns:
// Settings - Parsed settings.
// error - Error if the .env file is unreadable or malformed, or if an
// environment value cannot be parsed.
func LoadSettings() (Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Settings{}, fmt.Errorf("load .env: %w", err)
	}

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	return s, nil
}
