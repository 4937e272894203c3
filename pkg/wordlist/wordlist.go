// Package wordlist loads the dictionary words passwords are built from.
package wordlist

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"
)

//go:embed words.txt
var defaultWords string

// ErrUnavailable is returned when a word list file cannot be opened or read.
var ErrUnavailable = errors.New("word list unavailable")

// Read reads one word per line from r. Line terminators and surrounding
// whitespace are trimmed, empty lines are skipped and every word is
// normalized to NFC.
//
// Args:
// r: io.Reader - Source of line-delimited words.
//
// Returns:
// []string - Words in input order.
// error - Any error encountered while reading.
func Read(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)

	var words []string

	for {
		rawLine, readErr := reader.ReadBytes('\n')

		if len(rawLine) > 0 {
			word := strings.TrimSpace(string(rawLine))
			if word != "" {
				words = append(words, norm.NFC.String(word))
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}

			return nil, fmt.Errorf("error reading word list: %w", readErr)
		}
	}

	return words, nil
}

// Load reads the word list stored at path. The file is closed before Load
// returns.
//
// Args:
// path: string - Location of the word list file.
//
// Returns:
// []string - Words in file order.
// error - ErrUnavailable wrapping the cause if the file cannot be used.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, path, err)
	}

	return words, nil
}

// Default returns the word list embedded in the binary.
func Default() []string {
	words, _ := Read(strings.NewReader(defaultWords))
	return words
}
