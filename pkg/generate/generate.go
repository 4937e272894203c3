// Package generate builds XKCD-style passwords from a word list.
package generate

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/hashcracky/xkcdpwgen/pkg/random"
	"github.com/hashcracky/xkcdpwgen/pkg/structs"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrEmptyWordList is returned when words are requested from an empty list.
var ErrEmptyWordList = errors.New("word list is empty")

// Generate builds a password by concatenating cfg.Words random words with
// no separator, capitalizing and appending digits and symbols as the
// configured budgets allow.
//
// Args:
// cfg: structs.Config - Password configuration. It is not modified.
// words: []string - Word list to draw from.
// src: random.Source - Source of random draws.
//
// Returns:
// string - The generated password.
// error - ErrEmptyWordList if words is empty and cfg.Words > 0.
func Generate(cfg structs.Config, words []string, src random.Source) (string, error) {
	segments, err := Segments(cfg, words, src)
	if err != nil {
		return "", err
	}

	return strings.Join(segments, ""), nil
}

// Segments returns the words of a password, each with its capitalization,
// digits and symbols applied, in output order.
//
// Each insertion is decided by a weighted coin of remaining budget over
// remaining words, so the last word always receives whatever budget is
// left. A word is capitalized at most once; digits and symbols may repeat.
//
// Args:
// cfg: structs.Config - Password configuration. It is not modified.
// words: []string - Word list to draw from.
// src: random.Source - Source of random draws.
//
// Returns:
// []string - One segment per word. Empty when cfg.Words <= 0.
// error - ErrEmptyWordList if words is empty and cfg.Words > 0.
func Segments(cfg structs.Config, words []string, src random.Source) ([]string, error) {
	if cfg.Words <= 0 {
		return nil, nil
	}

	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}

	budget := structs.NewBudget(cfg)
	var segments []string

	for i := 0; i < cfg.Words; i++ {
		remaining := cfg.Words - i

		var segment strings.Builder
		word := random.Word(src, words)

		if canInsert(src, budget.Caps, remaining) {
			budget.Caps--
			word = capitalize(word)
		}

		segment.WriteString(word)

		for canInsert(src, budget.Numbers, remaining) {
			budget.Numbers--
			segment.WriteByte(random.Digit(src))
		}

		for canInsert(src, budget.Symbols, remaining) {
			budget.Symbols--
			segment.WriteByte(random.Symbol(src))
		}

		segments = append(segments, segment.String())
	}

	return segments, nil
}

// canInsert rolls whether one more item of a budget goes into the current
// word.
func canInsert(src random.Source, left int, remaining int) bool {
	return left > 0 && random.Roll(src, left, remaining)
}

// capitalize upper-cases the first rune of word and keeps the rest as is.
func capitalize(word string) string {
	if word == "" {
		return word
	}

	_, size := utf8.DecodeRuneInString(word)

	return cases.Upper(language.Und).String(word[:size]) + word[size:]
}
