// Package random supplies the random draws used to build passwords.
//
// Generators implement Source. The helpers in this package (Roll, Word,
// Digit and Symbol) accept any Source so tests can replace the generator
// with a scripted sequence.
package random

import (
	crand "crypto/rand"
	"fmt"
	"math/rand/v2"
)

// Symbols is the set of characters symbol insertion draws from.
const Symbols = "~!@#$%^&*.:;"

// Source returns uniformly distributed integers in [0, bound).
type Source interface {
	IntN(bound int) int
}

// Engine is a Source backed by a math/rand/v2 generator.
type Engine struct {
	rng *rand.Rand
}

// NewSecure returns an Engine driven by ChaCha8 seeded from crypto/rand.
//
// Returns:
// *Engine - The seeded engine.
// error - Error if the system entropy source cannot be read.
func NewSecure() (*Engine, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}

	return &Engine{rng: rand.New(rand.NewChaCha8(seed))}, nil
}

// NewSeeded returns a reproducible Engine for the given seed.
func NewSeeded(seed uint64) *Engine {
	return &Engine{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntN returns a uniform value in [0, bound). It returns 0 when bound <= 0.
func (e *Engine) IntN(bound int) int {
	if bound <= 0 {
		return 0
	}

	return e.rng.IntN(bound)
}

// Roll reports true with probability chance/bound. Zero or negative bounds
// always report false, so callers never divide by an empty slot count.
//
// Args:
// src: Source - Random source to draw from.
// chance: int - Number of outcomes that report true.
// bound: int - Number of possible outcomes.
//
// Returns:
// bool - The rolled outcome.
func Roll(src Source, chance int, bound int) bool {
	if bound <= 0 {
		return false
	}

	return src.IntN(bound) < chance
}

// Word returns a uniformly chosen element of words, which must not be empty.
func Word(src Source, words []string) string {
	return words[src.IntN(len(words))]
}

// Digit returns a uniformly chosen decimal digit character.
func Digit(src Source) byte {
	return byte('0' + src.IntN(10))
}

// Symbol returns a uniformly chosen character of Symbols.
func Symbol(src Source) byte {
	return Symbols[src.IntN(len(Symbols))]
}
