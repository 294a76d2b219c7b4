// Package game implements the hangman round: masking, guess handling and outcome tracking.
package game

import (
	"context"
	"errors"
)

// Blank marks a hidden mask position.
const Blank = '_'

// Defaults applied when a round config leaves a value unset.
const (
	DefaultMaxGuesses    = 7
	DefaultMaxVowelHints = 3
)

// ErrWordSourceUnavailable is returned when no valid secret word could be drawn.
var ErrWordSourceUnavailable = errors.New("word source unavailable")

// WordSource supplies one lowercase word from a language corpus.
type WordSource interface {
	Word(ctx context.Context) (string, error)
}

// WordSourceFunc adapts a function to WordSource.
type WordSourceFunc func(ctx context.Context) (string, error)

// Word implements WordSource.
func (f WordSourceFunc) Word(ctx context.Context) (string, error) {
	return f(ctx)
}

// Outcome is the state of a round.
type Outcome int

const (
	OutcomeIdle Outcome = iota
	OutcomeInProgress
	OutcomeWon
	OutcomeLost
)

// String returns the outcome label.
func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "idle"
	}
}

// Terminal reports whether the round is over.
func (o Outcome) Terminal() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Mask is the player-visible form of the secret word.
type Mask []rune

// String renders the mask.
func (m Mask) String() string {
	return string(m)
}

// Clone returns an independent copy.
func (m Mask) Clone() Mask {
	if m == nil {
		return nil
	}
	out := make(Mask, len(m))
	copy(out, m)
	return out
}

// Hidden counts blank positions.
func (m Mask) Hidden() int {
	n := 0
	for _, r := range m {
		if r == Blank {
			n++
		}
	}
	return n
}

// RoundConfig holds per-round tunables.
type RoundConfig struct {
	MaxGuesses    int
	MaxVowelHints int
}

func (c RoundConfig) withDefaults() RoundConfig {
	if c.MaxGuesses <= 0 {
		c.MaxGuesses = DefaultMaxGuesses
	}
	if c.MaxVowelHints < 0 {
		c.MaxVowelHints = DefaultMaxVowelHints
	}
	return c
}

// Round is a snapshot of one play-through.
type Round struct {
	ID         string
	Secret     string
	Mask       Mask
	Guesses    int
	MaxGuesses int
	Outcome    Outcome
}

// Clone returns a copy that shares no mutable state with r.
func (r Round) Clone() Round {
	r.Mask = r.Mask.Clone()
	return r
}

// Remaining returns how many wrong guesses are left.
func (r Round) Remaining() int {
	left := r.MaxGuesses - r.Guesses
	if left < 0 {
		return 0
	}
	return left
}
