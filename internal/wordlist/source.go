package wordlist

import (
	"context"
	"fmt"

	"github.com/verte-zerg/hangtui/internal/generator"
)

// Source draws secret words from an in-memory list.
type Source struct {
	words []string
	rnd   generator.Rand
}

// NewSource normalizes words for lang and returns a Source over them.
func NewSource(lang string, words []string, rnd generator.Rand) (*Source, error) {
	kept := Normalize(lang, words)
	if len(kept) == 0 {
		return nil, fmt.Errorf("no usable %s words in list", lang)
	}
	return &Source{words: kept, rnd: rnd}, nil
}

// Len returns the number of candidate words.
func (s *Source) Len() int {
	return len(s.words)
}

// Word returns a uniformly chosen word.
func (s *Source) Word(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	word, ok := generator.Pick(s.rnd, s.words)
	if !ok {
		return "", fmt.Errorf("word list is empty")
	}
	return word, nil
}
