package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeGuess trims and lowercases raw player input.
func NormalizeGuess(raw string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

// ApplyGuess interprets raw against the round and returns the updated round.
// The input round is never modified. Empty guesses and guesses against a
// round that is not in progress return r unchanged.
func ApplyGuess(r Round, raw string) Round {
	if r.Outcome != OutcomeInProgress {
		return r
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return r
	}

	next := r.Clone()
	secret := []rune(next.Secret)
	guess := NormalizeGuess(trimmed)
	switch {
	case utf8.RuneCountInString(trimmed) == 1:
		// One typed rune is always a letter guess, even if its lowercase
		// form spans several runes.
		ch, _ := utf8.DecodeRuneInString(trimmed)
		if reveal(next.Mask, secret, unicode.ToLower(ch)) == 0 {
			next.Guesses++
		}
	case guess == next.Secret:
		next.Mask = Mask(secret)
	default:
		matched := false
		seen := map[rune]struct{}{}
		for _, ch := range guess {
			if _, ok := seen[ch]; ok {
				continue
			}
			seen[ch] = struct{}{}
			if reveal(next.Mask, secret, ch) > 0 {
				matched = true
			}
		}
		// A wrong word costs one guess only when it shares no letter with the secret.
		if !matched {
			next.Guesses++
		}
	}

	next.Outcome = outcomeOf(next)
	return next
}

// reveal uncovers every position of ch and returns how many positions hold ch,
// including ones that were already visible.
func reveal(mask Mask, secret []rune, ch rune) int {
	hits := 0
	for i, r := range secret {
		if r != ch {
			continue
		}
		mask[i] = r
		hits++
	}
	return hits
}

func outcomeOf(r Round) Outcome {
	if string(r.Mask) == r.Secret {
		return OutcomeWon
	}
	if r.Guesses >= r.MaxGuesses {
		return OutcomeLost
	}
	return OutcomeInProgress
}
