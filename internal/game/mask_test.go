package game

import (
	"testing"

	"github.com/verte-zerg/hangtui/internal/generator"
)

type fixedRand struct {
	values []int
	calls  int
}

func (f *fixedRand) Intn(n int) int {
	v := 0
	if f.calls < len(f.values) {
		v = f.values[f.calls]
	}
	f.calls++
	if v >= n {
		v = n - 1
	}
	return v
}

func TestInitialMaskNoVowels(t *testing.T) {
	mask := InitialMask("rhythm", DefaultMaxVowelHints, generator.NewSeeded(1))
	if mask.String() != "______" {
		t.Fatalf("expected fully hidden mask, got %q", mask.String())
	}
}

func TestInitialMaskZeroCapHidesEverything(t *testing.T) {
	mask := InitialMask("house", 0, generator.NewSeeded(1))
	if mask.String() != "_____" {
		t.Fatalf("expected fully hidden mask, got %q", mask.String())
	}
}

func TestInitialMaskRevealBounds(t *testing.T) {
	words := []string{"a", "cat", "house", "education", "onomatopoeia", "queueing", "strengths", "AEIOU"}
	for _, word := range words {
		vowels := 0
		for _, r := range word {
			if IsVowel(r) {
				vowels++
			}
		}
		limit := min(vowels, DefaultMaxVowelHints)
		for seed := int64(0); seed < 50; seed++ {
			mask := InitialMask(word, DefaultMaxVowelHints, generator.NewSeeded(seed))
			runes := []rune(word)
			if len(mask) != len(runes) {
				t.Fatalf("%s: mask length %d, want %d", word, len(mask), len(runes))
			}
			revealed := 0
			for i, r := range mask {
				if r == Blank {
					continue
				}
				if r != runes[i] {
					t.Fatalf("%s: position %d shows %q, want %q", word, i, r, runes[i])
				}
				if !IsVowel(r) {
					t.Fatalf("%s: consonant %q revealed at %d", word, r, i)
				}
				revealed++
			}
			if limit == 0 {
				if revealed != 0 {
					t.Fatalf("%s: expected no reveals, got %d", word, revealed)
				}
				continue
			}
			if revealed < 1 || revealed > limit {
				t.Fatalf("%s (seed %d): revealed %d vowels, want 1..%d", word, seed, revealed, limit)
			}
		}
	}
}

func TestInitialMaskOnlyFirstVowelsAreCandidates(t *testing.T) {
	// k = 1 + 2, then sample picks candidate indices 0, 1, 2.
	rnd := &fixedRand{values: []int{2, 0, 0, 0}}
	mask := InitialMask("onomatopoeia", 3, rnd)
	if mask.String() != "o_o_a_______" {
		t.Fatalf("unexpected mask %q", mask.String())
	}
}

func TestInitialMaskSingleHint(t *testing.T) {
	// k = 1, sample picks the second candidate.
	rnd := &fixedRand{values: []int{0, 1}}
	mask := InitialMask("house", 3, rnd)
	if mask.String() != "__u__" {
		t.Fatalf("unexpected mask %q", mask.String())
	}
}

func TestIsVowel(t *testing.T) {
	for _, r := range "aeiouAEIOU" {
		if !IsVowel(r) {
			t.Fatalf("expected %q to be a vowel", r)
		}
	}
	for _, r := range "bcyzY_1" {
		if IsVowel(r) {
			t.Fatalf("expected %q not to be a vowel", r)
		}
	}
}
