package game

import (
	"unicode"

	"github.com/verte-zerg/hangtui/internal/generator"
)

// IsVowel reports whether r is one of a, e, i, o, u in either case.
func IsVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// InitialMask hides every consonant of secret and reveals between 1 and
// min(vowels, maxVowelHints) vowels, drawn from the first maxVowelHints vowel
// positions. A word without vowels is fully hidden.
func InitialMask(secret string, maxVowelHints int, rnd generator.Rand) Mask {
	runes := []rune(secret)
	mask := make(Mask, len(runes))
	vowels := make([]int, 0, len(runes))
	for i, r := range runes {
		mask[i] = Blank
		if IsVowel(r) {
			vowels = append(vowels, i)
		}
	}
	limit := min(len(vowels), maxVowelHints)
	if limit <= 0 {
		return mask
	}
	k := generator.Between(rnd, 1, limit)
	for _, idx := range generator.Sample(rnd, limit, k) {
		pos := vowels[idx]
		mask[pos] = runes[pos]
	}
	return mask
}
