// Package generator provides the random source used for word and mask selection.
package generator

import (
	"math/rand"
	"time"
)

// Rand is the subset of *rand.Rand the game draws from.
type Rand interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

// Generator produces random picks.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Intn implements Rand.
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}

// Pick selects a word uniformly.
func Pick(rnd Rand, words []string) (string, bool) {
	if len(words) == 0 {
		return "", false
	}
	return words[rnd.Intn(len(words))], true
}

// Between returns a uniform value in [lo, hi].
func Between(rnd Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rnd.Intn(hi-lo+1)
}

// Sample returns k distinct indices from [0, n) in draw order, using a partial
// Fisher-Yates shuffle.
func Sample(rnd Rand, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
		out = append(out, pool[i])
	}
	return out
}
