package tokenize

import (
	"math/rand"
	"sync"
	"time"

	"github.com/corpusgen/pen/token"
)

// Predicate decides, for a line of length n currently at position i
// (in [0, n]), whether breakpoint prompt j (starting at 0 for every
// new i) is a breakpoint (spec §6, "Random split").
type Predicate func(n, i, j int) bool

// RandomSplitStrategy shatters a line by repeatedly prompting a
// Predicate for each position.
type RandomSplitStrategy struct {
	predicate Predicate
}

// NewRandomSplit returns a RandomSplitStrategy driven by predicate.
func NewRandomSplit(predicate Predicate) *RandomSplitStrategy {
	return &RandomSplitStrategy{predicate: predicate}
}

// NewBernoulliRandomSplit returns the uniform Bernoulli(p) variant:
// each prompt is an independent breakpoint with probability p,
// regardless of n, i, or j.
func NewBernoulliRandomSplit(p float64) *RandomSplitStrategy {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var mu sync.Mutex
	return NewRandomSplit(func(n, i, j int) bool {
		mu.Lock()
		defer mu.Unlock()
		return rng.Float64() < p
	})
}

// DefaultBernoulliRandomSplit returns NewBernoulliRandomSplit(0.5),
// the spec's default.
func DefaultBernoulliRandomSplit() *RandomSplitStrategy {
	return NewBernoulliRandomSplit(0.5)
}

// Shatter implements Strategy.
func (s *RandomSplitStrategy) Shatter(line string) []token.Token {
	runes := []rune(line)
	n := len(runes)

	var out []token.Token
	var current []rune
	i, j := 0, 0

	for {
		for s.predicate(n, i, j) {
			out = append(out, token.New(string(current)))
			current = current[:0]
			j++
		}
		if i == n {
			break
		}
		current = append(current, runes[i])
		i++
		j = 0
	}

	out = append(out, token.New(string(current)))
	return out
}
