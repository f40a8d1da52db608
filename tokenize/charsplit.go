package tokenize

import "github.com/corpusgen/pen/token"

// CharSplitStrategy makes every character its own token (spec §6,
// "Character split"). Characters are counted as runes, not bytes.
type CharSplitStrategy struct{}

// NewCharSplit returns a CharSplitStrategy.
func NewCharSplit() *CharSplitStrategy {
	return &CharSplitStrategy{}
}

// Shatter implements Strategy.
func (CharSplitStrategy) Shatter(line string) []token.Token {
	runes := []rune(line)
	out := make([]token.Token, len(runes))
	for i, r := range runes {
		out[i] = token.New(string(r))
	}
	return out
}
