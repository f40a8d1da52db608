package tokenize

import "github.com/corpusgen/pen/token"

// LineSplitStrategy makes each whole line a single token (spec §6,
// "Line split"). Line framing (line ends, empty lines) is still
// handled by Tokenizer, not here.
type LineSplitStrategy struct{}

// NewLineSplit returns a LineSplitStrategy.
func NewLineSplit() *LineSplitStrategy {
	return &LineSplitStrategy{}
}

// Shatter implements Strategy.
func (LineSplitStrategy) Shatter(line string) []token.Token {
	return []token.Token{token.New(line)}
}
