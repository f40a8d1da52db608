package tokenize

import (
	"fmt"

	coregex "github.com/coregx/coregex"

	"github.com/corpusgen/pen/token"
)

// Extractor transforms a raw regex match into a token, returning
// token.Absent for a match that should become a null token (spec §6,
// "an optional extractor may transform each match into a token string
// or a null").
type Extractor func(match string) token.Token

// RegexMatchStrategy treats every match of a regular expression as a
// token (spec §6, "Regex match").
type RegexMatchStrategy struct {
	re        *coregex.Regex
	extractor Extractor
}

// NewRegexMatch compiles pattern and returns a RegexMatchStrategy. A
// nil extractor keeps each match verbatim.
func NewRegexMatch(pattern string, extractor Extractor) (*RegexMatchStrategy, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile regex match pattern %q: %w", pattern, err)
	}
	return &RegexMatchStrategy{re: re, extractor: extractor}, nil
}

// Shatter implements Strategy.
func (s *RegexMatchStrategy) Shatter(line string) []token.Token {
	matches := s.re.FindAllString(line, -1)
	out := make([]token.Token, len(matches))
	for i, m := range matches {
		if s.extractor != nil {
			out[i] = s.extractor(m)
		} else {
			out[i] = token.New(m)
		}
	}
	return out
}
