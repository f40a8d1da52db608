package tokenize

import (
	"fmt"

	coregex "github.com/coregx/coregex"

	"github.com/corpusgen/pen/token"
)

// RegexSplitStrategy splits a line on matches of a regular expression
// (spec §6, "Regex split"). The inclusive variant yields each separator
// as its own token; the exclusive variant drops it.
type RegexSplitStrategy struct {
	re        *coregex.Regex
	inclusive bool
}

// NewRegexSplit compiles pattern and returns a RegexSplitStrategy.
func NewRegexSplit(pattern string, inclusive bool) (*RegexSplitStrategy, error) {
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("compile regex split pattern %q: %w", pattern, err)
	}
	return &RegexSplitStrategy{re: re, inclusive: inclusive}, nil
}

// Shatter implements Strategy.
func (s *RegexSplitStrategy) Shatter(line string) []token.Token {
	var out []token.Token
	pos := 0
	for pos <= len(line) {
		loc := s.re.FindStringIndex(line[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		out = append(out, token.New(line[pos:start]))
		if s.inclusive {
			out = append(out, token.New(line[start:end]))
		}
		if end > pos {
			pos = end
		} else {
			pos++
		}
	}
	out = append(out, token.New(line[min(pos, len(line)):]))
	return out
}
