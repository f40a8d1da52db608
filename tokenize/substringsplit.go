package tokenize

import "github.com/corpusgen/pen/token"

// SubstringSplitStrategy splits a line on any of a finite set of
// literal separators (spec §6, "Substring split").
type SubstringSplitStrategy struct {
	separators []string
	dropEmpty  bool
}

// NewSubstringSplit returns a SubstringSplitStrategy over separators.
// dropEmpty, when true, drops empty tokens produced by adjacent
// separators or a separator at a line boundary.
func NewSubstringSplit(separators []string, dropEmpty bool) *SubstringSplitStrategy {
	filtered := make([]string, 0, len(separators))
	for _, sep := range separators {
		if sep != "" {
			filtered = append(filtered, sep)
		}
	}
	return &SubstringSplitStrategy{separators: filtered, dropEmpty: dropEmpty}
}

// Shatter implements Strategy.
func (s *SubstringSplitStrategy) Shatter(line string) []token.Token {
	if len(s.separators) == 0 {
		return []token.Token{token.New(line)}
	}

	var out []token.Token
	start := 0
	for i := 0; i < len(line); {
		sepLen := s.matchAt(line, i)
		if sepLen == 0 {
			i++
			continue
		}
		s.emit(&out, line[start:i])
		i += sepLen
		start = i
	}
	s.emit(&out, line[start:])
	return out
}

func (s *SubstringSplitStrategy) matchAt(line string, i int) int {
	for _, sep := range s.separators {
		if len(line)-i >= len(sep) && line[i:i+len(sep)] == sep {
			return len(sep)
		}
	}
	return 0
}

func (s *SubstringSplitStrategy) emit(out *[]token.Token, piece string) {
	if s.dropEmpty && piece == "" {
		return
	}
	*out = append(*out, token.New(piece))
}
