package tokenize

import (
	"fmt"
	"strings"
)

// Kind identifies a tokeniser splitting strategy (spec §6, "Tokeniser
// interface"). The zero value is RegexSplit.
type Kind int

const (
	RegexSplit Kind = iota
	RegexMatch
	SubstringSplit
	CharSplit
	LineSplit
	RandomSplit
)

func (k Kind) String() string {
	switch k {
	case RegexSplit:
		return "regex_split"
	case RegexMatch:
		return "regex_match"
	case SubstringSplit:
		return "substring_split"
	case CharSplit:
		return "char_split"
	case LineSplit:
		return "line_split"
	case RandomSplit:
		return "random_split"
	default:
		return "unknown"
	}
}

// ParseKind parses a tokeniser kind from its string form, case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "regex_split", "regexsplit":
		return RegexSplit, nil
	case "regex_match", "regexmatch":
		return RegexMatch, nil
	case "substring_split", "substringsplit":
		return SubstringSplit, nil
	case "char_split", "charsplit":
		return CharSplit, nil
	case "line_split", "linesplit":
		return LineSplit, nil
	case "random_split", "randomsplit":
		return RandomSplit, nil
	default:
		return 0, fmt.Errorf("unknown tokeniser kind: %s", s)
	}
}
