package tokenize

import "github.com/corpusgen/pen/penerr"

// NewFromKind builds a Tokenizer for kind using pattern where the
// underlying Strategy needs one (RegexSplit treats pattern as the
// separator regex, RegexMatch as the regex each token must match, and
// SubstringSplit as a single literal separator). CharSplit, LineSplit, and
// RandomSplit ignore pattern entirely. This is the factory spec.md §6
// implies by naming Tokeniser kind and pattern as sibling config keys.
func NewFromKind(kind Kind, pattern string, opts ShatteringOptions) (*Tokenizer, error) {
	switch kind {
	case RegexSplit:
		strategy, err := NewRegexSplit(pattern, false)
		if err != nil {
			return nil, err
		}
		return New(kind, strategy, opts), nil
	case RegexMatch:
		strategy, err := NewRegexMatch(pattern, nil)
		if err != nil {
			return nil, err
		}
		return New(kind, strategy, opts), nil
	case SubstringSplit:
		return New(kind, NewSubstringSplit([]string{pattern}, true), opts), nil
	case CharSplit:
		return New(kind, NewCharSplit(), opts), nil
	case LineSplit:
		return New(kind, NewLineSplit(), opts), nil
	case RandomSplit:
		return New(kind, DefaultBernoulliRandomSplit(), opts), nil
	default:
		return nil, penerr.New(penerr.InvalidArgument, "unknown tokeniser kind: %s", kind)
	}
}
