package pen

import (
	"github.com/armon/go-radix"

	"github.com/corpusgen/pen/token"
)

// internPool deduplicates token strings during construction (spec §9,
// "Interning"): a local radix tree of canonical strings stands in for
// process-wide string interning, so repeated construction of Pens from
// overlapping corpora doesn't pay for a global intern pool's lifetime
// and so canonicalisation exploits the shared prefixes that naturally
// occur across natural-language tokens.
type internPool struct {
	tree *radix.Tree
}

func newInternPool() *internPool {
	return &internPool{tree: radix.New()}
}

// canonical returns the pool's shared instance of s, inserting s as its
// own canonical instance the first time it is seen.
func (p *internPool) canonical(s string) string {
	if v, ok := p.tree.Get(s); ok {
		return v.(string)
	}
	p.tree.Insert(s, s)
	return s
}

// internTokens returns a copy of tokens with every present string
// replaced by the pool's canonical instance.
func internTokens(tokens []token.Token) []token.Token {
	pool := newInternPool()
	out := make([]token.Token, len(tokens))
	for i, t := range tokens {
		if v, ok := t.Value(); ok {
			out[i] = token.New(pool.canonical(v))
		} else {
			out[i] = token.Absent
		}
	}
	return out
}
