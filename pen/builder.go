package pen

import (
	"github.com/corpusgen/pen/internal/dsa"
	"github.com/corpusgen/pen/penerr"
	"github.com/corpusgen/pen/token"
)

// Builder provides fluent configuration for constructing a Pen from a
// raw token sequence (spec §4.6, first constructor). Usage:
//
//	p, err := pen.NewBuilder(tokens).Relation(token.Ordinal).Intern(true).Build()
type Builder struct {
	tokens   []token.Token
	relation token.Relation
	comparer token.Comparer
	sentinel token.Token
	intern   bool
}

// NewBuilder creates a builder over tokens, defaulting to the Ordinal
// relation and the absent sentinel.
func NewBuilder(tokens []token.Token) *Builder {
	return &Builder{
		tokens:   tokens,
		relation: token.Ordinal,
		sentinel: token.Absent,
	}
}

// Relation sets the built-in comparison relation to use. Mutually
// exclusive with Comparer; the last call wins.
func (b *Builder) Relation(r token.Relation) *Builder {
	b.relation = r
	b.comparer = nil
	return b
}

// Comparer sets an opaque user-supplied comparer, overriding Relation
// (spec §9, "Comparer polymorphism").
func (b *Builder) Comparer(c token.Comparer) *Builder {
	b.comparer = c
	return b
}

// Sentinel sets the stop token. Any token equivalent to it under the
// active comparer is a stop token (spec §3).
func (b *Builder) Sentinel(t token.Token) *Builder {
	b.sentinel = t
	return b
}

// Intern enables or disables string deduplication during construction.
func (b *Builder) Intern(enabled bool) *Builder {
	b.intern = enabled
	return b
}

// Build deep-copies the token sequence into owned storage, optionally
// interns it, and constructs the suffix rank (spec §3, §4.2).
func (b *Builder) Build() (*Pen, error) {
	comparer := b.comparer
	if comparer == nil {
		comparer = b.relation.Comparer()
	}
	if comparer == nil {
		return nil, penerr.New(penerr.InvalidArgument, "no comparer configured")
	}

	context := make([]token.Token, len(b.tokens))
	copy(context, b.tokens)
	if b.intern {
		context = internTokens(context)
	}

	rank := dsa.BuildSuffixRank(context, comparer)

	return &Pen{
		interned: b.intern,
		comparer: comparer,
		sentinel: b.sentinel,
		context:  context,
		rank:     rank,
		idxCmp:   dsa.NewIndexComparator(context, comparer),
	}, nil
}

// WithIntern returns a copy of p with its intern flag set to intern
// (spec §4.6, second constructor). The context and the suffix rank are
// always copied, never shared with p; when intern is true and p was not
// interned, the copied strings are also deduplicated. The suffix rank
// does not change: interning only replaces string backing storage,
// never token order.
func WithIntern(p *Pen, intern bool) *Pen {
	if intern == p.interned {
		context := make([]token.Token, len(p.context))
		copy(context, p.context)
		rank := make([]int, len(p.rank))
		copy(rank, p.rank)
		return &Pen{
			interned: p.interned,
			comparer: p.comparer,
			sentinel: p.sentinel,
			context:  context,
			rank:     rank,
			idxCmp:   dsa.NewIndexComparator(context, p.comparer),
		}
	}

	var context []token.Token
	if intern {
		context = internTokens(p.context)
	} else {
		context = make([]token.Token, len(p.context))
		copy(context, p.context)
	}
	rank := make([]int, len(p.rank))
	copy(rank, p.rank)

	return &Pen{
		interned: intern,
		comparer: p.comparer,
		sentinel: p.sentinel,
		context:  context,
		rank:     rank,
		idxCmp:   dsa.NewIndexComparator(context, p.comparer),
	}
}

// FromTrusted constructs a Pen directly from externally supplied,
// pre-validated fields — used by serialisation collaborators (spec
// §4.6, third constructor). No integrity checks are performed: callers
// must trust the envelope. Use envelope.Decode to validate shape before
// calling this.
func FromTrusted(interned bool, comparer token.Comparer, rank []int, context []token.Token, sentinel token.Token) *Pen {
	return &Pen{
		interned: interned,
		comparer: comparer,
		sentinel: sentinel,
		context:  context,
		rank:     rank,
		idxCmp:   dsa.NewIndexComparator(context, comparer),
	}
}
