// Package pen provides the Pen (spec §4.6): an immutable, query-only
// index over a finite token vector, combining the suffix rank, the
// query surface (positions/first/last/count), and the Renderer.
package pen

import (
	"github.com/corpusgen/pen/internal/dsa"
	"github.com/corpusgen/pen/render"
	"github.com/corpusgen/pen/token"
)

// Pen is immutable after construction and safe to share across
// concurrent readers (spec §5): no method on Pen mutates shared state.
type Pen struct {
	interned bool
	comparer token.Comparer
	sentinel token.Token
	context  []token.Token
	rank     []int

	idxCmp dsa.IndexComparator
}

// Corpus, Rank, Comparer, and Sentinel implement render.Source so a Pen
// can hand itself to a render.Iterator without render importing pen.
func (p *Pen) Corpus() []token.Token    { return p.context }
func (p *Pen) Rank() []int              { return p.rank }
func (p *Pen) Comparer() token.Comparer { return p.comparer }
func (p *Pen) Sentinel() token.Token    { return p.sentinel }

// Len returns N, the number of tokens in the corpus.
func (p *Pen) Len() int {
	return len(p.context)
}

// Interned reports whether the Pen deduplicated token strings at
// construction.
func (p *Pen) Interned() bool {
	return p.interned
}

// Token returns the token at corpus position i.
func (p *Pen) Token(i int) token.Token {
	return p.context[i]
}

// PositionsOf runs the Sample Matcher and collects every matching
// position, unordered, in a freshly allocated slice (spec §4.4). An
// empty sample matches every corpus position 0, ..., N-1; the past-end
// position N is not included, so an empty corpus yields no positions.
func (p *Pen) PositionsOf(sample token.Sample) []int {
	start, count := dsa.Match(p.idxCmp, p.rank, sample, 0, len(p.rank))
	out := make([]int, 0, count)
	for t := 0; t < count; t++ {
		out = append(out, p.rank[start+t])
	}
	return out
}

// PositionsOfToken is the single-token overload of PositionsOf.
func (p *Pen) PositionsOfToken(t token.Token) []int {
	return p.PositionsOf(token.Of(t))
}

// FirstPositionOf returns the minimum matching position, or N (not a
// sentinel "not found" value, so the result is directly usable as the
// Renderer's seed position) when the sample does not occur.
func (p *Pen) FirstPositionOf(sample token.Sample) int {
	start, count := dsa.Match(p.idxCmp, p.rank, sample, 0, len(p.rank))
	if count == 0 {
		return p.Len()
	}
	min := p.rank[start]
	for t := 1; t < count; t++ {
		if v := p.rank[start+t]; v < min {
			min = v
		}
	}
	return min
}

// FirstPositionOfToken is the single-token overload of FirstPositionOf.
func (p *Pen) FirstPositionOfToken(t token.Token) int {
	return p.FirstPositionOf(token.Of(t))
}

// LastPositionOf is symmetric to FirstPositionOf, returning the maximum
// matching position, or N when there is none.
func (p *Pen) LastPositionOf(sample token.Sample) int {
	start, count := dsa.Match(p.idxCmp, p.rank, sample, 0, len(p.rank))
	if count == 0 {
		return p.Len()
	}
	max := p.rank[start]
	for t := 1; t < count; t++ {
		if v := p.rank[start+t]; v > max {
			max = v
		}
	}
	return max
}

// LastPositionOfToken is the single-token overload of LastPositionOf.
func (p *Pen) LastPositionOfToken(t token.Token) int {
	return p.LastPositionOf(token.Of(t))
}

// Count returns matchCount without materialising the position set.
func (p *Pen) Count(sample token.Sample) int {
	_, count := dsa.Match(p.idxCmp, p.rank, sample, 0, len(p.rank))
	return count
}

// CountToken is the single-token overload of Count.
func (p *Pen) CountToken(t token.Token) int {
	return p.Count(token.Of(t))
}

// Render returns a lazy Iterator generating tokens with window size k,
// driven by picker, optionally seeded from fromPosition (spec §4.5).
func (p *Pen) Render(k int, picker render.Picker, fromPosition *int) *render.Iterator {
	return render.New(p, render.Options{K: k, Picker: picker, FromPosition: fromPosition})
}
