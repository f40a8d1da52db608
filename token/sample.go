package token

// Sample is a finite ordered sequence of tokens matched against
// contiguous windows of a corpus. The empty sample (length 0) is valid
// and is deemed to occur at every position.
type Sample []Token

// Len returns the number of tokens in the sample.
func (s Sample) Len() int {
	return len(s)
}

// At returns the token at index i.
func (s Sample) At(i int) Token {
	return s[i]
}

// Of builds a Sample from a single token, for the "single token"
// overloads of the query surface (spec §4.4).
func Of(t Token) Sample {
	return Sample{t}
}

// CyclicView represents a logical sample of length n backed by a
// fixed-capacity ring buffer: logical index k maps to
// buffer[(start+k) mod len(buffer)]. This lets the Renderer track the
// most-recent window without rotating memory on every step (spec §3,
// "Cyclic Sample View").
type CyclicView struct {
	buffer []Token
	start  int
	n      int // logical length, <= len(buffer)
}

// NewCyclicView returns a CyclicView over buffer starting at start, with
// logical length n. n must be <= len(buffer).
func NewCyclicView(buffer []Token, start, n int) CyclicView {
	return CyclicView{buffer: buffer, start: start, n: n}
}

// Len returns the logical length of the view.
func (c CyclicView) Len() int {
	return c.n
}

// At returns the logical element at index k, for 0 <= k < Len().
func (c CyclicView) At(k int) Token {
	if len(c.buffer) == 0 {
		return Absent
	}
	return c.buffer[(c.start+k)%len(c.buffer)]
}

// Sample materializes the cyclic view into a plain Sample. Used only
// off the hot path (e.g. for tests and diagnostics); the matcher reads
// through At directly.
func (c CyclicView) Sample() Sample {
	out := make(Sample, c.n)
	for k := 0; k < c.n; k++ {
		out[k] = c.At(k)
	}
	return out
}
