// Package render implements the Renderer (spec §4.5): a lazy,
// resumable token generator that picks each next token by sampling
// uniformly among indexed matches of the current window.
package render

import (
	"github.com/corpusgen/pen/internal/dsa"
	"github.com/corpusgen/pen/penerr"
	"github.com/corpusgen/pen/token"
)

type state int

const (
	seeding state = iota
	streaming
	stopped
)

// Source is the minimal read-only view into a Pen an Iterator needs.
// Pen implements this; it is its own interface only so render has no
// import-cycle back onto pen.
type Source interface {
	Corpus() []token.Token
	Rank() []int
	Comparer() token.Comparer
	Sentinel() token.Token
}

// Iterator is a single-owner, cooperative pull iterator over generated
// tokens (spec §5: "single-threaded cooperative... one iterator
// instance is owned by one consumer at a time"). Its zero value is not
// usable; construct one with New. Abandon it by simply dropping the
// reference — no explicit cancellation call is required or provided.
type Iterator struct {
	corpus   []token.Token
	rank     []int
	comparer token.Comparer
	idxCmp   dsa.IndexComparator
	sentinel token.Token

	k            int
	picker       Picker
	fromPosition int
	hasFrom      bool

	st state
	n  int

	seedJ         int
	seedRemaining int

	window      []token.Token
	windowStart int
	windowLen   int

	cur token.Token
	err error
}

// Options configures a New Iterator.
type Options struct {
	// K is the window size conditioning the next pick. K >= 0.
	K int
	// Picker chooses uniformly among m candidates. Required.
	Picker Picker
	// FromPosition, if non-nil, seeds the iterator from a corpus
	// position in [0, N] instead of asking Picker to choose a start.
	FromPosition *int
}

// New constructs an Iterator over src with opts. Negative K or an
// out-of-range FromPosition are reported immediately as InvalidArgument
// errors (spec §4.5, §7); the iterator returned in that case yields
// nothing and Err() carries the error.
func New(src Source, opts Options) *Iterator {
	corpus := src.Corpus()
	n := len(corpus)

	it := &Iterator{
		corpus:   corpus,
		rank:     src.Rank(),
		comparer: src.Comparer(),
		idxCmp:   dsa.NewIndexComparator(corpus, src.Comparer()),
		sentinel: src.Sentinel(),
		k:        opts.K,
		picker:   opts.Picker,
		n:        n,
		st:       seeding,
	}

	if opts.K < 0 {
		it.fail(penerr.New(penerr.InvalidArgument, "window size k must be >= 0, got %d", opts.K))
		return it
	}
	if opts.Picker == nil {
		it.fail(penerr.New(penerr.InvalidArgument, "picker must not be nil"))
		return it
	}
	if opts.FromPosition != nil {
		p := *opts.FromPosition
		if p < 0 || p > n {
			it.fail(penerr.New(penerr.InvalidArgument, "fromPosition %d out of range [0, %d]", p, n))
			return it
		}
		it.hasFrom = true
		it.fromPosition = p
	}

	it.seedRemaining = maxInt(it.k, 1)
	if it.k > 0 {
		it.window = make([]token.Token, it.k)
	}

	return it
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Next advances the iterator and reports whether a token was produced.
// Once Next returns false, Err should be checked: a nil Err means the
// generator stopped normally (sentinel reached or past-end selected); a
// non-nil Err means Next stopped on an InvalidPick or InvalidArgument
// error (spec §7).
func (it *Iterator) Next() bool {
	if it.err != nil || it.st == stopped {
		return false
	}

	if it.st == seeding {
		return it.stepSeed()
	}
	return it.stepStream()
}

// Token returns the token produced by the most recent successful Next
// call. Its result is undefined before the first Next call or after
// Next returns false.
func (it *Iterator) Token() token.Token {
	return it.cur
}

// Err returns the error, if any, that stopped the iterator early.
func (it *Iterator) Err() error {
	return it.err
}

func (it *Iterator) fail(err error) {
	it.err = err
	it.st = stopped
}

func (it *Iterator) stop() {
	it.st = stopped
}

func (it *Iterator) sentinelHit(t token.Token) bool {
	return token.Equivalent(it.comparer, t, it.sentinel)
}

// stepSeed advances the Seeding state (spec §4.5).
func (it *Iterator) stepSeed() bool {
	if it.hasFrom {
		return it.stepSeedFrom()
	}
	return it.stepSeedPicked()
}

func (it *Iterator) stepSeedFrom() bool {
	if it.seedJ >= it.seedRemaining {
		it.st = streaming
		return it.stepStream()
	}
	j := it.seedJ
	it.seedJ++

	pos := it.fromPosition + j
	t := it.tokenAt(pos)
	if it.sentinelHit(t) {
		it.stop()
		return false
	}
	it.emit(t)
	if it.k > 0 {
		it.push(t)
	}
	if it.seedJ >= it.seedRemaining {
		it.st = streaming
	}
	return true
}

func (it *Iterator) stepSeedPicked() bool {
	p := it.picker(it.n + 1)
	if p < 0 || p > it.n {
		it.fail(penerr.New(penerr.InvalidPick, "picker returned %d, want [0, %d]", p, it.n))
		return false
	}

	first := it.n
	if p < it.n {
		first = it.rank[p]
	}
	t := it.tokenAt(first)
	if it.sentinelHit(t) {
		it.stop()
		return false
	}
	it.emit(t)
	if it.k > 0 {
		it.push(t)
	}
	it.st = streaming
	return true
}

// stepStream advances the Streaming state (spec §4.5).
func (it *Iterator) stepStream() bool {
	var matchStart, matchCount, windowDepth int

	if it.k == 0 {
		matchStart, matchCount, windowDepth = 0, it.n+1, 0
	} else {
		view := token.NewCyclicView(it.window, it.windowStart, it.windowLen)
		matchStart, matchCount = dsa.Match(it.idxCmp, it.rank, view, 0, it.n)
		windowDepth = it.windowLen
	}

	pick := it.picker(matchCount)
	upper := matchCount
	if upper == 0 {
		upper = 1
	}
	if pick < 0 || pick >= upper {
		it.fail(penerr.New(penerr.InvalidPick, "picker returned %d, want [0, %d)", pick, upper))
		return false
	}

	nextPos := it.n
	if matchStart+pick < it.n {
		nextPos = it.rank[matchStart+pick] + windowDepth
	}

	t := it.tokenAt(nextPos)
	if it.sentinelHit(t) {
		it.stop()
		return false
	}

	it.emit(t)
	if it.k > 0 {
		it.push(t)
	}
	return true
}

func (it *Iterator) tokenAt(pos int) token.Token {
	if pos < it.n {
		return it.corpus[pos]
	}
	return it.sentinel
}

func (it *Iterator) emit(t token.Token) {
	it.cur = t
}

func (it *Iterator) push(t token.Token) {
	k := it.k
	if it.windowLen < k {
		it.window[it.windowLen] = t
		it.windowLen++
		return
	}
	it.window[it.windowStart] = t
	it.windowStart = (it.windowStart + 1) % k
}

// Collect drains it into a slice of up to max tokens. max < 0 means
// unbounded (drain until Stopped). It is a convenience for callers that
// don't need incremental consumption; the CLI driver uses it with a
// configured MaxTokens bound.
func Collect(it *Iterator, max int) ([]token.Token, error) {
	var out []token.Token
	for (max < 0 || len(out) < max) && it.Next() {
		out = append(out, it.Token())
	}
	if err := it.Err(); err != nil {
		return out, err
	}
	return out, nil
}
