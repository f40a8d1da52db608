package render

import (
	"testing"

	"github.com/corpusgen/pen/internal/dsa"
	"github.com/corpusgen/pen/token"
)

type fakeSource struct {
	corpus   []token.Token
	rank     []int
	comparer token.Comparer
	sentinel token.Token
}

func newFakeSource(words []string, sentinel token.Token) *fakeSource {
	corpus := make([]token.Token, len(words))
	for i, w := range words {
		corpus[i] = token.New(w)
	}
	comparer := token.Ordinal.Comparer()
	return &fakeSource{
		corpus:   corpus,
		rank:     dsa.BuildSuffixRank(corpus, comparer),
		comparer: comparer,
		sentinel: sentinel,
	}
}

func (s *fakeSource) Corpus() []token.Token    { return s.corpus }
func (s *fakeSource) Rank() []int              { return s.rank }
func (s *fakeSource) Comparer() token.Comparer { return s.comparer }
func (s *fakeSource) Sentinel() token.Token    { return s.sentinel }

func constPicker(v int) Picker {
	return func(m int) int { return v }
}

func TestNewRejectsNegativeK(t *testing.T) {
	src := newFakeSource([]string{"a"}, token.Absent)
	it := New(src, Options{K: -1, Picker: constPicker(0)})
	if it.Next() {
		t.Fatal("expected Next to return false for invalid K")
	}
	if it.Err() == nil {
		t.Fatal("expected an error for negative K")
	}
}

func TestNewRejectsNilPicker(t *testing.T) {
	src := newFakeSource([]string{"a"}, token.Absent)
	it := New(src, Options{K: 0, Picker: nil})
	if it.Next() {
		t.Fatal("expected Next to return false for nil picker")
	}
	if it.Err() == nil {
		t.Fatal("expected an error for nil picker")
	}
}

func TestNewRejectsOutOfRangeFromPosition(t *testing.T) {
	src := newFakeSource([]string{"a", "b"}, token.Absent)
	bad := 99
	it := New(src, Options{K: 1, Picker: constPicker(0), FromPosition: &bad})
	if it.Next() {
		t.Fatal("expected Next to return false for out-of-range fromPosition")
	}
	if it.Err() == nil {
		t.Fatal("expected an error for out-of-range fromPosition")
	}
}

func TestIteratorStopsOnEmptyCorpus(t *testing.T) {
	src := newFakeSource(nil, token.Absent)
	it := New(src, Options{K: 2, Picker: constPicker(0)})
	toks, err := Collect(it, -1)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(toks) != 0 {
		t.Errorf("expected no tokens from an empty corpus, got %v", toks)
	}
}

func TestIteratorSeedsFromExplicitPosition(t *testing.T) {
	src := newFakeSource([]string{"x", "y", "z"}, token.Absent)
	from := 1
	it := New(src, Options{K: 1, Picker: constPicker(0), FromPosition: &from})

	if !it.Next() {
		t.Fatalf("expected a seeded token, err=%v", it.Err())
	}
	if got := it.Token().String(); got != "y" {
		t.Errorf("seeded token = %q, want %q", got, "y")
	}
}

func TestIteratorStopsAtSentinel(t *testing.T) {
	src := newFakeSource([]string{"a", "STOP", "b"}, token.New("STOP"))
	from := 0
	it := New(src, Options{K: 1, Picker: constPicker(0), FromPosition: &from})

	var out []string
	for it.Next() {
		out = append(out, it.Token().String())
	}
	if err := it.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0] != "a" {
		t.Errorf("got %v, want [a]", out)
	}
}

func TestIteratorFailsOnOutOfRangePick(t *testing.T) {
	src := newFakeSource([]string{"a", "b"}, token.Absent)
	from := 0
	// A picker returning an out-of-bounds index must surface InvalidPick,
	// not panic or silently clamp.
	it := New(src, Options{K: 1, Picker: constPicker(1000), FromPosition: &from})

	it.Next() // seed step, consumes fromPosition
	if it.Next() {
		t.Fatal("expected streaming step to fail on an out-of-range pick")
	}
	if it.Err() == nil {
		t.Fatal("expected InvalidPick error")
	}
}

func TestCollectRespectsMax(t *testing.T) {
	src := newFakeSource([]string{"a", "b", "a", "b", "a", "b"}, token.Absent)
	from := 0
	it := New(src, Options{K: 1, Picker: constPicker(0), FromPosition: &from})

	toks, err := Collect(it, 2)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(toks) != 2 {
		t.Errorf("Collect(max=2) returned %d tokens, want 2", len(toks))
	}
}

func TestTwoIteratorsWithSameSeedAgree(t *testing.T) {
	src := newFakeSource([]string{"a", "b", "c", "a", "b", "d", "a", "b", "c"}, token.Absent)
	from := 0

	it1 := New(src, Options{K: 2, Picker: NewSeededPicker(7), FromPosition: &from})
	it2 := New(src, Options{K: 2, Picker: NewSeededPicker(7), FromPosition: &from})

	out1, err1 := Collect(it1, 10)
	out2, err2 := Collect(it2, 10)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if len(out1) != len(out2) {
		t.Fatalf("lengths differ: %d vs %d", len(out1), len(out2))
	}
	for i := range out1 {
		if out1[i].String() != out2[i].String() {
			t.Fatalf("diverged at %d: %q vs %q", i, out1[i].String(), out2[i].String())
		}
	}
}
