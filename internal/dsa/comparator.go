// Package dsa provides the suffix-ranking and sample-matching machinery
// that underlies the Pen: an index comparator over suffix starting
// positions, a suffix-rank construction, and a three-phase binary
// search for locating cyclic samples within the rank.
//
// Adapted from a prefix-doubling suffix array over byte strings into a
// suffix sort over token sequences ordered by a pluggable comparer.
package dsa

import "github.com/corpusgen/pen/token"

// IndexComparator compares two suffix starting positions x, y in a
// corpus c of length n under comparer. It is a strict weak order over
// positions that agrees with, but is finer than, suffix-equality: equal
// positions always compare equal, even when comparer would otherwise
// be unable to tell two distinct positions with identical suffixes
// apart.
//
// Must not allocate and must not block (spec §4.1).
type IndexComparator struct {
	corpus   []token.Token
	comparer token.Comparer
}

// NewIndexComparator builds a comparator over corpus using comparer.
func NewIndexComparator(corpus []token.Token, comparer token.Comparer) IndexComparator {
	return IndexComparator{corpus: corpus, comparer: comparer}
}

// Compare returns the sign of suffix(x) - suffix(y).
func (c IndexComparator) Compare(x, y int) int {
	if x == y {
		return 0
	}
	n := len(c.corpus)
	for d := 0; ; d++ {
		xi, yi := x+d, y+d
		xDone := xi >= n
		yDone := yi >= n
		if xDone && yDone {
			return 0
		}
		if xDone {
			return -1
		}
		if yDone {
			return 1
		}
		if sign := c.comparer(c.corpus[xi], c.corpus[yi]); sign != 0 {
			return sign
		}
	}
}

// CompareSample compares the suffix starting at corpus position x
// against sample, for d = 0..sample.Len(). Returns negative if the
// suffix is smaller, positive if larger, zero if the suffix begins
// with sample (or the sample is exhausted with all elements equal).
// If the suffix runs out before the sample is exhausted, the suffix is
// smaller (spec §4.3, "CompareRange").
func (c IndexComparator) CompareSample(x int, sample sampleView) int {
	n := len(c.corpus)
	for d := 0; d < sample.Len(); d++ {
		xi := x + d
		if xi >= n {
			return -1
		}
		if sign := c.comparer(c.corpus[xi], sample.At(d)); sign != 0 {
			return sign
		}
	}
	return 0
}

// sampleView is the minimal read interface the matcher needs from a
// sample — satisfied by both token.Sample and token.CyclicView.
type sampleView interface {
	Len() int
	At(int) token.Token
}
