package dsa

import (
	"sort"

	"github.com/corpusgen/pen/token"
)

// BuildSuffixRank constructs the Suffix Rank R for corpus under
// comparer (spec §4.2): a permutation of 0..N-1 such that for all
// i < j, the suffix at corpus[R[i]:] is <= the suffix at corpus[R[j]:].
//
// Any suffix-sort algorithm is a valid implementation (spec allows an
// O(N*N*L) baseline); this one generalizes prefix doubling from byte
// strings to token sequences under an arbitrary comparer: tokens are
// first ranked by comparer to obtain the alphabet order prefix doubling
// needs, then ranks are refined by doubling comparison windows until
// every suffix has a unique rank or the window covers the whole corpus.
// Time complexity: O(N log^2 N) comparisons.
func BuildSuffixRank(corpus []token.Token, comparer token.Comparer) []int {
	n := len(corpus)
	sa := make([]int, n)
	if n == 0 {
		return sa
	}
	if n == 1 {
		sa[0] = 0
		return sa
	}

	rank := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	symbolRank(corpus, comparer, rank)

	tmpRank := make([]int, n)
	for k := 1; k < n; k *= 2 {
		key := func(i int) (int, int) {
			r := rank[i]
			r2 := -1
			if i+k < n {
				r2 = rank[i+k]
			}
			return r, r2
		}
		sort.Slice(sa, func(i, j int) bool {
			ra, ra2 := key(sa[i])
			rb, rb2 := key(sa[j])
			if ra != rb {
				return ra < rb
			}
			return ra2 < rb2
		})

		tmpRank[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmpRank[sa[i]] = tmpRank[sa[i-1]]
			pa, pa2 := key(sa[i-1])
			ca, ca2 := key(sa[i])
			if pa != ca || pa2 != ca2 {
				tmpRank[sa[i]]++
			}
		}
		copy(rank, tmpRank)

		if rank[sa[n-1]] == n-1 {
			break
		}
	}

	return sa
}

// symbolRank assigns each corpus position an initial rank consistent
// with comparer's total order over single tokens: the absent token
// (and any token equivalent to it) ranks lowest, and distinct token
// values rank in comparer order, with comparer-equivalent values
// sharing a rank.
func symbolRank(corpus []token.Token, comparer token.Comparer, rank []int) {
	order := make([]int, len(corpus))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return comparer(corpus[order[i]], corpus[order[j]]) < 0
	})

	r := 0
	for i, pos := range order {
		if i > 0 && comparer(corpus[order[i-1]], corpus[pos]) != 0 {
			r++
		}
		rank[pos] = r
	}
}
