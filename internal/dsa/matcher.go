package dsa

import "github.com/corpusgen/pen/token"

// Match runs the three-phase binary search of spec §4.3 over rank
// (built by BuildSuffixRank) for sample, restricted to [low, high).
// It returns rankStart, the smallest rank index whose suffix begins
// with sample (or the insertion point preserving sorted order if no
// suffix does), and matchCount, the number of consecutive ranks whose
// suffix begins with sample.
//
// The empty sample matches every rank in [low, high): rankStart == low,
// matchCount == high - low.
func Match(comparer IndexComparator, rank []int, sample sampleView, low, high int) (rankStart, matchCount int) {
	n := len(rank)
	if low < 0 {
		low = 0
	}
	if high > n {
		high = n
	}
	if low > high {
		low = high
	}

	if sample.Len() == 0 {
		return low, high - low
	}

	lo, hi := low, high
	hit := -1
	for lo < hi {
		mid := lo + (hi-lo)/2
		sign := comparer.CompareSample(rank[mid], sample)
		switch {
		case sign < 0:
			lo = mid + 1
		case sign > 0:
			hi = mid
		default:
			hit = mid
			lo, hi = mid, mid
		}
	}

	if hit == -1 {
		// No match: lo is the insertion point.
		return lo, 0
	}

	start, end := hit, hit
	for start > low && comparer.CompareSample(rank[start-1], sample) == 0 {
		start--
	}
	for end < high && comparer.CompareSample(rank[end], sample) == 0 {
		end++
	}

	return start, end - start
}

// MatchToken is the single-token overload of Match (spec §4.4).
func MatchToken(comparer IndexComparator, rank []int, t token.Token, low, high int) (rankStart, matchCount int) {
	return Match(comparer, rank, token.Of(t), low, high)
}
