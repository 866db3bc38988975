// Package join implements the index-pairing algorithms behind the public
// join operations: dual-cursor merge joins, hash joins, and the as-of
// trailing-pointer scan.
//
// All functions operate on bare key slices and return index pairs into the
// two inputs. Every key slice is required to be strictly ascending; violating
// that precondition yields unspecified pairings, as documented on the public
// API.
package join

import "cmp"

// Pair links a left input index to a right input index. R is -1 when the
// left row has no counterpart.
type Pair struct {
	L, R int
}

// MergeInner pairs equal keys from two ascending key slices with a dual
// cursor, advancing the lesser side on mismatch. O(n+m).
func MergeInner[K cmp.Ordered](left, right []K) []Pair {
	out := make([]Pair, 0, min(len(left), len(right)))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		switch {
		case left[i] == right[j]:
			out = append(out, Pair{L: i, R: j})
			i++
			j++
		case left[i] < right[j]:
			i++
		default:
			j++
		}
	}

	return out
}

// MergeLeft pairs every left index, in order, with its equal-key right index
// or -1. O(n+m).
func MergeLeft[K cmp.Ordered](left, right []K) []Pair {
	out := make([]Pair, 0, len(left))
	i, j := 0, 0
	for i < len(left) {
		switch {
		case j >= len(right) || left[i] < right[j]:
			out = append(out, Pair{L: i, R: -1})
			i++
		case left[i] == right[j]:
			out = append(out, Pair{L: i, R: j})
			i++
			j++
		default:
			j++
		}
	}

	return out
}

// HashInner builds a key-to-index map over the smaller side and scans the
// other side in order. Output order matches MergeInner because matched keys
// ascend in both inputs.
func HashInner[K cmp.Ordered](left, right []K) []Pair {
	if len(right) <= len(left) {
		idx := indexMap(right)
		out := make([]Pair, 0, len(right))
		for i, k := range left {
			if j, ok := idx[k]; ok {
				out = append(out, Pair{L: i, R: j})
			}
		}

		return out
	}

	idx := indexMap(left)
	out := make([]Pair, 0, len(left))
	for j, k := range right {
		if i, ok := idx[k]; ok {
			out = append(out, Pair{L: i, R: j})
		}
	}

	return out
}

// HashLeft pairs every left index, in order, probing a map built over the
// right side.
func HashLeft[K cmp.Ordered](left, right []K) []Pair {
	idx := indexMap(right)
	out := make([]Pair, 0, len(left))
	for i, k := range left {
		if j, ok := idx[k]; ok {
			out = append(out, Pair{L: i, R: j})
		} else {
			out = append(out, Pair{L: i, R: -1})
		}
	}

	return out
}

// AsofPrior pairs each left index with the greatest right key <= the left
// key, or -1 when there is none or the candidate is rejected by within.
// A nil within accepts any candidate. Trailing pointer, amortized O(n+m).
func AsofPrior[K cmp.Ordered](left, right []K, within func(l, r K) bool) []Pair {
	out := make([]Pair, 0, len(left))
	j := -1
	for i, k := range left {
		for j+1 < len(right) && right[j+1] <= k {
			j++
		}
		if j >= 0 && (within == nil || within(k, right[j])) {
			out = append(out, Pair{L: i, R: j})
		} else {
			out = append(out, Pair{L: i, R: -1})
		}
	}

	return out
}

// AsofNext pairs each left index with the least right key >= the left key,
// subject to the same within handling as AsofPrior.
func AsofNext[K cmp.Ordered](left, right []K, within func(l, r K) bool) []Pair {
	out := make([]Pair, 0, len(left))
	j := 0
	for i, k := range left {
		for j < len(right) && right[j] < k {
			j++
		}
		if j < len(right) && (within == nil || within(k, right[j])) {
			out = append(out, Pair{L: i, R: j})
		} else {
			out = append(out, Pair{L: i, R: -1})
		}
	}

	return out
}

func indexMap[K cmp.Ordered](keys []K) map[K]int {
	idx := make(map[K]int, len(keys))
	for i, k := range keys {
		idx[k] = i
	}

	return idx
}
