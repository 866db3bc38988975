package series

import (
	"cmp"
	"iter"
	"slices"
)

// Map applies f to every value, preserving keys and order 1:1.
func Map[K cmp.Ordered, V, V2 any](s Series[K, V], f func(V) V2) Series[K, V2] {
	values := make([]V2, len(s.values))
	for i, v := range s.values {
		values[i] = f(v)
	}

	return Series[K, V2]{keys: slices.Clone(s.keys), values: values}
}

// MapWithKey applies f to every point, preserving keys and order 1:1. Use it
// when the mapped value depends on the key as well.
func MapWithKey[K cmp.Ordered, V, V2 any](s Series[K, V], f func(K, V) V2) Series[K, V2] {
	values := make([]V2, len(s.values))
	for i, v := range s.values {
		values[i] = f(s.keys[i], v)
	}

	return Series[K, V2]{keys: slices.Clone(s.keys), values: values}
}

// Shift pairs each key with the value offset positions later. A positive
// offset leads (the value at i+offset lands on the key at i), a negative
// offset lags. Positions without a source value are dropped, so the sequence
// is |offset| points shorter than the input.
//
// The sequence is lazy and single-pass; materialize it with Collect or
// CollectUnchecked. Key order is preserved, so the unchecked path is safe.
func (s Series[K, V]) Shift(offset int) iter.Seq[Point[K, V]] {
	return func(yield func(Point[K, V]) bool) {
		n := len(s.keys)
		start := max(0, -offset)
		end := min(n, n-offset)
		for i := start; i < end; i++ {
			if !yield(Point[K, V]{Key: s.keys[i], Value: s.values[i+offset]}) {
				return
			}
		}
	}
}

// SkipApply emits (keys[i], f(values[i-n], values[i])) for every position
// i >= n; the first n positions produce no output. This is the building
// block for difference and percent-change style operators:
//
//	diff := series.SkipApply(s, 1, func(prior, curr float64) float64 {
//	    return curr - prior
//	})
//
// The sequence is lazy and preserves key order. A negative n yields nothing.
func SkipApply[K cmp.Ordered, V, V2 any](s Series[K, V], n int, f func(prior, curr V) V2) iter.Seq[Point[K, V2]] {
	return func(yield func(Point[K, V2]) bool) {
		if n < 0 {
			return
		}
		for i := n; i < len(s.keys); i++ {
			if !yield(Point[K, V2]{Key: s.keys[i], Value: f(s.values[i-n], s.values[i])}) {
				return
			}
		}
	}
}
