package series

import (
	"cmp"
	"iter"
)

// Rolling computes f over a sliding window of the last window values and
// emits the result keyed by the window's newest point. The first output
// appears once the window fills, at position window-1, so the sequence has
// len-window+1 points.
//
// The buffer passed to f holds the window oldest to newest. It is reused
// between steps; f must not retain it. Each step recomputes f over the full
// buffer, O(window) per step; use RollingUpdate when the aggregation has a
// cheap inverse.
//
// A window below 1, or larger than the input, yields nothing.
func Rolling[K cmp.Ordered, V, V2 any](s Series[K, V], window int, f func(buf []V) V2) iter.Seq[Point[K, V2]] {
	return func(yield func(Point[K, V2]) bool) {
		if window < 1 || window > len(s.keys) {
			return
		}

		buf := make([]V, window)
		for i := window - 1; i < len(s.keys); i++ {
			copy(buf, s.values[i-window+1:i+1])
			if !yield(Point[K, V2]{Key: s.keys[i], Value: f(buf)}) {
				return
			}
		}
	}
}

// RollingUpdate is the incremental variant of Rolling: instead of a buffer
// it keeps one accumulator, folding the incoming value in with add and,
// once the window has filled, folding the leaving value out with remove.
// O(1) per step. Output positions match Rolling exactly.
//
// The accumulator starts from A's zero value. Correctness requires add and
// remove to form a true inverse pair for the target aggregation (running
// sum, count, and the like); the engine does not verify this.
func RollingUpdate[K cmp.Ordered, V, A any](s Series[K, V], window int, add func(acc A, v V) A, remove func(acc A, v V) A) iter.Seq[Point[K, A]] {
	return func(yield func(Point[K, A]) bool) {
		if window < 1 {
			return
		}

		var acc A
		for i := range s.values {
			acc = add(acc, s.values[i])
			if i >= window {
				acc = remove(acc, s.values[i-window])
			}
			if i >= window-1 {
				if !yield(Point[K, A]{Key: s.keys[i], Value: acc}) {
					return
				}
			}
		}
	}
}
