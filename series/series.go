package series

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/tickline/tickline/errs"
)

// Series is an immutable ordered sequence of points with strictly ascending
// unique keys. The zero value is an empty, usable Series.
//
// Storage is columnar: keys and values live in two parallel slices that are
// never shared with callers or with transform outputs. Series values are
// cheap to copy; copies share the same immutable backing arrays.
type Series[K cmp.Ordered, V any] struct {
	keys   []K
	values []V
}

// New builds a Series by pairing two equal-length slices positionally.
//
// Only the lengths are checked; ordering is the caller's responsibility, as
// with the unchecked constructors. Pair with Validate, or use FromPoints,
// when the key order is not already guaranteed. The input slices are copied.
//
// Returns errs.ErrLengthMismatch when the lengths differ.
func New[K cmp.Ordered, V any](keys []K, values []V) (Series[K, V], error) {
	if len(keys) != len(values) {
		return Series[K, V]{}, fmt.Errorf("%w: %d keys, %d values", errs.ErrLengthMismatch, len(keys), len(values))
	}

	return Series[K, V]{keys: slices.Clone(keys), values: slices.Clone(values)}, nil
}

// FromPoints builds a Series from points that must already be in strictly
// ascending key order.
//
// Returns errs.ErrUnorderedInput or errs.ErrDuplicateKey describing the
// first violation.
func FromPoints[K cmp.Ordered, V any](points []Point[K, V]) (Series[K, V], error) {
	keys, values := split(points)
	s := Series[K, V]{keys: keys, values: values}
	if err := s.Validate(); err != nil {
		return Series[K, V]{}, err
	}

	return s, nil
}

// FromPointsUnchecked builds a Series from points without validation. The
// caller contract is "already sorted, already unique"; violations surface as
// incorrect results downstream, not as runtime faults.
func FromPointsUnchecked[K cmp.Ordered, V any](points []Point[K, V]) Series[K, V] {
	keys, values := split(points)
	return Series[K, V]{keys: keys, values: values}
}

// Collect materializes a point sequence into a Series, sorting by key and
// rejecting duplicates. This is the checked boundary for lazy transforms and
// for producers with no ordering guarantee.
//
// Returns errs.ErrDuplicateKey when two points share a key.
func Collect[K cmp.Ordered, V any](seq iter.Seq[Point[K, V]]) (Series[K, V], error) {
	points := slices.Collect(seq)
	slices.SortFunc(points, func(a, b Point[K, V]) int { return cmp.Compare(a.Key, b.Key) })
	for i := 1; i < len(points); i++ {
		if cmp.Compare(points[i-1].Key, points[i].Key) == 0 {
			return Series[K, V]{}, fmt.Errorf("%w: %v", errs.ErrDuplicateKey, points[i].Key)
		}
	}

	keys, values := split(points)

	return Series[K, V]{keys: keys, values: values}, nil
}

// CollectUnchecked materializes a point sequence in O(n), trusting the
// producer to emit strictly ascending unique keys. Intended for transforms
// that preserve order and for external parallel stages that re-establish it.
func CollectUnchecked[K cmp.Ordered, V any](seq iter.Seq[Point[K, V]]) Series[K, V] {
	points := slices.Collect(seq)
	keys, values := split(points)

	return Series[K, V]{keys: keys, values: values}
}

func split[K cmp.Ordered, V any](points []Point[K, V]) ([]K, []V) {
	keys := make([]K, len(points))
	values := make([]V, len(points))
	for i, p := range points {
		keys[i] = p.Key
		values[i] = p.Value
	}

	return keys, values
}

// Len returns the number of points.
func (s Series[K, V]) Len() int {
	return len(s.keys)
}

// Empty reports whether the Series has no points.
func (s Series[K, V]) Empty() bool {
	return len(s.keys) == 0
}

// At returns the value stored at exactly key. Binary search, O(log n).
func (s Series[K, V]) At(key K) (V, bool) {
	if i, ok := slices.BinarySearch(s.keys, key); ok {
		return s.values[i], true
	}

	var zero V

	return zero, false
}

// AtOrPrior returns the value at the greatest key that is at or before key.
// It reports false only when key precedes the first point; keys past the
// last point resolve to the last value.
func (s Series[K, V]) AtOrPrior(key K) (V, bool) {
	i, ok := slices.BinarySearch(s.keys, key)
	if ok {
		return s.values[i], true
	}
	if i == 0 {
		var zero V

		return zero, false
	}

	return s.values[i-1], true
}

// AtIndex returns the point at position i, where position 0 holds the
// earliest key. It reports false when i is out of bounds.
func (s Series[K, V]) AtIndex(i int) (Point[K, V], bool) {
	if i < 0 || i >= len(s.keys) {
		return Point[K, V]{}, false
	}

	return Point[K, V]{Key: s.keys[i], Value: s.values[i]}, true
}

// First returns the earliest point.
func (s Series[K, V]) First() (Point[K, V], bool) {
	return s.AtIndex(0)
}

// Last returns the latest point.
func (s Series[K, V]) Last() (Point[K, V], bool) {
	return s.AtIndex(len(s.keys) - 1)
}

// Between returns a new Series holding the points with from <= key <= to.
// The result owns its storage.
func (s Series[K, V]) Between(from, to K) Series[K, V] {
	lo, _ := slices.BinarySearch(s.keys, from)
	hi, ok := slices.BinarySearch(s.keys, to)
	if ok {
		hi++
	}
	if lo >= hi {
		return Series[K, V]{}
	}

	return Series[K, V]{keys: slices.Clone(s.keys[lo:hi]), values: slices.Clone(s.values[lo:hi])}
}

// All iterates key/value pairs in ascending key order.
func (s Series[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range s.keys {
			if !yield(k, s.values[i]) {
				return
			}
		}
	}
}

// Points iterates the points in ascending key order.
func (s Series[K, V]) Points() iter.Seq[Point[K, V]] {
	return func(yield func(Point[K, V]) bool) {
		for i, k := range s.keys {
			if !yield(Point[K, V]{Key: k, Value: s.values[i]}) {
				return
			}
		}
	}
}

// Keys iterates the keys in ascending order.
func (s Series[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range s.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Values iterates the values in ascending key order.
func (s Series[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// KeySlice returns a copy of the keys.
func (s Series[K, V]) KeySlice() []K {
	return slices.Clone(s.keys)
}

// ValueSlice returns a copy of the values.
func (s Series[K, V]) ValueSlice() []V {
	return slices.Clone(s.values)
}

// Validate checks the strict ascending unique key invariant and returns
// errs.ErrUnorderedInput or errs.ErrDuplicateKey describing the first
// violation. Checked constructors run this implicitly; it is exposed for
// containers built through unchecked paths.
func (s Series[K, V]) Validate() error {
	for i := 1; i < len(s.keys); i++ {
		switch c := cmp.Compare(s.keys[i-1], s.keys[i]); {
		case c == 0:
			return fmt.Errorf("%w: %v at position %d", errs.ErrDuplicateKey, s.keys[i], i)
		case c > 0:
			return fmt.Errorf("%w: %v after %v at position %d", errs.ErrUnorderedInput, s.keys[i], s.keys[i-1], i)
		}
	}

	return nil
}

// Equal reports whether two Series hold the same points.
func Equal[K cmp.Ordered, V comparable](a, b Series[K, V]) bool {
	return slices.Equal(a.keys, b.keys) && slices.Equal(a.values, b.values)
}

// EqualFunc reports whether two Series hold the same keys and pairwise equal
// values under eq.
func EqualFunc[K cmp.Ordered, V1, V2 any](a Series[K, V1], b Series[K, V2], eq func(V1, V2) bool) bool {
	if len(a.keys) != len(b.keys) || !slices.Equal(a.keys, b.keys) {
		return false
	}
	for i := range a.values {
		if !eq(a.values[i], b.values[i]) {
			return false
		}
	}

	return true
}

// String renders a short preview: every point for ten or fewer, otherwise
// the first and last five around an ellipsis.
func (s Series[K, V]) String() string {
	var b strings.Builder

	n := len(s.keys)
	point := func(i int) {
		fmt.Fprintf(&b, "(%v, %v)\n", s.keys[i], s.values[i])
	}

	if n <= 10 {
		for i := range s.keys {
			point(i)
		}
	} else {
		for i := range 5 {
			point(i)
		}
		b.WriteString("...\n")
		for i := n - 5; i < n; i++ {
			point(i)
		}
	}
	fmt.Fprintf(&b, "length: %d", n)

	return b.String()
}
