package series

import (
	"cmp"
	"fmt"
)

// Point is a single key/value observation. Points are plain values with no
// identity beyond their contents.
type Point[K cmp.Ordered, V any] struct {
	Key   K `json:"key"`
	Value V `json:"value"`
}

func (p Point[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

// Pair carries both sides of a joined value.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Option is a value that may be absent. Left and as-of joins hand the
// combiner an Option for the right side; lookups on the container itself use
// (value, bool) returns instead.
type Option[V any] struct {
	value V
	ok    bool
}

// Some returns an Option holding v.
func Some[V any](v V) Option[V] {
	return Option[V]{value: v, ok: true}
}

// None returns an absent Option.
func None[V any]() Option[V] {
	return Option[V]{}
}

// Get returns the contained value and whether it is present.
func (o Option[V]) Get() (V, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[V]) IsSome() bool {
	return o.ok
}

// MustGet returns the contained value and panics when absent.
func (o Option[V]) MustGet() V {
	if !o.ok {
		panic("series: option holds no value")
	}

	return o.value
}

// Or returns the contained value, or def when absent.
func (o Option[V]) Or(def V) V {
	if !o.ok {
		return def
	}

	return o.value
}

func (o Option[V]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}
