package series

import (
	"cmp"
	"fmt"

	"github.com/tickline/tickline/internal/join"
	"github.com/tickline/tickline/internal/options"
)

// JoinStrategy selects the pairing algorithm behind JoinInner and JoinLeft.
type JoinStrategy uint8

const (
	// JoinAuto picks a strategy from the input sizes: hash when one side is
	// at least eight times smaller than the other, merge otherwise.
	JoinAuto JoinStrategy = iota
	// JoinMerge advances two cursors over the pre-sorted inputs, O(n+m).
	JoinMerge
	// JoinHash builds a temporary key index for one input and scans the
	// other; a different memory profile with identical output.
	JoinHash
)

func (s JoinStrategy) String() string {
	switch s {
	case JoinAuto:
		return "Auto"
	case JoinMerge:
		return "Merge"
	case JoinHash:
		return "Hash"
	default:
		return "Unknown"
	}
}

// AsofMode selects the direction an as-of join searches for a counterpart.
type AsofMode uint8

const (
	// AsofPrior matches the greatest right key at or before the left key.
	AsofPrior AsofMode = iota
	// AsofNext matches the least right key at or after the left key.
	AsofNext
	// AsofExact matches equal keys only, ignoring the tolerance.
	AsofExact
)

func (m AsofMode) String() string {
	switch m {
	case AsofPrior:
		return "Prior"
	case AsofNext:
		return "Next"
	case AsofExact:
		return "Exact"
	default:
		return "Unknown"
	}
}

// Tolerance accepts or rejects an as-of candidate key for a given left key.
// Constructors for common key shapes: Within for numeric keys,
// timeutil.Within for microsecond timestamp keys.
type Tolerance[K cmp.Ordered] func(left, candidate K) bool

// Number constrains keys that support subtraction, for tolerance matchers.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Within returns a Tolerance accepting candidates whose distance from the
// left key is at most tol. The boundary is inclusive: a candidate exactly
// tol away matches.
func Within[K Number](tol K) Tolerance[K] {
	return func(left, candidate K) bool {
		d := left - candidate
		if d < 0 {
			d = -d
		}

		return d <= tol
	}
}

// JoinConfig carries the per-call join settings.
type JoinConfig struct {
	Strategy JoinStrategy
	Validate bool
}

// JoinOption configures one join call.
type JoinOption = options.Option[*JoinConfig]

// WithStrategy forces a pairing strategy instead of the size heuristic.
// As-of joins ignore it; they are always trailing-pointer merges.
func WithStrategy(strategy JoinStrategy) JoinOption {
	return options.New(func(c *JoinConfig) error {
		switch strategy {
		case JoinAuto, JoinMerge, JoinHash:
			c.Strategy = strategy
			return nil
		default:
			return fmt.Errorf("invalid join strategy: %d", uint8(strategy))
		}
	})
}

// WithValidation checks the ascending-key invariant on both inputs before
// joining, reporting errs.ErrUnorderedInput or errs.ErrDuplicateKey. The
// default skips the check to keep joins O(n+m) over trusted inputs; enable
// it in tests and debug builds.
func WithValidation() JoinOption {
	return options.NoError(func(c *JoinConfig) {
		c.Validate = true
	})
}

func newJoinConfig(opts []JoinOption) (JoinConfig, error) {
	cfg := JoinConfig{Strategy: JoinAuto}
	if err := options.Apply(&cfg, opts...); err != nil {
		return JoinConfig{}, err
	}

	return cfg, nil
}

func validateInputs[K cmp.Ordered, V1, V2 any](a Series[K, V1], b Series[K, V2]) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("left input: %w", err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("right input: %w", err)
	}

	return nil
}

// autoPrefersHash reports whether the size skew justifies building a hash
// index instead of merging.
func autoPrefersHash(n, m int) bool {
	lo, hi := n, m
	if lo > hi {
		lo, hi = hi, lo
	}

	return lo <= hi/8
}

// JoinInner joins two Series on equal keys, emitting f(left, right) for
// every key present in both inputs. Keys in only one input are dropped.
//
// Both inputs must satisfy the ascending-key invariant; the result over
// unordered inputs is unspecified unless WithValidation is set.
func JoinInner[K cmp.Ordered, V1, V2, V3 any](a Series[K, V1], b Series[K, V2], f func(V1, V2) V3, opts ...JoinOption) (Series[K, V3], error) {
	cfg, err := newJoinConfig(opts)
	if err != nil {
		return Series[K, V3]{}, err
	}
	if cfg.Validate {
		if err := validateInputs(a, b); err != nil {
			return Series[K, V3]{}, err
		}
	}

	var pairs []join.Pair
	switch {
	case cfg.Strategy == JoinHash, cfg.Strategy == JoinAuto && autoPrefersHash(a.Len(), b.Len()):
		pairs = join.HashInner(a.keys, b.keys)
	default:
		pairs = join.MergeInner(a.keys, b.keys)
	}

	keys := make([]K, len(pairs))
	values := make([]V3, len(pairs))
	for i, p := range pairs {
		keys[i] = a.keys[p.L]
		values[i] = f(a.values[p.L], b.values[p.R])
	}

	return Series[K, V3]{keys: keys, values: values}, nil
}

// JoinLeft joins two Series keeping every key of the left input; f receives
// None for keys absent from the right input.
//
// Same ordering precondition and strategy selection as JoinInner.
func JoinLeft[K cmp.Ordered, V1, V2, V3 any](a Series[K, V1], b Series[K, V2], f func(V1, Option[V2]) V3, opts ...JoinOption) (Series[K, V3], error) {
	cfg, err := newJoinConfig(opts)
	if err != nil {
		return Series[K, V3]{}, err
	}
	if cfg.Validate {
		if err := validateInputs(a, b); err != nil {
			return Series[K, V3]{}, err
		}
	}

	var pairs []join.Pair
	switch {
	case cfg.Strategy == JoinHash, cfg.Strategy == JoinAuto && autoPrefersHash(a.Len(), b.Len()):
		pairs = join.HashLeft(a.keys, b.keys)
	default:
		pairs = join.MergeLeft(a.keys, b.keys)
	}

	return buildOptional(a, b, pairs, f), nil
}

// JoinAsof matches each left key to a nearby right key under mode and the
// tolerance, emitting f(left, Some(right)) on a match and f(left, None)
// otherwise. Every left key produces exactly one output point.
//
// A nil tolerance accepts the nearest candidate at any distance. The
// provided tolerance constructors are inclusive at the boundary. Both
// inputs must be sorted; the scan is a trailing-pointer merge, amortized
// O(n+m).
func JoinAsof[K cmp.Ordered, V1, V2, V3 any](a Series[K, V1], b Series[K, V2], mode AsofMode, within Tolerance[K], f func(V1, Option[V2]) V3, opts ...JoinOption) (Series[K, V3], error) {
	cfg, err := newJoinConfig(opts)
	if err != nil {
		return Series[K, V3]{}, err
	}
	if cfg.Validate {
		if err := validateInputs(a, b); err != nil {
			return Series[K, V3]{}, err
		}
	}

	var pairs []join.Pair
	switch mode {
	case AsofPrior:
		pairs = join.AsofPrior(a.keys, b.keys, within)
	case AsofNext:
		pairs = join.AsofNext(a.keys, b.keys, within)
	case AsofExact:
		pairs = join.MergeLeft(a.keys, b.keys)
	default:
		return Series[K, V3]{}, fmt.Errorf("invalid asof mode: %d", uint8(mode))
	}

	return buildOptional(a, b, pairs, f), nil
}

func buildOptional[K cmp.Ordered, V1, V2, V3 any](a Series[K, V1], b Series[K, V2], pairs []join.Pair, f func(V1, Option[V2]) V3) Series[K, V3] {
	keys := make([]K, len(pairs))
	values := make([]V3, len(pairs))
	for i, p := range pairs {
		keys[i] = a.keys[p.L]
		right := None[V2]()
		if p.R >= 0 {
			right = Some(b.values[p.R])
		}
		values[i] = f(a.values[p.L], right)
	}

	return Series[K, V3]{keys: keys, values: values}
}

// JoinInner3 composes pairwise inner joins left-to-right over three Series,
// keeping only keys present in all of them. Higher arities follow the same
// shape by chaining JoinInner with Pair values.
func JoinInner3[K cmp.Ordered, V1, V2, V3, R any](a Series[K, V1], b Series[K, V2], c Series[K, V3], f func(V1, V2, V3) R, opts ...JoinOption) (Series[K, R], error) {
	ab, err := JoinInner(a, b, func(x V1, y V2) Pair[V1, V2] {
		return Pair[V1, V2]{Left: x, Right: y}
	}, opts...)
	if err != nil {
		return Series[K, R]{}, err
	}

	return JoinInner(ab, c, func(p Pair[V1, V2], z V3) R {
		return f(p.Left, p.Right, z)
	}, opts...)
}
