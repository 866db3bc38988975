// Package series provides a generic, immutable, ordered key/value container
// and the transform engines that operate over it: positional shifts, rolling
// windows, inner/left/as-of joins, and bucket resampling.
//
// A Series[K, V] holds points with strictly ascending unique keys. Keys are
// any ordered type (cmp.Ordered); microsecond timestamps as int64 are the
// canonical shape, with conversions in the timeutil package. Values are
// unconstrained; operations that need arithmetic take it as a function
// parameter.
//
// # Construction
//
// Checked constructors validate and report; unchecked constructors trust the
// caller and cost O(n):
//
//	s, err := series.New(keys, values)           // parallel slices, length-checked
//	s, err := series.FromPoints(points)          // order + uniqueness validated
//	s := series.FromPointsUnchecked(points)      // caller guarantees both
//	s, err := series.Collect(seq)                // sorts, rejects duplicates
//	s := series.CollectUnchecked(seq)            // order-preserving producers
//
// Collect and CollectUnchecked are the materialize boundary for the lazy
// transforms below.
//
// # Transforms
//
// Shift, SkipApply, Rolling and RollingUpdate return lazy single-pass
// iter.Seq sequences; Map, joins, Resample and Interweave return new Series.
// No output ever aliases an input's internal storage, so inputs stay valid
// after every transform.
//
//	lead := s.Shift(1)
//	diff := series.SkipApply(s, 1, func(prior, curr float64) float64 { return curr - prior })
//	mean := series.Rolling(s, 20, func(buf []float64) float64 { ... })
//	sum := series.RollingUpdate(s, 20,
//	    func(acc, v float64) float64 { return acc + v },
//	    func(acc, v float64) float64 { return acc - v },
//	)
//	out, err := series.Collect(mean)
//
// # Joins
//
// Joins require both inputs to satisfy the ascending-key invariant. The hot
// path does not re-check it; WithValidation enables the check for tests and
// debug builds.
//
//	joined, err := series.JoinInner(a, b, func(x, y float64) float64 { return x * y })
//	filled, err := series.JoinLeft(a, b, func(x float64, y series.Option[float64]) float64 {
//	    return x + y.Or(0)
//	})
//	asof, err := series.JoinAsof(trades, quotes, series.AsofPrior, timeutil.Within(time.Second),
//	    func(t float64, q series.Option[float64]) series.Pair[float64, series.Option[float64]] {
//	        return series.Pair[float64, series.Option[float64]]{Left: t, Right: q}
//	    })
//
// # Resampling
//
//	perMinute := series.Resample(s, timeutil.BucketDown(time.Minute), agg)
//
// The aggregator receives each group's points; ResampleValues is the variant
// for aggregators over values alone. Grouping relies purely on adjacency in
// the ordered scan; a non-monotonic bucket function yields one output row
// per consecutive run, not per bucket.
package series
