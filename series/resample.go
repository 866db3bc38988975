package series

import "cmp"

// Resample groups consecutive points whose keys map to the same bucket key
// and aggregates each group into a single point. bucketFn maps a point key
// to its bucket key (timeutil.BucketDown covers the common timestamp case);
// agg reduces the group's points, so aggregates may weigh values by their
// original keys. Each group receives a fresh slice, so agg may retain it.
// ResampleValues is the shorthand for aggregators that only look at values.
//
// Grouping is by adjacency: a monotonic bucketFn yields one point per
// bucket in ascending order, while a non-monotonic bucketFn can emit the
// same bucket key more than once. The result is returned as-is; call
// Validate before handing it to operations that require ordered keys.
func Resample[K, K2 cmp.Ordered, V, V2 any](s Series[K, V], bucketFn func(K) K2, agg func(group []Point[K, V]) V2) Series[K2, V2] {
	var (
		keys   []K2
		values []V2
	)
	resampleGroups(s, bucketFn, func(bucket K2, start, end int) {
		group := make([]Point[K, V], end-start)
		for i := start; i < end; i++ {
			group[i-start] = Point[K, V]{Key: s.keys[i], Value: s.values[i]}
		}
		keys = append(keys, bucket)
		values = append(values, agg(group))
	})

	return Series[K2, V2]{keys: keys, values: values}
}

// ResampleValues resamples with an aggregator over the group's values alone,
// the shape the canned numeric aggregators in the root package have. Same
// grouping and aliasing contract as Resample.
func ResampleValues[K, K2 cmp.Ordered, V, V2 any](s Series[K, V], bucketFn func(K) K2, agg func(values []V) V2) Series[K2, V2] {
	var (
		keys   []K2
		values []V2
	)
	resampleGroups(s, bucketFn, func(bucket K2, start, end int) {
		group := make([]V, end-start)
		copy(group, s.values[start:end])
		keys = append(keys, bucket)
		values = append(values, agg(group))
	})

	return Series[K2, V2]{keys: keys, values: values}
}

// resampleGroups walks the adjacency groups bucketFn induces over s and
// invokes emit once per group with the bucket key and the half-open index
// range of its points.
func resampleGroups[K, K2 cmp.Ordered, V any](s Series[K, V], bucketFn func(K) K2, emit func(bucket K2, start, end int)) {
	if s.Len() == 0 {
		return
	}

	start := 0
	bucket := bucketFn(s.keys[0])
	for i := 1; i < len(s.keys); i++ {
		next := bucketFn(s.keys[i])
		if next != bucket {
			emit(bucket, start, i)
			start = i
			bucket = next
		}
	}
	emit(bucket, start, len(s.keys))
}

// Interweave merges two Series into one ordered Series. Points from both
// inputs are emitted in key order; when both carry the same key, choose
// picks the single point to keep and both cursors advance. choose receives
// the colliding points with s's point first and must return a point with
// that same key for the result to stay ordered.
func (s Series[K, V]) Interweave(other Series[K, V], choose func(a, b Point[K, V]) Point[K, V]) Series[K, V] {
	keys := make([]K, 0, len(s.keys)+len(other.keys))
	values := make([]V, 0, len(s.values)+len(other.values))

	i, j := 0, 0
	for i < len(s.keys) && j < len(other.keys) {
		switch cmp.Compare(s.keys[i], other.keys[j]) {
		case -1:
			keys = append(keys, s.keys[i])
			values = append(values, s.values[i])
			i++
		case 1:
			keys = append(keys, other.keys[j])
			values = append(values, other.values[j])
			j++
		default:
			p := choose(
				Point[K, V]{Key: s.keys[i], Value: s.values[i]},
				Point[K, V]{Key: other.keys[j], Value: other.values[j]},
			)
			keys = append(keys, p.Key)
			values = append(values, p.Value)
			i++
			j++
		}
	}
	for ; i < len(s.keys); i++ {
		keys = append(keys, s.keys[i])
		values = append(values, s.values[i])
	}
	for ; j < len(other.keys); j++ {
		keys = append(keys, other.keys[j])
		values = append(values, other.values[j])
	}

	return Series[K, V]{keys: keys, values: values}
}
