// Package tickline provides a generic, in-memory, ordered time-indexed
// container and the algorithms to compose analytics over it.
//
// A series pairs strictly ascending unique keys with arbitrary values in
// columnar storage. On top of that one invariant the library builds
// order-aware algorithms that run in a single pass: positional shifts,
// rolling windows, merge/hash/as-of joins, and time-bucket resampling.
//
// # Core Features
//
//   - Generic ordered container keyed by any cmp.Ordered type
//   - Checked and unchecked construction paths with explicit error kinds
//   - Buffer-based and incremental rolling-window aggregation
//   - Inner, left, and as-of joins with merge and hash strategies
//   - Adjacency-based resampling with caller-supplied bucket functions
//   - CSV, JSON, and compact columnar binary interchange
//   - Content fingerprinting for cheap equality pre-checks
//
// # Basic Usage
//
// Building a timestamp-keyed series and computing a rolling mean:
//
//	import "github.com/tickline/tickline"
//
//	s, err := tickline.NewTimeSeries(
//	    []int64{t0, t0 + step, t0 + 2*step, t0 + 3*step},
//	    []float64{1.0, 2.0, 3.0, 4.0},
//	)
//	if err != nil {
//	    return err
//	}
//	smooth := series.CollectUnchecked(series.Rolling(s, 3, tickline.Mean))
//
// Downsampling to one-minute buckets:
//
//	perMinute := series.ResampleValues(s, timeutil.BucketDown(time.Minute), tickline.Mean)
//
// Shipping a series across a process boundary:
//
//	data, err := tickline.EncodeTimeSeries(s)
//	// ...
//	back, err := tickline.DecodeTimeSeries(data)
//
// # Package Structure
//
// This package provides top-level conveniences for the canonical
// timestamp-keyed float64 shape. The full generic API lives in the
// subpackages:
//
//   - series: the container, transforms, joins, and resampling
//   - timeutil: time.Time conversion, grid alignment, join tolerances
//   - codec: CSV, JSON, and columnar interchange plus fingerprinting
//   - compress: the block compression codecs behind the columnar format
package tickline

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/tickline/tickline/codec"
	"github.com/tickline/tickline/series"
	"github.com/tickline/tickline/timeutil"
)

// TimeSeries is the canonical shape: microsecond timestamps keyed to
// float64 samples.
type TimeSeries = series.Series[int64, float64]

// NewTimeSeries pairs microsecond timestamps with float64 samples.
func NewTimeSeries(timestamps []int64, values []float64) (TimeSeries, error) {
	return series.New(timestamps, values)
}

// FromSamples pairs time.Time sample times with float64 samples, keying the
// series by Unix microseconds.
func FromSamples(times []time.Time, values []float64) (TimeSeries, error) {
	keys := make([]int64, len(times))
	for i, t := range times {
		keys[i] = timeutil.UnixMicros(t)
	}

	return series.New(keys, values)
}

// EncodeTimeSeries serializes a series into the columnar binary format.
// See codec.EncodeColumnar for the available options.
func EncodeTimeSeries(s TimeSeries, opts ...codec.ColumnarOption) ([]byte, error) {
	return codec.EncodeColumnar(s, opts...)
}

// DecodeTimeSeries parses a columnar frame produced by EncodeTimeSeries.
func DecodeTimeSeries(data []byte) (TimeSeries, error) {
	return codec.DecodeColumnar(data)
}

// Canned aggregation functions for rolling windows and resample buckets.
// Each reduces a non-empty group of samples to one value and returns NaN
// for an empty group, which the window and resample engines never produce.

// Mean returns the arithmetic mean of the group.
func Mean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return math.NaN()
	}

	return m
}

// Sum returns the sum of the group.
func Sum(values []float64) float64 {
	s, err := stats.Sum(values)
	if err != nil {
		return math.NaN()
	}

	return s
}

// Min returns the smallest sample in the group.
func Min(values []float64) float64 {
	m, err := stats.Min(values)
	if err != nil {
		return math.NaN()
	}

	return m
}

// Max returns the largest sample in the group.
func Max(values []float64) float64 {
	m, err := stats.Max(values)
	if err != nil {
		return math.NaN()
	}

	return m
}

// Median returns the median of the group.
func Median(values []float64) float64 {
	m, err := stats.Median(values)
	if err != nil {
		return math.NaN()
	}

	return m
}

// Std returns the population standard deviation of the group.
func Std(values []float64) float64 {
	sd, err := stats.StandardDeviation(values)
	if err != nil {
		return math.NaN()
	}

	return sd
}
