// Package timeutil bridges time.Time to the int64 microsecond keys used for
// timestamped series.
//
// Keying by Unix microseconds keeps key comparison and arithmetic branch-free
// and makes series storage compact. The helpers here convert in both
// directions, align timestamps to fixed-duration grids for resampling, and
// build as-of join tolerances from a time.Duration.
package timeutil

import (
	"time"

	"github.com/tickline/tickline/series"
)

// UnixMicros converts t to microseconds since the Unix epoch.
func UnixMicros(t time.Time) int64 {
	return t.UnixMicro()
}

// FromUnixMicros converts microseconds since the Unix epoch to a UTC time.
func FromUnixMicros(us int64) time.Time {
	return time.UnixMicro(us).UTC()
}

func stepMicros(step time.Duration) int64 {
	us := step.Microseconds()
	if us <= 0 {
		panic("timeutil: step must be at least one microsecond")
	}

	return us
}

// RoundDown aligns ts to the greatest multiple of step at or before it.
// Alignment is against the epoch, so negative timestamps round toward the
// past as well, not toward zero. step must be at least one microsecond.
func RoundDown(ts int64, step time.Duration) int64 {
	w := stepMicros(step)
	r := ts % w
	if r < 0 {
		r += w
	}

	return ts - r
}

// RoundUp aligns ts to the least multiple of step at or after it. A ts
// already on the grid stays put.
func RoundUp(ts int64, step time.Duration) int64 {
	down := RoundDown(ts, step)
	if down == ts {
		return ts
	}

	return down + stepMicros(step)
}

// RoundNearest aligns ts to the closest multiple of step; the exact midpoint
// rounds up.
func RoundNearest(ts int64, step time.Duration) int64 {
	w := stepMicros(step)
	down := RoundDown(ts, step)
	if (ts-down)*2 >= w {
		return down + w
	}

	return down
}

// BucketDown returns a bucket function assigning each timestamp the start of
// its step-aligned interval. The result is monotonic, so resampling with it
// yields one output point per occupied bucket, in order.
//
// Example:
//
//	hourly := series.ResampleValues(s, timeutil.BucketDown(time.Hour), tickline.Mean)
func BucketDown(step time.Duration) func(int64) int64 {
	stepMicros(step)

	return func(ts int64) int64 {
		return RoundDown(ts, step)
	}
}

// BucketUp returns a bucket function assigning each timestamp the end of its
// step-aligned interval. Monotonic, like BucketDown; use it when bucket keys
// should label interval ends.
func BucketUp(step time.Duration) func(int64) int64 {
	stepMicros(step)

	return func(ts int64) int64 {
		return RoundUp(ts, step)
	}
}

// Within builds an as-of join tolerance accepting counterparts at most d
// away from the left timestamp. The boundary is inclusive.
func Within(d time.Duration) series.Tolerance[int64] {
	return series.Within(d.Microseconds())
}
