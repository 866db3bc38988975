package tickline

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tickline/tickline/errs"
	"github.com/tickline/tickline/series"
	"github.com/tickline/tickline/timeutil"
)

func TestNewTimeSeries(t *testing.T) {
	s, err := NewTimeSeries([]int64{1, 2, 3}, []float64{1.5, 2.5, 3.5})
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	_, err = NewTimeSeries([]int64{1}, []float64{1.5, 2.5})
	require.ErrorIs(t, err, errs.ErrLengthMismatch)
}

func TestFromSamples(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{start, start.Add(time.Second), start.Add(2 * time.Second)}

	s, err := FromSamples(times, []float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []int64{
		start.UnixMicro(),
		start.UnixMicro() + 1_000_000,
		start.UnixMicro() + 2_000_000,
	}, s.KeySlice())
}

func TestTimeSeriesCodecRoundTrip(t *testing.T) {
	s, err := NewTimeSeries([]int64{1, 2, 3}, []float64{1.5, 2.5, 3.5})
	require.NoError(t, err)

	data, err := EncodeTimeSeries(s)
	require.NoError(t, err)

	got, err := DecodeTimeSeries(data)
	require.NoError(t, err)
	require.True(t, series.Equal(s, got))
}

func TestAggregators(t *testing.T) {
	group := []float64{1, 2, 3, 4}

	require.Equal(t, 2.5, Mean(group))
	require.Equal(t, 10.0, Sum(group))
	require.Equal(t, 1.0, Min(group))
	require.Equal(t, 4.0, Max(group))
	require.Equal(t, 2.5, Median(group))
	require.Equal(t, 2.0, Median([]float64{1, 2, 3}))
	require.Equal(t, 2.0, Std([]float64{2, 4, 4, 4, 5, 5, 7, 9}))
}

func TestAggregators_EmptyGroup(t *testing.T) {
	for name, agg := range map[string]func([]float64) float64{
		"Mean":   Mean,
		"Sum":    Sum,
		"Min":    Min,
		"Max":    Max,
		"Median": Median,
		"Std":    Std,
	} {
		t.Run(name, func(t *testing.T) {
			require.True(t, math.IsNaN(agg(nil)))
		})
	}
}

func TestEndToEndPipeline(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := make([]time.Time, 10)
	values := make([]float64, 10)
	for i := range times {
		times[i] = start.Add(time.Duration(i) * time.Second)
		values[i] = float64(i + 1)
	}
	s, err := FromSamples(times, values)
	require.NoError(t, err)

	// Rolling mean over three samples.
	rolled := series.CollectUnchecked(series.Rolling(s, 3, Mean))
	require.Equal(t, []float64{2, 3, 4, 5, 6, 7, 8, 9}, rolled.ValueSlice())

	// Downsample the raw series into five-second sums.
	buckets := series.ResampleValues(s, timeutil.BucketDown(5*time.Second), Sum)
	require.Equal(t, []float64{15, 40}, buckets.ValueSlice())
	require.Equal(t, []int64{
		start.UnixMicro(),
		start.Add(5 * time.Second).UnixMicro(),
	}, buckets.KeySlice())

	// Ship the smoothed series through the columnar format.
	data, err := EncodeTimeSeries(rolled)
	require.NoError(t, err)
	back, err := DecodeTimeSeries(data)
	require.NoError(t, err)
	require.True(t, series.Equal(rolled, back))

	// Align the smoothed values back onto the raw timestamps.
	joined, err := series.JoinAsof(s, back, series.AsofPrior, timeutil.Within(time.Second),
		func(raw float64, smooth series.Option[float64]) float64 {
			return smooth.Or(raw)
		})
	require.NoError(t, err)
	require.Equal(t, s.Len(), joined.Len())
	require.Equal(t, []float64{1, 2, 2, 3, 4, 5, 6, 7, 8, 9}, joined.ValueSlice())
}
