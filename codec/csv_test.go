package codec

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tickline/tickline/errs"
	"github.com/tickline/tickline/series"
)

func TestCSVRoundTrip(t *testing.T) {
	s, err := series.New(
		[]int64{1_000_000, 2_000_000, 3_000_000},
		[]float64{1.25, -2.5, 1e-9},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteCSV(&buf, s, []string{"timestamp", "value"}, TimeValueRecord)
	require.NoError(t, err)

	got, err := ReadCSV(&buf, ParseTimeValueRecord, WithHeaderRow())
	require.NoError(t, err)
	require.True(t, series.Equal(s, got), "csv round trip should preserve keys and values")
}

func TestReadCSV(t *testing.T) {
	t.Run("SortsUnorderedRows", func(t *testing.T) {
		input := "3,30\n1,10\n2,20\n"
		got, err := ReadCSV(strings.NewReader(input), ParseTimeValueRecord)
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2, 3}, got.KeySlice())
		require.Equal(t, []float64{10, 20, 30}, got.ValueSlice())
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		input := "1,10\n2,20\n1,99\n"
		_, err := ReadCSV(strings.NewReader(input), ParseTimeValueRecord)
		require.ErrorIs(t, err, errs.ErrDuplicateKey)
	})

	t.Run("ParseErrorNamesRow", func(t *testing.T) {
		input := "1,10\nnot-a-number,20\n"
		_, err := ReadCSV(strings.NewReader(input), ParseTimeValueRecord)
		require.ErrorContains(t, err, "csv row 2")
	})

	t.Run("Empty", func(t *testing.T) {
		got, err := ReadCSV(strings.NewReader(""), ParseTimeValueRecord)
		require.NoError(t, err)
		require.True(t, got.Empty())
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		got, err := ReadCSV(strings.NewReader("timestamp,value\n"), ParseTimeValueRecord, WithHeaderRow())
		require.NoError(t, err)
		require.True(t, got.Empty())
	})

	t.Run("CustomDelimiter", func(t *testing.T) {
		input := "1;10\n2;20\n"
		got, err := ReadCSV(strings.NewReader(input), ParseTimeValueRecord, WithComma(';'))
		require.NoError(t, err)
		require.Equal(t, []int64{1, 2}, got.KeySlice())
	})

	t.Run("InvalidDelimiter", func(t *testing.T) {
		_, err := ReadCSV(strings.NewReader("1,10\n"), ParseTimeValueRecord, WithComma('\n'))
		require.ErrorContains(t, err, "invalid csv delimiter")
	})
}

func TestReadCSV_CallerColumnExtraction(t *testing.T) {
	// Wide records: the parse function decides which columns become the
	// key and the value.
	input := "1,sensor-a,0.5\n2,sensor-a,0.7\n"
	got, err := ReadCSV(strings.NewReader(input), func(record []string) (series.Point[int64, string], error) {
		key, err := strconv.ParseInt(record[0], 10, 64)
		if err != nil {
			return series.Point[int64, string]{}, err
		}
		return series.Point[int64, string]{Key: key, Value: record[1] + "=" + record[2]}, nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"sensor-a=0.5", "sensor-a=0.7"}, got.ValueSlice())
}

func TestWriteCSV(t *testing.T) {
	s, err := series.New([]int64{1, 2}, []float64{0.5, 1.5})
	require.NoError(t, err)

	t.Run("WithHeader", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteCSV(&buf, s, []string{"ts", "v"}, TimeValueRecord)
		require.NoError(t, err)
		require.Equal(t, "ts,v\n1,0.5\n2,1.5\n", buf.String())
	})

	t.Run("WithoutHeader", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteCSV(&buf, s, nil, TimeValueRecord)
		require.NoError(t, err)
		require.Equal(t, "1,0.5\n2,1.5\n", buf.String())
	})

	t.Run("EmptySeries", func(t *testing.T) {
		var buf bytes.Buffer
		var empty series.Series[int64, float64]
		err := WriteCSV(&buf, empty, nil, TimeValueRecord)
		require.NoError(t, err)
		require.Zero(t, buf.Len())
	})
}

func TestParseTimeValueRecord(t *testing.T) {
	p, err := ParseTimeValueRecord([]string{"42", "2.5"})
	require.NoError(t, err)
	require.Equal(t, series.Point[int64, float64]{Key: 42, Value: 2.5}, p)

	_, err = ParseTimeValueRecord([]string{"42"})
	require.ErrorContains(t, err, "at least 2 fields")

	_, err = ParseTimeValueRecord([]string{"x", "2.5"})
	require.ErrorContains(t, err, "parse key")

	_, err = ParseTimeValueRecord([]string{"42", "x"})
	require.ErrorContains(t, err, "parse value")
}
