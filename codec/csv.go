package codec

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/tickline/tickline/internal/options"
	"github.com/tickline/tickline/series"
)

// CSVConfig carries the delimited-text settings shared by ReadCSV and
// WriteCSV.
type CSVConfig struct {
	Comma     rune
	HeaderRow bool
}

// CSVOption configures one CSV call.
type CSVOption = options.Option[*CSVConfig]

// WithComma sets the field delimiter. The default is a comma.
func WithComma(comma rune) CSVOption {
	return options.New(func(c *CSVConfig) error {
		if comma == 0 || comma == '\n' || comma == '\r' {
			return fmt.Errorf("invalid csv delimiter: %q", comma)
		}
		c.Comma = comma

		return nil
	})
}

// WithHeaderRow marks the first record as a header. ReadCSV skips it;
// WriteCSV emits the header slice it is given regardless of this option.
func WithHeaderRow() CSVOption {
	return options.NoError(func(c *CSVConfig) {
		c.HeaderRow = true
	})
}

func newCSVConfig(opts []CSVOption) (CSVConfig, error) {
	cfg := CSVConfig{Comma: ','}
	if err := options.Apply(&cfg, opts...); err != nil {
		return CSVConfig{}, err
	}

	return cfg, nil
}

// ReadCSV builds a series from delimited records, mapping each record to a
// point with parse. Records are collected through the checked path, so the
// input may arrive in any order but duplicate keys are rejected.
//
// Example:
//
//	s, err := codec.ReadCSV(file, codec.ParseTimeValueRecord, codec.WithHeaderRow())
func ReadCSV[K cmp.Ordered, V any](r io.Reader, parse func(record []string) (series.Point[K, V], error), opts ...CSVOption) (series.Series[K, V], error) {
	var zero series.Series[K, V]

	cfg, err := newCSVConfig(opts)
	if err != nil {
		return zero, err
	}

	reader := csv.NewReader(r)
	reader.Comma = cfg.Comma

	var points []series.Point[K, V]
	row := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return zero, fmt.Errorf("read csv: %w", err)
		}
		row++
		if row == 1 && cfg.HeaderRow {
			continue
		}

		p, err := parse(record)
		if err != nil {
			return zero, fmt.Errorf("csv row %d: %w", row, err)
		}
		points = append(points, p)
	}

	return series.Collect(slices.Values(points))
}

// WriteCSV writes one delimited record per point, mapped through record. A
// non-empty header slice is written first. Key order is preserved, so
// reading the output back reproduces the series.
func WriteCSV[K cmp.Ordered, V any](w io.Writer, s series.Series[K, V], header []string, record func(p series.Point[K, V]) []string, opts ...CSVOption) error {
	cfg, err := newCSVConfig(opts)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	writer.Comma = cfg.Comma

	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("write csv header: %w", err)
		}
	}
	for p := range s.Points() {
		if err := writer.Write(record(p)); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	writer.Flush()

	return writer.Error()
}

// ParseTimeValueRecord maps a two-column record of microsecond timestamp
// and float value to a point. It is the read half of the canonical
// timestamp/value CSV shape.
func ParseTimeValueRecord(record []string) (series.Point[int64, float64], error) {
	var zero series.Point[int64, float64]

	if len(record) < 2 {
		return zero, fmt.Errorf("want at least 2 fields, got %d", len(record))
	}
	key, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return zero, fmt.Errorf("parse key: %w", err)
	}
	value, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return zero, fmt.Errorf("parse value: %w", err)
	}

	return series.Point[int64, float64]{Key: key, Value: value}, nil
}

// TimeValueRecord is the write half of the canonical timestamp/value CSV
// shape. Values round-trip exactly through ParseTimeValueRecord.
func TimeValueRecord(p series.Point[int64, float64]) []string {
	return []string{
		strconv.FormatInt(p.Key, 10),
		strconv.FormatFloat(p.Value, 'g', -1, 64),
	}
}
