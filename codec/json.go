package codec

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/goccy/go-json"

	"github.com/tickline/tickline/internal/options"
	"github.com/tickline/tickline/series"
)

// JSONConfig carries the tagged-text settings for WriteJSON.
type JSONConfig struct {
	Indent string
}

// JSONOption configures one JSON call.
type JSONOption = options.Option[*JSONConfig]

// WithIndent pretty-prints the output with the given indent string. The
// default is compact output.
func WithIndent(indent string) JSONOption {
	return options.NoError(func(c *JSONConfig) {
		c.Indent = indent
	})
}

func newJSONConfig(opts []JSONOption) (JSONConfig, error) {
	var cfg JSONConfig
	if err := options.Apply(&cfg, opts...); err != nil {
		return JSONConfig{}, err
	}

	return cfg, nil
}

// WriteJSON encodes the series as a JSON array of self-describing
// {"key": ..., "value": ...} records in key order. The value type must be
// JSON-marshalable.
func WriteJSON[K cmp.Ordered, V any](w io.Writer, s series.Series[K, V], opts ...JSONOption) error {
	cfg, err := newJSONConfig(opts)
	if err != nil {
		return err
	}

	points := slices.Collect(s.Points())
	if points == nil {
		points = []series.Point[K, V]{}
	}

	enc := json.NewEncoder(w)
	if cfg.Indent != "" {
		enc.SetIndent("", cfg.Indent)
	}
	if err := enc.Encode(points); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// ReadJSON builds a series from a JSON array of key/value records. Records
// are collected through the checked path, so the array may arrive in any
// order but duplicate keys are rejected.
func ReadJSON[K cmp.Ordered, V any](r io.Reader) (series.Series[K, V], error) {
	var points []series.Point[K, V]
	if err := json.NewDecoder(r).Decode(&points); err != nil {
		return series.Series[K, V]{}, fmt.Errorf("decode json: %w", err)
	}

	return series.Collect(slices.Values(points))
}
