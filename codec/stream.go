package codec

import (
	"bufio"
	"cmp"
	"io"
	"iter"

	"github.com/tickline/tickline/series"
)

// Lines reads r line by line and maps each non-empty line to a point with
// parse. Each step yields the parsed point and the parse error for that
// line, so the consumer decides whether a bad line skips or aborts; a read
// failure from the underlying reader is yielded as the final error.
//
// Feed the sequence to series.Collect via a filtering loop, or abort on the
// first error:
//
//	var points []series.Point[int64, float64]
//	for p, err := range codec.Lines(r, parseLine) {
//	    if err != nil {
//	        return err
//	    }
//	    points = append(points, p)
//	}
func Lines[K cmp.Ordered, V any](r io.Reader, parse func(line string) (series.Point[K, V], error)) iter.Seq2[series.Point[K, V], error] {
	return func(yield func(series.Point[K, V], error) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			if !yield(parse(line)) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(series.Point[K, V]{}, err)
		}
	}
}

// FromChan adapts a channel of points into a point sequence, receiving
// until the channel closes. This is the bridge back from an external
// concurrent stage: workers send points in any order, and collecting the
// sequence with series.Collect re-establishes the key invariant.
//
// Breaking out of the sequence early stops receiving without draining the
// channel; producers that must not block should select on a done signal.
func FromChan[K cmp.Ordered, V any](ch <-chan series.Point[K, V]) iter.Seq[series.Point[K, V]] {
	return func(yield func(series.Point[K, V]) bool) {
		for p := range ch {
			if !yield(p) {
				return
			}
		}
	}
}
