// Package errs defines the sentinel errors shared across the tickline module.
//
// All errors are plain sentinel values intended to be wrapped with
// fmt.Errorf("%w: ...", ...) at the failure site and matched by callers with
// errors.Is. Lookup misses are not errors anywhere in the module; they are
// reported through (value, bool) returns or absent Option values.
package errs

import "errors"

// Construction and checked-collection errors.
var (
	// ErrLengthMismatch is returned when the key and value sequences passed to
	// a parallel-sequence constructor differ in length.
	ErrLengthMismatch = errors.New("key and value lengths mismatch")

	// ErrUnorderedInput is returned when a checked construction, a validation
	// pass, or a validation-enabled join finds keys out of ascending order.
	ErrUnorderedInput = errors.New("keys are not in ascending order")

	// ErrDuplicateKey is returned when a checked construction or collection
	// finds two points with equal keys.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Columnar codec errors.
var (
	// ErrInvalidMagic is returned when a payload does not start with the
	// columnar format magic number.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrInvalidHeader is returned when a columnar header is truncated or
	// internally inconsistent.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrUnsupportedVersion is returned when a columnar payload declares a
	// format version this build does not understand.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrUnknownEncoding is returned for an unrecognized key encoding type.
	ErrUnknownEncoding = errors.New("unknown key encoding")

	// ErrUnknownCompression is returned for an unrecognized compression type.
	ErrUnknownCompression = errors.New("unknown compression")

	// ErrCorruptedPayload is returned when a payload fails to decode to the
	// declared number of points.
	ErrCorruptedPayload = errors.New("corrupted payload")
)
