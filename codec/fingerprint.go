package codec

import (
	"cmp"
	"encoding/binary"
	"math"

	"github.com/tickline/tickline/endian"
	"github.com/tickline/tickline/internal/hash"
	"github.com/tickline/tickline/series"
)

// Fingerprint computes a stable 64-bit content hash of a series from its
// length and every point, in order. keyBytes and valueBytes append the
// canonical byte form of a key and a value to a scratch buffer; the canned
// appenders below cover the common shapes. Variable-width forms must be
// self-delimiting the way AppendString is, or distinct series could hash
// alike by construction.
//
// Equal series always produce equal fingerprints. The converse does not
// hold, so use EqualByFingerprint when a definite answer is needed.
func Fingerprint[K cmp.Ordered, V any](s series.Series[K, V], keyBytes func([]byte, K) []byte, valueBytes func([]byte, V) []byte) uint64 {
	digest := hash.New()
	engine := endian.GetLittleEndianEngine()

	var length [8]byte
	engine.PutUint64(length[:], uint64(s.Len())) //nolint:gosec
	_, _ = digest.Write(length[:])

	buf := make([]byte, 0, 32)
	for k, v := range s.All() {
		buf = keyBytes(buf[:0], k)
		buf = valueBytes(buf, v)
		_, _ = digest.Write(buf)
	}

	return digest.Sum64()
}

// FingerprintFrame computes the xxHash64 of an already-encoded frame.
// It hashes the raw bytes, so two frames of the same series encoded with
// different options produce different sums. Handy as a cache or dedupe
// key when frames are stored without being decoded.
func FingerprintFrame(frame []byte) uint64 {
	return hash.Sum64(frame)
}

// EqualByFingerprint reports whether two series hold the same points,
// using fingerprints as a cheap pre-check. A fingerprint mismatch decides
// immediately; matching fingerprints fall through to an element-wise
// comparison, so a hash collision can never produce a false "equal".
func EqualByFingerprint[K cmp.Ordered, V comparable](a, b series.Series[K, V], keyBytes func([]byte, K) []byte, valueBytes func([]byte, V) []byte) bool {
	if a.Len() != b.Len() {
		return false
	}
	if Fingerprint(a, keyBytes, valueBytes) != Fingerprint(b, keyBytes, valueBytes) {
		return false
	}

	return series.Equal(a, b)
}

// AppendInt64 appends the fixed 8-byte little-endian form of v.
func AppendInt64(dst []byte, v int64) []byte {
	return endian.GetLittleEndianEngine().AppendUint64(dst, uint64(v)) //nolint:gosec
}

// AppendFloat64 appends the fixed 8-byte IEEE 754 bit pattern of v.
func AppendFloat64(dst []byte, v float64) []byte {
	return endian.GetLittleEndianEngine().AppendUint64(dst, math.Float64bits(v))
}

// AppendString appends v prefixed with its varint length, keeping
// concatenated fields unambiguous.
func AppendString(dst []byte, v string) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(v)))
	return append(dst, v...)
}
