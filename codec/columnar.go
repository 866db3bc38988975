package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"

	"github.com/tickline/tickline/compress"
	"github.com/tickline/tickline/endian"
	"github.com/tickline/tickline/errs"
	"github.com/tickline/tickline/format"
	"github.com/tickline/tickline/internal/options"
	"github.com/tickline/tickline/internal/pool"
	"github.com/tickline/tickline/series"
)

// Columnar frame layout, little-endian:
//
//	offset 0-3   magic "TIKL"
//	offset 4     format version
//	offset 5     key encoding
//	offset 6     key compression type
//	offset 7     value compression type
//	offset 8-11  point count
//	offset 12-15 key payload size (after compression)
//	offset 16-19 value payload size (after compression)
//	offset 20-23 reserved
//
// Key and value payloads follow the header back to back.
const (
	// MagicNumber identifies a columnar frame; "TIKL" in little-endian order.
	MagicNumber uint32 = 0x4C4B4954
	// FormatVersion is the frame version this package reads and writes.
	FormatVersion byte = 1

	headerSize = 24
)

// ColumnarConfig carries the encode-side settings for the columnar format.
// Decoding reads the same settings back from the frame header.
type ColumnarConfig struct {
	// KeyEncoding selects how keys are laid out in the key payload.
	// KeyEncodingDelta compresses regular timestamp grids to about a byte
	// per key; KeyEncodingRaw stores fixed 8-byte keys for random patterns.
	KeyEncoding format.KeyEncoding
	// KeyCompression is applied to the key payload after encoding.
	KeyCompression format.CompressionType
	// ValueCompression is applied to the value payload after encoding.
	// Keys and values compress differently, so the two are independent:
	// delta-encoded keys are usually small already while raw float values
	// benefit from a real compressor.
	ValueCompression format.CompressionType
}

// ColumnarOption configures EncodeColumnar.
type ColumnarOption = options.Option[*ColumnarConfig]

// WithKeyEncoding selects the key payload layout. The default is
// KeyEncodingDelta.
func WithKeyEncoding(enc format.KeyEncoding) ColumnarOption {
	return options.New(func(c *ColumnarConfig) error {
		switch enc {
		case format.KeyEncodingRaw, format.KeyEncodingDelta:
			c.KeyEncoding = enc
			return nil
		default:
			return fmt.Errorf("%w: %d", errs.ErrUnknownEncoding, byte(enc))
		}
	})
}

// WithKeyCompression selects the key payload compression. The default is
// CompressionNone.
func WithKeyCompression(typ format.CompressionType) ColumnarOption {
	return options.New(func(c *ColumnarConfig) error {
		if _, err := compress.GetCodec(typ); err != nil {
			return err
		}
		c.KeyCompression = typ

		return nil
	})
}

// WithValueCompression selects the value payload compression. The default
// is CompressionNone.
func WithValueCompression(typ format.CompressionType) ColumnarOption {
	return options.New(func(c *ColumnarConfig) error {
		if _, err := compress.GetCodec(typ); err != nil {
			return err
		}
		c.ValueCompression = typ

		return nil
	})
}

func newColumnarConfig(opts []ColumnarOption) (ColumnarConfig, error) {
	cfg := ColumnarConfig{
		KeyEncoding:      format.KeyEncodingDelta,
		KeyCompression:   format.CompressionNone,
		ValueCompression: format.CompressionNone,
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return ColumnarConfig{}, err
	}

	return cfg, nil
}

// EncodeColumnar serializes a timestamp-keyed series into a columnar frame.
// Keys and values are written as two independently compressed payloads
// behind a fixed header, so bulk numeric data stays compact and the decode
// side can reject foreign or damaged frames cheaply.
//
// Example:
//
//	data, err := codec.EncodeColumnar(s,
//	    codec.WithKeyEncoding(format.KeyEncodingDelta),
//	    codec.WithValueCompression(format.CompressionZstd),
//	)
func EncodeColumnar(s series.Series[int64, float64], opts ...ColumnarOption) ([]byte, error) {
	cfg, err := newColumnarConfig(opts)
	if err != nil {
		return nil, err
	}

	keys := s.KeySlice()
	values := s.ValueSlice()

	var keyPayload []byte
	switch cfg.KeyEncoding {
	case format.KeyEncodingRaw:
		keyPayload = encodeRawKeys(keys)
	default:
		keyPayload = encodeDeltaKeys(keys)
	}
	valuePayload := encodeRawValues(values)

	keyCodec, err := compress.GetCodec(cfg.KeyCompression)
	if err != nil {
		return nil, err
	}
	valueCodec, err := compress.GetCodec(cfg.ValueCompression)
	if err != nil {
		return nil, err
	}
	keyPayload, err = keyCodec.Compress(keyPayload)
	if err != nil {
		return nil, fmt.Errorf("compress keys: %w", err)
	}
	valuePayload, err = valueCodec.Compress(valuePayload)
	if err != nil {
		return nil, fmt.Errorf("compress values: %w", err)
	}

	engine := endian.GetLittleEndianEngine()
	buf := pool.GetEncodeBuffer()
	defer pool.PutEncodeBuffer(buf)

	var header [headerSize]byte
	engine.PutUint32(header[0:4], MagicNumber)
	header[4] = FormatVersion
	header[5] = byte(cfg.KeyEncoding)
	header[6] = byte(cfg.KeyCompression)
	header[7] = byte(cfg.ValueCompression)
	engine.PutUint32(header[8:12], uint32(s.Len()))            //nolint:gosec
	engine.PutUint32(header[12:16], uint32(len(keyPayload)))   //nolint:gosec
	engine.PutUint32(header[16:20], uint32(len(valuePayload))) //nolint:gosec

	buf.Write(header[:])
	buf.Write(keyPayload)
	buf.Write(valuePayload)

	return slices.Clone(buf.Bytes()), nil
}

// DecodeColumnar parses a columnar frame back into a series. The frame is
// validated end to end: magic, version, encoding and compression bytes,
// payload sizes, and finally the ordered-unique key invariant, so the
// returned series carries the same guarantees as a checked construction.
func DecodeColumnar(data []byte) (series.Series[int64, float64], error) {
	var zero series.Series[int64, float64]

	if len(data) < headerSize {
		return zero, fmt.Errorf("%w: %d bytes, want at least %d", errs.ErrInvalidHeader, len(data), headerSize)
	}

	engine := endian.GetLittleEndianEngine()
	if magic := engine.Uint32(data[0:4]); magic != MagicNumber {
		return zero, fmt.Errorf("%w: 0x%08X", errs.ErrInvalidMagic, magic)
	}
	if version := data[4]; version != FormatVersion {
		return zero, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	keyEncoding := format.KeyEncoding(data[5])
	switch keyEncoding {
	case format.KeyEncodingRaw, format.KeyEncodingDelta:
	default:
		return zero, fmt.Errorf("%w: %d", errs.ErrUnknownEncoding, data[5])
	}

	keyCodec, err := compress.GetCodec(format.CompressionType(data[6]))
	if err != nil {
		return zero, fmt.Errorf("key payload: %w", err)
	}
	valueCodec, err := compress.GetCodec(format.CompressionType(data[7]))
	if err != nil {
		return zero, fmt.Errorf("value payload: %w", err)
	}

	count := int(engine.Uint32(data[8:12]))
	keySize := int(engine.Uint32(data[12:16]))
	valueSize := int(engine.Uint32(data[16:20]))
	if headerSize+keySize+valueSize != len(data) {
		return zero, fmt.Errorf("%w: header describes %d payload bytes, frame carries %d",
			errs.ErrCorruptedPayload, keySize+valueSize, len(data)-headerSize)
	}

	keyPayload, err := keyCodec.Decompress(data[headerSize : headerSize+keySize])
	if err != nil {
		return zero, fmt.Errorf("%w: keys: %s", errs.ErrCorruptedPayload, err)
	}
	valuePayload, err := valueCodec.Decompress(data[headerSize+keySize:])
	if err != nil {
		return zero, fmt.Errorf("%w: values: %s", errs.ErrCorruptedPayload, err)
	}

	var keys []int64
	switch keyEncoding {
	case format.KeyEncodingRaw:
		keys, err = decodeRawKeys(keyPayload, count)
	default:
		keys, err = decodeDeltaKeys(keyPayload, count)
	}
	if err != nil {
		return zero, err
	}
	values, err := decodeRawValues(valuePayload, count)
	if err != nil {
		return zero, err
	}

	s, err := series.New(keys, values)
	if err != nil {
		return zero, err
	}
	if err := s.Validate(); err != nil {
		return zero, fmt.Errorf("decoded frame: %w", err)
	}

	return s, nil
}

func encodeRawKeys(keys []int64) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, len(keys)*8)
	for _, k := range keys {
		buf = engine.AppendUint64(buf, uint64(k)) //nolint:gosec
	}

	return buf
}

func decodeRawKeys(payload []byte, count int) ([]int64, error) {
	if len(payload) != count*8 {
		return nil, fmt.Errorf("%w: %d key bytes for %d points", errs.ErrCorruptedPayload, len(payload), count)
	}

	engine := endian.GetLittleEndianEngine()
	keys := make([]int64, count)
	for i := range keys {
		keys[i] = int64(engine.Uint64(payload[i*8:])) //nolint:gosec
	}

	return keys, nil
}

// encodeDeltaKeys writes the first key as a plain varint, the second as a
// zigzag varint delta, and the rest as zigzag varint delta-of-deltas.
// Regular grids collapse to one byte per key.
func encodeDeltaKeys(keys []int64) []byte {
	buf := make([]byte, 0, len(keys)*2+binary.MaxVarintLen64)

	var prevKey, prevDelta int64
	for i, k := range keys {
		switch i {
		case 0:
			buf = binary.AppendUvarint(buf, uint64(k)) //nolint:gosec
			prevKey = k
		case 1:
			delta := k - prevKey
			buf = binary.AppendUvarint(buf, zigzagEncode(delta))
			prevKey, prevDelta = k, delta
		default:
			delta := k - prevKey
			buf = binary.AppendUvarint(buf, zigzagEncode(delta-prevDelta))
			prevKey, prevDelta = k, delta
		}
	}

	return buf
}

func decodeDeltaKeys(payload []byte, count int) ([]int64, error) {
	keys := make([]int64, 0, count)
	pos := 0

	var prevKey, prevDelta int64
	for i := range count {
		u, n := binary.Uvarint(payload[pos:])
		if n <= 0 {
			return nil, fmt.Errorf("%w: truncated key varint at point %d", errs.ErrCorruptedPayload, i)
		}
		pos += n

		switch i {
		case 0:
			prevKey = int64(u) //nolint:gosec
		case 1:
			prevDelta = zigzagDecode(u)
			prevKey += prevDelta
		default:
			prevDelta += zigzagDecode(u)
			prevKey += prevDelta
		}
		keys = append(keys, prevKey)
	}
	if pos != len(payload) {
		return nil, fmt.Errorf("%w: %d trailing key bytes", errs.ErrCorruptedPayload, len(payload)-pos)
	}

	return keys, nil
}

func encodeRawValues(values []float64) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 0, len(values)*8)
	for _, v := range values {
		buf = engine.AppendUint64(buf, math.Float64bits(v))
	}

	return buf
}

func decodeRawValues(payload []byte, count int) ([]float64, error) {
	if len(payload) != count*8 {
		return nil, fmt.Errorf("%w: %d value bytes for %d points", errs.ErrCorruptedPayload, len(payload), count)
	}

	engine := endian.GetLittleEndianEngine()
	values := make([]float64, count)
	for i := range values {
		values[i] = math.Float64frombits(engine.Uint64(payload[i*8:]))
	}

	return values, nil
}

func zigzagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63)) //nolint:gosec
}

func zigzagDecode(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}
