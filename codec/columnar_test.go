package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tickline/tickline/endian"
	"github.com/tickline/tickline/errs"
	"github.com/tickline/tickline/format"
	"github.com/tickline/tickline/series"
)

func regularGrid(t *testing.T, n int) series.Series[int64, float64] {
	t.Helper()

	keys := make([]int64, n)
	values := make([]float64, n)
	for i := range keys {
		keys[i] = 1_700_000_000_000_000 + int64(i)*1_000_000
		values[i] = float64(i) * 1.5
	}
	s, err := series.New(keys, values)
	require.NoError(t, err)

	return s
}

func TestColumnarRoundTrip(t *testing.T) {
	irregular, err := series.New(
		[]int64{-5_000_000, -1, 0, 999, 1_000_000, 7_777_777},
		[]float64{-1.5, 0, 3.25, -0.001, 1e18, 42},
	)
	require.NoError(t, err)

	inputs := map[string]series.Series[int64, float64]{
		"RegularGrid": regularGrid(t, 100),
		"Irregular":   irregular,
		"SinglePoint": series.FromPointsUnchecked([]series.Point[int64, float64]{{Key: 7, Value: 7.5}}),
		"Empty":       {},
	}
	encodings := []format.KeyEncoding{format.KeyEncodingRaw, format.KeyEncodingDelta}
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for name, input := range inputs {
		for _, enc := range encodings {
			for _, comp := range compressions {
				t.Run(name+"_"+enc.String()+"_"+comp.String(), func(t *testing.T) {
					data, err := EncodeColumnar(input,
						WithKeyEncoding(enc),
						WithKeyCompression(comp),
						WithValueCompression(comp),
					)
					require.NoError(t, err)

					got, err := DecodeColumnar(data)
					require.NoError(t, err)
					require.True(t, series.Equal(input, got), "decoded series should match input")
				})
			}
		}
	}

	t.Run("MixedCompression", func(t *testing.T) {
		input := regularGrid(t, 64)
		data, err := EncodeColumnar(input,
			WithKeyCompression(format.CompressionLZ4),
			WithValueCompression(format.CompressionS2),
		)
		require.NoError(t, err)

		got, err := DecodeColumnar(data)
		require.NoError(t, err)
		require.True(t, series.Equal(input, got))
	})
}

func TestColumnar_DeltaBeatsRawOnRegularGrids(t *testing.T) {
	s := regularGrid(t, 1000)

	raw, err := EncodeColumnar(s, WithKeyEncoding(format.KeyEncodingRaw))
	require.NoError(t, err)
	delta, err := EncodeColumnar(s, WithKeyEncoding(format.KeyEncodingDelta))
	require.NoError(t, err)

	require.Less(t, len(delta), len(raw)/2, "regular grids should collapse under delta encoding")
}

func TestColumnar_CompressionShrinksRepetitivePayloads(t *testing.T) {
	keys := make([]int64, 2000)
	values := make([]float64, 2000)
	for i := range keys {
		keys[i] = int64(i)
		values[i] = 20.25
	}
	s, err := series.New(keys, values)
	require.NoError(t, err)

	t.Run("ValueSide", func(t *testing.T) {
		plain, err := EncodeColumnar(s)
		require.NoError(t, err)
		compressed, err := EncodeColumnar(s, WithValueCompression(format.CompressionZstd))
		require.NoError(t, err)

		require.Less(t, len(compressed), len(plain))
	})

	t.Run("KeySide", func(t *testing.T) {
		plain, err := EncodeColumnar(s, WithKeyEncoding(format.KeyEncodingRaw))
		require.NoError(t, err)
		compressed, err := EncodeColumnar(s,
			WithKeyEncoding(format.KeyEncodingRaw),
			WithKeyCompression(format.CompressionZstd),
		)
		require.NoError(t, err)

		require.Less(t, len(compressed), len(plain))
	})
}

func TestEncodeColumnar_InvalidOptions(t *testing.T) {
	s := regularGrid(t, 4)

	_, err := EncodeColumnar(s, WithKeyEncoding(format.KeyEncoding(0xEE)))
	require.ErrorIs(t, err, errs.ErrUnknownEncoding)

	_, err = EncodeColumnar(s, WithKeyCompression(format.CompressionType(0xEE)))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)

	_, err = EncodeColumnar(s, WithValueCompression(format.CompressionType(0xEE)))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

// buildRawFrame assembles an uncompressed raw-key frame directly, for
// decoder checks that need inputs the encoder refuses to produce.
func buildRawFrame(keys []int64, values []float64) []byte {
	engine := endian.GetLittleEndianEngine()
	keyPayload := encodeRawKeys(keys)
	valuePayload := encodeRawValues(values)

	frame := make([]byte, headerSize, headerSize+len(keyPayload)+len(valuePayload))
	engine.PutUint32(frame[0:4], MagicNumber)
	frame[4] = FormatVersion
	frame[5] = byte(format.KeyEncodingRaw)
	frame[6] = byte(format.CompressionNone)
	frame[7] = byte(format.CompressionNone)
	engine.PutUint32(frame[8:12], uint32(len(keys)))
	engine.PutUint32(frame[12:16], uint32(len(keyPayload)))
	engine.PutUint32(frame[16:20], uint32(len(valuePayload)))

	frame = append(frame, keyPayload...)
	frame = append(frame, valuePayload...)

	return frame
}

func TestDecodeColumnar_Errors(t *testing.T) {
	valid, err := EncodeColumnar(regularGrid(t, 8))
	require.NoError(t, err)

	t.Run("ShortHeader", func(t *testing.T) {
		_, err := DecodeColumnar(valid[:10])
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := DecodeColumnar(nil)
		require.ErrorIs(t, err, errs.ErrInvalidHeader)
	})

	t.Run("BadMagic", func(t *testing.T) {
		frame := append([]byte(nil), valid...)
		frame[0] ^= 0xFF
		_, err := DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("UnsupportedVersion", func(t *testing.T) {
		frame := append([]byte(nil), valid...)
		frame[4] = 99
		_, err := DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
	})

	t.Run("UnknownKeyEncoding", func(t *testing.T) {
		frame := append([]byte(nil), valid...)
		frame[5] = 0xEE
		_, err := DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrUnknownEncoding)
	})

	t.Run("UnknownKeyCompression", func(t *testing.T) {
		frame := append([]byte(nil), valid...)
		frame[6] = 0xEE
		_, err := DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrUnknownCompression)
	})

	t.Run("UnknownValueCompression", func(t *testing.T) {
		frame := append([]byte(nil), valid...)
		frame[7] = 0xEE
		_, err := DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrUnknownCompression)
	})

	t.Run("TruncatedPayload", func(t *testing.T) {
		_, err := DecodeColumnar(valid[:len(valid)-4])
		require.ErrorIs(t, err, errs.ErrCorruptedPayload)
	})

	t.Run("TrailingBytes", func(t *testing.T) {
		frame := append(append([]byte(nil), valid...), 0, 0, 0)
		_, err := DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrCorruptedPayload)
	})

	t.Run("CountMismatch", func(t *testing.T) {
		frame := buildRawFrame([]int64{10, 20}, []float64{1, 2})
		engine := endian.GetLittleEndianEngine()
		engine.PutUint32(frame[8:12], 3)
		_, err := DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrCorruptedPayload)
	})

	t.Run("UnorderedKeys", func(t *testing.T) {
		frame := buildRawFrame([]int64{20, 10}, []float64{1, 2})
		_, err := DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrUnorderedInput)
	})

	t.Run("DuplicateKeys", func(t *testing.T) {
		frame := buildRawFrame([]int64{10, 10}, []float64{1, 2})
		_, err := DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrDuplicateKey)
	})

	t.Run("GarbagePayload", func(t *testing.T) {
		s := regularGrid(t, 16)
		frame, err := EncodeColumnar(s,
			WithKeyCompression(format.CompressionZstd),
			WithValueCompression(format.CompressionZstd),
		)
		require.NoError(t, err)
		for i := headerSize; i < len(frame); i++ {
			frame[i] = 0xAB
		}
		_, err = DecodeColumnar(frame)
		require.ErrorIs(t, err, errs.ErrCorruptedPayload)
	})
}
