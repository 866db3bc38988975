package compress

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tickline/tickline/errs"
	"github.com/tickline/tickline/format"
)

func repetitivePayload(size int) []byte {
	pattern := []byte("tick:0001,value:42.5;")
	data := make([]byte, 0, size)
	for len(data) < size {
		data = append(data, pattern...)
	}

	return data[:size]
}

func randomPayload(size int) []byte {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, size)
	rng.Read(data)

	return data
}

func TestCodecRoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"empty":      {},
		"tiny":       {0x01},
		"repetitive": repetitivePayload(16 * 1024),
		"random":     randomPayload(4 * 1024),
	}

	codecs := map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}

	for codecName, codec := range codecs {
		for payloadName, payload := range payloads {
			t.Run(codecName+"/"+payloadName, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)

				if len(payload) == 0 {
					require.Empty(t, decompressed)
					return
				}
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestCodecShrinksRepetitiveData(t *testing.T) {
	payload := repetitivePayload(32 * 1024)

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestNoOpSharesMemory(t *testing.T) {
	payload := []byte{1, 2, 3}
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, &payload[0], &compressed[0])
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "compression type %s", ct)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestDecompressRejectsGarbage(t *testing.T) {
	garbage := []byte("definitely not a compressed frame")

	for name, codec := range map[string]Codec{
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := codec.Decompress(garbage)
			require.Error(t, err)
		})
	}
}
