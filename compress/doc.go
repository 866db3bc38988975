// Package compress provides the payload compression codecs used by the
// columnar codec.
//
// Compression is applied per payload after key/value encoding. Four
// algorithms are supported, selected through format.CompressionType:
//
//   - None: pass-through (format.CompressionNone)
//   - Zstd: best ratio, moderate speed (format.CompressionZstd)
//   - S2: balanced ratio and speed (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Zstd has two build variants: a cgo binding (valyala/gozstd) when cgo is
// available and a pure-Go fallback (klauspost/compress/zstd) otherwise. Both
// produce interoperable Zstandard frames.
//
// All implementations are safe for concurrent use.
package compress
