// Package format defines the shared wire-level enums of the columnar codec.
package format

type (
	KeyEncoding     uint8
	CompressionType uint8
)

const (
	KeyEncodingRaw   KeyEncoding = 0x1 // KeyEncodingRaw stores keys as fixed-width integers.
	KeyEncodingDelta KeyEncoding = 0x2 // KeyEncodingDelta stores keys as delta-of-delta varints.

	CompressionNone CompressionType = 0x1 // CompressionNone applies no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd applies Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 applies S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 applies LZ4 block compression.
)

func (e KeyEncoding) String() string {
	switch e {
	case KeyEncodingRaw:
		return "Raw"
	case KeyEncodingDelta:
		return "Delta"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
