package compress

// ZstdCompressor provides Zstandard compression for payloads where ratio
// matters more than speed.
//
// The implementation is selected at build time: with cgo available the
// valyala/gozstd binding is used, otherwise the pure-Go
// klauspost/compress/zstd implementation with pooled encoders and decoders.
// Both variants read each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
