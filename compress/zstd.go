package compress

// ZstdCompressor compresses payloads with Zstandard.
//
// It is the default codec for archived weekly tiles: the dense
// null-segment runs in sparse histograms routinely compress 20:1 or
// better, and decompression stays fast enough for interactive reads.
//
// Two implementations back this type: a cgo build uses valyala/gozstd
// (bindings to the reference C library), and a pure-Go build falls back
// to klauspost/compress/zstd. Both produce interchangeable frames.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
