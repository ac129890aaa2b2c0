package compress

// NoOpCompressor passes payloads through without compression.
//
// It is the right choice when the sealed blob will be memory-mapped for
// random reads, or when the payload is small enough that framing
// overhead would exceed the savings.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data unchanged.
//
// The returned slice shares the same underlying memory as the input, so
// callers must not modify the input afterwards.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data unchanged.
//
// The returned slice shares the same underlying memory as the input, so
// callers must not modify the input afterwards.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
