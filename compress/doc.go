// Package compress provides compression and decompression codecs for
// sealed histogram payloads.
//
// A histogram payload is a FlatBuffers buffer: mostly small integers,
// offset tables, and long runs of identical null-segment offsets for
// sparse tiles. Those runs compress extremely well, so the blob
// container applies one of these codecs to the whole payload before
// writing the 16-byte header in front of it.
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
// Four codecs are available, selected by format.CompressionType:
//
//   - None: payload stored as-is. For histograms that are read far more
//     often than written and are memory-mapped by the reader.
//   - Zstd: best ratio, the default for archived weekly tiles.
//   - S2: balanced ratio and speed.
//   - LZ4: fastest decompression, moderate ratio.
//
// Codecs are stateless values; the built-in instances returned by
// GetCodec are safe for concurrent use.
package compress
