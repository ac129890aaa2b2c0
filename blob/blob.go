package blob

import (
	"fmt"
	"math"

	"github.com/openroads/tthist/compress"
	"github.com/openroads/tthist/errs"
	"github.com/openroads/tthist/format"
	"github.com/openroads/tthist/histogram"
	"github.com/openroads/tthist/internal/hash"
	"github.com/openroads/tthist/internal/options"
	"github.com/openroads/tthist/internal/pool"
	"github.com/openroads/tthist/section"
)

// Blob is a sealed histogram container: a section.Header followed by
// the (optionally compressed) histogram payload.
//
// A Blob is immutable once created. It is obtained either from Seal
// (producing side) or Open (consuming side).
type Blob struct {
	header  section.Header
	payload []byte // uncompressed histogram payload
	data    []byte // full container: header + compressed payload
}

// Seal wraps a histogram payload into a container.
//
// The payload must be non-empty; an encoder that produced no histogram
// (empty input) has nothing to seal, and callers should skip the write
// entirely in that case.
//
// Parameters:
//   - payload: Raw histogram payload from histogram.Encoder.Finish
//   - vehicleType: Vehicle type tag echoed into the header
//   - opts: Optional sealing configuration (compression codec)
//
// Returns:
//   - *Blob: The sealed container
//   - error: Configuration or compression error
func Seal(payload []byte, vehicleType format.VehicleType, opts ...SealOption) (*Blob, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("cannot seal an empty payload")
	}
	if uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("payload size %d exceeds container limit", len(payload))
	}

	cfg := SealConfig{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}

	header := section.NewHeader(vehicleType, cfg.compression)
	header.PayloadSize = uint32(len(payload))
	header.Checksum = hash.Checksum(payload)

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.MustWrite(header.Bytes())
	buf.MustWrite(compressed)

	return &Blob{
		header:  *header,
		payload: payload,
		data:    buf.CopyBytes(),
	}, nil
}

// Open parses a sealed container, decompresses its payload, and
// verifies the checksum.
//
// Returns:
//   - *Blob: The opened container with its payload ready for decoding
//   - error: Header validation, decompression, or integrity errors
func Open(data []byte) (*Blob, error) {
	header, err := section.ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(format.CompressionType(header.CompressionType))
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[section.HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	if len(payload) != int(header.PayloadSize) {
		return nil, fmt.Errorf("payload is %d bytes, header declares %d: %w",
			len(payload), header.PayloadSize, errs.ErrPayloadTruncated)
	}

	if hash.Checksum(payload) != header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	return &Blob{
		header:  header,
		payload: payload,
		data:    data,
	}, nil
}

// Bytes returns the full sealed container, ready to be handed to an
// output sink in a single write.
func (b *Blob) Bytes() []byte {
	return b.data
}

// Payload returns the uncompressed histogram payload.
func (b *Blob) Payload() []byte {
	return b.payload
}

// VehicleType returns the vehicle type tag from the header.
func (b *Blob) VehicleType() format.VehicleType {
	return format.VehicleType(b.header.VehicleType)
}

// Compression returns the payload compression codec.
func (b *Blob) Compression() format.CompressionType {
	return format.CompressionType(b.header.CompressionType)
}

// Decoder creates a histogram.Decoder over the blob's payload.
func (b *Blob) Decoder() (*histogram.Decoder, error) {
	return histogram.NewDecoder(b.payload)
}
