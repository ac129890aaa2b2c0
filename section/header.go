package section

import (
	"github.com/openroads/tthist/endian"
	"github.com/openroads/tthist/errs"
	"github.com/openroads/tthist/format"
)

const (
	// HeaderSize is the fixed container header size in bytes.
	HeaderSize = 16

	// MagicHistogramV1Opt is the version 1 magic number for sealed
	// histogram blobs, occupying bits 4-15 of the flag word.
	MagicHistogramV1Opt = 0xEC10

	// MagicNumberMask selects the magic number bits of the flag.
	MagicNumberMask = 0xFFF0
	// ReservedBitsMask selects the flag bits kept at zero for future use.
	ReservedBitsMask = 0x000F
)

// Header is the fixed-size header at the start of a sealed histogram
// blob.
type Header struct {
	// Flag packs the magic number (bits 4-15) with reserved bits (0-3).
	Flag uint16 // byte offset 0-1
	// CompressionType is the codec applied to the payload.
	CompressionType uint8 // byte offset 2
	// VehicleType echoes the vehicle type tag of the payload so sinks
	// can route a blob without decompressing it.
	VehicleType uint8 // byte offset 3
	// PayloadSize is the uncompressed payload length in bytes.
	PayloadSize uint32 // byte offset 4-7
	// Checksum is the xxHash64 digest of the uncompressed payload.
	Checksum uint64 // byte offset 8-15
}

// NewHeader creates a Header for the given vehicle type and compression.
// PayloadSize and Checksum are filled in by the sealer.
func NewHeader(vehicleType format.VehicleType, compression format.CompressionType) *Header {
	return &Header{
		Flag:            MagicHistogramV1Opt,
		CompressionType: uint8(compression),
		VehicleType:     uint8(vehicleType),
	}
}

// Bytes serializes the Header into a 16-byte slice.
func (h *Header) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := make([]byte, HeaderSize)
	engine.PutUint16(b[0:2], h.Flag)
	b[2] = h.CompressionType
	b[3] = h.VehicleType
	engine.PutUint32(b[4:8], h.PayloadSize)
	engine.PutUint64(b[8:16], h.Checksum)

	return b
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 16 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 16 bytes, or a
//     validation error for the magic number or compression type
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()
	h.Flag = engine.Uint16(data[0:2])
	h.CompressionType = data[2]
	h.VehicleType = data[3]
	h.PayloadSize = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return h.Validate()
}

// Validate checks the magic number and compression type.
func (h *Header) Validate() error {
	if h.Flag&MagicNumberMask != MagicHistogramV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	switch format.CompressionType(h.CompressionType) {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
	default:
		return errs.ErrInvalidCompression
	}

	return nil
}

// ParseHeader parses a Header from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice containing at least a full header
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrInvalidHeaderSize or validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
