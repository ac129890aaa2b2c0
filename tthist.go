// Package tthist provides a compact, randomly-addressable binary format
// for weekly per-road-segment travel-time histograms.
//
// A histogram file covers one week and one vehicle type. Each road
// segment's observations are bucketed by hour of week and travel-time
// duration, with destination segments compressed through a per-segment
// dictionary so an entry fits in 8 bytes. Segments are stored in a
// dense array indexed directly by segment id, so readers can jump to
// any segment without a lookup table.
//
// # Basic Usage
//
// Encoding a week of measurements, pre-sorted by (segment id, next
// segment id):
//
//	import "github.com/openroads/tthist"
//
//	sealed, err := tthist.Encode(measurements,
//	    blob.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	if sealed == nil {
//	    return nil // empty input: nothing to write
//	}
//	err = os.WriteFile("auto.hist", sealed.Bytes(), 0o644)
//
// Reading it back:
//
//	decoder, err := tthist.Open(data)
//	for i, entry := range decoder.Entries(segmentID) {
//	    fmt.Println(i, entry.WeeklySlot, entry.NextSegmentID, entry.Count)
//	}
//
// # Package Structure
//
// This package provides convenient wrappers around the histogram and
// blob packages, which can be used directly for fine-grained control:
//
//   - histogram: the core encoder/decoder for the FlatBuffers payload
//   - blob: the sealed container (header, checksum, compression)
//   - format: shared enums (vehicle type, bucket size, compression)
//   - compress: payload compression codecs
//   - section: container header layout
package tthist

import (
	"github.com/openroads/tthist/blob"
	"github.com/openroads/tthist/histogram"
)

// Encode encodes sorted measurements into a sealed histogram blob.
//
// Empty input is a valid degenerate case: Encode returns (nil, nil) and
// the caller has nothing to write.
//
// Parameters:
//   - measurements: Observations sorted by (segment id, next segment id)
//   - opts: Optional sealing configuration (see blob.SealOption)
//
// Returns:
//   - *blob.Blob: The sealed histogram container, or nil for empty input
//   - error: An input-contract, capacity, or sealing error
func Encode(measurements []histogram.Measurement, opts ...blob.SealOption) (*blob.Blob, error) {
	encoder, err := histogram.NewEncoder()
	if err != nil {
		return nil, err
	}

	if err := encoder.AddSlice(measurements); err != nil {
		return nil, err
	}

	payload, err := encoder.Finish()
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}

	return blob.Seal(payload, measurements[0].VehicleType, opts...)
}

// Open opens a sealed histogram blob and returns a decoder over its
// payload.
func Open(data []byte) (*histogram.Decoder, error) {
	opened, err := blob.Open(data)
	if err != nil {
		return nil, err
	}

	return opened.Decoder()
}
