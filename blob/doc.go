// Package blob seals histogram payloads into self-describing binary
// containers and opens them again.
//
// The histogram payload produced by the histogram package is a bare
// FlatBuffers buffer: compact and directly addressable, but with no
// framing, no integrity check, and no codec tag. A sealed blob adds a
// fixed 16-byte section.Header carrying a magic number, the vehicle
// type, the compression codec, the uncompressed payload size, and an
// xxHash64 checksum, followed by the (optionally compressed) payload.
//
// Sealing never alters the payload itself; Open returns byte-identical
// payload data for any codec.
//
//	payload, _ := encoder.Finish()
//	sealed, _ := blob.Seal(payload, format.VehicleTypeAuto,
//	    blob.WithCompression(format.CompressionZstd))
//	os.WriteFile("auto.hist", sealed.Bytes(), 0o644)
//
//	data, _ := os.ReadFile("auto.hist")
//	opened, _ := blob.Open(data)
//	decoder, _ := opened.Decoder()
package blob
