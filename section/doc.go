// Package section defines the binary layout of the sealed histogram
// container.
//
// A sealed blob is a fixed 16-byte header followed by the (optionally
// compressed) FlatBuffers histogram payload:
//
//	┌────────────────────────────────────────────────────────┐
//	│ Header (16 bytes, fixed, little-endian)                │
//	│  - Flag (2 bytes): magic number + reserved bits        │
//	│  - CompressionType (1 byte)                            │
//	│  - VehicleType (1 byte)                                │
//	│  - PayloadSize (4 bytes): uncompressed payload length  │
//	│  - Checksum (8 bytes): xxHash64 of uncompressed payload│
//	├────────────────────────────────────────────────────────┤
//	│ Payload (variable)                                     │
//	└────────────────────────────────────────────────────────┘
//
// The header is self-contained: a reader can reject a foreign or
// corrupted file from the first 16 bytes without touching the payload.
package section
