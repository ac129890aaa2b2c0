// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// It combines the ByteOrder and AppendByteOrder interfaces from the
// standard encoding/binary package into a single EndianEngine interface,
// so serialization code can both read fixed-width fields and append them
// to growing buffers through one value.
//
// The histogram payload itself is FlatBuffers-encoded and therefore
// always little-endian; the engine is used by the section package for
// the container header, which is little-endian as well. The big-endian
// engine exists for tooling that needs to inspect foreign buffers.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from
// encoding/binary. It is satisfied by binary.LittleEndian and
// binary.BigEndian, so it carries no state and is safe for concurrent
// use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
// It is the byte order of every tthist on-disk structure.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
