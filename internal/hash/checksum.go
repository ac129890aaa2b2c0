package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 digest of the given payload.
// It is stored in the container header and verified on open.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
