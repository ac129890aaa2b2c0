package pool

import "sync"

// uint32SlicePool recycles the per-segment dictionary scratch slices.
// A histogram encode builds one dictionary per populated segment, so the
// pool saves an allocation per segment on large tiles.
var uint32SlicePool = sync.Pool{
	New: func() any { return &[]uint32{} },
}

// GetUint32Slice retrieves an empty uint32 slice from the pool with at
// least the given capacity.
//
// The caller must call the returned cleanup function (typically with
// defer) to return the slice to the pool, and must not retain the slice
// afterwards.
func GetUint32Slice(capacity int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < capacity {
		slice = make([]uint32, 0, capacity)
		*ptr = slice
	}

	return slice, func() { uint32SlicePool.Put(ptr) }
}
