package histogram

import (
	"fmt"
	"math"
	"slices"

	"github.com/openroads/tthist/errs"
)

// maxDictionarySize bounds the per-segment destination dictionary.
// Entry.next_segment_idx is a single byte on the wire.
const maxDictionarySize = 255

// buildDictionary collects the distinct next-segment ids of one run
// into a sorted slice. The scratch slice (typically pooled) is used as
// backing storage when it has enough capacity.
func buildDictionary(run []Measurement, scratch []uint32) ([]uint32, error) {
	dict := scratch[:0]
	for i := range run {
		next := run[i].NextSegmentID
		if next >= math.MaxInt32 {
			return nil, fmt.Errorf("segment %d: next segment id %d: %w",
				run[i].SegmentID, next, errs.ErrSegmentIDTooLarge)
		}
		dict = append(dict, uint32(next))
	}

	slices.Sort(dict)
	dict = slices.Compact(dict)

	if len(dict) > maxDictionarySize {
		return nil, fmt.Errorf("segment %d has %d distinct next segments: %w",
			run[0].SegmentID, len(dict), errs.ErrDictionaryTooLarge)
	}

	return dict, nil
}

// destinationIndex resolves a next-segment id to its position in the
// run's dictionary. The dictionary was built from the same run, so a
// miss indicates an encoder defect rather than bad input.
func destinationIndex(dict []uint32, next uint64) (uint8, error) {
	idx, ok := slices.BinarySearch(dict, uint32(next))
	if !ok {
		return 0, fmt.Errorf("next segment id %d: %w", next, errs.ErrDictionaryMiss)
	}

	return uint8(idx), nil
}
