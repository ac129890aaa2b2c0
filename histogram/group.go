package histogram

import "iter"

// groups partitions sorted measurements into maximal contiguous runs
// sharing a segment id, yielding (segmentID, run) pairs lazily. Runs are
// subslices of the input; they are valid until the input is mutated.
//
// The input must be sorted ascending by segment id. Add enforces that
// by default, so by the time Finish iterates here the precondition
// holds unless the caller disabled order validation.
func groups(ms []Measurement) iter.Seq2[uint64, []Measurement] {
	return func(yield func(uint64, []Measurement) bool) {
		start := 0
		for start < len(ms) {
			id := ms[start].SegmentID
			end := start + 1
			for end < len(ms) && ms[end].SegmentID == id {
				end++
			}

			if !yield(id, ms[start:end:end]) {
				return
			}
			start = end
		}
	}
}
