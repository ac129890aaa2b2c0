package histogram

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/openroads/tthist/internal/fbs/histogrambuf"
)

// The FlatBuffers builder grows its buffer from the back toward the
// front: every prepended vector element lands immediately before the
// previous one. A list that must read in application order therefore
// has to be fed to the builder last element first. All three vector
// types of the format go through the helpers in this file, so the
// reversal lives in exactly one place.

// wireEntry is one fixed-width entry in its final logical order,
// computed before any builder calls so the prepend loop below stays
// error-free and purely mechanical.
type wireEntry struct {
	daySlot        uint16
	nextSegmentIdx uint8
	durationBucket uint8
	count          uint32
}

// prependDictionary writes a segment's sorted next-segment-id vector.
func prependDictionary(b *flatbuffers.Builder, dict []uint32) flatbuffers.UOffsetT {
	histogrambuf.SegmentStartNextSegmentIdsVector(b, len(dict))
	for i := len(dict) - 1; i >= 0; i-- {
		b.PrependUint32(dict[i])
	}

	return b.EndVector(len(dict))
}

// prependEntries writes a segment's entry vector, preserving the input
// order of the run.
func prependEntries(b *flatbuffers.Builder, entries []wireEntry) flatbuffers.UOffsetT {
	histogrambuf.SegmentStartEntriesVector(b, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		histogrambuf.CreateEntry(b, e.daySlot, e.nextSegmentIdx, e.durationBucket, e.count)
	}

	return b.EndVector(len(entries))
}

// prependSegmentOffsets writes the dense segment vector so that element
// i of the final buffer is the segment for id i.
func prependSegmentOffsets(b *flatbuffers.Builder, offsets []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	histogrambuf.HistogramStartSegmentsVector(b, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}

	return b.EndVector(len(offsets))
}
