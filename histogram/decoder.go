package histogram

import (
	"iter"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/openroads/tthist/errs"
	"github.com/openroads/tthist/format"
	"github.com/openroads/tthist/internal/fbs/histogrambuf"
)

// Entry is one decoded historical observation within a segment, with
// the destination index already resolved back to its next-segment id.
type Entry struct {
	WeeklySlot     uint16
	NextSegmentID  uint64
	DurationBucket uint8
	Count          uint32
}

// Decoder reads a histogram payload produced by Encoder.Finish.
//
// It operates directly on the payload bytes without copying them; the
// payload must not be mutated while the decoder is in use.
type Decoder struct {
	root *histogrambuf.Histogram
}

// minPayloadSize is a lower bound for any finished buffer: root offset,
// vtable, and table header cannot fit in less.
const minPayloadSize = int(flatbuffers.SizeUOffsetT) + 8

// NewDecoder creates a Decoder for the given payload.
func NewDecoder(payload []byte) (*Decoder, error) {
	if len(payload) < minPayloadSize {
		return nil, errs.ErrInvalidPayload
	}

	return &Decoder{root: histogrambuf.GetRootAsHistogram(payload, 0)}, nil
}

// VehicleType returns the vehicle type tag of the histogram.
func (d *Decoder) VehicleType() format.VehicleType {
	return format.VehicleType(d.root.VehicleType())
}

// NumSegments returns the length of the dense segment array,
// i.e. maxSegmentId+1 of the encoded input.
func (d *Decoder) NumSegments() int {
	return d.root.SegmentsLength()
}

// Populated reports whether the given segment id has observations.
// Out-of-range ids and null segments both report false.
func (d *Decoder) Populated(segmentID uint64) bool {
	seg, ok := d.segment(segmentID)

	return ok && seg.EntriesLength() > 0
}

// Dictionary returns the sorted next-segment-id dictionary of the given
// segment, or nil for null and out-of-range segments.
func (d *Decoder) Dictionary(segmentID uint64) []uint64 {
	seg, ok := d.segment(segmentID)
	if !ok {
		return nil
	}

	n := seg.NextSegmentIdsLength()
	if n == 0 {
		return nil
	}

	dict := make([]uint64, n)
	for i := range n {
		dict[i] = uint64(seg.NextSegmentIds(i))
	}

	return dict
}

// Entries returns a sequence of (index, Entry) for the given segment,
// in the order the measurements were encoded. Null and out-of-range
// segments yield an empty sequence.
func (d *Decoder) Entries(segmentID uint64) iter.Seq2[int, Entry] {
	seg, ok := d.segment(segmentID)
	if !ok {
		return func(yield func(int, Entry) bool) {}
	}

	return func(yield func(int, Entry) bool) {
		var raw histogrambuf.Entry
		for i := range seg.EntriesLength() {
			if !seg.Entries(&raw, i) {
				return
			}

			entry := Entry{
				WeeklySlot:     raw.DayHour(),
				NextSegmentID:  uint64(seg.NextSegmentIds(int(raw.NextSegmentIdx()))),
				DurationBucket: raw.DurationBucket(),
				Count:          raw.Count(),
			}
			if !yield(i, entry) {
				return
			}
		}
	}
}

func (d *Decoder) segment(segmentID uint64) (*histogrambuf.Segment, bool) {
	if segmentID >= uint64(d.root.SegmentsLength()) {
		return nil, false
	}

	var seg histogrambuf.Segment
	if !d.root.Segments(&seg, int(segmentID)) {
		return nil, false
	}

	return &seg, true
}
