package histogram

import (
	"fmt"
	"math"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/openroads/tthist/errs"
	"github.com/openroads/tthist/format"
	"github.com/openroads/tthist/internal/fbs/histogrambuf"
	"github.com/openroads/tthist/internal/options"
	"github.com/openroads/tthist/internal/pool"
)

// defaultInitialSize is the initial capacity of the builder buffer.
// A typical weekly tile with a few thousand populated segments fits
// without reallocation.
const defaultInitialSize = 64 * 1024

// EncoderConfig holds encoder configuration applied through functional
// options.
type EncoderConfig struct {
	validateOrder bool
	initialSize   int
}

// EncoderOption represents a functional option for configuring the EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithOrderValidation enables or disables the input-order check in Add.
//
// It is enabled by default: out-of-order input would otherwise produce
// silently wrong groupings. Callers that already guarantee sortedness
// (e.g. records straight out of an ORDER BY query) may disable it.
func WithOrderValidation(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.validateOrder = enabled
	})
}

// WithInitialSize sets the initial builder buffer capacity in bytes.
func WithInitialSize(size int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if size <= 0 {
			return fmt.Errorf("initial size must be positive, got %d", size)
		}
		c.initialSize = size

		return nil
	})
}

// Encoder accumulates measurements and encodes them into a histogram
// payload.
//
// Measurements must arrive sorted ascending by (segment id, next
// segment id) and share a single vehicle type; violations are reported
// by Add, so a failed encode never reaches Finish with bad state.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After calling
// Finish, create a new encoder for further encoding.
type Encoder struct {
	cfg          EncoderConfig
	measurements []Measurement
	vehicleType  format.VehicleType
	locked       bool // vehicle type fixed by the first measurement
	finished     bool
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	cfg := EncoderConfig{
		validateOrder: true,
		initialSize:   defaultInitialSize,
	}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{cfg: cfg}, nil
}

// Add appends one measurement, validating the input contract:
// hourly bucket, supported and consistent vehicle type, addressable
// segment id, and (unless disabled) sort order.
func (e *Encoder) Add(m Measurement) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	if m.TimeBucket.Size != format.BucketHourly {
		return fmt.Errorf("measurement %d: bucket size %s: %w",
			len(e.measurements), m.TimeBucket.Size, errs.ErrNonHourlyBucket)
	}

	if !e.locked {
		if m.VehicleType != format.VehicleTypeAuto {
			return fmt.Errorf("vehicle type %s: %w", m.VehicleType, errs.ErrUnsupportedVehicleType)
		}
		e.vehicleType = m.VehicleType
		e.locked = true
	} else if m.VehicleType != e.vehicleType {
		return fmt.Errorf("measurement %d has vehicle type %s, histogram holds %s: %w",
			len(e.measurements), m.VehicleType, e.vehicleType, errs.ErrMixedVehicleTypes)
	}

	if m.SegmentID >= math.MaxInt32 {
		return fmt.Errorf("segment id %d: %w", m.SegmentID, errs.ErrSegmentIDTooLarge)
	}

	if e.cfg.validateOrder && len(e.measurements) > 0 {
		prev := e.measurements[len(e.measurements)-1]
		if m.SegmentID < prev.SegmentID ||
			(m.SegmentID == prev.SegmentID && m.NextSegmentID < prev.NextSegmentID) {
			return fmt.Errorf("measurement %d (segment %d, next %d): %w",
				len(e.measurements), m.SegmentID, m.NextSegmentID, errs.ErrUnsortedInput)
		}
	}

	e.measurements = append(e.measurements, m)

	return nil
}

// AddSlice appends measurements in order, stopping at the first
// rejected one.
func (e *Encoder) AddSlice(ms []Measurement) error {
	for i := range ms {
		if err := e.Add(ms[i]); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of accepted measurements.
func (e *Encoder) Len() int {
	return len(e.measurements)
}

// Finish encodes the accumulated measurements and returns the histogram
// payload.
//
// Empty input is a valid degenerate case: Finish returns a nil payload
// and a nil error, and the caller has nothing to write.
//
// Any error aborts the whole encode; no partial buffer is returned.
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	if len(e.measurements) == 0 {
		return nil, nil
	}

	// Add validated every id, so the last one bounds the dense array.
	maxSegmentID := e.measurements[len(e.measurements)-1].SegmentID
	numSegments := int(maxSegmentID) + 1

	b := flatbuffers.NewBuilder(e.cfg.initialSize)

	// one shared empty segment for every id with no observations
	histogrambuf.SegmentStart(b)
	nullSegment := histogrambuf.SegmentEnd(b)

	segmentOffsets := make([]flatbuffers.UOffsetT, 0, numSegments)
	nextID := uint64(0)

	for segmentID, run := range groups(e.measurements) {
		for nextID < segmentID {
			segmentOffsets = append(segmentOffsets, nullSegment)
			nextID++
		}

		offset, err := appendSegment(b, segmentID, run)
		if err != nil {
			return nil, err
		}

		segmentOffsets = append(segmentOffsets, offset)
		nextID = segmentID + 1
	}

	segments := prependSegmentOffsets(b, segmentOffsets)

	histogrambuf.HistogramStart(b)
	histogrambuf.HistogramAddVehicleType(b, byte(e.vehicleType))
	histogrambuf.HistogramAddSegments(b, segments)
	histogrambuf.FinishHistogramBuffer(b, histogrambuf.HistogramEnd(b))

	return b.FinishedBytes(), nil
}

// appendSegment encodes one populated segment: its destination
// dictionary, its entries in input order, and the segment table tying
// them together.
func appendSegment(b *flatbuffers.Builder, segmentID uint64, run []Measurement) (flatbuffers.UOffsetT, error) {
	scratch, release := pool.GetUint32Slice(len(run))
	defer release()

	dict, err := buildDictionary(run, scratch)
	if err != nil {
		return 0, err
	}

	entries := make([]wireEntry, len(run))
	for i := range run {
		m := &run[i]
		idx, err := destinationIndex(dict, m.NextSegmentID)
		if err != nil {
			return 0, fmt.Errorf("segment %d entry %d: %w", segmentID, i, err)
		}

		entries[i] = wireEntry{
			daySlot:        WeeklySlot(m.TimeBucket.Index),
			nextSegmentIdx: idx,
			durationBucket: m.DurationBucket,
			count:          m.Count,
		}
	}

	dictOffset := prependDictionary(b, dict)
	entriesOffset := prependEntries(b, entries)

	histogrambuf.SegmentStart(b)
	histogrambuf.SegmentAddSegmentId(b, segmentID)
	histogrambuf.SegmentAddNextSegmentIds(b, dictOffset)
	histogrambuf.SegmentAddEntries(b, entriesOffset)

	return histogrambuf.SegmentEnd(b), nil
}
