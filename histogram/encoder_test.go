package histogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openroads/tthist/errs"
	"github.com/openroads/tthist/format"
)

func encodeMeasurements(t *testing.T, ms []Measurement, opts ...EncoderOption) []byte {
	t.Helper()

	encoder, err := NewEncoder(opts...)
	require.NoError(t, err)
	require.NoError(t, encoder.AddSlice(ms))

	payload, err := encoder.Finish()
	require.NoError(t, err)

	return payload
}

func TestEncodeSmallHistogram(t *testing.T) {
	ms := []Measurement{
		{VehicleType: format.VehicleTypeAuto, SegmentID: 2, NextSegmentID: 5, TimeBucket: hourly(100), DurationBucket: 1, Count: 3},
		{VehicleType: format.VehicleTypeAuto, SegmentID: 2, NextSegmentID: 7, TimeBucket: hourly(100), DurationBucket: 2, Count: 1},
		{VehicleType: format.VehicleTypeAuto, SegmentID: 4, NextSegmentID: 5, TimeBucket: hourly(101), DurationBucket: 1, Count: 9},
	}

	payload := encodeMeasurements(t, ms)
	require.NotEmpty(t, payload)

	decoder, err := NewDecoder(payload)
	require.NoError(t, err)

	require.Equal(t, format.VehicleTypeAuto, decoder.VehicleType())
	require.Equal(t, 5, decoder.NumSegments())

	for _, id := range []uint64{0, 1, 3} {
		require.False(t, decoder.Populated(id), "segment %d must be null", id)
		require.Nil(t, decoder.Dictionary(id))
	}

	require.True(t, decoder.Populated(2))
	require.Equal(t, []uint64{5, 7}, decoder.Dictionary(2))

	var entries []Entry
	for _, e := range decoder.Entries(2) {
		entries = append(entries, e)
	}
	require.Len(t, entries, 2)
	require.Equal(t, Entry{WeeklySlot: WeeklySlot(100), NextSegmentID: 5, DurationBucket: 1, Count: 3}, entries[0])
	require.Equal(t, Entry{WeeklySlot: WeeklySlot(100), NextSegmentID: 7, DurationBucket: 2, Count: 1}, entries[1])

	require.True(t, decoder.Populated(4))
	require.Equal(t, []uint64{5}, decoder.Dictionary(4))
	for i, e := range decoder.Entries(4) {
		require.Zero(t, i)
		require.Equal(t, Entry{WeeklySlot: WeeklySlot(101), NextSegmentID: 5, DurationBucket: 1, Count: 9}, e)
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	payload, err := encoder.Finish()
	require.NoError(t, err)
	require.Nil(t, payload)
}

func TestEncodeDenseArrayLength(t *testing.T) {
	ms := []Measurement{measurement(0, 1), measurement(17, 3), measurement(99, 4)}

	decoder, err := NewDecoder(encodeMeasurements(t, ms))
	require.NoError(t, err)
	require.Equal(t, 100, decoder.NumSegments())

	populated := 0
	for id := uint64(0); id < 100; id++ {
		if decoder.Populated(id) {
			populated++
		}
	}
	require.Equal(t, 3, populated)
}

func TestEncodeSegmentZeroOnly(t *testing.T) {
	decoder, err := NewDecoder(encodeMeasurements(t, []Measurement{measurement(0, 9)}))
	require.NoError(t, err)
	require.Equal(t, 1, decoder.NumSegments())
	require.True(t, decoder.Populated(0))
	require.Equal(t, []uint64{9}, decoder.Dictionary(0))
}

func TestEncodePreservesEntryOrder(t *testing.T) {
	// duplicate (segment, next) pairs with distinct buckets must come
	// back in input order
	ms := []Measurement{
		{VehicleType: format.VehicleTypeAuto, SegmentID: 3, NextSegmentID: 5, TimeBucket: hourly(250), DurationBucket: 9, Count: 2},
		{VehicleType: format.VehicleTypeAuto, SegmentID: 3, NextSegmentID: 5, TimeBucket: hourly(101), DurationBucket: 4, Count: 7},
		{VehicleType: format.VehicleTypeAuto, SegmentID: 3, NextSegmentID: 5, TimeBucket: hourly(180), DurationBucket: 1, Count: 1},
		{VehicleType: format.VehicleTypeAuto, SegmentID: 3, NextSegmentID: 8, TimeBucket: hourly(96), DurationBucket: 2, Count: 5},
	}

	decoder, err := NewDecoder(encodeMeasurements(t, ms))
	require.NoError(t, err)

	var got []Entry
	for _, e := range decoder.Entries(3) {
		got = append(got, e)
	}

	require.Len(t, got, len(ms))
	for i, m := range ms {
		require.Equal(t, WeeklySlot(m.TimeBucket.Index), got[i].WeeklySlot, "entry %d", i)
		require.Equal(t, m.NextSegmentID, got[i].NextSegmentID, "entry %d", i)
		require.Equal(t, m.DurationBucket, got[i].DurationBucket, "entry %d", i)
		require.Equal(t, m.Count, got[i].Count, "entry %d", i)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	// a denser tile: gaps, a full-ish dictionary, several runs
	var ms []Measurement
	for seg := uint64(0); seg < 40; seg += 3 {
		for next := uint64(0); next < 20; next++ {
			ms = append(ms, Measurement{
				VehicleType:    format.VehicleTypeAuto,
				SegmentID:      seg,
				NextSegmentID:  seg + next,
				TimeBucket:     hourly(96 + seg*7 + next),
				DurationBucket: uint8(next % 16),
				Count:          uint32(seg + next + 1),
			})
		}
	}

	decoder, err := NewDecoder(encodeMeasurements(t, ms))
	require.NoError(t, err)
	require.Equal(t, 40, decoder.NumSegments())

	var decoded []Measurement
	for seg := uint64(0); seg < uint64(decoder.NumSegments()); seg++ {
		for _, e := range decoder.Entries(seg) {
			decoded = append(decoded, Measurement{
				VehicleType:    decoder.VehicleType(),
				SegmentID:      seg,
				NextSegmentID:  e.NextSegmentID,
				DurationBucket: e.DurationBucket,
				Count:          e.Count,
			})
		}
	}

	require.Len(t, decoded, len(ms))
	for i := range ms {
		require.Equal(t, ms[i].SegmentID, decoded[i].SegmentID, "entry %d", i)
		require.Equal(t, ms[i].NextSegmentID, decoded[i].NextSegmentID, "entry %d", i)
		require.Equal(t, ms[i].DurationBucket, decoded[i].DurationBucket, "entry %d", i)
		require.Equal(t, ms[i].Count, decoded[i].Count, "entry %d", i)
	}
}

func TestAddRejectsMixedVehicleTypes(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Add(measurement(1, 2)))

	bus := measurement(1, 3)
	bus.VehicleType = format.VehicleTypeBus
	require.ErrorIs(t, encoder.Add(bus), errs.ErrMixedVehicleTypes)
}

func TestAddRejectsUnsupportedVehicleType(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	bus := measurement(1, 2)
	bus.VehicleType = format.VehicleTypeBus
	require.ErrorIs(t, encoder.Add(bus), errs.ErrUnsupportedVehicleType)
}

func TestAddRejectsNonHourlyBucket(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	m := measurement(1, 2)
	m.TimeBucket.Size = format.BucketDaily
	require.ErrorIs(t, encoder.Add(m), errs.ErrNonHourlyBucket)
}

func TestAddRejectsUnsortedInput(t *testing.T) {
	t.Run("segment ids descend", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)
		require.NoError(t, encoder.Add(measurement(5, 1)))
		require.ErrorIs(t, encoder.Add(measurement(4, 1)), errs.ErrUnsortedInput)
	})

	t.Run("next segment ids descend within a run", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)
		require.NoError(t, encoder.Add(measurement(5, 9)))
		require.ErrorIs(t, encoder.Add(measurement(5, 3)), errs.ErrUnsortedInput)
	})

	t.Run("duplicate keys are allowed", func(t *testing.T) {
		encoder, err := NewEncoder()
		require.NoError(t, err)
		require.NoError(t, encoder.Add(measurement(5, 9)))
		require.NoError(t, encoder.Add(measurement(5, 9)))
	})

	t.Run("validation can be disabled", func(t *testing.T) {
		encoder, err := NewEncoder(WithOrderValidation(false))
		require.NoError(t, err)
		require.NoError(t, encoder.Add(measurement(5, 1)))
		require.NoError(t, encoder.Add(measurement(4, 1)))
	})
}

func TestAddRejectsHugeSegmentID(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.ErrorIs(t, encoder.Add(measurement(math.MaxInt32, 1)), errs.ErrSegmentIDTooLarge)

	// largest addressable id is accepted by Add
	require.NoError(t, encoder.Add(measurement(math.MaxInt32-1, 1)))
}

func TestFinishRejectsDictionaryOverflow(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	for next := uint64(0); next < maxDictionarySize+1; next++ {
		require.NoError(t, encoder.Add(measurement(1, next)))
	}

	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrDictionaryTooLarge)
}

func TestFinishRejectsHugeNextSegmentID(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Add(measurement(1, math.MaxInt32)))

	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrSegmentIDTooLarge)
}

func TestEncoderIsSingleUse(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Add(measurement(1, 2)))
	require.Equal(t, 1, encoder.Len())

	_, err = encoder.Finish()
	require.NoError(t, err)

	require.ErrorIs(t, encoder.Add(measurement(2, 3)), errs.ErrEncoderFinished)
	_, err = encoder.Finish()
	require.ErrorIs(t, err, errs.ErrEncoderFinished)
}

func TestNewEncoderRejectsBadInitialSize(t *testing.T) {
	_, err := NewEncoder(WithInitialSize(0))
	require.Error(t, err)

	_, err = NewEncoder(WithInitialSize(1024))
	require.NoError(t, err)
}
