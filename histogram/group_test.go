package histogram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openroads/tthist/format"
)

func hourly(index uint64) TimeBucket {
	return TimeBucket{Size: format.BucketHourly, Index: index}
}

func measurement(segmentID, nextSegmentID uint64) Measurement {
	return Measurement{
		VehicleType:   format.VehicleTypeAuto,
		SegmentID:     segmentID,
		NextSegmentID: nextSegmentID,
		TimeBucket:    hourly(100),
		Count:         1,
	}
}

func TestGroupsPartitionsRuns(t *testing.T) {
	ms := []Measurement{
		measurement(2, 5),
		measurement(2, 7),
		measurement(2, 7),
		measurement(4, 5),
		measurement(9, 1),
	}

	var ids []uint64
	var sizes []int
	for id, run := range groups(ms) {
		ids = append(ids, id)
		sizes = append(sizes, len(run))
		for i := range run {
			require.Equal(t, id, run[i].SegmentID)
		}
	}

	require.Equal(t, []uint64{2, 4, 9}, ids)
	require.Equal(t, []int{3, 1, 1}, sizes)
}

func TestGroupsEmptyInput(t *testing.T) {
	for range groups(nil) {
		t.Fatal("empty input must yield no groups")
	}
}

func TestGroupsSingleRun(t *testing.T) {
	ms := []Measurement{measurement(7, 1), measurement(7, 2)}

	count := 0
	for id, run := range groups(ms) {
		count++
		require.Equal(t, uint64(7), id)
		require.Len(t, run, 2)
	}
	require.Equal(t, 1, count)
}

func TestGroupsEarlyBreak(t *testing.T) {
	ms := []Measurement{measurement(1, 1), measurement(2, 1), measurement(3, 1)}

	seen := 0
	for range groups(ms) {
		seen++
		break
	}
	require.Equal(t, 1, seen)
}
