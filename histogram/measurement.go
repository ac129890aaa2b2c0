package histogram

import "github.com/openroads/tthist/format"

// TimeBucket locates a measurement in absolute time.
// Index counts whole buckets since the histogram epoch; only hourly
// buckets are accepted by the encoder.
type TimeBucket struct {
	Size  format.BucketSize
	Index uint64
}

// Measurement is one aggregated travel-time observation: traversals of
// a road segment toward a specific next segment, during one time
// bucket, falling into one duration bucket.
//
// Measurements are owned by the caller; the encoder only reads them.
type Measurement struct {
	VehicleType    format.VehicleType
	SegmentID      uint64
	NextSegmentID  uint64
	TimeBucket     TimeBucket
	DurationBucket uint8
	Count          uint32
}
