// Package histogram encodes a week of per-segment travel-time
// measurements into a compact, randomly-addressable FlatBuffers payload.
//
// # Input contract
//
// The encoder consumes Measurement values sorted ascending by
// (segment id, next segment id), all sharing one vehicle type and
// hourly time buckets. Sortedness is validated by default and can be
// turned off with WithOrderValidation(false) for callers that already
// guarantee it.
//
// # Payload layout
//
// The payload is a single FlatBuffers buffer (schema/histogram.fbs):
// a vehicle type tag and a dense vector of Segment tables indexed
// directly by segment id. Ids with no observations point at one shared
// empty segment, so readers can separate "never observed" from
// "observed with zero traversals" without a lookup table. Each
// populated segment carries a sorted dictionary of next-segment ids and
// a vector of fixed-width entries; an entry stores its hour-of-week
// slot, its one-byte index into the dictionary, a duration bucket, and
// an observation count.
//
// # Encoding workflow
//
//	encoder, _ := histogram.NewEncoder()
//	if err := encoder.AddSlice(measurements); err != nil {
//	    return err
//	}
//	payload, err := encoder.Finish() // nil payload for empty input
//
// A payload is read back through Decoder, which resolves dictionary
// indices to the original next-segment ids:
//
//	decoder, _ := histogram.NewDecoder(payload)
//	for i, entry := range decoder.Entries(segmentID) {
//	    fmt.Println(i, entry.NextSegmentID, entry.Count)
//	}
//
// Encoding is a pure, single-pass transformation with no internal
// concurrency; distinct encoder instances are independent and may be
// used from different goroutines.
package histogram
