// Package errs defines the sentinel errors shared across tthist packages.
//
// Errors fall into three groups: input-contract violations (the caller
// handed the encoder a sequence that breaks its preconditions), capacity
// violations (the input is well-formed but does not fit the wire
// format's addressing widths), and container errors raised when opening
// a sealed blob. Callers should match them with errors.Is; call sites
// wrap them with additional context via fmt.Errorf and %w.
package errs

import "errors"

// Input-contract violations.
var (
	// ErrMixedVehicleTypes is returned when the input sequence contains
	// more than one vehicle type. A histogram holds exactly one.
	ErrMixedVehicleTypes = errors.New("measurements contain mixed vehicle types")

	// ErrUnsupportedVehicleType is returned for any vehicle type other
	// than format.VehicleTypeAuto.
	ErrUnsupportedVehicleType = errors.New("unsupported vehicle type")

	// ErrNonHourlyBucket is returned when a measurement carries a time
	// bucket size other than format.BucketHourly.
	ErrNonHourlyBucket = errors.New("time bucket size is not hourly")

	// ErrUnsortedInput is returned when measurements are not sorted by
	// (segment id, next segment id) ascending.
	ErrUnsortedInput = errors.New("measurements are not sorted")
)

// Capacity violations.
var (
	// ErrSegmentIDTooLarge is returned when a segment id (or next
	// segment id) cannot serve as a dense array index, i.e. it is not
	// strictly below math.MaxInt32.
	ErrSegmentIDTooLarge = errors.New("segment id exceeds addressable range")

	// ErrDictionaryTooLarge is returned when a segment observes more
	// than 255 distinct next segments; destination indices must fit in
	// one byte.
	ErrDictionaryTooLarge = errors.New("next segment dictionary exceeds 255 entries")
)

// ErrDictionaryMiss indicates an internal defect: a next segment id was
// not found in the dictionary built from its own run.
var ErrDictionaryMiss = errors.New("next segment id missing from its dictionary")

// ErrEncoderFinished is returned when an encoder is used after Finish.
// Encoders are single-use; create a new one per histogram.
var ErrEncoderFinished = errors.New("encoder already finished")

// Container errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid header size")
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrPayloadTruncated   = errors.New("payload shorter than header declares")
)

// ErrInvalidPayload is returned when a buffer is too small to hold a
// histogram root table.
var ErrInvalidPayload = errors.New("buffer is not a histogram payload")
