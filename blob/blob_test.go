package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openroads/tthist/errs"
	"github.com/openroads/tthist/format"
	"github.com/openroads/tthist/histogram"
	"github.com/openroads/tthist/section"
)

func testPayload(t *testing.T) []byte {
	t.Helper()

	encoder, err := histogram.NewEncoder()
	require.NoError(t, err)

	for seg := uint64(0); seg < 30; seg += 4 {
		for next := uint64(0); next < 6; next++ {
			err := encoder.Add(histogram.Measurement{
				VehicleType:    format.VehicleTypeAuto,
				SegmentID:      seg,
				NextSegmentID:  seg + next + 1,
				TimeBucket:     histogram.TimeBucket{Size: format.BucketHourly, Index: 96 + seg + next},
				DurationBucket: uint8(next),
				Count:          uint32(seg + 1),
			})
			require.NoError(t, err)
		}
	}

	payload, err := encoder.Finish()
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	return payload
}

func TestSealOpenRoundTrip(t *testing.T) {
	payload := testPayload(t)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			sealed, err := Seal(payload, format.VehicleTypeAuto, WithCompression(ct))
			require.NoError(t, err)
			require.Equal(t, ct, sealed.Compression())
			require.Equal(t, format.VehicleTypeAuto, sealed.VehicleType())
			require.Equal(t, payload, sealed.Payload())

			opened, err := Open(sealed.Bytes())
			require.NoError(t, err)
			require.Equal(t, payload, opened.Payload())
			require.Equal(t, ct, opened.Compression())
			require.Equal(t, format.VehicleTypeAuto, opened.VehicleType())

			decoder, err := opened.Decoder()
			require.NoError(t, err)
			require.Equal(t, 29, decoder.NumSegments())
			require.True(t, decoder.Populated(28))
			require.False(t, decoder.Populated(27))
		})
	}
}

func TestSealDefaultsToNoCompression(t *testing.T) {
	payload := testPayload(t)

	sealed, err := Seal(payload, format.VehicleTypeAuto)
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, sealed.Compression())
	require.Len(t, sealed.Bytes(), section.HeaderSize+len(payload))
}

func TestSealRejectsEmptyPayload(t *testing.T) {
	_, err := Seal(nil, format.VehicleTypeAuto)
	require.Error(t, err)
}

func TestSealRejectsInvalidCompression(t *testing.T) {
	_, err := Seal(testPayload(t), format.VehicleTypeAuto,
		WithCompression(format.CompressionType(0x7F)))
	require.Error(t, err)
}

func TestOpenRejectsTruncatedHeader(t *testing.T) {
	_, err := Open([]byte{0x10, 0xEC})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestOpenRejectsForeignMagic(t *testing.T) {
	sealed, err := Seal(testPayload(t), format.VehicleTypeAuto)
	require.NoError(t, err)

	data := append([]byte(nil), sealed.Bytes()...)
	data[1] = 0x00

	_, err = Open(data)
	require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
}

func TestOpenDetectsTamperedPayload(t *testing.T) {
	sealed, err := Seal(testPayload(t), format.VehicleTypeAuto)
	require.NoError(t, err)

	data := append([]byte(nil), sealed.Bytes()...)
	data[len(data)-1] ^= 0xFF

	_, err = Open(data)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestOpenDetectsSizeMismatch(t *testing.T) {
	sealed, err := Seal(testPayload(t), format.VehicleTypeAuto)
	require.NoError(t, err)

	data := append([]byte(nil), sealed.Bytes()...)
	// inflate the declared payload size
	data[4]++

	_, err = Open(data)
	require.ErrorIs(t, err, errs.ErrPayloadTruncated)
}
