package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openroads/tthist/format"
)

// sparsePayload fakes the shape of a histogram payload: long runs of a
// repeated 4-byte offset with occasional distinct regions.
func sparsePayload(size int) []byte {
	payload := make([]byte, 0, size)
	offset := []byte{0x0C, 0x00, 0x00, 0x00}
	for len(payload) < size {
		if len(payload)%64 == 0 {
			payload = append(payload, byte(len(payload)>>6), 0x01, 0x02, 0x03)
			continue
		}
		payload = append(payload, offset...)
	}

	return payload[:size]
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := CreateCodec(ct, "payload")
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "payload")
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestCodecRoundTrip(t *testing.T) {
	payload := sparsePayload(4096)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, restored))
		})
	}
}

func TestCompressionShrinksRepetitivePayload(t *testing.T) {
	payload := sparsePayload(16 * 1024)

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			restored, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, restored)
		})
	}
}

func TestLZ4RejectsMalformedData(t *testing.T) {
	codec := NewLZ4Compressor()

	// token promises 15+ literal bytes but the block ends immediately
	_, err := codec.Decompress([]byte{0xF0})
	require.Error(t, err)
}
