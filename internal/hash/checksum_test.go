package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("segment payload"))
	b := Checksum([]byte("segment payload"))
	c := Checksum([]byte("segment payloae"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.NotZero(t, Checksum(nil))
}
