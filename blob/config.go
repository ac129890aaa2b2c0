package blob

import (
	"fmt"

	"github.com/openroads/tthist/format"
	"github.com/openroads/tthist/internal/options"
)

// SealConfig holds the sealing configuration applied through functional
// options.
type SealConfig struct {
	compression format.CompressionType
}

// SealOption represents a functional option for configuring the SealConfig.
type SealOption = options.Option[*SealConfig]

// WithCompression sets the payload compression codec.
// The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) SealOption {
	return options.New(func(c *SealConfig) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			c.compression = compression
			return nil
		default:
			return fmt.Errorf("invalid payload compression: %s", compression)
		}
	})
}
