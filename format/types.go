package format

type (
	VehicleType     uint8
	BucketSize      uint8
	CompressionType uint8
)

const (
	// VehicleTypeAuto represents private automobile traversals.
	// It is currently the only vehicle type the encoder accepts; the
	// value below reserves an ordinal for a future class.
	VehicleTypeAuto VehicleType = 0x0
	VehicleTypeBus  VehicleType = 0x1

	// BucketHourly represents one-hour time buckets counted from the
	// histogram epoch. It is the only bucket size the encoder accepts.
	BucketHourly BucketSize = 0x1
	BucketDaily  BucketSize = 0x2

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (v VehicleType) String() string {
	switch v {
	case VehicleTypeAuto:
		return "Auto"
	case VehicleTypeBus:
		return "Bus"
	default:
		return "Unknown"
	}
}

func (b BucketSize) String() string {
	switch b {
	case BucketHourly:
		return "Hourly"
	case BucketDaily:
		return "Daily"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
