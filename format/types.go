package format

type (
	StrategyType    uint8
	CompressionType uint8
)

const (
	StrategyOrdinal StrategyType = 0x1 // StrategyOrdinal assigns first-seen integer indexes.
	StrategyOneHot  StrategyType = 0x2 // StrategyOneHot assigns fixed-width bit vectors.
	StrategyCustom  StrategyType = 0x3 // StrategyCustom applies a user-supplied mapping function.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s StrategyType) String() string {
	switch s {
	case StrategyOrdinal:
		return "Ordinal"
	case StrategyOneHot:
		return "OneHot"
	case StrategyCustom:
		return "CustomMapping"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the defined encoding strategies.
func (s StrategyType) Valid() bool {
	switch s {
	case StrategyOrdinal, StrategyOneHot, StrategyCustom:
		return true
	default:
		return false
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
