package compress

import (
	"fmt"

	"github.com/arloliu/labello/format"
)

// Compressor compresses a complete blob payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is never modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original bytes.
	//
	// Returns an error if the data is corrupted or was compressed with an
	// incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions for implementations that handle them with
// shared state.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
