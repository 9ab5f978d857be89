package blob

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/labello/bitvec"
	"github.com/arloliu/labello/compress"
	"github.com/arloliu/labello/encoder"
	"github.com/arloliu/labello/errs"
	"github.com/arloliu/labello/format"
	"github.com/arloliu/labello/internal/hash"
)

// Decode parses a blob produced by Encode and restores its Transform.
//
// The header is validated (magic, version, strategy and compression flags)
// and the payload checksum is verified before any decompression happens, so
// corrupted or foreign data fails fast with a sentinel error from errs.
func Decode(data []byte) (encoder.Transform, error) {
	var none encoder.Transform

	if len(data) < headerSize {
		return none, fmt.Errorf("%w: %d bytes", errs.ErrBlobTooShort, len(data))
	}
	if data[0] != magic0 || data[1] != magic1 {
		return none, errs.ErrInvalidMagic
	}
	if data[2] != Version {
		return none, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, data[2])
	}

	strategy := format.StrategyType(data[3])
	if !strategy.Valid() {
		return none, fmt.Errorf("%w: %d", errs.ErrInvalidStrategy, data[3])
	}

	codec, err := compress.GetCodec(format.CompressionType(data[4]))
	if err != nil {
		return none, fmt.Errorf("%w: %d", errs.ErrInvalidCompression, data[4])
	}

	width := int(data[5])
	payload := data[headerSize:]
	if binary.LittleEndian.Uint64(data[6:14]) != hash.Sum64(payload) {
		return none, errs.ErrChecksumMismatch
	}

	raw, err := codec.Decompress(payload)
	if err != nil {
		return none, fmt.Errorf("failed to decompress blob payload: %w", err)
	}

	count, n := binary.Uvarint(raw)
	if n <= 0 {
		return none, fmt.Errorf("%w: missing element count", errs.ErrBlobTooShort)
	}
	raw = raw[n:]
	// Each element takes at least one payload byte.
	if count > uint64(len(raw)) {
		return none, fmt.Errorf("%w: %d elements in %d payload bytes", errs.ErrBlobTooShort, count, len(raw))
	}

	if strategy == format.StrategyOneHot {
		vectors := make([]bitvec.Vector, 0, count)
		for i := uint64(0); i < count; i++ {
			packed, n := binary.Uvarint(raw)
			if n <= 0 {
				return none, fmt.Errorf("%w: truncated at element %d", errs.ErrBlobTooShort, i)
			}
			raw = raw[n:]

			vec, err := bitvec.FromIndex(packed, width)
			if err != nil {
				return none, err
			}
			vectors = append(vectors, vec)
		}

		return encoder.NewVectorTransform(vectors), nil
	}

	codes := make([]uint64, 0, count)
	for i := uint64(0); i < count; i++ {
		code, n := binary.Uvarint(raw)
		if n <= 0 {
			return none, fmt.Errorf("%w: truncated at element %d", errs.ErrBlobTooShort, i)
		}
		raw = raw[n:]
		codes = append(codes, code)
	}

	return encoder.NewCodeTransform(strategy, codes), nil
}
