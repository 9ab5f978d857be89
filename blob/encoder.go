package blob

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/labello/compress"
	"github.com/arloliu/labello/encoder"
	"github.com/arloliu/labello/errs"
	"github.com/arloliu/labello/format"
	"github.com/arloliu/labello/internal/hash"
	"github.com/arloliu/labello/internal/options"
	"github.com/arloliu/labello/internal/pool"
)

const (
	magic0 = 'L'
	magic1 = 'B'

	// Version is the current blob format version.
	Version = 1

	// headerSize is the fixed byte length before the payload.
	headerSize = 14
)

type encodeConfig struct {
	compression format.CompressionType
}

// EncodeOption is a functional option for Encode.
type EncodeOption = options.Option[*encodeConfig]

// WithCompression selects the payload compression codec. The default is
// format.CompressionNone; transform payloads are small and already dense
// after varint packing, so compression pays off mainly for long sequences.
func WithCompression(ct format.CompressionType) EncodeOption {
	return options.New(func(cfg *encodeConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, ct)
		}
		cfg.compression = ct

		return nil
	})
}

// Encode serializes a Transform into a self-describing binary blob.
//
// One-hot vectors are packed into integers; their common width is recorded
// in the header so Decode can restore identical vectors.
func Encode(tr encoder.Transform, opts ...EncodeOption) ([]byte, error) {
	cfg := &encodeConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	strategy := tr.Strategy()
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidStrategy, strategy)
	}

	var width int
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	buf.B = binary.AppendUvarint(buf.B, uint64(tr.Len()))
	if strategy == format.StrategyOneHot {
		for i, vec := range tr.Vectors() {
			if i == 0 {
				width = len(vec)
			} else if len(vec) != width {
				return nil, fmt.Errorf("one-hot vector %d has width %d, want %d", i, len(vec), width)
			}
			buf.B = binary.AppendUvarint(buf.B, vec.Uint64())
		}
	} else {
		for _, code := range tr.Codes() {
			buf.B = binary.AppendUvarint(buf.B, code)
		}
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to compress blob payload: %w", err)
	}

	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, magic0, magic1, Version, byte(strategy), byte(cfg.compression), byte(width))
	out = binary.LittleEndian.AppendUint64(out, hash.Sum64(payload))
	out = append(out, payload...)

	return out, nil
}
