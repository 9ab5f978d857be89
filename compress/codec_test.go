package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/labello/format"
)

// samplePayload mimics a varint-packed label sequence: small repetitive
// values drawn from a bounded alphabet.
func samplePayload(size int) []byte {
	payload := make([]byte, size)
	for i := range payload {
		payload[i] = byte(i % 16)
	}

	return payload
}

func TestGetCodec_Builtin(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err, "codec %s", ct)
		require.NotNil(t, codec)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0x7f))
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := samplePayload(8 * 1024)

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

func TestCodec_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			restored, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, restored)
		})
	}
}

func TestCodec_CompressesRepetitiveData(t *testing.T) {
	payload := samplePayload(64 * 1024)

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

func TestNoOp_SharesInput(t *testing.T) {
	payload := samplePayload(16)
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}
