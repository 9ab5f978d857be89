package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBlobBuffer_Empty(t *testing.T) {
	bb := GetBlobBuffer()
	defer PutBlobBuffer(bb)

	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, cap(bb.B), BlobBufferDefaultSize)
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := GetBlobBuffer()
	defer PutBlobBuffer(bb)

	bb.B = append(bb.B, 1, 2, 3)
	require.Equal(t, 3, bb.Len())
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestPutBlobBuffer_DropsOversized(t *testing.T) {
	bb := &ByteBuffer{B: make([]byte, 0, BlobBufferMaxThreshold*2)}
	// Must not panic; the oversized buffer is simply discarded.
	PutBlobBuffer(bb)
	PutBlobBuffer(nil)
}
