// Package pool provides pooled byte buffers for blob encoding.
package pool

import "sync"

const (
	// BlobBufferDefaultSize is the initial capacity of pooled blob buffers.
	BlobBufferDefaultSize = 4 * 1024
	// BlobBufferMaxThreshold is the largest buffer returned to the pool.
	// Oversized buffers are dropped so one huge blob does not pin memory.
	BlobBufferMaxThreshold = 128 * 1024
)

// ByteBuffer is a reusable byte slice wrapper handed out by the pool.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer while retaining its allocation.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the current length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

var blobBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, BlobBufferDefaultSize)}
	},
}

// GetBlobBuffer obtains an empty buffer from the pool.
func GetBlobBuffer() *ByteBuffer {
	bb, _ := blobBufferPool.Get().(*ByteBuffer)
	bb.Reset()

	return bb
}

// PutBlobBuffer returns a buffer to the pool. Buffers that grew beyond
// BlobBufferMaxThreshold are discarded.
func PutBlobBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > BlobBufferMaxThreshold {
		return
	}
	blobBufferPool.Put(bb)
}
