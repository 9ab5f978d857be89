// Package compress provides the compression codecs used by labello transform
// blobs.
//
// Encoded label sequences are highly repetitive (small varint codes drawn
// from a bounded alphabet), so even fast codecs achieve good ratios. Four
// codecs are available, selected by format.CompressionType:
//
//   - CompressionNone: pass-through, zero overhead
//   - CompressionZstd: best ratio, cgo (gozstd) or pure-Go backend
//   - CompressionS2: fastest compression, good ratio
//   - CompressionLZ4: fastest decompression
//
// All codecs are stateless values and safe for concurrent use.
package compress
