package compress

// ZstdCompressor compresses payloads with Zstandard. It offers the best
// compression ratio of the built-in codecs and is the recommended choice for
// transform blobs that travel over the network or land in cold storage.
//
// Two backends are provided, selected at build time:
//   - cgo builds use valyala/gozstd (libzstd bindings)
//   - pure-Go builds use klauspost/compress/zstd
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
