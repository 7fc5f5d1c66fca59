// Package compress provides the payload compression codecs used when storing
// sdsl structures in files.
//
// A stored file holds a fixed header followed by the serialized structure,
// optionally compressed as a whole. The header records the algorithm:
//
//   - CompressionNone: payload stored as-is (NoOpCompressor)
//   - CompressionZstd: Zstandard, best ratio (ZstdCompressor)
//   - CompressionS2: S2, a fast Snappy extension (S2Compressor)
//   - CompressionLZ4: LZ4 block format (LZ4Compressor)
//
// Packed vectors are usually dense already, so general purpose compression
// mostly pays off on low-entropy content such as long runs of equal samples or
// sparse DAC flag levels.
//
// # Zstd backends
//
// Zstd uses the pure Go klauspost/compress implementation by default. Building
// with cgo enabled and the gozstd tag switches to the valyala/gozstd bindings:
//
//	go build -tags gozstd ./...
//
// Both backends produce standard Zstandard frames and read each other's output.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//		return err
//	}
//	stored, err := codec.Compress(payload)
//
// All codecs are stateless values and safe for concurrent use; pooled encoder
// state is managed internally.
package compress
