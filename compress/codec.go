package compress

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
)

// Compressor compresses a serialized structure payload.
//
// The returned slice is owned by the caller. The input slice is never modified,
// but implementations may return it as-is (see NoOpCompressor).
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Implementations must be safe for concurrent use. Corrupted input or input
// produced by another algorithm yields an error, never a panic.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor is implemented by decompressors whose format does not
// record the original size. DecompressSized allocates rawSize bytes once and
// fails unless the payload restores exactly rawSize bytes.
type SizedDecompressor interface {
	DecompressSized(data []byte, rawSize uint64) ([]byte, error)
}

// DecompressSized restores data whose original size is known, using the
// size hint when d supports it.
func DecompressSized(d Decompressor, data []byte, rawSize uint64) ([]byte, error) {
	if sd, ok := d.(SizedDecompressor); ok {
		return sd.DecompressSized(data, rawSize)
	}

	return d.Decompress(data)
}

// CompressionStats describes one compression of a stored payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of the serialized structure
	OriginalSize int64

	// CompressedSize is the size of the stored bytes
	CompressedSize int64
}

// CompressionRatio returns compressed size / original size, or 0 when the
// original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage. Negative values mean
// the compressed payload is larger than the original.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for the specified compression type.
//
// Returns ErrInvalidOption for an unknown compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, errors.Wrapf(errs.ErrInvalidOption, "unsupported compression type: %s", compressionType)
}
