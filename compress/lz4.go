package compress

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/pierrec/lz4/v4"
)

// LZ4 payloads start with a one-byte marker: lz4 block or literal copy for input
// the block compressor cannot shrink.
const (
	lz4MarkerLiteral byte = 0x0
	lz4MarkerBlock   byte = 0x1
)

// lz4MaxDecompressedSize bounds the buffer grown while decoding a block of
// unknown original size.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

// lz4MaxExpansion bounds the output of one block byte. A match token plus
// length bytes of 0xFF restores at most 255 bytes per input byte.
const lz4MaxExpansion = 255

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Marker byte followed by the block or a literal copy (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, errors.Wrap(err, "lz4 compression failed")
	}

	if n == 0 || n >= len(data) {
		dst = append(dst[:0], lz4MarkerLiteral)
		return append(dst, data...), nil
	}
	dst[0] = lz4MarkerBlock

	return dst[:1+n], nil
}

// Decompress decodes a payload produced by Compress.
//
// The block does not record its original size, so the output buffer starts at
// 4x the input and doubles on a short-buffer error up to 128MiB. Use
// DecompressSized when the original size is known.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	block, literal, err := splitLZ4Payload(data)
	if err != nil || literal {
		return block, err
	}

	bufSize := max(len(block)*4, 64)
	for bufSize <= lz4MaxDecompressedSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(block, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, errors.Wrap(err, "lz4 decompression failed")
		}
		bufSize *= 2
	}

	return nil, errors.Wrap(lz4.ErrInvalidSourceShortBuffer, "lz4 decompression exceeded buffer limit")
}

// DecompressSized decodes a payload produced by Compress whose original size
// is rawSize. The output is allocated once, so payloads of any size restore.
//
// Returns an error when rawSize exceeds what the block can expand to or the
// block does not restore exactly rawSize bytes.
func (c LZ4Compressor) DecompressSized(data []byte, rawSize uint64) ([]byte, error) {
	if len(data) == 0 {
		if rawSize != 0 {
			return nil, errors.Newf("lz4: empty payload, want %d bytes", rawSize)
		}

		return nil, nil
	}

	block, literal, err := splitLZ4Payload(data)
	if err != nil {
		return nil, err
	}

	if literal {
		if uint64(len(block)) != rawSize {
			return nil, errors.Newf("lz4: literal payload is %d bytes, want %d", len(block), rawSize)
		}

		return block, nil
	}

	if rawSize/lz4MaxExpansion > uint64(len(block)) {
		return nil, errors.Newf("lz4: %d byte block cannot restore %d bytes", len(block), rawSize)
	}

	buf := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(block, buf)
	if err != nil {
		return nil, errors.Wrap(err, "lz4 decompression failed")
	}

	if uint64(n) != rawSize {
		return nil, errors.Newf("lz4: block restored %d bytes, want %d", n, rawSize)
	}

	return buf, nil
}

// splitLZ4Payload strips the marker byte. A literal payload is returned as a
// copy, ready to hand to the caller.
func splitLZ4Payload(data []byte) (block []byte, literal bool, err error) {
	block = data[1:]
	switch data[0] {
	case lz4MarkerLiteral:
		return append([]byte(nil), block...), true, nil
	case lz4MarkerBlock:
		return block, false, nil
	default:
		return nil, false, errors.Newf("lz4: unknown block marker 0x%02x", data[0])
	}
}
