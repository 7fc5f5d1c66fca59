package section

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
)

// Header is the fixed-size section at the start of a structure file.
type Header struct {
	// RawSize is the payload size in bytes before compression.
	RawSize uint64 // byte offset 8-15
	// StoredSize is the payload size in bytes as written after the header.
	StoredSize uint64 // byte offset 16-23
	// Checksum is the xxhash64 of the uncompressed payload.
	Checksum uint64 // byte offset 24-31

	// Flag is a packed field for the magic number and byte order.
	Flag Flag // byte offset 0-1
	// Kind is the structure stored in the payload.
	Kind format.VectorKind // byte offset 2
	// Variant is the width class (IntVector), coder type (EncVector, VLCVector)
	// or chunk width (DACVector).
	Variant uint8 // byte offset 3
	// Compression is the payload compression.
	Compression format.CompressionType // byte offset 4
}

// NewHeader creates a little-endian header for a structure of the given kind.
// Sizes and checksum are set by the writer once the payload is encoded.
func NewHeader(kind format.VectorKind, variant uint8, compression format.CompressionType) *Header {
	return &Header{
		Flag:        NewFlag(),
		Kind:        kind,
		Variant:     variant,
		Compression: compression,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrCorruptFormat if data is not 32 bytes or holds invalid fields
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errors.Wrapf(errs.ErrCorruptFormat, "header is %d bytes, expected %d", len(data), HeaderSize)
	}

	// Options is always little-endian, it selects the engine for the rest.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Kind = format.VectorKind(data[KindOffset])
	h.Variant = data[VariantOffset]
	h.Compression = format.CompressionType(data[CompressionOffset])

	engine := h.Flag.GetEndianEngine()
	h.RawSize = engine.Uint64(data[RawSizeOffset:StoredSizeOffset])
	h.StoredSize = engine.Uint64(data[StoredSizeOffset:ChecksumOffset])
	h.Checksum = engine.Uint64(data[ChecksumOffset:HeaderSize])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	for _, b := range data[ReservedOffset:RawSizeOffset] {
		if b != 0 {
			return errors.Wrap(errs.ErrCorruptFormat, "reserved header bytes are not zero")
		}
	}

	return h.Validate()
}

// Validate checks the kind and compression tags and the size fields.
func (h *Header) Validate() error {
	if !h.Kind.IsValid() {
		return errors.Wrapf(errs.ErrCorruptFormat, "unknown structure kind %d", uint8(h.Kind))
	}

	if !h.Compression.IsValid() {
		return errors.Wrapf(errs.ErrCorruptFormat, "unknown compression %d", uint8(h.Compression))
	}

	if h.Compression == format.CompressionNone && h.RawSize != h.StoredSize {
		return errors.Wrapf(errs.ErrCorruptFormat, "uncompressed payload sizes differ: raw %d, stored %d", h.RawSize, h.StoredSize)
	}

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendBytes(make([]byte, 0, HeaderSize))
}

// AppendBytes appends the 32-byte header to dst.
func (h *Header) AppendBytes(dst []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8))
	dst = append(dst, uint8(h.Kind), h.Variant, uint8(h.Compression), 0, 0, 0)
	dst = engine.AppendUint64(dst, h.RawSize)
	dst = engine.AppendUint64(dst, h.StoredSize)

	return engine.AppendUint64(dst, h.Checksum)
}

// ParseHeader parses a Header from the front of data.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - Header: Parsed header struct
//   - error: ErrCorruptFormat for short data or invalid fields
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errors.Wrapf(errs.ErrCorruptFormat, "header needs %d bytes, have %d", HeaderSize, len(data))
	}

	h := Header{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
