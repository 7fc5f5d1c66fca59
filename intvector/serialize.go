package intvector

import (
	"io"

	"github.com/c2h5oh/datasize"
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/bitstore"
	"github.com/arloliu/sdsl/endian"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/internal/pool"
)

// headerSize is the encoded size of the width byte plus the bit size field.
const headerSize = 1 + 8

// SerializedSize returns the exact number of bytes written by AppendBinary.
func (v *IntVector) SerializedSize() uint64 {
	return headerSize + 8*uint64(bitstore.WordsFor(v.BitSize()))
}

// SizeInBytes returns the serialized size of v.
func (v *IntVector) SizeInBytes() datasize.ByteSize {
	return datasize.ByteSize(v.SerializedSize())
}

// SizeInMegabytes returns the serialized size of v in MiB.
func (v *IntVector) SizeInMegabytes() float64 {
	return v.SizeInBytes().MBytes()
}

// AppendBinary appends the encoding of v to dst.
//
// Layout:
//
//	[width: 1 byte][bit size: 8 bytes][ceil(bit size/64) words of 8 bytes]
//
// Multi-byte fields use engine; the canonical encoding is little-endian.
// Padding bits beyond the bit size are zero.
//
// Parameters:
//   - dst: Destination slice (may be nil)
//   - engine: Byte order of the multi-byte fields
//
// Returns:
//   - []byte: The extended slice
func (v *IntVector) AppendBinary(dst []byte, engine endian.EndianEngine) []byte {
	dst = append(dst, v.width)
	dst = engine.AppendUint64(dst, v.BitSize())

	return endian.AppendWords(engine, dst, v.bits.Words())
}

// DecodeBinary replaces the content of v with the encoding at the front of data
// and returns the number of bytes consumed.
//
// The width class of v is kept: decoding into a fixed-width vector fails when
// the encoded width differs. A zero IntVector decodes as runtime-width. v is
// unchanged on error.
//
// Returns ErrCorruptFormat when data is truncated or inconsistent.
func (v *IntVector) DecodeBinary(data []byte, engine endian.EndianEngine) (int, error) {
	if len(data) < headerSize {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "int vector header needs %d bytes, have %d", headerSize, len(data))
	}

	width := data[0]
	if width == 0 || width > 64 {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "int vector width %d is outside [1, 64]", width)
	}

	if v.class.IsFixed() && width != v.class.Bits() {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "encoded width %d does not match %s vector", width, v.class)
	}

	bitSize := engine.Uint64(data[1:headerSize])
	avail := uint64(len(data) - headerSize)
	if bitSize/64 > avail/8 {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "int vector of %d bits is truncated", bitSize)
	}

	n := bitstore.WordsFor(bitSize)
	if uint64(n)*8 > avail {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "int vector of %d bits is truncated", bitSize)
	}

	words := endian.Words(engine, nil, data[headerSize:], n)
	v.bits = bitstore.FromWords(words, bitSize)
	v.width = width
	v.pending = false

	return headerSize + n*8, nil
}

// MarshalBinary encodes v in the canonical little-endian layout.
func (v *IntVector) MarshalBinary() ([]byte, error) {
	return v.AppendBinary(make([]byte, 0, v.SerializedSize()), endian.GetLittleEndianEngine()), nil
}

// UnmarshalBinary decodes the canonical little-endian layout. The whole of data
// must be consumed.
func (v *IntVector) UnmarshalBinary(data []byte) error {
	n, err := v.DecodeBinary(data, endian.GetLittleEndianEngine())
	if err != nil {
		return err
	}

	if n != len(data) {
		return errors.Wrapf(errs.ErrCorruptFormat, "%d trailing bytes after int vector", len(data)-n)
	}

	return nil
}

// WriteTo writes the canonical little-endian encoding of v to w.
func (v *IntVector) WriteTo(w io.Writer) (int64, error) {
	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)

	bb.Grow(int(v.SerializedSize()))
	bb.B = v.AppendBinary(bb.B, endian.GetLittleEndianEngine())

	n, err := bb.WriteTo(w)
	if err != nil {
		return n, errs.NewIOError("write", "int vector", err)
	}

	return n, nil
}

// Decode decodes a vector of the given width class from the front of data and
// returns it with the number of bytes consumed. Compressed vectors use it to load
// their nested components.
func Decode(class format.WidthClass, data []byte, engine endian.EndianEngine) (*IntVector, int, error) {
	v := &IntVector{class: class}
	n, err := v.DecodeBinary(data, engine)
	if err != nil {
		return nil, 0, err
	}

	return v, n, nil
}
