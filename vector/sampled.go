package vector

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/coder"
	"github.com/arloliu/sdsl/endian"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/intvector"
)

// sampledHeaderSize is [coder:1][density:8][size:8].
const sampledHeaderSize = 1 + 8 + 8

// sampledCodes is the state shared by EncVector and VLCVector: a stream of
// codewords plus one codeword pointer per D elements.
type sampledCodes struct {
	coder    coder.Coder
	density  uint64
	size     uint64
	codes    *intvector.IntVector // width 1
	pointers *intvector.IntVector // bit offsets into codes
}

// Size returns the number of elements.
func (s *sampledCodes) Size() uint64 { return s.size }

// Empty reports whether the vector has no elements.
func (s *sampledCodes) Empty() bool { return s.size == 0 }

// MaxSize returns the largest supported number of elements.
func (s *sampledCodes) MaxSize() uint64 { return maxSize }

// SampleDensity returns D, the distance between samples.
func (s *sampledCodes) SampleDensity() uint64 { return s.density }

// Coder returns the coder type of the codeword stream.
func (s *sampledCodes) Coder() format.CoderType { return s.coder.Type() }

// Variant returns the coder type tag.
func (s *sampledCodes) Variant() uint8 { return uint8(s.coder.Type()) }

// CodeBits returns the length of the codeword stream in bits.
func (s *sampledCodes) CodeBits() uint64 { return s.codes.BitSize() }

func (s *sampledCodes) numSamples() uint64 {
	return sampleCount(s.size, s.density)
}

func sampleCount(size, density uint64) uint64 {
	if size == 0 {
		return 0
	}

	return (size-1)/density + 1
}

func (s *sampledCodes) checkIndex(i uint64) error {
	if i >= s.size {
		return errors.Wrapf(errs.ErrIndexOutOfRange, "index %d, size %d", i, s.size)
	}

	return nil
}

func (s *sampledCodes) serializedSize() uint64 {
	return sampledHeaderSize + s.codes.SerializedSize() + s.pointers.SerializedSize()
}

func (s *sampledCodes) appendBinary(dst []byte, engine endian.EndianEngine) []byte {
	dst = append(dst, uint8(s.coder.Type()))
	dst = engine.AppendUint64(dst, s.density)
	dst = engine.AppendUint64(dst, s.size)
	dst = s.codes.AppendBinary(dst, engine)

	return s.pointers.AppendBinary(dst, engine)
}

// decodeSampled decodes the shared header, codewords and pointers. Pointers must
// be non-decreasing and inside the stream; pointerAtEnd also admits a pointer
// equal to the stream length.
func decodeSampled(data []byte, engine endian.EndianEngine, pointerAtEnd bool) (sampledCodes, int, error) {
	var s sampledCodes
	if len(data) < sampledHeaderSize {
		return s, 0, errors.Wrapf(errs.ErrCorruptFormat, "sampled vector header needs %d bytes, have %d", sampledHeaderSize, len(data))
	}

	c, err := coder.New(format.CoderType(data[0]))
	if err != nil {
		return s, 0, errors.Wrapf(errs.ErrCorruptFormat, "coder tag %d", data[0])
	}

	s.coder = c
	s.density = engine.Uint64(data[1:9])
	s.size = engine.Uint64(data[9:17])
	if s.density == 0 {
		return s, 0, errors.Wrap(errs.ErrCorruptFormat, "sample density is zero")
	}
	if s.size > maxSize {
		return s, 0, errors.Wrapf(errs.ErrCorruptFormat, "size %d exceeds the maximum", s.size)
	}

	off := sampledHeaderSize
	codes, n, err := intvector.Decode(format.Width1, data[off:], engine)
	if err != nil {
		return s, 0, errors.Wrap(err, "codewords")
	}
	off += n

	pointers, n, err := intvector.Decode(format.WidthRuntime, data[off:], engine)
	if err != nil {
		return s, 0, errors.Wrap(err, "pointers")
	}
	off += n

	s.codes, s.pointers = codes, pointers
	if pointers.Size() != s.numSamples() {
		return s, 0, errors.Wrapf(errs.ErrCorruptFormat, "%d pointers for %d samples", pointers.Size(), s.numSamples())
	}

	var prev uint64
	for i := range pointers.Size() {
		p := pointers.At(i)
		if p < prev || p > codes.BitSize() || (p == codes.BitSize() && !pointerAtEnd) {
			return s, 0, errors.Wrapf(errs.ErrCorruptFormat, "pointer %d = %d is outside the %d-bit stream", i, p, codes.BitSize())
		}
		prev = p
	}

	return s, off, nil
}
