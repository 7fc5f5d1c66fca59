// Package vector provides compressed, immutable, random-access integer vectors:
//
//   - EncVector: a non-decreasing sequence stored as coded differences, with an
//     absolute sample every D elements
//   - VLCVector: an arbitrary sequence stored as coded values, with a codeword
//     pointer every D elements
//   - DACVector: directly addressable codes, splitting each value into
//     fixed-width chunks spread over levels linked by rank over flag bits
//
// All vectors are built from an intvector.Sequence, never mutated afterwards,
// and safe for concurrent reads. A builder returns a vector only when
// construction fully succeeded.
//
// The zero value of each vector type is only valid as a DecodeBinary target.
package vector

import (
	"iter"

	"github.com/c2h5oh/datasize"

	"github.com/arloliu/sdsl/endian"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/intvector"
)

// maxSize is the element limit of the compressed vectors.
const maxSize = uint64(1) << 57

// Vector is the read interface shared by every sdsl structure, IntVector
// included.
type Vector interface {
	// Kind returns the structure kind recorded in file headers.
	Kind() format.VectorKind
	// Variant returns the kind-specific header tag: width class, coder type or
	// chunk width.
	Variant() uint8

	Size() uint64
	Empty() bool
	MaxSize() uint64

	// Get returns element i, or ErrIndexOutOfRange.
	Get(i uint64) (uint64, error)
	// At returns element i without bounds checking.
	At(i uint64) uint64
	// All iterates the elements in index order; each call restarts at index 0.
	All() iter.Seq[uint64]

	AppendBinary(dst []byte, engine endian.EndianEngine) []byte
	DecodeBinary(data []byte, engine endian.EndianEngine) (int, error)

	SizeInBytes() datasize.ByteSize
	SizeInMegabytes() float64
}

var (
	_ Vector = (*intvector.IntVector)(nil)
	_ Vector = (*EncVector)(nil)
	_ Vector = (*VLCVector)(nil)
	_ Vector = (*DACVector)(nil)
)

// New creates an empty vector of the given kind, ready to be used as a
// DecodeBinary target. Returns nil for an unknown kind.
func New(kind format.VectorKind) Vector {
	switch kind {
	case format.KindIntVector:
		return &intvector.IntVector{}
	case format.KindEncVector:
		return &EncVector{}
	case format.KindVLCVector:
		return &VLCVector{}
	case format.KindDACVector:
		return &DACVector{}
	default:
		return nil
	}
}
