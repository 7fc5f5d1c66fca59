package intvector

import (
	"math/bits"

	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
)

// Sequence is a finite, indexable sequence of unsigned integers. Compressed
// vectors are built from any Sequence; IntVector itself implements it.
type Sequence interface {
	// Size returns the number of elements.
	Size() uint64
	// At returns the element at index i, for i < Size().
	At(i uint64) uint64
}

// Slice adapts a slice of unsigned integers to Sequence.
//
//	seq := intvector.Slice[uint32](values)
type Slice[T ~uint8 | ~uint16 | ~uint32 | ~uint64] []T

// Size returns len(s).
func (s Slice[T]) Size() uint64 { return uint64(len(s)) }

// At returns s[i] widened to uint64.
func (s Slice[T]) At(i uint64) uint64 { return uint64(s[i]) }

// Bits adapts a slice of booleans to Sequence; true reads as 1.
type Bits []bool

// Size returns len(b).
func (b Bits) Size() uint64 { return uint64(len(b)) }

// At returns 1 when b[i] is set.
func (b Bits) At(i uint64) uint64 {
	if b[i] {
		return 1
	}

	return 0
}

var _ Sequence = (*IntVector)(nil)

// FromSequence creates a runtime-width vector holding the elements of seq.
//
// With width AutoWidth the minimal width able to hold the maximum of seq is
// used, so the result is already compressed. Any other width truncates values
// that do not fit.
//
// Returns ErrWidthViolation for width 0 or above 64.
func FromSequence(seq Sequence, width uint8) (*IntVector, error) {
	n := seq.Size()

	if width == AutoWidth {
		var maxVal uint64
		for i := range n {
			maxVal = max(maxVal, seq.At(i))
		}
		width = uint8(max(1, bits.Len64(maxVal)))
	}

	if width == 0 || width > 64 {
		return nil, errors.Wrapf(errs.ErrWidthViolation, "width %d is outside [1, 64]", width)
	}

	v, err := newVector(format.WidthRuntime, n, 0, width)
	if err != nil {
		return nil, err
	}

	for i := range n {
		v.bits.SetBits(i*uint64(width), width, seq.At(i))
	}

	return v, nil
}

// FromValues is FromSequence over a uint64 slice.
func FromValues(values []uint64, width uint8) (*IntVector, error) {
	return FromSequence(Slice[uint64](values), width)
}
