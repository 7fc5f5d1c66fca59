// Package coder implements self-delimiting variable-length integer codes over a
// bitstore.BitStore: Elias-gamma, Elias-delta, Fibonacci and comma codes.
//
// Codes are laid out in the LSB-first bit stream of the store: the first bit of
// a code is the lowest-numbered bit. Multi-bit integer fields inside a code are
// written with BitStore.SetBits, so their least significant bit comes first.
//
// Gamma, delta and Fibonacci codes cannot represent 0; their Offset is 1 and
// callers encode v+Offset(). Comma codes represent 0 and have Offset 0.
package coder

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/bitstore"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
)

// Coder is a variable-length integer code.
//
// Implementations are stateless and safe for concurrent use.
type Coder interface {
	// Type returns the coder tag recorded in serialized vectors.
	Type() format.CoderType

	// Offset is the shift callers add to a value before encoding it, 1 for
	// codes that cannot represent zero and 0 otherwise.
	Offset() uint64

	// Length returns the code length in bits of v without encoding it.
	Length(v uint64) uint64

	// Encode writes the code of v at bit position pos of bs and returns the
	// position just past it. bs must already be sized to hold the code.
	Encode(bs *bitstore.BitStore, pos uint64, v uint64) uint64

	// Decode reads the code starting at pos and returns the value and the
	// position just past it.
	Decode(bs *bitstore.BitStore, pos uint64) (uint64, uint64)
}

// New returns the coder for the given type.
//
// Returns ErrInvalidOption for an unknown type.
func New(t format.CoderType) (Coder, error) {
	switch t {
	case format.CoderEliasGamma:
		return EliasGamma{}, nil
	case format.CoderEliasDelta:
		return EliasDelta{}, nil
	case format.CoderFibonacci:
		return Fibonacci{}, nil
	case format.CoderComma2:
		return comma2, nil
	default:
		return nil, errors.Wrapf(errs.ErrInvalidOption, "unknown coder type %d", uint8(t))
	}
}

// Shift adds c.Offset() to v.
//
// Returns ErrValueOutOfRange when the shifted value overflows uint64.
func Shift(c Coder, v uint64) (uint64, error) {
	s := v + c.Offset()
	if s < v {
		return 0, errors.Wrapf(errs.ErrValueOutOfRange, "%d cannot be encoded by %s", v, c.Type())
	}

	return s, nil
}

// EncodeAll encodes values, each shifted by c.Offset(), into a new store sized
// exactly to the total code length.
//
// Parameters:
//   - c: Coder to use
//   - values: Values to encode
//
// Returns:
//   - *bitstore.BitStore: The encoded stream
//   - error: ErrValueOutOfRange if a value overflows after the shift
func EncodeAll(c Coder, values []uint64) (*bitstore.BitStore, error) {
	var total uint64
	for _, v := range values {
		s, err := Shift(c, v)
		if err != nil {
			return nil, err
		}
		total += c.Length(s)
	}

	bs := bitstore.New(total)
	var pos uint64
	for _, v := range values {
		pos = c.Encode(bs, pos, v+c.Offset())
	}

	if pos != total {
		return nil, errors.AssertionFailedf("%s wrote %d bits, expected %d", c.Type(), pos, total)
	}

	return bs, nil
}

// DecodeAll decodes n codes starting at bit 0 of bs, subtracting c.Offset()
// from each.
//
// Returns ErrCorruptFormat if the stream ends before n codes were read.
func DecodeAll(c Coder, bs *bitstore.BitStore, n uint64) ([]uint64, error) {
	out := make([]uint64, 0, n)
	var pos uint64
	for range n {
		if pos >= bs.Size() {
			return nil, errors.Wrapf(errs.ErrCorruptFormat, "stream ends after %d of %d codes", len(out), n)
		}

		var v uint64
		v, pos = c.Decode(bs, pos)
		out = append(out, v-c.Offset())
	}

	if pos > bs.Size() {
		return nil, errors.Wrapf(errs.ErrCorruptFormat, "last code ends at bit %d past stream size %d", pos, bs.Size())
	}

	return out, nil
}

// writeZeros clears n bits starting at pos.
func writeZeros(bs *bitstore.BitStore, pos, n uint64) {
	for n > 0 {
		k := min(n, bitstore.WordBits)
		bs.SetBits(pos, uint8(k), 0)
		pos += k
		n -= k
	}
}

func mustPositive(c Coder, v uint64) {
	if v == 0 {
		panic(errors.AssertionFailedf("%s cannot encode 0", c.Type()))
	}
}
