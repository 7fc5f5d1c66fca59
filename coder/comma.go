package coder

import (
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/bitstore"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
)

// comma2 is the comma code with 2-bit digits, registered as format.CoderComma2.
var comma2 = Comma{digitWidth: 2}

// maxCommaDigits bounds the number of base-3 digits of a uint64.
const maxCommaDigits = 41

// Comma writes v >= 0 as base k-1 digits of w bits each, k = 2^w, most
// significant digit first, followed by the terminator digit k-1. Zero is the
// terminator alone.
type Comma struct {
	digitWidth uint8
}

var _ Coder = Comma{}

// NewComma returns a comma code with w-bit digits, 2 <= w <= 8.
//
// Only 2-bit digits have a serialized coder tag; other widths are usable for
// in-memory streams.
func NewComma(w uint8) (Comma, error) {
	if w < 2 || w > 8 {
		return Comma{}, errors.Wrapf(errs.ErrInvalidOption, "comma digit width %d is outside [2, 8]", w)
	}

	return Comma{digitWidth: w}, nil
}

func (c Comma) Type() format.CoderType {
	if c.digitWidth == 2 {
		return format.CoderComma2
	}

	return 0
}

func (Comma) Offset() uint64 { return 0 }

// DigitWidth returns w, the number of bits per digit.
func (c Comma) DigitWidth() uint8 { return c.digitWidth }

func (c Comma) base() uint64 {
	return uint64(1)<<c.digitWidth - 1
}

func (c Comma) Length(v uint64) uint64 {
	b := c.base()
	var digits uint64
	for ; v > 0; v /= b {
		digits++
	}

	return (digits + 1) * uint64(c.digitWidth)
}

func (c Comma) Encode(bs *bitstore.BitStore, pos uint64, v uint64) uint64 {
	b := c.base()
	w := uint64(c.digitWidth)

	var digits [maxCommaDigits]uint8
	n := 0
	for ; v > 0; v /= b {
		digits[n] = uint8(v % b)
		n++
	}

	for i := n - 1; i >= 0; i-- {
		bs.SetBits(pos, c.digitWidth, uint64(digits[i]))
		pos += w
	}
	bs.SetBits(pos, c.digitWidth, b)

	return pos + w
}

func (c Comma) Decode(bs *bitstore.BitStore, pos uint64) (uint64, uint64) {
	b := c.base()
	w := uint64(c.digitWidth)

	var v uint64
	for {
		d := bs.GetBits(pos, c.digitWidth)
		pos += w
		if d == b {
			return v, pos
		}
		v = v*b + d
	}
}
