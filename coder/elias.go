package coder

import (
	"math/bits"

	"github.com/arloliu/sdsl/bitstore"
	"github.com/arloliu/sdsl/format"
)

// EliasGamma writes v >= 1 of bit length N as N-1 zero bits, a one bit and the
// low N-1 bits of v. The code of v is 2N-1 bits long.
type EliasGamma struct{}

var _ Coder = EliasGamma{}

func (EliasGamma) Type() format.CoderType { return format.CoderEliasGamma }
func (EliasGamma) Offset() uint64         { return 1 }

func (EliasGamma) Length(v uint64) uint64 {
	return 2*uint64(bits.Len64(v)) - 1
}

func (c EliasGamma) Encode(bs *bitstore.BitStore, pos uint64, v uint64) uint64 {
	mustPositive(c, v)

	n := uint64(bits.Len64(v))
	writeZeros(bs, pos, n-1)
	pos += n - 1
	bs.SetBit(pos, true)
	pos++

	if n > 1 {
		bs.SetBits(pos, uint8(n-1), v)
		pos += n - 1
	}

	return pos
}

func (EliasGamma) Decode(bs *bitstore.BitStore, pos uint64) (uint64, uint64) {
	one := bs.NextOne(pos)
	z := one - pos
	pos = one + 1

	v := uint64(1) << z
	if z > 0 {
		v |= bs.GetBits(pos, uint8(z))
		pos += z
	}

	return v, pos
}

// EliasDelta writes v >= 1 of bit length N as the gamma code of N followed by
// the low N-1 bits of v.
type EliasDelta struct{}

var _ Coder = EliasDelta{}

func (EliasDelta) Type() format.CoderType { return format.CoderEliasDelta }
func (EliasDelta) Offset() uint64         { return 1 }

func (EliasDelta) Length(v uint64) uint64 {
	n := uint64(bits.Len64(v))
	return EliasGamma{}.Length(n) + n - 1
}

func (c EliasDelta) Encode(bs *bitstore.BitStore, pos uint64, v uint64) uint64 {
	mustPositive(c, v)

	n := uint64(bits.Len64(v))
	pos = EliasGamma{}.Encode(bs, pos, n)

	if n > 1 {
		bs.SetBits(pos, uint8(n-1), v)
		pos += n - 1
	}

	return pos
}

func (EliasDelta) Decode(bs *bitstore.BitStore, pos uint64) (uint64, uint64) {
	n, pos := EliasGamma{}.Decode(bs, pos)

	v := uint64(1) << (n - 1)
	if n > 1 {
		v |= bs.GetBits(pos, uint8(n-1))
		pos += n - 1
	}

	return v, pos
}
