package coder

import (
	"github.com/arloliu/sdsl/bitstore"
	"github.com/arloliu/sdsl/format"
)

// fibs[i] is the Fibonacci number F(i+2): 1, 2, 3, 5, 8, ... The last entry,
// F(93), is the largest that fits in a uint64.
var fibs = func() [92]uint64 {
	var f [92]uint64
	f[0], f[1] = 1, 2
	for i := 2; i < len(f); i++ {
		f[i] = f[i-1] + f[i-2]
	}

	return f
}()

// Fibonacci writes v >= 1 as its Zeckendorf representation, one bit per
// Fibonacci number starting at F(2) = 1, followed by a terminating one bit.
// Every code ends in two consecutive one bits and is at most 93 bits long.
type Fibonacci struct{}

var _ Coder = Fibonacci{}

func (Fibonacci) Type() format.CoderType { return format.CoderFibonacci }
func (Fibonacci) Offset() uint64         { return 1 }

// Length returns h+2 where F(h+2) is the largest Fibonacci number <= v.
func (Fibonacci) Length(v uint64) uint64 {
	return uint64(highestFib(v)) + 2
}

func (c Fibonacci) Encode(bs *bitstore.BitStore, pos uint64, v uint64) uint64 {
	mustPositive(c, v)

	h := highestFib(v)

	// code[0] holds bits 0-63 of the code, code[1] bits 64-92.
	var code [2]uint64
	rem := v
	for i := h; i >= 0; i-- {
		if fibs[i] <= rem {
			rem -= fibs[i]
			code[i/64] |= 1 << (i % 64)
		}
	}
	code[(h+1)/64] |= 1 << ((h + 1) % 64)

	n := uint64(h) + 2
	if n <= bitstore.WordBits {
		bs.SetBits(pos, uint8(n), code[0])
	} else {
		bs.SetBits(pos, bitstore.WordBits, code[0])
		bs.SetBits(pos+bitstore.WordBits, uint8(n-bitstore.WordBits), code[1])
	}

	return pos + n
}

// Decode skips zero runs with NextOne; a set bit followed by another set bit
// is the terminator, a set bit followed by a zero advances past both.
func (Fibonacci) Decode(bs *bitstore.BitStore, pos uint64) (uint64, uint64) {
	start := pos
	var v uint64
	for {
		one := bs.NextOne(pos)
		v += fibs[one-start]
		if bs.Bit(one + 1) {
			return v, one + 2
		}
		pos = one + 2
	}
}

// highestFib returns the largest i with fibs[i] <= v, for v >= 1.
func highestFib(v uint64) int {
	lo, hi := 0, len(fibs)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if fibs[mid] <= v {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}
