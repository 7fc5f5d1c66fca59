// Package bitstore provides BitStore, a growable bit-addressable buffer that every
// sdsl structure is built on.
//
// Bits are numbered from 0 and stored least-significant-bit first in 64-bit words:
// bit p lives in word p/64 at position p%64. A field of n bits read at position p
// returns bit p as its least significant bit.
//
// A BitStore tracks two quantities:
//   - Size: the number of bits in use
//   - Capacity: the number of allocated bits, always a multiple of 64 and >= Size
//
// Bits at or beyond Size are always zero, which keeps word-level operations
// (equality, popcount, bitwise ops) exact without masking.
package bitstore

import (
	"math/bits"
)

// WordBits is the number of bits in one storage word.
const WordBits = 64

// BitStore is a growable sequence of bits. The zero value is an empty store.
//
// BitStore is not safe for concurrent mutation.
type BitStore struct {
	words []uint64
	size  uint64
}

// New creates a BitStore holding bits zero bits.
func New(bits uint64) *BitStore {
	return &BitStore{
		words: make([]uint64, WordsFor(bits)),
		size:  bits,
	}
}

// FromWords creates a BitStore of size bits backed by words. The store takes
// ownership of words; bits at or beyond size are cleared.
//
// The caller must ensure len(words) >= WordsFor(size).
func FromWords(words []uint64, size uint64) *BitStore {
	bs := &BitStore{words: words, size: size}
	bs.clearFrom(size)

	return bs
}

// WordsFor returns the number of words needed to hold bits bits.
func WordsFor(bits uint64) int {
	return int((bits + WordBits - 1) / WordBits)
}

// Mask returns a mask with the low n bits set, for n in [0, 64].
func Mask(n uint8) uint64 {
	if n >= WordBits {
		return ^uint64(0)
	}

	return (uint64(1) << n) - 1
}

// Size returns the number of bits in use.
func (bs *BitStore) Size() uint64 {
	return bs.size
}

// Capacity returns the number of allocated bits.
func (bs *BitStore) Capacity() uint64 {
	return uint64(len(bs.words)) * WordBits
}

// Words returns the words covering [0, Size()).
//
// The returned slice aliases the store and must not be modified.
func (bs *BitStore) Words() []uint64 {
	return bs.words[:WordsFor(bs.size)]
}

// Resize changes the size to bits, preserving the content of [0, min(old, bits)).
// Growth is zero-filled; truncation discards the bits beyond the new size.
func (bs *BitStore) Resize(bits uint64) {
	if bits < bs.size {
		bs.clearFrom(bits)
	}

	bs.grow(WordsFor(bits))
	bs.size = bits
}

// Reserve grows the capacity to at least bits bits without changing the size.
func (bs *BitStore) Reserve(bits uint64) {
	bs.grow(WordsFor(bits))
}

// GetBits returns the n-bit field starting at bit pos, for n in [1, 64].
//
// Reading past Capacity() is a contract violation and panics.
func (bs *BitStore) GetBits(pos uint64, n uint8) uint64 {
	w := pos / WordBits
	off := uint8(pos % WordBits)

	v := bs.words[w] >> off
	if off+n > WordBits {
		v |= bs.words[w+1] << (WordBits - off)
	}

	return v & Mask(n)
}

// SetBits writes the low n bits of v at bit pos, for n in [1, 64].
// Bits of v above n are ignored.
//
// Writing past Capacity() is a contract violation and panics. Writes at or beyond
// Size() are the caller's responsibility: they are not cleared by later growth.
func (bs *BitStore) SetBits(pos uint64, n uint8, v uint64) {
	mask := Mask(n)
	v &= mask

	w := pos / WordBits
	off := uint8(pos % WordBits)

	bs.words[w] = bs.words[w]&^(mask<<off) | v<<off
	if off+n > WordBits {
		rem := off + n - WordBits
		bs.words[w+1] = bs.words[w+1]&^Mask(rem) | v>>(WordBits-off)
	}
}

// Bit returns the bit at pos.
func (bs *BitStore) Bit(pos uint64) bool {
	return (bs.words[pos/WordBits]>>(pos%WordBits))&1 == 1
}

// SetBit sets or clears the bit at pos.
func (bs *BitStore) SetBit(pos uint64, set bool) {
	if set {
		bs.words[pos/WordBits] |= 1 << (pos % WordBits)
	} else {
		bs.words[pos/WordBits] &^= 1 << (pos % WordBits)
	}
}

// AppendBits appends the low n bits of v, growing the store as needed.
func (bs *BitStore) AppendBits(v uint64, n uint8) {
	need := WordsFor(bs.size + uint64(n))
	if need > len(bs.words) {
		bs.grow(max(need, 2*len(bs.words)))
	}

	bs.SetBits(bs.size, n, v)
	bs.size += uint64(n)
}

// NextOne returns the position of the first set bit at or after pos, or Size()
// when there is none.
func (bs *BitStore) NextOne(pos uint64) uint64 {
	if pos >= bs.size {
		return bs.size
	}

	w := int(pos / WordBits)
	word := bs.words[w] &^ Mask(uint8(pos%WordBits))
	last := WordsFor(bs.size)

	for {
		if word != 0 {
			p := uint64(w)*WordBits + uint64(bits.TrailingZeros64(word))
			return min(p, bs.size)
		}

		w++
		if w >= last {
			return bs.size
		}
		word = bs.words[w]
	}
}

// PopCount returns the number of set bits.
func (bs *BitStore) PopCount() uint64 {
	var n uint64
	for _, w := range bs.Words() {
		n += uint64(bits.OnesCount64(w))
	}

	return n
}

// Flip negates every bit in [0, Size()).
func (bs *BitStore) Flip() {
	words := bs.Words()
	for i := range words {
		words[i] = ^words[i]
	}
	bs.clearFrom(bs.size)
}

// And stores bs & other into bs. Both stores must have the same size.
func (bs *BitStore) And(other *BitStore) {
	o := other.Words()
	for i := range o {
		bs.words[i] &= o[i]
	}
}

// Or stores bs | other into bs. Both stores must have the same size.
func (bs *BitStore) Or(other *BitStore) {
	o := other.Words()
	for i := range o {
		bs.words[i] |= o[i]
	}
}

// Xor stores bs ^ other into bs. Both stores must have the same size.
func (bs *BitStore) Xor(other *BitStore) {
	o := other.Words()
	for i := range o {
		bs.words[i] ^= o[i]
	}
}

// Equal reports whether both stores have the same size and bits.
func (bs *BitStore) Equal(other *BitStore) bool {
	if bs.size != other.size {
		return false
	}

	a, b := bs.Words(), other.Words()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of bs with capacity trimmed to its size.
func (bs *BitStore) Clone() *BitStore {
	words := make([]uint64, WordsFor(bs.size))
	copy(words, bs.words)

	return &BitStore{words: words, size: bs.size}
}

// grow extends the word slice to n words, zero-filling new words.
func (bs *BitStore) grow(n int) {
	if n <= len(bs.words) {
		return
	}

	if n <= cap(bs.words) {
		old := len(bs.words)
		bs.words = bs.words[:n]
		clear(bs.words[old:])

		return
	}

	words := make([]uint64, n)
	copy(words, bs.words)
	bs.words = words
}

// clearFrom zeroes every allocated bit at or beyond pos.
func (bs *BitStore) clearFrom(pos uint64) {
	w := int(pos / WordBits)
	if w >= len(bs.words) {
		return
	}

	if off := uint8(pos % WordBits); off != 0 {
		bs.words[w] &= Mask(off)
		w++
	}
	clear(bs.words[w:])
}
