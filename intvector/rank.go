package intvector

import (
	"math/bits"
)

// rankBlockWords is the number of words covered by one cumulative count.
const rankBlockWords = 8

// RankSupport answers rank queries over the raw bits of an IntVector, typically
// a bit vector. It stores one cumulative count per 512 bits.
//
// The vector must not be modified while the RankSupport is in use.
type RankSupport struct {
	words  []uint64
	blocks []uint64 // blocks[k] = set bits in words[0 : k*rankBlockWords]
	size   uint64
}

// NewRankSupport builds rank support over the bits of v.
func NewRankSupport(v *IntVector) *RankSupport {
	words := v.BitStore().Words()
	blocks := make([]uint64, len(words)/rankBlockWords+1)

	var total uint64
	for i, w := range words {
		if i%rankBlockWords == 0 {
			blocks[i/rankBlockWords] = total
		}
		total += uint64(bits.OnesCount64(w))
	}
	if len(words)%rankBlockWords == 0 {
		blocks[len(words)/rankBlockWords] = total
	}

	return &RankSupport{
		words:  words,
		blocks: blocks,
		size:   v.BitSize(),
	}
}

// Rank1 returns the number of set bits in [0, i), for i <= bit size.
func (r *RankSupport) Rank1(i uint64) uint64 {
	w := int(i / 64)
	n := r.blocks[w/rankBlockWords]
	for k := (w / rankBlockWords) * rankBlockWords; k < w; k++ {
		n += uint64(bits.OnesCount64(r.words[k]))
	}

	if off := i % 64; off != 0 {
		n += uint64(bits.OnesCount64(r.words[w] & (uint64(1)<<off - 1)))
	}

	return n
}

// Rank0 returns the number of clear bits in [0, i), for i <= bit size.
func (r *RankSupport) Rank0(i uint64) uint64 {
	return i - r.Rank1(i)
}

// Ones returns the total number of set bits.
func (r *RankSupport) Ones() uint64 {
	return r.Rank1(r.size)
}
