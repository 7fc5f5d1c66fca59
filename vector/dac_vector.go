package vector

import (
	"iter"

	"github.com/c2h5oh/datasize"
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/endian"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/internal/pool"
	"github.com/arloliu/sdsl/intvector"
)

// dacHeaderSize is [chunk width:1][levels:1][size:8].
const dacHeaderSize = 1 + 1 + 8

// dacLevel holds one chunk per value that reaches the level, and a flag per
// chunk telling whether the value continues on the next level.
type dacLevel struct {
	chunks *intvector.IntVector
	flags  *intvector.IntVector // width 1
	rank   *intvector.RankSupport
}

// DACVector stores every value as its w-bit chunks, least significant first.
// Level 0 holds the first chunk of every value; level l+1 holds the next chunk
// of each value whose level-l flag is set, in the same order. The position of a
// value on level l+1 is the rank of its flag on level l.
//
// Access costs one rank query per level used by the value, independent of any
// sampling density.
type DACVector struct {
	chunkWidth uint8
	size       uint64
	levels     []dacLevel
}

// NewDACVector builds a DACVector from seq.
//
// Parameters:
//   - seq: Input sequence
//   - opts: WithChunkWidth
//
// Returns:
//   - *DACVector: The built vector
//   - error: ErrInvalidOption for invalid options
func NewDACVector(seq intvector.Sequence, opts ...Option) (*DACVector, error) {
	cfg, err := newBuildConfig(opts)
	if err != nil {
		return nil, err
	}

	n := seq.Size()
	if n > maxSize {
		return nil, errors.Wrapf(errs.ErrInvalidOption, "%d elements exceed the maximum size", n)
	}

	w := cfg.chunkWidth
	residuals, cleanup := pool.GetUint64Slice(int(n))
	defer cleanup()

	for i := range n {
		residuals[i] = seq.At(i)
	}

	v := &DACVector{chunkWidth: w, size: n}
	for len(residuals) > 0 {
		m := uint64(len(residuals))
		chunks, err := intvector.New(m, 0, w)
		if err != nil {
			return nil, err
		}
		flags := intvector.NewBitVector(m, 0)

		cb, fb := chunks.BitStore(), flags.BitStore()
		next := 0
		for k, r := range residuals {
			cb.SetBits(uint64(k)*uint64(w), w, r)

			// A shift by 64 yields 0, so a full-width chunk never continues.
			if rest := r >> w; rest != 0 {
				fb.SetBit(uint64(k), true)
				residuals[next] = rest
				next++
			}
		}
		residuals = residuals[:next]

		v.levels = append(v.levels, dacLevel{
			chunks: chunks,
			flags:  flags,
			rank:   intvector.NewRankSupport(flags),
		})
	}

	return v, nil
}

// Kind returns format.KindDACVector.
func (v *DACVector) Kind() format.VectorKind { return format.KindDACVector }

// Variant returns the chunk width.
func (v *DACVector) Variant() uint8 { return v.chunkWidth }

// Size returns the number of elements.
func (v *DACVector) Size() uint64 { return v.size }

// Empty reports whether the vector has no elements.
func (v *DACVector) Empty() bool { return v.size == 0 }

// MaxSize returns the largest supported number of elements.
func (v *DACVector) MaxSize() uint64 { return maxSize }

// ChunkWidth returns the number of bits per chunk.
func (v *DACVector) ChunkWidth() uint8 { return v.chunkWidth }

// Levels returns the number of levels, the chunk count of the largest value.
func (v *DACVector) Levels() int { return len(v.levels) }

// LevelSize returns the number of chunks stored on level l.
func (v *DACVector) LevelSize(l int) uint64 { return v.levels[l].chunks.Size() }

// Get returns element i.
//
// Returns ErrIndexOutOfRange when i >= Size().
func (v *DACVector) Get(i uint64) (uint64, error) {
	if i >= v.size {
		return 0, errors.Wrapf(errs.ErrIndexOutOfRange, "index %d, size %d", i, v.size)
	}

	return v.At(i), nil
}

// At returns element i without bounds checking.
func (v *DACVector) At(i uint64) uint64 {
	var val uint64
	var shift uint
	idx := i
	for l := range v.levels {
		lvl := &v.levels[l]
		val |= lvl.chunks.At(idx) << shift
		if !lvl.flags.BitStore().Bit(idx) {
			break
		}
		idx = lvl.rank.Rank1(idx)
		shift += uint(v.chunkWidth)
	}

	return val
}

// All returns an iterator over the elements. It keeps one cursor per level
// instead of issuing rank queries.
func (v *DACVector) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		cursors := make([]uint64, len(v.levels))
		for range v.size {
			var val uint64
			var shift uint
			for l := range v.levels {
				lvl := &v.levels[l]
				idx := cursors[l]
				cursors[l]++

				val |= lvl.chunks.At(idx) << shift
				if !lvl.flags.BitStore().Bit(idx) {
					break
				}
				shift += uint(v.chunkWidth)
			}

			if !yield(val) {
				return
			}
		}
	}
}

// AppendBinary appends the encoding of v:
//
//	[chunk width:1][levels:1][size:8] then per level [chunks][flags]
//
// Rank directories are not stored; they are rebuilt by DecodeBinary.
func (v *DACVector) AppendBinary(dst []byte, engine endian.EndianEngine) []byte {
	dst = append(dst, v.chunkWidth, uint8(len(v.levels)))
	dst = engine.AppendUint64(dst, v.size)
	for _, lvl := range v.levels {
		dst = lvl.chunks.AppendBinary(dst, engine)
		dst = lvl.flags.AppendBinary(dst, engine)
	}

	return dst
}

// DecodeBinary replaces v with the encoding at the front of data and returns
// the number of bytes consumed. v is unchanged on error.
//
// Returns ErrCorruptFormat unless level 0 holds Size() chunks, every level of
// chunks has the recorded chunk width, each next level holds as many chunks as
// the current level has set flags, and the last level has no set flag.
func (v *DACVector) DecodeBinary(data []byte, engine endian.EndianEngine) (int, error) {
	if len(data) < dacHeaderSize {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "dac header needs %d bytes, have %d", dacHeaderSize, len(data))
	}

	w := data[0]
	numLevels := int(data[1])
	size := engine.Uint64(data[2:dacHeaderSize])
	if w == 0 || w > 64 {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "chunk width %d is outside [1, 64]", w)
	}
	if size > maxSize {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "size %d exceeds the maximum", size)
	}
	if maxLevels := (64 + int(w) - 1) / int(w); numLevels > maxLevels {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "%d levels exceed %d for %d-bit chunks", numLevels, maxLevels, w)
	}
	if (size == 0) != (numLevels == 0) {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "%d levels for %d elements", numLevels, size)
	}

	off := dacHeaderSize
	levels := make([]dacLevel, 0, numLevels)
	expected := size
	for l := range numLevels {
		chunks, n, err := intvector.Decode(format.WidthRuntime, data[off:], engine)
		if err != nil {
			return 0, errors.Wrapf(err, "level %d chunks", l)
		}
		off += n

		flags, n, err := intvector.Decode(format.Width1, data[off:], engine)
		if err != nil {
			return 0, errors.Wrapf(err, "level %d flags", l)
		}
		off += n

		if chunks.Width() != w {
			return 0, errors.Wrapf(errs.ErrCorruptFormat, "level %d chunk width %d, expected %d", l, chunks.Width(), w)
		}
		if chunks.Size() != expected || flags.Size() != expected {
			return 0, errors.Wrapf(errs.ErrCorruptFormat, "level %d holds %d chunks and %d flags, expected %d",
				l, chunks.Size(), flags.Size(), expected)
		}

		rank := intvector.NewRankSupport(flags)
		expected = rank.Ones()
		levels = append(levels, dacLevel{chunks: chunks, flags: flags, rank: rank})
	}

	if expected != 0 {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "last level flags %d values as continuing", expected)
	}

	*v = DACVector{chunkWidth: w, size: size, levels: levels}

	return off, nil
}

// SerializedSize returns the exact number of bytes written by AppendBinary.
func (v *DACVector) SerializedSize() uint64 {
	n := uint64(dacHeaderSize)
	for _, lvl := range v.levels {
		n += lvl.chunks.SerializedSize() + lvl.flags.SerializedSize()
	}

	return n
}

// SizeInBytes returns the serialized size of v.
func (v *DACVector) SizeInBytes() datasize.ByteSize {
	return datasize.ByteSize(v.SerializedSize())
}

// SizeInMegabytes returns the serialized size of v in MiB.
func (v *DACVector) SizeInMegabytes() float64 {
	return v.SizeInBytes().MBytes()
}

// ChunkBits returns the total number of chunk bits, excluding flags.
func (v *DACVector) ChunkBits() uint64 {
	var n uint64
	for _, lvl := range v.levels {
		n += lvl.chunks.BitSize()
	}

	return n
}

