package vector

import (
	"iter"

	"github.com/c2h5oh/datasize"
	"github.com/cockroachdb/errors"

	"github.com/arloliu/sdsl/coder"
	"github.com/arloliu/sdsl/endian"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/intvector"
)

// VLCVector stores an arbitrary sequence as one variable-length code per
// element, value+Offset(), with the bit offset of every D-th code sampled.
type VLCVector struct {
	sampledCodes
}

// NewVLCVector builds a VLCVector from seq.
//
// Returns ErrValueOutOfRange if a value cannot be coded, e.g. math.MaxUint64
// with a coder whose Offset is 1, and ErrInvalidOption for invalid options.
func NewVLCVector(seq intvector.Sequence, opts ...Option) (*VLCVector, error) {
	cfg, err := newBuildConfig(opts)
	if err != nil {
		return nil, err
	}

	c, err := coder.New(cfg.coder)
	if err != nil {
		return nil, err
	}

	n := seq.Size()
	if n > maxSize {
		return nil, errors.Wrapf(errs.ErrInvalidOption, "%d elements exceed the maximum size", n)
	}

	d := cfg.density
	pointers := make([]uint64, 0, sampleCount(n, d))

	var total uint64
	for i := range n {
		shifted, err := coder.Shift(c, seq.At(i))
		if err != nil {
			return nil, errors.Wrapf(err, "element %d", i)
		}

		if i%d == 0 {
			pointers = append(pointers, total)
		}
		total += c.Length(shifted)
	}

	codes := intvector.NewBitVector(total, 0)
	bs := codes.BitStore()
	var pos uint64
	for i := range n {
		pos = c.Encode(bs, pos, seq.At(i)+c.Offset())
	}

	if pos != total {
		return nil, errors.AssertionFailedf("encoded %d bits, sized %d", pos, total)
	}

	pointerVec, err := intvector.FromValues(pointers, intvector.AutoWidth)
	if err != nil {
		return nil, err
	}

	return &VLCVector{
		sampledCodes: sampledCodes{
			coder:    c,
			density:  d,
			size:     n,
			codes:    codes,
			pointers: pointerVec,
		},
	}, nil
}

// Kind returns format.KindVLCVector.
func (v *VLCVector) Kind() format.VectorKind { return format.KindVLCVector }

// Get returns element i.
//
// Returns ErrIndexOutOfRange when i >= Size().
func (v *VLCVector) Get(i uint64) (uint64, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, err
	}

	return v.At(i), nil
}

// At returns element i without bounds checking. It decodes at most D codes.
func (v *VLCVector) At(i uint64) uint64 {
	pos := v.pointers.At(i / v.density)
	bs := v.codes.BitStore()

	var val uint64
	for range i%v.density + 1 {
		val, pos = v.coder.Decode(bs, pos)
	}

	return val - v.coder.Offset()
}

// All returns an iterator that decodes the stream front to back.
func (v *VLCVector) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		bs := v.codes.BitStore()
		off := v.coder.Offset()

		var val, pos uint64
		for range v.size {
			val, pos = v.coder.Decode(bs, pos)
			if !yield(val - off) {
				return
			}
		}
	}
}

// AppendBinary appends the encoding of v:
//
//	[coder:1][density:8][size:8][codewords][pointers]
func (v *VLCVector) AppendBinary(dst []byte, engine endian.EndianEngine) []byte {
	return v.appendBinary(dst, engine)
}

// DecodeBinary replaces v with the encoding at the front of data and returns
// the number of bytes consumed. v is unchanged on error.
func (v *VLCVector) DecodeBinary(data []byte, engine endian.EndianEngine) (int, error) {
	s, n, err := decodeSampled(data, engine, false)
	if err != nil {
		return 0, err
	}

	v.sampledCodes = s

	return n, nil
}

// SerializedSize returns the exact number of bytes written by AppendBinary.
func (v *VLCVector) SerializedSize() uint64 {
	return v.serializedSize()
}

// SizeInBytes returns the serialized size of v.
func (v *VLCVector) SizeInBytes() datasize.ByteSize {
	return datasize.ByteSize(v.SerializedSize())
}

// SizeInMegabytes returns the serialized size of v in MiB.
func (v *VLCVector) SizeInMegabytes() float64 {
	return v.SizeInBytes().MBytes()
}
