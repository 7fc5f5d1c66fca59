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

// EncVector stores a non-decreasing sequence as variable-length codes of the
// differences between neighbours.
//
// Every D-th element (index 0 included) is a sample: its absolute value and the
// bit offset of the code that follows it are kept uncompressed. Element s*D+k,
// 0 < k < D, is sample s plus the k codes after it, each code holding
// difference+Offset().
type EncVector struct {
	sampledCodes
	samples *intvector.IntVector // absolute value of every D-th element
}

// NewEncVector builds an EncVector from seq.
//
// Parameters:
//   - seq: Non-decreasing input sequence
//   - opts: WithCoder, WithSampleDensity
//
// Returns:
//   - *EncVector: The built vector
//   - error: ErrMonotonicityViolation if seq decreases anywhere,
//     ErrValueOutOfRange if a difference cannot be coded, ErrInvalidOption for
//     invalid options
func NewEncVector(seq intvector.Sequence, opts ...Option) (*EncVector, error) {
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
	numSamples := sampleCount(n, d)
	samples := make([]uint64, 0, numSamples)
	pointers := make([]uint64, 0, numSamples)

	// Size the stream and validate the input before writing any code.
	var total, prev uint64
	for i := range n {
		v := seq.At(i)
		if i > 0 && v < prev {
			return nil, errors.Wrapf(errs.ErrMonotonicityViolation, "element %d = %d follows %d", i, v, prev)
		}

		if i%d == 0 {
			samples = append(samples, v)
			pointers = append(pointers, total)
		} else {
			shifted, err := coder.Shift(c, v-prev)
			if err != nil {
				return nil, errors.Wrapf(err, "difference at element %d", i)
			}
			total += c.Length(shifted)
		}
		prev = v
	}

	codes := intvector.NewBitVector(total, 0)
	bs := codes.BitStore()
	var pos uint64
	for i := range n {
		v := seq.At(i)
		if i%d != 0 {
			pos = c.Encode(bs, pos, v-prev+c.Offset())
		}
		prev = v
	}

	if pos != total {
		return nil, errors.AssertionFailedf("encoded %d bits, sized %d", pos, total)
	}

	sampleVec, err := intvector.FromValues(samples, intvector.AutoWidth)
	if err != nil {
		return nil, err
	}

	pointerVec, err := intvector.FromValues(pointers, intvector.AutoWidth)
	if err != nil {
		return nil, err
	}

	return &EncVector{
		sampledCodes: sampledCodes{
			coder:    c,
			density:  d,
			size:     n,
			codes:    codes,
			pointers: pointerVec,
		},
		samples: sampleVec,
	}, nil
}

// Kind returns format.KindEncVector.
func (v *EncVector) Kind() format.VectorKind { return format.KindEncVector }

// Get returns element i.
//
// Returns ErrIndexOutOfRange when i >= Size().
func (v *EncVector) Get(i uint64) (uint64, error) {
	if err := v.checkIndex(i); err != nil {
		return 0, err
	}

	return v.At(i), nil
}

// At returns element i without bounds checking. It decodes at most D-1 codes.
func (v *EncVector) At(i uint64) uint64 {
	s := i / v.density
	val := v.samples.At(s)
	pos := v.pointers.At(s)
	bs := v.codes.BitStore()
	off := v.coder.Offset()

	for range i % v.density {
		var diff uint64
		diff, pos = v.coder.Decode(bs, pos)
		val += diff - off
	}

	return val
}

// All returns an iterator that decodes the stream front to back.
func (v *EncVector) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		bs := v.codes.BitStore()
		off := v.coder.Offset()

		var val, pos uint64
		for i := range v.size {
			if i%v.density == 0 {
				val = v.samples.At(i / v.density)
			} else {
				var diff uint64
				diff, pos = v.coder.Decode(bs, pos)
				val += diff - off
			}

			if !yield(val) {
				return
			}
		}
	}
}

// AppendBinary appends the encoding of v:
//
//	[coder:1][density:8][size:8][codewords][pointers][samples]
//
// where each of the last three is an IntVector encoding.
func (v *EncVector) AppendBinary(dst []byte, engine endian.EndianEngine) []byte {
	dst = v.appendBinary(dst, engine)
	return v.samples.AppendBinary(dst, engine)
}

// DecodeBinary replaces v with the encoding at the front of data and returns
// the number of bytes consumed. v is unchanged on error.
//
// Returns ErrCorruptFormat when data is truncated or inconsistent.
func (v *EncVector) DecodeBinary(data []byte, engine endian.EndianEngine) (int, error) {
	s, off, err := decodeSampled(data, engine, true)
	if err != nil {
		return 0, err
	}

	samples, n, err := intvector.Decode(format.WidthRuntime, data[off:], engine)
	if err != nil {
		return 0, errors.Wrap(err, "samples")
	}

	if samples.Size() != s.numSamples() {
		return 0, errors.Wrapf(errs.ErrCorruptFormat, "%d samples, expected %d", samples.Size(), s.numSamples())
	}

	*v = EncVector{sampledCodes: s, samples: samples}

	return off + n, nil
}

// SerializedSize returns the exact number of bytes written by AppendBinary.
func (v *EncVector) SerializedSize() uint64 {
	return v.serializedSize() + v.samples.SerializedSize()
}

// SizeInBytes returns the serialized size of v.
func (v *EncVector) SizeInBytes() datasize.ByteSize {
	return datasize.ByteSize(v.SerializedSize())
}

// SizeInMegabytes returns the serialized size of v in MiB.
func (v *EncVector) SizeInMegabytes() float64 {
	return v.SizeInBytes().MBytes()
}

