package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
	"github.com/arloliu/sdsl/intvector"
)

var allCoders = []format.CoderType{
	format.CoderEliasGamma,
	format.CoderEliasDelta,
	format.CoderFibonacci,
	format.CoderComma2,
}

func TestEncVector_Defaults(t *testing.T) {
	v, err := NewEncVector(intvector.Slice[uint32]{1, 2, 3})
	require.NoError(t, err)

	require.Equal(t, format.CoderEliasDelta, v.Coder())
	require.Equal(t, uint64(128), v.SampleDensity())
	require.Equal(t, format.KindEncVector, v.Kind())
	require.Equal(t, uint8(format.CoderEliasDelta), v.Variant())
	require.Equal(t, uint64(1)<<57, v.MaxSize())
}

func TestEncVector_Monotonicity(t *testing.T) {
	_, err := NewEncVector(intvector.Slice[uint64]{3, 5, 2})
	require.ErrorIs(t, err, errs.ErrMonotonicityViolation)

	// A decrease across a sample boundary is rejected too.
	_, err = NewEncVector(intvector.Slice[uint64]{3, 5, 4}, WithSampleDensity(2))
	require.ErrorIs(t, err, errs.ErrMonotonicityViolation)

	v, err := NewEncVector(intvector.Slice[uint64]{7, 7, 7, 7})
	require.NoError(t, err)
	requireElements(t, []uint64{7, 7, 7, 7}, v)
}

func TestEncVector_Iteration(t *testing.T) {
	rng := rand.New(rand.NewSource(1000))
	values := nonDecreasing(1000, func() uint64 { return uint64(rng.Intn(50)) })

	v, err := NewEncVector(intvector.Slice[uint64](values), WithSampleDensity(128))
	require.NoError(t, err)

	var i uint64
	for val := range v.All() {
		got, err := v.Get(i)
		require.NoError(t, err)
		require.Equal(t, got, val)
		require.Equal(t, values[i], val)
		i++
	}
	require.Equal(t, uint64(1000), i)

	// A new iterator restarts at index 0.
	for val := range v.All() {
		require.Equal(t, values[0], val)
		break
	}
}

func TestEncVector_CodersAndDensities(t *testing.T) {
	values := make([]uint64, 1024)
	for i := range values {
		values[i] = uint64(i * i)
	}

	for _, ct := range allCoders {
		for _, d := range []uint64{1, 2, 7, 128, 1024, 5000} {
			v, err := NewEncVector(intvector.Slice[uint64](values), WithCoder(ct), WithSampleDensity(d))
			require.NoError(t, err, "%s d=%d", ct, d)
			require.Equal(t, ct, v.Coder())
			requireElements(t, values, v)
		}
	}
}

func TestEncVector_FromIntVector(t *testing.T) {
	for _, class := range []format.WidthClass{format.Width8, format.Width16, format.Width32, format.Width64} {
		iv, err := intvector.NewFixed(class, 300, 0)
		require.NoError(t, err)
		expected := make([]uint64, 300)
		for i := range expected {
			expected[i] = uint64(i / 3)
			require.NoError(t, iv.Set(uint64(i), expected[i]))
		}

		v, err := NewEncVector(iv, WithSampleDensity(16))
		require.NoError(t, err)
		requireElements(t, expected, v)
	}

	bits := intvector.Bits{false, false, true, true, true}
	v, err := NewEncVector(bits)
	require.NoError(t, err)
	requireElements(t, []uint64{0, 0, 1, 1, 1}, v)
}

func TestEncVector_LargeValues(t *testing.T) {
	values := []uint64{0, 1, 1 << 40, 1<<63 + 5, math.MaxUint64 - 1}
	for _, ct := range allCoders {
		v, err := NewEncVector(intvector.Slice[uint64](values), WithCoder(ct), WithSampleDensity(3))
		require.NoError(t, err, ct.String())
		requireElements(t, values, v)
	}

	// The first element is a sample and is never coded.
	v, err := NewEncVector(intvector.Slice[uint64]{math.MaxUint64, math.MaxUint64})
	require.NoError(t, err)
	requireElements(t, []uint64{math.MaxUint64, math.MaxUint64}, v)

	_, err = NewEncVector(intvector.Slice[uint64]{0, math.MaxUint64})
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)

	v, err = NewEncVector(intvector.Slice[uint64]{0, math.MaxUint64}, WithCoder(format.CoderComma2))
	require.NoError(t, err)
	requireElements(t, []uint64{0, math.MaxUint64}, v)
}

func TestEncVector_Empty(t *testing.T) {
	v, err := NewEncVector(intvector.Slice[uint64]{})
	require.NoError(t, err)
	require.True(t, v.Empty())
	requireElements(t, nil, v)
	requireBinaryRoundTrip(t, nil, v)

	_, err = v.Get(0)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestEncVector_GetOutOfRange(t *testing.T) {
	v, err := NewEncVector(intvector.Slice[uint64]{1, 2, 3})
	require.NoError(t, err)

	_, err = v.Get(3)
	require.ErrorIs(t, err, errs.ErrIndexOutOfRange)
}

func TestEncVector_Options(t *testing.T) {
	_, err := NewEncVector(intvector.Slice[uint64]{1}, WithSampleDensity(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = NewEncVector(intvector.Slice[uint64]{1}, WithCoder(format.CoderType(42)))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	// Chunk width does not apply to sampled vectors but is still validated.
	_, err = NewEncVector(intvector.Slice[uint64]{1}, WithChunkWidth(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestEncVector_Binary(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	values := nonDecreasing(777, func() uint64 { return rng.Uint64() >> 40 })

	for _, ct := range allCoders {
		v, err := NewEncVector(intvector.Slice[uint64](values), WithCoder(ct), WithSampleDensity(32))
		require.NoError(t, err)
		requireBinaryRoundTrip(t, values, v)
	}
}

func TestEncVector_DecodeCorrupt(t *testing.T) {
	v, err := NewEncVector(intvector.Slice[uint64]{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, WithSampleDensity(4))
	require.NoError(t, err)
	data := v.AppendBinary(nil, le)

	tamper := func(f func(b []byte)) []byte {
		b := append([]byte{}, data...)
		f(b)
		return b
	}

	cases := map[string][]byte{
		"Short header":  data[:10],
		"Truncated":     data[:len(data)-1],
		"Unknown coder": tamper(func(b []byte) { b[0] = 0 }),
		"Zero density":  tamper(func(b []byte) { clear(b[1:9]) }),
		"Density":       tamper(func(b []byte) { b[1] = 5 }),
		"Size":          tamper(func(b []byte) { b[9] = 20 }),
	}

	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			var d EncVector
			_, err := d.DecodeBinary(bad, le)
			require.ErrorIs(t, err, errs.ErrCorruptFormat)
		})
	}
}
