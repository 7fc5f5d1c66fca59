package coder

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/arloliu/sdsl/bitstore"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
)

var allTypes = []format.CoderType{
	format.CoderEliasGamma,
	format.CoderEliasDelta,
	format.CoderFibonacci,
	format.CoderComma2,
}

// testValues returns small values, values around every power of two and the
// largest encodable value for c.
func testValues(c Coder) []uint64 {
	var values []uint64
	for v := c.Offset(); v < 2048; v++ {
		values = append(values, v)
	}
	for k := 11; k < 64; k++ {
		p := uint64(1) << k
		values = append(values, p-1, p, p+1)
	}
	values = append(values, math.MaxUint64-1, math.MaxUint64)

	return values
}

func TestNew(t *testing.T) {
	for _, ct := range allTypes {
		c, err := New(ct)
		require.NoError(t, err)
		require.Equal(t, ct, c.Type())
	}

	_, err := New(format.CoderType(0))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
	_, err = New(format.CoderType(99))
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}

func TestOffset(t *testing.T) {
	require.Equal(t, uint64(1), EliasGamma{}.Offset())
	require.Equal(t, uint64(1), EliasDelta{}.Offset())
	require.Equal(t, uint64(1), Fibonacci{}.Offset())
	require.Equal(t, uint64(0), comma2.Offset())
}

func TestRoundTrip(t *testing.T) {
	for _, ct := range allTypes {
		c, err := New(ct)
		require.NoError(t, err)

		t.Run(ct.String(), func(t *testing.T) {
			for _, v := range testValues(c) {
				n := c.Length(v)
				bs := bitstore.New(n + 7)
				end := c.Encode(bs, 7, v)
				require.Equal(t, 7+n, end, "length of %d", v)

				got, next := c.Decode(bs, 7)
				require.Equal(t, v, got)
				require.Equal(t, end, next)
				require.False(t, bs.Bit(0), "code of %d wrote before its start", v)
			}
		})
	}
}

func TestLength(t *testing.T) {
	require.Equal(t, uint64(1), EliasGamma{}.Length(1))
	require.Equal(t, uint64(127), EliasGamma{}.Length(math.MaxUint64))

	require.Equal(t, uint64(1), EliasDelta{}.Length(1))
	// gamma(64) is 13 bits, plus 63 payload bits.
	require.Equal(t, uint64(76), EliasDelta{}.Length(math.MaxUint64))

	require.Equal(t, uint64(2), Fibonacci{}.Length(1))
	require.Equal(t, uint64(93), Fibonacci{}.Length(math.MaxUint64))
	require.Equal(t, uint64(93), Fibonacci{}.Length(fibs[91]))
	require.Equal(t, uint64(92), Fibonacci{}.Length(fibs[91]-1))

	require.Equal(t, uint64(2), comma2.Length(0))
	require.Equal(t, uint64(4), comma2.Length(2))
	require.Equal(t, uint64(6), comma2.Length(3))
	// 3^40 < 2^64 < 3^41: 41 digits plus the terminator.
	require.Equal(t, uint64(84), comma2.Length(math.MaxUint64))
}

func TestFibonacciCodesEndInTwoOnes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for range 1000 {
		v := rng.Uint64()>>rng.Intn(64) | 1
		n := Fibonacci{}.Length(v)
		bs := bitstore.New(n)
		Fibonacci{}.Encode(bs, 0, v)

		require.True(t, bs.Bit(n-1))
		require.True(t, bs.Bit(n-2))
		for i := uint64(1); i < n-1; i++ {
			require.False(t, bs.Bit(i) && bs.Bit(i-1), "consecutive ones inside code of %d", v)
		}
	}
}

func TestEncodeZeroPanics(t *testing.T) {
	bs := bitstore.New(128)
	require.Panics(t, func() { EliasGamma{}.Encode(bs, 0, 0) })
	require.Panics(t, func() { EliasDelta{}.Encode(bs, 0, 0) })
	require.Panics(t, func() { Fibonacci{}.Encode(bs, 0, 0) })
}

func TestShift(t *testing.T) {
	s, err := Shift(EliasDelta{}, 41)
	require.NoError(t, err)
	require.Equal(t, uint64(42), s)

	_, err = Shift(EliasDelta{}, math.MaxUint64)
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)

	s, err = Shift(comma2, math.MaxUint64)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), s)
}

func TestEncodeDecodeAll(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	values := make([]uint64, 1000)
	for i := range values {
		values[i] = rng.Uint64() >> (rng.Intn(63) + 1)
	}
	values[0] = 0

	for _, ct := range allTypes {
		c, err := New(ct)
		require.NoError(t, err)

		bs, err := EncodeAll(c, values)
		require.NoError(t, err)

		decoded, err := DecodeAll(c, bs, uint64(len(values)))
		require.NoError(t, err)
		require.Equal(t, values, decoded, ct.String())

		_, err = DecodeAll(c, bs, uint64(len(values))+1)
		require.ErrorIs(t, err, errs.ErrCorruptFormat)
	}

	t.Run("Overflow", func(t *testing.T) {
		_, err := EncodeAll(Fibonacci{}, []uint64{1, math.MaxUint64})
		require.ErrorIs(t, err, errs.ErrValueOutOfRange)
	})

	t.Run("Empty", func(t *testing.T) {
		bs, err := EncodeAll(EliasGamma{}, nil)
		require.NoError(t, err)
		require.Equal(t, uint64(0), bs.Size())

		decoded, err := DecodeAll(EliasGamma{}, bs, 0)
		require.NoError(t, err)
		require.Empty(t, decoded)
	})
}

func TestCommaWidths(t *testing.T) {
	for w := uint8(2); w <= 8; w++ {
		c, err := NewComma(w)
		require.NoError(t, err)
		require.Equal(t, w, c.DigitWidth())

		for _, v := range []uint64{0, 1, 2, 254, 255, 256, 1e9, math.MaxUint64} {
			n := c.Length(v)
			require.Zero(t, n%uint64(w))

			bs := bitstore.New(n)
			require.Equal(t, n, c.Encode(bs, 0, v))
			got, next := c.Decode(bs, 0)
			require.Equal(t, v, got, "w=%d", w)
			require.Equal(t, n, next)
		}
	}

	c, err := NewComma(3)
	require.NoError(t, err)
	require.Equal(t, format.CoderType(0), c.Type(), "only 2-bit digits have a tag")

	_, err = NewComma(1)
	require.ErrorIs(t, err, errs.ErrInvalidOption)
	_, err = NewComma(9)
	require.ErrorIs(t, err, errs.ErrInvalidOption)
}
