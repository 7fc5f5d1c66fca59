package bitstore

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNew(t *testing.T) {
	bs := New(100)

	require.Equal(t, uint64(100), bs.Size())
	require.Equal(t, uint64(128), bs.Capacity())
	require.Len(t, bs.Words(), 2)
	require.Equal(t, uint64(0), bs.PopCount())

	var zero BitStore
	require.Equal(t, uint64(0), zero.Size())
	require.Equal(t, uint64(0), zero.Capacity())
	require.Empty(t, zero.Words())
}

func TestMask(t *testing.T) {
	require.Equal(t, uint64(0), Mask(0))
	require.Equal(t, uint64(1), Mask(1))
	require.Equal(t, uint64(0xFF), Mask(8))
	require.Equal(t, uint64(1<<63-1), Mask(63))
	require.Equal(t, ^uint64(0), Mask(64))
}

func TestGetSetBits(t *testing.T) {
	t.Run("Within word", func(t *testing.T) {
		bs := New(64)
		bs.SetBits(4, 8, 0xAB)

		require.Equal(t, uint64(0xAB), bs.GetBits(4, 8))
		require.Equal(t, uint64(0xAB0), bs.GetBits(0, 64))
		require.Equal(t, uint64(0xB), bs.GetBits(4, 4))
	})

	t.Run("Spanning words", func(t *testing.T) {
		bs := New(192)
		bs.SetBits(60, 64, 0x0123456789ABCDEF)

		require.Equal(t, uint64(0x0123456789ABCDEF), bs.GetBits(60, 64))
		require.Equal(t, uint64(0xF), bs.GetBits(60, 4))
		require.Equal(t, uint64(0x0), bs.GetBits(0, 60))
		require.Equal(t, uint64(0x0123456789ABCDE), bs.GetBits(64, 60))
	})

	t.Run("Masks value", func(t *testing.T) {
		bs := New(64)
		bs.SetBits(0, 4, 0xFF)

		require.Equal(t, uint64(0xF), bs.GetBits(0, 64))
	})

	t.Run("Overwrite keeps neighbours", func(t *testing.T) {
		bs := New(128)
		bs.SetBits(0, 64, ^uint64(0))
		bs.SetBits(64, 64, ^uint64(0))
		bs.SetBits(62, 4, 0)

		require.Equal(t, uint64(1<<62-1), bs.GetBits(0, 64))
		require.Equal(t, ^uint64(0)&^0x3, bs.GetBits(64, 64))
	})

	t.Run("Random fields", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		bs := New(64 * 64)

		type field struct {
			pos uint64
			n   uint8
			v   uint64
		}
		var fields []field
		var pos uint64
		for pos < bs.Size()-64 {
			n := uint8(rng.Intn(64) + 1)
			v := rng.Uint64() & Mask(n)
			bs.SetBits(pos, n, v)
			fields = append(fields, field{pos, n, v})
			pos += uint64(n)
		}

		for _, f := range fields {
			require.Equal(t, f.v, bs.GetBits(f.pos, f.n), "pos=%d n=%d", f.pos, f.n)
		}
	})

	t.Run("Past capacity panics", func(t *testing.T) {
		bs := New(64)
		require.Panics(t, func() { bs.GetBits(60, 8) })
	})
}

func TestBit(t *testing.T) {
	bs := New(70)
	bs.SetBit(3, true)
	bs.SetBit(69, true)

	require.True(t, bs.Bit(3))
	require.True(t, bs.Bit(69))
	require.False(t, bs.Bit(4))
	require.Equal(t, uint64(2), bs.PopCount())

	bs.SetBit(3, false)
	require.False(t, bs.Bit(3))
}

func TestResize(t *testing.T) {
	t.Run("Grow zero fills and preserves", func(t *testing.T) {
		bs := New(10)
		bs.SetBits(0, 10, 0x3FF)
		bs.Resize(200)

		require.Equal(t, uint64(200), bs.Size())
		require.GreaterOrEqual(t, bs.Capacity(), uint64(200))
		require.Equal(t, uint64(0x3FF), bs.GetBits(0, 10))
		require.Equal(t, uint64(10), bs.PopCount())
	})

	t.Run("Shrink discards bits", func(t *testing.T) {
		bs := New(128)
		bs.SetBits(0, 64, ^uint64(0))
		bs.SetBits(64, 64, ^uint64(0))

		bs.Resize(70)
		require.Equal(t, uint64(70), bs.PopCount())

		bs.Resize(128)
		require.Equal(t, uint64(70), bs.PopCount(), "regrown bits must be zero")
		require.Equal(t, uint64(0x3F), bs.GetBits(64, 64))
	})

	t.Run("Shrink to zero", func(t *testing.T) {
		bs := New(64)
		bs.SetBits(0, 64, 1)
		bs.Resize(0)
		bs.Resize(64)

		require.Equal(t, uint64(0), bs.GetBits(0, 64))
	})
}

func TestReserve(t *testing.T) {
	bs := New(10)
	bs.Reserve(1000)

	require.Equal(t, uint64(10), bs.Size())
	require.GreaterOrEqual(t, bs.Capacity(), uint64(1000))
}

func TestAppendBits(t *testing.T) {
	var bs BitStore
	for i := range 100 {
		bs.AppendBits(uint64(i), 7)
	}

	require.Equal(t, uint64(700), bs.Size())
	for i := range 100 {
		require.Equal(t, uint64(i), bs.GetBits(uint64(i)*7, 7))
	}
}

func TestNextOne(t *testing.T) {
	bs := New(300)
	bs.SetBit(5, true)
	bs.SetBit(64, true)
	bs.SetBit(250, true)

	require.Equal(t, uint64(5), bs.NextOne(0))
	require.Equal(t, uint64(5), bs.NextOne(5))
	require.Equal(t, uint64(64), bs.NextOne(6))
	require.Equal(t, uint64(250), bs.NextOne(65))
	require.Equal(t, uint64(300), bs.NextOne(251))
	require.Equal(t, uint64(300), bs.NextOne(300))
	require.Equal(t, uint64(300), bs.NextOne(1000))
}

func TestFlip(t *testing.T) {
	bs := New(70)
	bs.SetBit(0, true)
	bs.Flip()

	require.Equal(t, uint64(69), bs.PopCount())
	require.False(t, bs.Bit(0))
	require.True(t, bs.Bit(69))

	// Padding stays clear.
	bs.Resize(128)
	require.Equal(t, uint64(69), bs.PopCount())
}

func TestBitwise(t *testing.T) {
	a := New(80)
	b := New(80)
	a.SetBits(0, 8, 0b1100)
	b.SetBits(0, 8, 0b1010)

	and := a.Clone()
	and.And(b)
	require.Equal(t, uint64(0b1000), and.GetBits(0, 8))

	or := a.Clone()
	or.Or(b)
	require.Equal(t, uint64(0b1110), or.GetBits(0, 8))

	xor := a.Clone()
	xor.Xor(b)
	require.Equal(t, uint64(0b0110), xor.GetBits(0, 8))
}

func TestEqualClone(t *testing.T) {
	a := New(130)
	a.SetBits(100, 20, 0xABCDE)

	b := a.Clone()
	require.True(t, a.Equal(b))
	require.Equal(t, uint64(192), b.Capacity())

	b.SetBit(0, true)
	require.False(t, a.Equal(b))

	c := New(131)
	require.False(t, New(130).Equal(c))
}

func TestFromWords(t *testing.T) {
	bs := FromWords([]uint64{^uint64(0), ^uint64(0)}, 68)

	require.Equal(t, uint64(68), bs.Size())
	require.Equal(t, uint64(68), bs.PopCount())
	require.Equal(t, uint64(0xF), bs.GetBits(64, 64))
}
