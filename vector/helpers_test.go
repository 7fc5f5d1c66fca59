package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sdsl/endian"
)

var engines = map[string]endian.EndianEngine{
	"LittleEndian": endian.GetLittleEndianEngine(),
	"BigEndian":    endian.GetBigEndianEngine(),
}

// requireElements checks Get, At and All of v against expected.
func requireElements(t *testing.T, expected []uint64, v Vector) {
	t.Helper()

	require.Equal(t, uint64(len(expected)), v.Size())
	require.Equal(t, len(expected) == 0, v.Empty())

	for i, want := range expected {
		got, err := v.Get(uint64(i))
		require.NoError(t, err)
		require.Equal(t, want, got, "index %d", i)
	}

	var all []uint64
	for val := range v.All() {
		all = append(all, val)
	}
	if len(expected) == 0 {
		require.Empty(t, all)
	} else {
		require.Equal(t, expected, all)
	}
}

// requireBinaryRoundTrip encodes v with every engine, decodes into a fresh vector
// of the same kind and checks the elements and the exact encoded size.
func requireBinaryRoundTrip(t *testing.T, expected []uint64, v Vector) {
	t.Helper()

	for name, engine := range engines {
		data := v.AppendBinary(nil, engine)
		require.Equal(t, uint64(len(data)), uint64(v.SizeInBytes()), name)

		decoded := New(v.Kind())
		// Trailing bytes belong to the caller.
		n, err := decoded.DecodeBinary(append(data, 0xAA, 0xBB), engine)
		require.NoError(t, err, name)
		require.Equal(t, len(data), n, name)
		require.Equal(t, v.Variant(), decoded.Variant())

		requireElements(t, expected, decoded)
	}
}

// nonDecreasing returns n values with gaps drawn from next.
func nonDecreasing(n int, next func() uint64) []uint64 {
	values := make([]uint64, n)
	var cur uint64
	for i := range values {
		cur += next()
		values[i] = cur
	}

	return values
}

var le = endian.GetLittleEndianEngine()
