package intvector

import (
	"bytes"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/arloliu/sdsl/endian"
	"github.com/arloliu/sdsl/errs"
	"github.com/arloliu/sdsl/format"
)

func TestMarshalBinary(t *testing.T) {
	v, err := FromValues([]uint64{1, 2, 31}, 5)
	require.NoError(t, err)

	data, err := v.MarshalBinary()
	require.NoError(t, err)

	expected := []byte{
		5,                            // width
		15, 0, 0, 0, 0, 0, 0, 0,      // bit size
		0x41, 0x7C, 0, 0, 0, 0, 0, 0, // 1 | 2<<5 | 31<<10
	}
	require.Equal(t, expected, data)
	require.Equal(t, uint64(len(expected)), v.SerializedSize())
	require.Equal(t, datasize.ByteSize(17), v.SizeInBytes())
	require.InDelta(t, 17.0/(1<<20), v.SizeInMegabytes(), 1e-12)

	var decoded IntVector
	require.NoError(t, decoded.UnmarshalBinary(data))
	require.True(t, v.Equal(&decoded))
	require.Equal(t, format.WidthRuntime, decoded.WidthClass())
}

func TestBinaryRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, width := range []uint8{1, 3, 8, 13, 32, 63, 64} {
		values := make([]uint64, 257)
		for i := range values {
			values[i] = rng.Uint64()
		}
		v, err := FromValues(values, width)
		require.NoError(t, err)

		for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
			data := v.AppendBinary([]byte{0xEE}, engine)
			require.Equal(t, byte(0xEE), data[0])

			decoded, n, err := Decode(format.WidthRuntime, data[1:], engine)
			require.NoError(t, err)
			require.Equal(t, len(data)-1, n)
			require.True(t, v.Equal(decoded), "width %d", width)
		}
	}
}

func TestDecodeBinary_Errors(t *testing.T) {
	v, err := FromValues([]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, 5)
	require.NoError(t, err)
	data, err := v.MarshalBinary()
	require.NoError(t, err)

	t.Run("Short header", func(t *testing.T) {
		var d IntVector
		_, err := d.DecodeBinary(data[:8], endian.GetLittleEndianEngine())
		require.ErrorIs(t, err, errs.ErrCorruptFormat)
	})

	t.Run("Truncated words", func(t *testing.T) {
		var d IntVector
		_, err := d.DecodeBinary(data[:len(data)-1], endian.GetLittleEndianEngine())
		require.ErrorIs(t, err, errs.ErrCorruptFormat)
	})

	t.Run("Huge bit size", func(t *testing.T) {
		bad := append([]byte{}, data...)
		for i := 1; i < 9; i++ {
			bad[i] = 0xFF
		}
		var d IntVector
		_, err := d.DecodeBinary(bad, endian.GetLittleEndianEngine())
		require.ErrorIs(t, err, errs.ErrCorruptFormat)
	})

	t.Run("Invalid width", func(t *testing.T) {
		for _, w := range []byte{0, 65, 255} {
			bad := append([]byte{}, data...)
			bad[0] = w
			var d IntVector
			_, err := d.DecodeBinary(bad, endian.GetLittleEndianEngine())
			require.ErrorIs(t, err, errs.ErrCorruptFormat)
		}
	})

	t.Run("Fixed class mismatch", func(t *testing.T) {
		_, _, err := Decode(format.Width8, data, endian.GetLittleEndianEngine())
		require.ErrorIs(t, err, errs.ErrCorruptFormat)
	})

	t.Run("Trailing bytes", func(t *testing.T) {
		var d IntVector
		err := d.UnmarshalBinary(append(append([]byte{}, data...), 0))
		require.ErrorIs(t, err, errs.ErrCorruptFormat)
	})
}

func TestDecodeBinary_FixedClass(t *testing.T) {
	v, err := NewFixed(format.Width16, 4, 0xBEEF)
	require.NoError(t, err)
	data, err := v.MarshalBinary()
	require.NoError(t, err)

	decoded, n, err := Decode(format.Width16, data, endian.GetLittleEndianEngine())
	require.NoError(t, err)
	require.Equal(t, len(data), n)
	require.Equal(t, format.Width16, decoded.WidthClass())
	require.Equal(t, []uint64{0xBEEF, 0xBEEF, 0xBEEF, 0xBEEF}, decoded.Values())
}

func TestWriteTo(t *testing.T) {
	v, err := FromValues([]uint64{10, 20, 30}, AutoWidth)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	require.NoError(t, err)

	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), n)
	require.Equal(t, data, buf.Bytes())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errs.ErrIO }

func TestWriteTo_Error(t *testing.T) {
	v := NewBitVector(10, 0)
	_, err := v.WriteTo(failingWriter{})
	require.ErrorIs(t, err, errs.ErrIO)
}
