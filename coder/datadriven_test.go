package coder

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"unicode"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sdsl/bitstore"
	"github.com/arloliu/sdsl/format"
)

func TestCodesDataDriven(t *testing.T) {
	datadriven.RunTest(t, "testdata/codes", func(t *testing.T, td *datadriven.TestData) string {
		var name string
		td.ScanArgs(t, "coder", &name)
		ct, err := format.ParseCoderType(name)
		require.NoError(t, err)
		c, err := New(ct)
		require.NoError(t, err)

		var buf strings.Builder
		switch td.Cmd {
		case "encode":
			for _, field := range strings.Fields(td.Input) {
				v, err := strconv.ParseUint(field, 10, 64)
				require.NoError(t, err)

				bs := bitstore.New(c.Length(v))
				end := c.Encode(bs, 0, v)
				require.Equal(t, c.Length(v), end, "Length disagrees with Encode for %d", v)

				got, next := c.Decode(bs, 0)
				require.Equal(t, v, got)
				require.Equal(t, end, next)

				fmt.Fprintf(&buf, "%d: %s\n", v, bitString(bs))
			}

		case "decode":
			bs := parseBits(td.Input)
			var pos uint64
			var values []string
			for pos < bs.Size() {
				var v uint64
				v, pos = c.Decode(bs, pos)
				values = append(values, strconv.FormatUint(v, 10))
			}
			require.Equal(t, bs.Size(), pos, "codes must end exactly at the stream end")
			fmt.Fprintf(&buf, "%s\n", strings.Join(values, " "))

		default:
			t.Fatalf("unknown command: %s", td.Cmd)
		}

		return buf.String()
	})
}

func bitString(bs *bitstore.BitStore) string {
	var sb strings.Builder
	for i := range bs.Size() {
		if bs.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}

func parseBits(s string) *bitstore.BitStore {
	var bs bitstore.BitStore
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		var b uint64
		if r == '1' {
			b = 1
		}
		bs.AppendBits(b, 1)
	}

	return &bs
}
