package compress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func BenchmarkAllCodecs(b *testing.B) {
	payload := packedPayload(256 * 1024)

	for name, codec := range getAllCodecs() {
		compressed, err := codec.Compress(payload)
		require.NoError(b, err)

		b.Run(name+"/Compress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})

		b.Run(name+"/Decompress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Decompress(compressed)
			}
		})
	}
}
