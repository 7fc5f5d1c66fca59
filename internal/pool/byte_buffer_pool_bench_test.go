package pool

import "testing"

func BenchmarkPayloadBuffer_GetWritePut(b *testing.B) {
	data := make([]byte, 4096)
	b.ReportAllocs()
	for b.Loop() {
		bb := GetPayloadBuffer()
		_, _ = bb.Write(data)
		PutPayloadBuffer(bb)
	}
}
