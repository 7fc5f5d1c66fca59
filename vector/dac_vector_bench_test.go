package vector

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/arloliu/sdsl/intvector"
)

func BenchmarkDACVector_Get(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	values := randomValues(rng, 1<<16)
	v, err := NewDACVector(intvector.Slice[uint64](values))
	require.NoError(b, err)

	var i uint64
	for b.Loop() {
		_ = v.At(i & (1<<16 - 1))
		i += 7919
	}
}
