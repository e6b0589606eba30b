package revint

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	cases := []struct{ in, want int32 }{
		{0, 0},
		{123, 321},
		{-123, -321},
		{120, 21},
		{1534236469, 0},  // reversed, 9646324351 overflows
		{-1534236469, 0}, // reversed, -9646324351 underflows
		{math.MaxInt32, 0},
		{math.MinInt32, 0},
		{1463847412, 2147483641}, // largest reversible positive input
		{-1463847412, -2147483641},
		{1000000003, 0},
	}

	for _, c := range cases {
		require.Equal(t, c.want, Reverse(c.in), "input %d", c.in)
		require.Equal(t, c.want, ReverseViaNegative(c.in), "input %d", c.in)
	}
}

// the two variants must agree over the whole input domain; sampled
func TestReverseAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100000; i++ {
		x := int32(rng.Uint32())
		require.Equal(t, Reverse(x), ReverseViaNegative(x), "input %d", x)
	}
}

// reversing twice returns to the start when no trailing zeros are lost
func TestReverseRoundTrip(t *testing.T) {
	for _, x := range []int32{1, 21, 321, -321, 12321} {
		require.Equal(t, x, Reverse(Reverse(x)))
	}
}

// reversals per drawn value, so the draw does not dominate the timing
const reversalsPerValue = 1000

var sink int32

func benchmarkReverse(b *testing.B, reverse func(int32) int32) {
	rng := rand.New(rand.NewSource(42))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := int32(rng.Uint32())
		var res int32
		for j := 0; j < reversalsPerValue; j++ {
			res = reverse(x)
		}
		sink = res
	}
}

func BenchmarkReverse(b *testing.B)            { benchmarkReverse(b, Reverse) }
func BenchmarkReverseViaNegative(b *testing.B) { benchmarkReverse(b, ReverseViaNegative) }
