package countbits

import "math/rand"

const (
	// DefaultSeed is the seed shared by every benchmark run, so runs
	// are comparable across processes.
	DefaultSeed = 42

	// DefaultSampleSize is the number of values the benchmarks drive
	// through each strategy per iteration.
	DefaultSampleSize = 10000
)

// Samples returns n pseudorandom values drawn uniformly from the full
// uint32 range.  The sequence is determined entirely by seed: equal
// seeds yield equal sequences.  The slice is freshly allocated; the
// benchmarks generate it once and share it read-only across threads.
func Samples(seed int64, n int) []uint32 {
	rng := rand.New(rand.NewSource(seed))

	samples := make([]uint32, n)
	for i := range samples {
		samples[i] = rng.Uint32()
	}

	return samples
}
