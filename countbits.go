// Copyright (c) 2026 martinevsky

// Population count strategy benchmarks.
//
// This package implements a set of interchangeable strategies for
// counting the bits set in a 32 bit value: a naive bit-clearing
// reference, the CPU's population count instruction where the target
// has one, a branch-free magic-constant routine, three partitioned
// lookup tables of 8, 11, and 16 bit chunks, and a full table with one
// entry per possible input.  All strategies compute the same function;
// the point of the package is to compare their throughput under
// concurrent load, after checking that they agree with the reference
// on a shared sample set.
//
// The full table occupies about 16 GiB and is built on first use, once
// per process, by parallel workers.  Callers that intend to time the
// full table strategy should issue one warm-up call first.
package countbits

// Each architecture provides an array countfuncs of type countimpl
// listing the strategies for that target.  The member available
// indicates that the strategy may run on this machine; an unavailable
// strategy is excluded from the comparison set rather than replaced by
// a different algorithm under the same name.  The dispatch code picks
// the lowest-numbered available strategy, so the arrays are ordered
// fastest first with the reference last among the direct strategies.

type countimpl struct {
	count     func(uint32) int
	name      string
	available bool
}

// optimal count implementation selected at initialisation
var countfunc = func() func(uint32) int {
	for _, f := range countfuncs {
		if f.available {
			return f.count
		}
	}

	panic("no count implementation available")
}()

// Count returns the number of bits set in v, using the fastest
// strategy available on this machine.
func Count(v uint32) int {
	return countfunc(v)
}

// Strategy is one bit counting strategy available on this machine.
// Count is pure and safe for concurrent use, though the full table
// strategy pays the one-time table build on first call.
type Strategy struct {
	Name  string
	Count func(uint32) int
}

// Strategies returns every counting strategy available on this
// machine, fastest first.  Unavailable strategies are omitted.
func Strategies() []Strategy {
	s := make([]Strategy, 0, len(countfuncs))
	for _, f := range countfuncs {
		if f.available {
			s = append(s, Strategy{f.name, f.count})
		}
	}

	return s
}
