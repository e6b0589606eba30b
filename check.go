// Copyright (c) 2026 martinevsky

package countbits

import "fmt"

// MismatchError reports a strategy disagreeing with the reference
// count.  Any mismatch invalidates every throughput number measured in
// the same run; callers must abort rather than continue.
type MismatchError struct {
	Strategy string
	Input    uint32
	Got      int
	Want     int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("countbits: strategy %s: count(%#08x) = %d, reference says %d",
		e.Strategy, e.Input, e.Got, e.Want)
}

// CheckConsistency runs every available strategy over samples and
// verifies each result against the reference strategy.  The first
// disagreement is returned as a *MismatchError; nil means all
// strategies agree on all samples.  Note that the comparison set
// includes the full table strategy, so the first call pays its build.
func CheckConsistency(samples []uint32) error {
	return checkConsistency(samples, Strategies())
}

// checkConsistency takes the comparison set explicitly so tests can
// check subsets and inject broken strategies.
func checkConsistency(samples []uint32, strategies []Strategy) error {
	for _, v := range samples {
		want := countReference(v)
		for _, s := range strategies {
			if got := s.Count(v); got != want {
				return &MismatchError{
					Strategy: s.Name,
					Input:    v,
					Got:      got,
					Want:     want,
				}
			}
		}
	}

	return nil
}
