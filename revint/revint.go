// Copyright (c) 2026 martinevsky

// Package revint reverses the decimal digits of a signed 32 bit
// integer, returning 0 when the reversed value does not fit.  Two
// variants are kept for benchmarking: one guards every accumulation
// step in both directions, the other first maps positive inputs into
// the negative domain, where every int32 magnitude is representable,
// so only the underflow guards remain.  The package shares no state
// with the bit counting benchmarks.
package revint

import "math"

// Reverse returns x with its decimal digits reversed, or 0 if the
// result overflows an int32.
func Reverse(x int32) int32 {
	var rev int32
	for x != 0 {
		pop := x % 10
		x /= 10
		if rev > math.MaxInt32/10 || (rev == math.MaxInt32/10 && pop > 7) {
			return 0
		}
		if rev < math.MinInt32/10 || (rev == math.MinInt32/10 && pop < -8) {
			return 0
		}
		rev = rev*10 + pop
	}

	return rev
}

// ReverseViaNegative computes the same function through the negative
// domain.  A positive input is negated, reversed, and negated back;
// the negation of the result is guarded because -MinInt32 is not
// representable.
func ReverseViaNegative(x int32) int32 {
	if x > 0 {
		res := ReverseViaNegative(-x)
		if res == math.MinInt32 {
			return 0
		}

		return -res
	}

	var res int32
	for x != 0 {
		sub := x % 10
		x /= 10
		if res < math.MinInt32/10 {
			return 0
		}
		if res == math.MinInt32/10 && sub < -8 {
			return 0
		}
		res = res*10 + sub
	}

	return res
}
