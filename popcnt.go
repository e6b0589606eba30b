package countbits

import "math/bits"

// countPopcnt delegates to the CPU's population count instruction by
// way of the math/bits intrinsic.  The per-architecture strategy lists
// mark it unavailable on targets without the instruction; it is never
// silently replaced by a software routine under the same name.
func countPopcnt(v uint32) int {
	return bits.OnesCount32(v)
}
