package countbits

// countReference counts set bits by clearing the lowest set bit until
// none remain.  It consults no table and no special instruction and
// serves as the oracle every other strategy is checked against.
// Do not alter.
func countReference(v uint32) int {
	i := 0
	for v != 0 {
		v &= v - 1
		i++
	}

	return i
}
