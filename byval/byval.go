// Copyright (c) 2026 martinevsky

// Package byval measures the cost of handing a small range descriptor
// to a function by value against handing it over by pointer.  The
// descriptor is a slice-backed view summed element by element with a
// callback per element, so the call overhead is not optimised away.
// The package shares no state with the bit counting benchmarks.
package byval

// Range is a read-only view over a table of values.
type Range struct {
	data []uint32
}

// NewRange wraps data in a Range without copying it.
func NewRange(data []uint32) Range {
	return Range{data: data}
}

// Len returns the number of values in the view.
func (r Range) Len() int {
	return len(r.data)
}

// NewTable returns a table of n values, value i being i%42.
func NewTable(n int) []uint32 {
	table := make([]uint32, n)
	for i := range table {
		table[i] = uint32(i % 42)
	}

	return table
}

// SumByValue adds up the values of r, invoking f once per element.
// The range arrives as a copy.
func SumByValue(r Range, f func()) uint32 {
	var res uint32
	for _, v := range r.data {
		res += v
		f()
	}

	return res
}

// SumByRef computes the same sum with the range passed by pointer.
func SumByRef(r *Range, f func()) uint32 {
	var res uint32
	for _, v := range r.data {
		res += v
		f()
	}

	return res
}
