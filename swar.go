package countbits

// countSwar counts set bits with the classic divide-and-conquer bit
// trick: fold the count of each 2, 4, and 8 bit group into place, then
// sum the byte counts with a single multiply.
func countSwar(v uint32) int {
	v -= v >> 1 & 0x55555555
	v = v&0x33333333 + v>>2&0x33333333
	v = (v + v>>4) & 0x0f0f0f0f

	return int(v * 0x01010101 >> 24)
}
