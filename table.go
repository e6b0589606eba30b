package countbits

// Partitioned lookup tables.  Each table maps every value of a narrow
// bit chunk to its partial count; a full count is assembled by summing
// the chunk counts after shift and mask.  The tables are built from the
// reference strategy once at package initialisation and are read-only
// afterwards.

var byteTable = buildTable(8)
var elevenTable = buildTable(11)
var wordTable = buildTable(16)

// buildTable enumerates every index of a bits wide chunk through the
// reference count.  The widest chunk is 16 bits, so partial counts fit
// a uint8.
func buildTable(bits uint) []uint8 {
	table := make([]uint8, 1<<bits)
	for i := range table {
		table[i] = uint8(countReference(uint32(i)))
	}

	return table
}

// countByte splits v into four 8 bit chunks.
func countByte(v uint32) int {
	return int(byteTable[v&0xff] +
		byteTable[v>>8&0xff] +
		byteTable[v>>16&0xff] +
		byteTable[v>>24])
}

// countEleven splits v into two 11 bit chunks and a 10 bit remainder.
// The remainder indexes the same table; its high bit is never set.
func countEleven(v uint32) int {
	return int(elevenTable[v&0x7ff] +
		elevenTable[v>>11&0x7ff] +
		elevenTable[v>>22])
}

// countWord splits v into two 16 bit chunks.
func countWord(v uint32) int {
	return int(wordTable[v&0xffff] + wordTable[v>>16])
}
