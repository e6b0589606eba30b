package countbits

import "golang.org/x/sys/cpu"

// strategies for amd64; the population count instruction is an
// extension and must be checked for
var countfuncs = []countimpl{
	{countPopcnt, "popcnt", cpu.X86.HasPOPCNT},
	{countSwar, "swar", true},
	{countWord, "word", true},
	{countEleven, "eleven", true},
	{countByte, "byte", true},
	{countReference, "reference", true},
	{countFull, "full", true},
}
