// Copyright (c) 2026 martinevsky

package countbits

// strategies for arm64; every ARMv8 core has the CNT instruction, so
// the population count strategy is unconditionally available
var countfuncs = []countimpl{
	{countPopcnt, "popcnt", true},
	{countSwar, "swar", true},
	{countWord, "word", true},
	{countEleven, "eleven", true},
	{countByte, "byte", true},
	{countReference, "reference", true},
	{countFull, "full", true},
}
