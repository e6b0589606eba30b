// Copyright (c) 2026 martinevsky

//go:build !amd64 && !arm64

package countbits

// no population count instruction is known for this target; the
// strategy is excluded from the comparison set rather than emulated
var countfuncs = []countimpl{
	{countPopcnt, "popcnt", false},
	{countSwar, "swar", true},
	{countWord, "word", true},
	{countEleven, "eleven", true},
	{countByte, "byte", true},
	{countReference, "reference", true},
	{countFull, "full", true},
}
