package countbits

import "fmt"

// Count picks the fastest strategy available on this machine.  All
// strategies compute the same function, so the result is the same
// everywhere.
func ExampleCount() {
	fmt.Println(Count(0b1011))
	fmt.Println(Count(0xffffffff))
	// Output:
	// 3
	// 32
}
