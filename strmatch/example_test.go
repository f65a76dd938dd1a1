package strmatch_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/strmatch"
)

func ExampleKMP() {
	fmt.Println(strmatch.KMP("abracadabra", "abra"))
	fmt.Println(strmatch.PrefixTable("abra"))
	// Output:
	// [0 7]
	// [0 0 0 1]
}

func ExampleRabinKarp() {
	fmt.Println(strmatch.RabinKarp("aaaa", "aa"))
	// Output: [0 1 2]
}
