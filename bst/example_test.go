package bst_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/bst"
)

func ExampleTree_InOrder() {
	t := bst.NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 4} {
		t.Insert(v)
	}
	fmt.Println(t.InOrder())
	fmt.Println(t.LevelOrder())
	// Output:
	// [1 3 4 5 8]
	// [5 3 8 1 4]
}
