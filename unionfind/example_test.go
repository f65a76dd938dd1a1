package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/unionfind"
)

func ExampleKeyed() {
	friends := unionfind.NewKeyed("ann", "bob", "cid", "dee")
	friends.Union("ann", "bob")
	friends.Union("cid", "dee")
	fmt.Println(friends.Connected("ann", "bob"), friends.Connected("bob", "cid"))
	fmt.Println(friends.Union("bob", "ann"), friends.Count())
	fmt.Println(friends.Groups())
	// Output:
	// true false
	// false 2
	// [[ann bob] [cid dee]]
}
