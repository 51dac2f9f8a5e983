package ring_test

import (
	"fmt"

	"github.com/katalvlaran/ringtour/ring"
)

// ExampleDistance shows that the two ends of the domain are adjacent.
func ExampleDistance() {
	fmt.Println(ring.Distance(-21, 11, -21, 11))
	fmt.Println(ring.Distance(0, 5, -21, 11))
	// Output:
	// 1
	// 5
}

// ExampleBounds_Wrap steps past the highest point back onto the lowest.
func ExampleBounds_Wrap() {
	b, _ := ring.NewBounds(1, 8)
	fmt.Println(b.Wrap(9), b.Wrap(0))
	// Output: 1 8
}
