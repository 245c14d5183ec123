package eo_test

import (
	"fmt"

	"github.com/katalvlaran/lvlayout/eo"
)

// ExampleLexCoordToEOIdx folds a 3×3 plaquette: the even color holds five
// sites and the odd color four.
func ExampleLexCoordToEOIdx() {
	sizes := []int{3, 3}
	for _, c := range [][]int{{0, 0}, {0, 2}, {1, 1}, {2, 2}, {1, 0}} {
		idx, _ := eo.LexCoordToEOIdx(c, sizes)
		fmt.Printf("%v parity=%d eo=%d\n", c, eo.Parity(c), idx)
	}
	even, _ := eo.ParityCount(sizes, 0)
	odd, _ := eo.ParityCount(sizes, 1)
	fmt.Println("even:", even, "odd:", odd)

	// Output:
	// [0 0] parity=0 eo=0
	// [0 2] parity=0 eo=1
	// [1 1] parity=0 eo=2
	// [2 2] parity=0 eo=4
	// [1 0] parity=1 eo=1
	// even: 5 odd: 4
}
