// SPDX-License-Identifier: MIT
package partition_test

import (
	"fmt"

	"github.com/katalvlaran/lvlayout/partition"
)

// ExampleQ1D_CoordinateToIndices shows the owning block of the first site of
// a periodic axis, followed by its halo candidate in the last block.
func ExampleQ1D_CoordinateToIndices() {
	q, err := partition.NewQ1DPeriodic(42, partition.ParityEven, 4)
	if err != nil {
		panic(err)
	}
	fmt.Println("kinds:", q.SubSizeParityInfoList())
	for _, r := range q.CoordinateToIndices(0) {
		fmt.Printf("block=%d remainder=%d ghost=%t\n", r.Index, r.Remainder, r.Ghost)
	}
	// Output:
	// kinds: [9/odd 11/even 11/odd]
	// block=0 remainder=0 ghost=false
	// block=3 remainder=9 ghost=true
}
