// SPDX-License-Identifier: MIT
package layout_test

import (
	"fmt"

	"github.com/katalvlaran/lvlayout/layout"
	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/predicate"
)

// ExampleLayout_MemoryLayout stores the sites of the second of two ranks and
// looks one of them up.
func ExampleLayout_MemoryLayout() {
	l, err := layout.New([]int{32}, nil, []partition.Rule{
		partition.Periodic("mpi", partition.RoleMPI, 0, 2),
		partition.Plain("x", 0),
		partition.Site("site"),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	ml, err := l.MemoryLayout(predicate.MpiRank(1), nil)
	if err != nil {
		fmt.Println(err)
		return
	}
	off, _ := ml.Offset(partition.Coordinates{20})
	c, _ := ml.CoordinatesAt(off)
	fmt.Println("sites:", ml.Size())
	fmt.Println("offset of x=20:", off)
	fmt.Println("back:", c)
	// Output:
	// sites: 16
	// offset of x=20: 4
	// back: [20]
}
