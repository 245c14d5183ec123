// SPDX-License-Identifier: MIT
package kvtree_test

import (
	"sort"

	"github.com/katalvlaran/lvlayout/kvtree"
)

// fromPaths builds a skeleton holding exactly the given key paths. All paths
// must have the same length.
func fromPaths(paths [][]int) *kvtree.Node[int] {
	sorted := make([][]int, len(paths))
	copy(sorted, paths)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	var build func(key int, ps [][]int) *kvtree.Node[int]
	build = func(key int, ps [][]int) *kvtree.Node[int] {
		if len(ps[0]) == 0 {
			return kvtree.Leaf[int](key)
		}
		var kids []*kvtree.Node[int]
		for start := 0; start < len(ps); {
			end := start
			for end < len(ps) && ps[end][0] == ps[start][0] {
				end++
			}
			tails := make([][]int, 0, end-start)
			for _, p := range ps[start:end] {
				tails = append(tails, p[1:])
			}
			kids = append(kids, build(ps[start][0], tails))
			start = end
		}
		return kvtree.New(key, kids)
	}
	return build(0, sorted)
}

// paths lists the complete key paths of a skeleton in depth-first order.
func paths(t *kvtree.Node[int]) [][]int {
	size, err := kvtree.SizeTree(t, kvtree.Depth(t))
	if err != nil {
		return nil
	}
	var out [][]int
	kvtree.Walk(size, func(idx []int, _ int) bool {
		out = append(out, append([]int(nil), idx...))
		return true
	})
	return out
}

// vecX is the skeleton of a 5-site axis split into blocks of 3 and 2 sites,
// each enumerated by a plain level, followed by the site level.
func vecX() *kvtree.Node[int] {
	return fromPaths([][]int{
		{0, 0, 0}, {0, 1, 0}, {0, 2, 0},
		{1, 0, 0}, {1, 1, 0},
	})
}

func childCounts(t *kvtree.Node[int]) []int {
	out := make([]int, len(t.Children))
	for i, c := range t.Children {
		out[i] = c.Value
	}
	return out
}
