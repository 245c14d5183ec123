// SPDX-License-Identifier: MIT
//
// File: size.go
// Role: Size and offset trees, and offset lookups in both directions.

package kvtree

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// SizeTree converts a skeleton with depth levels into a tree of site counts.
// Nodes at that depth count one site; a node's size is the sum of its
// children's. Branches ending above it hold no site and are dropped, so no
// node of the result has size zero. Shared skeleton subtrees stay shared.
//
// Complexity:
//
//	Time:   O(N) for the N distinct (node, depth) pairs of t.
//	Memory: O(N) for the memo and the result.
//
// Errors:
//
//   - ErrEmptyTree: no path of t reaches depth.
func SizeTree[V constraints.Integer](t *Node[V], depth int) (*Node[int], error) {
	d := depth
	memo := make(map[sizeKey[V]]*Node[int])
	var size func(n *Node[V], at int) *Node[int]
	size = func(n *Node[V], at int) *Node[int] {
		k := sizeKey[V]{n, at}
		if out, ok := memo[k]; ok {
			return out
		}
		var out *Node[int]
		if at == d {
			out = &Node[int]{Key: n.Key, Value: 1}
		} else {
			kids := make([]*Node[int], 0, len(n.Children))
			total := 0
			for _, c := range n.Children {
				if sc := size(c, at+1); sc != nil {
					kids = append(kids, sc)
					total += sc.Value
				}
			}
			if total > 0 {
				out = &Node[int]{Key: n.Key, Value: total, Children: kids}
			}
		}
		memo[k] = out
		return out
	}
	out := size(t, 0)
	if out == nil {
		return nil, ErrEmptyTree
	}
	return out, nil
}

type sizeKey[V constraints.Integer] struct {
	n     *Node[V]
	depth int
}

// OffsetTree assigns every node of a size tree the absolute offset of its
// first site, starting at base. Offsets are absolute, so nothing is shared.
func OffsetTree(size *Node[int], base int) *Node[int] {
	out := &Node[int]{Key: size.Key, Value: base}
	if size.IsLeaf() {
		return out
	}
	out.Children = make([]*Node[int], len(size.Children))
	off := base
	for i, c := range size.Children {
		out.Children[i] = OffsetTree(c, off)
		off += c.Value
	}
	return out
}

// GetOffset returns the offset stored at the end of the key path idx.
func GetOffset(offsets *Node[int], idx []int) (int, error) {
	n, err := Select(offsets, idx)
	if err != nil {
		return 0, err
	}
	return n.Value, nil
}

// GetIndices returns the key path of the leaf holding offset.
//
// Complexity:
//
//	Time:   O(depth * log B) for branching factor B; each level is a
//	        binary search on the children's first offsets.
//	Memory: O(depth) for the result.
//
// Errors:
//
//   - ErrOffsetOutOfRange: offset lies below the base of offsets or past
//     its last site.
func GetIndices(offsets *Node[int], offset int) ([]int, error) {
	if offset < offsets.Value {
		return nil, fmt.Errorf("%w: %d below base %d", ErrOffsetOutOfRange, offset, offsets.Value)
	}
	var idx []int
	n := offsets
	for !n.IsLeaf() {
		i := sort.Search(len(n.Children), func(i int) bool { return n.Children[i].Value > offset }) - 1
		if i < 0 {
			return nil, fmt.Errorf("%w: %d", ErrOffsetOutOfRange, offset)
		}
		n = n.Children[i]
		idx = append(idx, n.Key)
	}
	if n.Value != offset {
		return nil, fmt.Errorf("%w: %d past the last site", ErrOffsetOutOfRange, offset)
	}
	return idx, nil
}
