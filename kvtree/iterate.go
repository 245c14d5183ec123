// SPDX-License-Identifier: MIT
//
// File: iterate.go
// Role: Lexicographic stepping and walks over size trees.

package kvtree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// StartIndices returns the leftmost key path of t.
func StartIndices[V constraints.Integer](t *Node[V]) []int {
	var idx []int
	for n := t; !n.IsLeaf(); n = n.Children[0] {
		idx = append(idx, n.Children[0].Key)
	}
	return idx
}

// EndIndices returns the rightmost key path of t.
func EndIndices[V constraints.Integer](t *Node[V]) []int {
	var idx []int
	for n := t; !n.IsLeaf(); n = n.Children[len(n.Children)-1] {
		idx = append(idx, n.Children[len(n.Children)-1].Key)
	}
	return idx
}

// Next returns the key path following idx in depth-first order, descending
// leftmost below the branch point. ok is false when idx is the last path.
// On a size tree every branch holds a site, so Next steps over pruned gaps
// straight to the next stored site.
//
// Complexity:
//
//	Time:   O(depth * B) for branching factor B, for locating idx and
//	        descending to the next leaf.
//	Memory: O(depth).
//
// Errors:
//
//   - ErrKeyNotFound: idx leaves t.
func Next[V constraints.Integer](t *Node[V], idx []int) (next []int, ok bool, err error) {
	path := make([]*Node[V], len(idx)+1)
	pos := make([]int, len(idx))
	path[0] = t
	for i, k := range idx {
		n := path[i]
		j := -1
		for c := range n.Children {
			if n.Children[c].Key == k {
				j = c
				break
			}
		}
		if j < 0 {
			return nil, false, fmt.Errorf("%w: key %d at position %d of %v", ErrKeyNotFound, k, i, idx)
		}
		pos[i] = j
		path[i+1] = n.Children[j]
	}
	for i := len(idx) - 1; i >= 0; i-- {
		if pos[i]+1 >= len(path[i].Children) {
			continue
		}
		next = append(append(next, idx[:i]...), path[i].Children[pos[i]+1].Key)
		return append(next, StartIndices(path[i].Children[pos[i]+1])...), true, nil
	}
	return nil, false, nil
}

// Walk calls fn for every leaf of a size tree in offset order, with the key
// path and the offset relative to the first leaf. It stops when fn returns
// false. The idx slice is reused between calls.
func Walk(size *Node[int], fn func(idx []int, offset int) bool) {
	idx := make([]int, 0, 16)
	off := 0
	var walk func(n *Node[int]) bool
	walk = func(n *Node[int]) bool {
		if n.IsLeaf() {
			cont := fn(idx, off)
			off += n.Value
			return cont
		}
		for _, c := range n.Children {
			idx = append(idx, c.Key)
			cont := walk(c)
			idx = idx[:len(idx)-1]
			if !cont {
				return false
			}
		}
		return true
	}
	walk(size)
}
