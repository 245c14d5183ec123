// SPDX-License-Identifier: MIT
//
// File: prune.go
// Role: Three-valued pruning of skeletons.

package kvtree

import (
	"github.com/katalvlaran/lvlayout/predicate"
	"golang.org/x/exp/constraints"
)

// Prune filters t with fn evaluated on the key path of every child:
// False drops the child, True keeps its whole subtree without looking
// further, Maybe descends. Node values are recomputed as child counts.
// A node whose children were all dropped stays in the tree with value 0;
// SizeTree discards it.
//
// Unchanged subtrees are shared with t.
//
// Complexity:
//
//	Time:   O(M) calls of fn for the M children visited; a True or False
//	        verdict skips the subtree below it.
//	Memory: O(M) for the rebuilt nodes plus O(depth) for the prefix.
//
// Prune cannot fail; fn must be total over the prefixes of t.
func Prune[V constraints.Integer](t *Node[V], fn predicate.Func) *Node[V] {
	if fn == nil {
		return t
	}
	return prune(t, fn, make([]int, 0, 16))
}

func prune[V constraints.Integer](n *Node[V], fn predicate.Func, prefix []int) *Node[V] {
	if n.IsLeaf() {
		return n
	}
	kept := make([]*Node[V], 0, len(n.Children))
	changed := false
	for _, c := range n.Children {
		path := append(prefix, c.Key)
		switch fn(path) {
		case predicate.False:
			changed = true
		case predicate.True:
			kept = append(kept, c)
		default:
			pc := prune(c, fn, path)
			changed = changed || pc != c
			kept = append(kept, pc)
		}
	}
	if !changed {
		return n
	}
	return New(n.Key, kept)
}
