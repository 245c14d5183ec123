// SPDX-License-Identifier: MIT
//
// File: permute.go
// Role: Level reordering of derived trees.

package kvtree

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"
)

// BringLevelOnTop moves level L to the root of t. The tree is read as the set
// of its root-to-leaf key paths; the result holds the same paths with the key
// at position L moved first, so the level order becomes L, 0..L-1, L+1...
// Nodes left without children are dropped and values are recomputed as
// child counts.
//
// Every node at level L carrying the same key must root the same subtree,
// once branches emptied by pruning are discarded. Blocks of different sizes
// may expose different key sets at L; a key they share must lead to the same
// shape below it.
//
// Errors:
//
//   - ErrLevelPermutation: L lies outside the depth of t, or two nodes at
//     level L share a key but root different subtrees. The message names
//     both paths.
func BringLevelOnTop[V constraints.Integer](t *Node[V], level int) (*Node[V], error) {
	d := Depth(t)
	if level < 0 || level >= d {
		return nil, fmt.Errorf("%w: level %d outside depth %d", ErrLevelPermutation, level, d)
	}
	return bring(t, level, d)
}

// bring moves level to the top of t, a subtree whose complete paths have
// length height.
func bring[V constraints.Integer](t *Node[V], level, height int) (*Node[V], error) {
	if level == 0 {
		return t, nil
	}
	if err := checkUniform(t, level, height); err != nil {
		return nil, err
	}
	keys := levelKeys(t, level)
	out := make([]*Node[V], 0, len(keys))
	for _, k := range keys {
		r := restrictor[V]{level: level, height: height, key: k, memo: make(map[*Node[V]]*Node[V])}
		if sub := r.restrict(t, 0); sub != nil {
			out = append(out, New(k, sub.Children))
		}
	}
	return New(t.Key, out), nil
}

// checkUniform compares, per key, the trimmed subtrees of all nodes at level.
func checkUniform[V constraints.Integer](t *Node[V], level, height int) error {
	tr := trimmer[V]{height: height, memo: make(map[trimKey[V]]*Node[V])}
	firsts := make(map[int]firstAt[V])
	visited := make(map[*Node[V]]struct{})
	path := make([]int, 0, level+1)
	var walk func(n *Node[V], depth int) error
	walk = func(n *Node[V], depth int) error {
		if _, ok := visited[n]; ok {
			return nil
		}
		visited[n] = struct{}{}
		for _, c := range n.Children {
			path = append(path, c.Key)
			if depth == level {
				if sub := tr.trim(c, depth+1); sub != nil {
					f, ok := firsts[c.Key]
					switch {
					case !ok:
						firsts[c.Key] = firstAt[V]{sub: sub, path: append([]int(nil), path...)}
					case !Equal(f.sub, sub):
						return fmt.Errorf("%w: level %d: subtree at %v differs from %v",
							ErrLevelPermutation, level, path, f.path)
					}
				}
			} else if err := walk(c, depth+1); err != nil {
				return err
			}
			path = path[:len(path)-1]
		}
		return nil
	}
	return walk(t, 0)
}

// firstAt is the first trimmed subtree seen for a key and where it was found.
type firstAt[V constraints.Integer] struct {
	sub  *Node[V]
	path []int
}

type trimKey[V constraints.Integer] struct {
	n     *Node[V]
	depth int
}

// trimmer rebuilds a subtree without its emptied branches, or returns nil
// when no complete path is left.
type trimmer[V constraints.Integer] struct {
	height int
	memo   map[trimKey[V]]*Node[V]
}

func (tr *trimmer[V]) trim(n *Node[V], depth int) *Node[V] {
	if depth == tr.height {
		return Leaf[V](n.Key)
	}
	if n.IsLeaf() {
		return nil
	}
	k := trimKey[V]{n: n, depth: depth}
	if out, ok := tr.memo[k]; ok {
		return out
	}
	kept := make([]*Node[V], 0, len(n.Children))
	for _, c := range n.Children {
		if sub := tr.trim(c, depth+1); sub != nil {
			kept = append(kept, sub)
		}
	}
	var out *Node[V]
	if len(kept) > 0 {
		out = New(n.Key, kept)
	}
	tr.memo[k] = out
	return out
}

// levelKeys returns the sorted distinct keys of the nodes at depth level+1.
func levelKeys[V constraints.Integer](t *Node[V], level int) []int {
	seen := make(map[int]struct{})
	visited := make(map[*Node[V]]struct{})
	var walk func(n *Node[V], depth int)
	walk = func(n *Node[V], depth int) {
		if _, ok := visited[n]; ok {
			return
		}
		visited[n] = struct{}{}
		for _, c := range n.Children {
			if depth == level {
				seen[c.Key] = struct{}{}
			} else {
				walk(c, depth+1)
			}
		}
	}
	walk(t, 0)
	keys := make([]int, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// restrictor keeps the paths whose key at level equals key and splices that
// level out. A childless node above height is an emptied branch, not a path.
type restrictor[V constraints.Integer] struct {
	level  int
	height int
	key    int
	memo   map[*Node[V]]*Node[V]
}

func (r *restrictor[V]) restrict(n *Node[V], depth int) *Node[V] {
	if depth == r.level {
		c := n.Child(r.key)
		if c == nil || (c.IsLeaf() && depth+1 < r.height) {
			return nil
		}
		return New(n.Key, c.Children)
	}
	if out, ok := r.memo[n]; ok {
		return out
	}
	kept := make([]*Node[V], 0, len(n.Children))
	for _, c := range n.Children {
		if sub := r.restrict(c, depth+1); sub != nil {
			kept = append(kept, sub)
		}
	}
	var out *Node[V]
	if len(kept) > 0 {
		out = New(n.Key, kept)
	}
	r.memo[n] = out
	return out
}

// SwapLevels reorders the levels of t: level order[i] of t becomes level i of
// the result. It is reduced to a sequence of BringLevelOnTop applied at
// increasing depths.
//
// Complexity:
//
//	Time:   O(d^2 * N) for d levels and N distinct nodes; each of the d steps
//	        walks every subtree once per distinct key of the moved level.
//	Memory: O(N) for the rebuilt tree and the per-step memo tables.
//
// Errors:
//
//   - ErrInvalidOrdering: order is not a permutation of 0..depth-1.
//   - ErrLevelPermutation: a step meets a level whose equal keys root
//     different subtrees (see BringLevelOnTop).
func SwapLevels[V constraints.Integer](t *Node[V], order []int) (*Node[V], error) {
	d := Depth(t)
	if err := checkOrdering(order, d); err != nil {
		return nil, err
	}
	cur := make([]int, d)
	for i := range cur {
		cur[i] = i
	}
	out := t
	for p := 0; p < d; p++ {
		j := p
		for cur[j] != order[p] {
			j++
		}
		if j == p {
			continue
		}
		var err error
		if out, err = bringAt(out, p, j-p, d-p, make(map[*Node[V]]*Node[V])); err != nil {
			return nil, fmt.Errorf("moving level %d to %d: %w", cur[j], p, err)
		}
		moved := cur[j]
		copy(cur[p+1:j+1], cur[p:j])
		cur[p] = moved
	}
	return out, nil
}

// bringAt applies bring(rel) to every subtree rooted at depth. Subtrees left
// without children are dropped.
func bringAt[V constraints.Integer](n *Node[V], depth, rel, height int, memo map[*Node[V]]*Node[V]) (*Node[V], error) {
	if out, ok := memo[n]; ok {
		return out, nil
	}
	var out *Node[V]
	if depth == 0 {
		var err error
		if out, err = bring(n, rel, height); err != nil {
			return nil, err
		}
	} else {
		kids := make([]*Node[V], 0, len(n.Children))
		for _, c := range n.Children {
			sub, err := bringAt(c, depth-1, rel, height, memo)
			if err != nil {
				return nil, err
			}
			if !sub.IsLeaf() {
				kids = append(kids, sub)
			}
		}
		out = New(n.Key, kids)
	}
	memo[n] = out
	return out, nil
}

func checkOrdering(order []int, d int) error {
	if len(order) != d {
		return fmt.Errorf("%w: %d entries for depth %d", ErrInvalidOrdering, len(order), d)
	}
	seen := make([]bool, d)
	for _, o := range order {
		if o < 0 || o >= d || seen[o] {
			return fmt.Errorf("%w: %v", ErrInvalidOrdering, order)
		}
		seen[o] = true
	}
	return nil
}
