// SPDX-License-Identifier: MIT
//
// File: node.go
// Role: Generic key/value tree node and its read-only queries.

package kvtree

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

// Node is one node of a derived tree.
type Node[V constraints.Integer] struct {
	Key      int
	Value    V
	Children []*Node[V]
}

// Leaf returns a childless node with a zero value.
func Leaf[V constraints.Integer](key int) *Node[V] {
	return &Node[V]{Key: key}
}

// New returns a node whose value is its child count. children must be sorted by key.
func New[V constraints.Integer](key int, children []*Node[V]) *Node[V] {
	return &Node[V]{Key: key, Value: V(len(children)), Children: children}
}

// Child returns the child with the given key, or nil.
func (n *Node[V]) Child(key int) *Node[V] {
	i := sort.Search(len(n.Children), func(i int) bool { return n.Children[i].Key >= key })
	if i < len(n.Children) && n.Children[i].Key == key {
		return n.Children[i]
	}
	return nil
}

// IsLeaf reports whether n has no children.
func (n *Node[V]) IsLeaf() bool { return len(n.Children) == 0 }

// Keys returns the child keys in order.
func (n *Node[V]) Keys() []int {
	out := make([]int, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Key
	}
	return out
}

// Depth returns the length of the longest root-to-leaf path.
func Depth[V constraints.Integer](n *Node[V]) int {
	memo := make(map[*Node[V]]int)
	var depth func(*Node[V]) int
	depth = func(n *Node[V]) int {
		if d, ok := memo[n]; ok {
			return d
		}
		d := 0
		for _, c := range n.Children {
			d = max(d, depth(c)+1)
		}
		memo[n] = d
		return d
	}
	return depth(n)
}

// Select returns the subtree reached by following prefix from n.
func Select[V constraints.Integer](n *Node[V], prefix []int) (*Node[V], error) {
	cur := n
	for i, k := range prefix {
		next := cur.Child(k)
		if next == nil {
			return nil, fmt.Errorf("%w: key %d at position %d of %v", ErrKeyNotFound, k, i, prefix)
		}
		cur = next
	}
	return cur, nil
}

// NChildren returns the number of children of the node at prefix.
func NChildren[V constraints.Integer](n *Node[V], prefix []int) (int, error) {
	sub, err := Select(n, prefix)
	if err != nil {
		return 0, err
	}
	return len(sub.Children), nil
}

// Equal reports whether two trees have the same keys, values and shape.
func Equal[V constraints.Integer](a, b *Node[V]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Key != b.Key || a.Value != b.Value || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// Fprint writes the tree to w, one node per line, indented by depth, down to
// maxDepth levels (all of them when maxDepth < 0).
func Fprint[V constraints.Integer](w io.Writer, n *Node[V], maxDepth int) error {
	var walk func(n *Node[V], depth int) error
	walk = func(n *Node[V], depth int) error {
		if _, err := fmt.Fprintf(w, "%s%d: %d\n", strings.Repeat("  ", depth), n.Key, n.Value); err != nil {
			return err
		}
		if maxDepth >= 0 && depth >= maxDepth {
			return nil
		}
		for _, c := range n.Children {
			if err := walk(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(n, 0)
}
