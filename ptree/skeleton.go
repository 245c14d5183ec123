// SPDX-License-Identifier: MIT
//
// File: skeleton.go
// Role: Skeleton extraction from a partition tree.

package ptree

import (
	"github.com/katalvlaran/lvlayout/kvtree"
	"github.com/katalvlaran/lvlayout/predicate"
)

// Skeleton enumerates the index paths of t selected by pred as a kvtree whose
// values are child counts. Leaves sit at depth Depth(), below the Site level.
// pred is evaluated on every prefix until it answers True or False; a prefix
// still Maybe at full depth is kept. A nil pred selects everything.
//
// Fully selected subtrees are built once per arena node and shared.
func (t *Tree) Skeleton(pred predicate.Func) *kvtree.Node[int] {
	s := skeletonizer{t: t, pred: pred, full: make(map[NodeID][]*kvtree.Node[int])}
	if pred == nil {
		return kvtree.New(0, s.fullChildren(t.root))
	}
	return kvtree.New(0, s.partial(t.root, make([]int, 0, len(t.levels))))
}

type skeletonizer struct {
	t    *Tree
	pred predicate.Func
	full map[NodeID][]*kvtree.Node[int]
}

func (s *skeletonizer) fullChildren(id NodeID) []*kvtree.Node[int] {
	if out, ok := s.full[id]; ok {
		return out
	}
	n := s.t.b.at(id)
	out := make([]*kvtree.Node[int], n.part.MaxIndex())
	for i := range out {
		out[i] = s.fullChild(n, i)
	}
	s.full[id] = out
	return out
}

func (s *skeletonizer) fullChild(n node, i int) *kvtree.Node[int] {
	if n.children == nil {
		return kvtree.Leaf[int](i)
	}
	return kvtree.New(i, s.fullChildren(n.children[n.part.ChildKind(i)]))
}

func (s *skeletonizer) partial(id NodeID, prefix []int) []*kvtree.Node[int] {
	n := s.t.b.at(id)
	out := make([]*kvtree.Node[int], 0, n.part.MaxIndex())
	for i := 0; i < n.part.MaxIndex(); i++ {
		p := append(prefix, i)
		switch s.pred(p) {
		case predicate.False:
			continue
		case predicate.True:
			out = append(out, s.fullChild(n, i))
		default:
			if n.children == nil {
				out = append(out, kvtree.Leaf[int](i))
			} else {
				out = append(out, kvtree.New(i, s.partial(n.children[n.part.ChildKind(i)], p)))
			}
		}
	}
	return out
}
