// SPDX-License-Identifier: MIT
//
// File: ghost.go
// Role: Ghost-path resolution: every copy of a coordinate, halos included.

package ptree

import (
	"fmt"

	"github.com/katalvlaran/lvlayout/partition"
)

// GhostNode is one branch of the ghost tree of a coordinate.
type GhostNode struct {
	Index int
	Ghost bool
	// Children is nil at the Site level.
	Children []GhostNode
}

// GhostPath is one complete path of a ghost tree. GhostCount is the number of
// ghost results along it; the canonical path has GhostCount 0.
type GhostPath struct {
	GhostCount int
	Indices    partition.Indices
}

// GhostTree follows every result of every partitioner, canonical and ghost,
// and keeps the branches that reach the Site level.
func (t *Tree) GhostTree(c partition.Coordinates) ([]GhostNode, error) {
	if err := t.checkCoords(c); err != nil {
		return nil, err
	}
	return t.ghosts(t.root, c), nil
}

func (t *Tree) ghosts(id NodeID, c partition.Coordinates) []GhostNode {
	n := t.b.at(id)
	var out []GhostNode
	for _, r := range n.part.CoordinateToIndices(c) {
		if n.children == nil {
			out = append(out, GhostNode{Index: r.Index, Ghost: r.Ghost})
			continue
		}
		sub := t.ghosts(n.children[n.part.ChildKind(r.Index)], r.Remainder)
		if len(sub) == 0 {
			continue
		}
		out = append(out, GhostNode{Index: r.Index, Ghost: r.Ghost, Children: sub})
	}
	return out
}

// IndicesWithGhosts returns every path through which c is stored: the
// canonical one and its halo copies, each path once. A path reached along
// several ghost branches keeps its lowest GhostCount.
func (t *Tree) IndicesWithGhosts(c partition.Coordinates) ([]GhostPath, error) {
	roots, err := t.GhostTree(c)
	if err != nil {
		return nil, err
	}
	var out []GhostPath
	seen := make(map[string]int)
	prefix := make(partition.Indices, 0, len(t.levels))
	var flatten func(gs []GhostNode, ghosts int)
	flatten = func(gs []GhostNode, ghosts int) {
		for _, g := range gs {
			prefix = append(prefix, g.Index)
			count := ghosts
			if g.Ghost {
				count++
			}
			if g.Children == nil {
				key := fmt.Sprint(prefix)
				if i, ok := seen[key]; ok {
					out[i].GhostCount = min(out[i].GhostCount, count)
				} else {
					seen[key] = len(out)
					out = append(out, GhostPath{GhostCount: count, Indices: append(partition.Indices(nil), prefix...)})
				}
			} else {
				flatten(g.Children, count)
			}
			prefix = prefix[:len(prefix)-1]
		}
	}
	flatten(roots, 0)
	return out, nil
}
