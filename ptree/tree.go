// SPDX-License-Identifier: MIT
//
// File: tree.go
// Role: Tree handle with coordinate and index resolution.

package ptree

import (
	"fmt"

	"github.com/katalvlaran/lvlayout/partition"
)

// Tree is a read-only view of a root node in a Builder arena.
type Tree struct {
	b      *Builder
	root   NodeID
	levels []partition.Level
}

// Root returns the root node ID.
func (t *Tree) Root() NodeID { return t.root }

// Builder returns the arena the tree lives in.
func (t *Tree) Builder() *Builder { return t.b }

// PartInfoVec returns the root PartInfoVec.
func (t *Tree) PartInfoVec() partition.PartInfoVec { return t.b.at(t.root).piv.Clone() }

// Depth returns the number of levels, Site included.
func (t *Tree) Depth() int { return len(t.levels) }

// Levels describes the tree levels, root first.
func (t *Tree) Levels() []partition.Level {
	return append([]partition.Level(nil), t.levels...)
}

// LevelNames returns the level names, root first.
func (t *Tree) LevelNames() []string {
	out := make([]string, len(t.levels))
	for i, lv := range t.levels {
		out[i] = lv.Name
	}
	return out
}

// collectLevels follows the first child kind down to the Site. All paths
// have the same levels: only EvenOdd changes the rule list of a child, and it
// inserts the same local level for both parities.
func (t *Tree) collectLevels() []partition.Level {
	var out []partition.Level
	for id := t.root; ; {
		n := t.b.at(id)
		out = append(out, n.rule.Level())
		if n.children == nil {
			return out
		}
		id = n.children[0]
	}
}

// Indices returns the canonical path of c: at every level the single
// non-ghost result.
func (t *Tree) Indices(c partition.Coordinates) (partition.Indices, error) {
	if err := t.checkCoords(c); err != nil {
		return nil, err
	}
	idx := make(partition.Indices, 0, len(t.levels))
	cur := c
	for id := t.root; ; {
		n := t.b.at(id)
		var hit *partition.IndexResult
		for _, r := range n.part.CoordinateToIndices(cur) {
			if !r.Ghost {
				hit = &r
				break
			}
		}
		if hit == nil {
			return nil, fmt.Errorf("%w: %v at level %q", ErrCoordinateOutOfRange, c, n.rule.Name)
		}
		idx = append(idx, hit.Index)
		if n.children == nil {
			return idx, nil
		}
		cur = hit.Remainder
		id = n.children[n.part.ChildKind(hit.Index)]
	}
}

// ValidateIndices checks that idx has one entry per level and that every
// entry lies in the child range of the node it selects from.
func (t *Tree) ValidateIndices(idx partition.Indices) error {
	if len(idx) != len(t.levels) {
		return fmt.Errorf("%w: %d indices for %d levels", ErrLengthMismatch, len(idx), len(t.levels))
	}
	_, err := t.path(idx)
	return err
}

// path returns the nodes visited by prefix: path[i] is the node at level i
// and the last entry is the node the prefix selects (the Site itself for a
// full path).
func (t *Tree) path(prefix partition.Indices) ([]node, error) {
	if len(prefix) > len(t.levels) {
		return nil, fmt.Errorf("%w: %d indices for %d levels", ErrLengthMismatch, len(prefix), len(t.levels))
	}
	nodes := make([]node, 0, len(prefix)+1)
	n := t.b.at(t.root)
	for _, k := range prefix {
		if k < 0 || k >= n.part.MaxIndex() {
			return nil, fmt.Errorf("%w: index %d at level %q (max %d)",
				ErrIndexOutOfRange, k, n.rule.Name, n.part.MaxIndex())
		}
		nodes = append(nodes, n)
		if n.children != nil {
			n = t.b.at(n.children[n.part.ChildKind(k)])
		}
	}
	return append(nodes, n), nil
}

// Coordinates is the inverse of Indices.
func (t *Tree) Coordinates(idx partition.Indices) (partition.Coordinates, error) {
	if len(idx) != len(t.levels) {
		return nil, fmt.Errorf("%w: %d indices for %d levels", ErrLengthMismatch, len(idx), len(t.levels))
	}
	nodes, err := t.path(idx)
	if err != nil {
		return nil, err
	}
	return fold(nodes, idx, len(nodes[0].piv)), nil
}

// fold converts a prefix into the coordinates of its first site.
func fold(nodes []node, prefix partition.Indices, dims int) partition.Coordinates {
	c := make(partition.Coordinates, dims)
	for i := len(prefix) - 1; i >= 0; i-- {
		c = nodes[i].part.IndexToCoordinate(prefix[i], c)
	}
	return c
}

// Limit is the half-open range [Start, End) covered along one axis.
type Limit struct {
	Start, End int
}

// PartitionLimits returns the per-axis range covered by the subtree selected
// by prefix. Halo zones give ranges outside the lattice.
func (t *Tree) PartitionLimits(prefix partition.Indices) ([]Limit, error) {
	nodes, err := t.path(prefix)
	if err != nil {
		return nil, err
	}
	dims := len(nodes[0].piv)
	start := fold(nodes, prefix, dims)
	sub := nodes[len(nodes)-1].piv
	out := make([]Limit, dims)
	for d := range out {
		out[d] = Limit{Start: start[d], End: start[d] + sub[d].Size}
	}
	return out, nil
}

// checkCoords rejects coordinates outside the lattice; halo positions are
// reached through their owning site, never directly.
func (t *Tree) checkCoords(c partition.Coordinates) error {
	piv := t.b.at(t.root).piv
	if len(c) != len(piv) {
		return fmt.Errorf("%w: %d coordinates for %d axes", ErrLengthMismatch, len(c), len(piv))
	}
	for d, x := range c {
		if x < 0 || x >= piv[d].Size {
			return fmt.Errorf("%w: %v on axis %d of size %d", ErrCoordinateOutOfRange, c, d, piv[d].Size)
		}
	}
	return nil
}
