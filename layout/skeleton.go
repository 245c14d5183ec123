// SPDX-License-Identifier: MIT

package layout

import (
	"log/slog"

	"github.com/katalvlaran/lvlayout/kvtree"
	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/predicate"
)

// Skeleton is a selection of index paths with child counts, in some level
// order.
type Skeleton struct {
	levels []partition.Level
	root   *kvtree.Node[int]
	log    *slog.Logger
}

// Root returns the underlying tree.
func (s *Skeleton) Root() *kvtree.Node[int] { return s.root }

// Levels describes the levels in the skeleton's order.
func (s *Skeleton) Levels() []partition.Level {
	return append([]partition.Level(nil), s.levels...)
}

// LevelNames returns the level names in the skeleton's order.
func (s *Skeleton) LevelNames() []string { return levelNames(s.levels) }

// NChildren returns the number of children below prefix.
func (s *Skeleton) NChildren(prefix partition.Indices) (int, error) {
	return kvtree.NChildren(s.root, prefix)
}

// Prune narrows the selection. e is evaluated against the skeleton's current
// level order, so MpiRank ranks follow the order of the MPI levels here.
func (s *Skeleton) Prune(e *predicate.Expr) (*Skeleton, error) {
	if err := e.Validate(s.levels); err != nil {
		return nil, err
	}
	return &Skeleton{levels: s.levels, root: kvtree.Prune(s.root, e.Bind(s.levels)), log: s.log}, nil
}

// Permute reorders the levels to names, which must name every level once.
func (s *Skeleton) Permute(names []string) (*Skeleton, error) {
	m, err := kvtree.NewLevelMatcher(s.LevelNames(), names)
	if err != nil {
		return nil, mapLevelErr(err)
	}
	order := m.Order()
	root, err := kvtree.SwapLevels(s.root, order)
	if err != nil {
		return nil, err
	}
	levels := make([]partition.Level, len(order))
	for i, j := range order {
		levels[i] = s.levels[j]
	}
	s.log.Debug("layout: permuted skeleton", slog.Any("levels", names))
	return &Skeleton{levels: levels, root: root, log: s.log}, nil
}

// SizeTree counts the sites below every node.
func (s *Skeleton) SizeTree() (*SizeTree, error) {
	root, err := kvtree.SizeTree(s.root, len(s.levels))
	if err != nil {
		return nil, err
	}
	return &SizeTree{names: s.LevelNames(), root: root}, nil
}

// SizeTree holds the site count of every selected subtree.
type SizeTree struct {
	names []string
	root  *kvtree.Node[int]
}

// Root returns the underlying tree.
func (t *SizeTree) Root() *kvtree.Node[int] { return t.root }

// LevelNames returns the level order of the tree.
func (t *SizeTree) LevelNames() []string { return append([]string(nil), t.names...) }

// Size returns the total number of sites.
func (t *SizeTree) Size() int { return t.root.Value }

// OffsetTree lays the sites out contiguously from base.
func (t *SizeTree) OffsetTree(base int) *OffsetTree {
	return &OffsetTree{names: t.names, root: kvtree.OffsetTree(t.root, base)}
}

// Walk visits every site path in memory order with its offset from the
// first site; it stops when fn returns false.
func (t *SizeTree) Walk(fn func(idx partition.Indices, offset int) bool) {
	kvtree.Walk(t.root, func(idx []int, off int) bool { return fn(idx, off) })
}

// OffsetTree maps index paths to absolute offsets.
type OffsetTree struct {
	names []string
	root  *kvtree.Node[int]
}

// Root returns the underlying tree.
func (t *OffsetTree) Root() *kvtree.Node[int] { return t.root }

// LevelNames returns the level order of the tree.
func (t *OffsetTree) LevelNames() []string { return append([]string(nil), t.names...) }

// GetOffset returns the offset of the first site below idx.
func (t *OffsetTree) GetOffset(idx partition.Indices) (int, error) {
	return kvtree.GetOffset(t.root, idx)
}

// GetIndices returns the index path of the site at offset.
func (t *OffsetTree) GetIndices(offset int) (partition.Indices, error) {
	return kvtree.GetIndices(t.root, offset)
}

func levelNames(levels []partition.Level) []string {
	out := make([]string, len(levels))
	for i, lv := range levels {
		out[i] = lv.Name
	}
	return out
}
