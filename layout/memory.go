// SPDX-License-Identifier: MIT

package layout

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlayout/kvtree"
	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/predicate"
)

// MemoryLayout maps the sites selected by a predicate to contiguous offsets,
// with the tree levels arranged in a chosen memory order.
type MemoryLayout struct {
	l       *Layout
	match   *kvtree.LevelMatcher
	sizes   *SizeTree
	offsets *OffsetTree
	base    int
}

// MemoryLayout selects the sites matching pred and lays them out with the
// levels in order (the natural order when order is nil). Offsets start at the
// base offset of the layout.
func (l *Layout) MemoryLayout(pred *predicate.Expr, order []string) (*MemoryLayout, error) {
	sk, err := l.Skeleton(pred)
	if err != nil {
		return nil, err
	}
	if order != nil {
		if sk, err = sk.Permute(order); err != nil {
			return nil, err
		}
	}
	match, err := kvtree.NewLevelMatcher(l.LevelNames(), sk.LevelNames())
	if err != nil {
		return nil, mapLevelErr(err)
	}
	sizes, err := sk.SizeTree()
	if err != nil {
		return nil, err
	}
	ml := &MemoryLayout{
		l:       l,
		match:   match,
		sizes:   sizes,
		offsets: sizes.OffsetTree(l.cfg.base),
		base:    l.cfg.base,
	}
	l.cfg.log.Info("layout: memory layout",
		slog.String("select", pred.String()),
		slog.Any("order", sk.LevelNames()),
		slog.Int("sites", sizes.Size()),
		slog.Int("base", ml.base))
	return ml, nil
}

// Size returns the number of sites.
func (m *MemoryLayout) Size() int { return m.sizes.Size() }

// Base returns the offset of the first site.
func (m *MemoryLayout) Base() int { return m.base }

// LevelNames returns the memory order of the levels.
func (m *MemoryLayout) LevelNames() []string { return m.sizes.LevelNames() }

// SizeTree returns the site counts in memory order.
func (m *MemoryLayout) SizeTree() *SizeTree { return m.sizes }

// OffsetTree returns the offsets in memory order.
func (m *MemoryLayout) OffsetTree() *OffsetTree { return m.offsets }

// Offset returns the offset of the canonical copy of c.
func (m *MemoryLayout) Offset(c partition.Coordinates) (int, error) {
	idx, err := m.l.Indices(c)
	if err != nil {
		return 0, err
	}
	return m.offsetOf(idx)
}

// GhostOffsets returns the offsets of every copy of c held by the layout,
// canonical first when it is selected.
func (m *MemoryLayout) GhostOffsets(c partition.Coordinates) ([]int, error) {
	paths, err := m.l.IndicesWithGhosts(c)
	if err != nil {
		return nil, err
	}
	var out []int
	for _, p := range paths {
		off, err := m.offsetOf(p.Indices)
		if errors.Is(err, ErrNotOwned) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, off)
	}
	return out, nil
}

func (m *MemoryLayout) offsetOf(idx partition.Indices) (int, error) {
	mem, err := m.match.Translate(idx)
	if err != nil {
		return 0, err
	}
	off, err := m.offsets.GetOffset(mem)
	if errors.Is(err, kvtree.ErrKeyNotFound) {
		return 0, fmt.Errorf("%w: path %v", ErrNotOwned, idx)
	}
	return off, err
}

// CoordinatesAt returns the coordinates of the site stored at offset. For a
// halo copy these lie outside the lattice.
func (m *MemoryLayout) CoordinatesAt(offset int) (partition.Coordinates, error) {
	mem, err := m.offsets.GetIndices(offset)
	if err != nil {
		return nil, err
	}
	idx, err := m.match.Inverse(mem)
	if err != nil {
		return nil, err
	}
	return m.l.Coordinates(idx)
}

// Each calls fn for every site in memory order. It stops at the first error.
func (m *MemoryLayout) Each(fn func(offset int, c partition.Coordinates) error) error {
	var werr error
	m.sizes.Walk(func(mem partition.Indices, rel int) bool {
		idx, err := m.match.Inverse(mem)
		if err == nil {
			var c partition.Coordinates
			if c, err = m.l.Coordinates(idx); err == nil {
				err = fn(m.base+rel, c)
			}
		}
		werr = err
		return err == nil
	})
	return werr
}

func mapLevelErr(err error) error {
	if errors.Is(err, kvtree.ErrLevelNotFound) {
		return fmt.Errorf("%w: %w", ErrLevelNotFound, err)
	}
	return err
}
