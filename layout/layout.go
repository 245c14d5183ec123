// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/predicate"
	"github.com/katalvlaran/lvlayout/ptree"
)

// Layout is a built partition tree together with its options.
type Layout struct {
	tree  *ptree.Tree
	cfg   config
	sizes []int
}

// New builds the partition tree of a lattice with the given extents.
// Axes listed in nonSpatial carry no checkerboard parity.
func New(sizes, nonSpatial []int, rules []partition.Rule, opts ...Option) (*Layout, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.builder == nil {
		cfg.builder = ptree.NewBuilder(ptree.WithLogger(cfg.log))
	}
	piv, err := ptree.NewPartInfoVec(sizes, nonSpatial)
	if err != nil {
		return nil, err
	}
	tree, err := cfg.builder.Build(piv, rules)
	if err != nil {
		return nil, err
	}
	cfg.log.Info("layout: tree ready",
		slog.Any("sizes", sizes),
		slog.Any("levels", tree.LevelNames()),
		slog.Int("arena_nodes", cfg.builder.Stats().Nodes))
	return &Layout{tree: tree, cfg: cfg, sizes: append([]int(nil), sizes...)}, nil
}

// Tree returns the underlying partition tree.
func (l *Layout) Tree() *ptree.Tree { return l.tree }

// Sizes returns the lattice extents.
func (l *Layout) Sizes() []int { return append([]int(nil), l.sizes...) }

// Levels describes the tree levels, root first.
func (l *Layout) Levels() []partition.Level { return l.tree.Levels() }

// LevelNames returns the level names, root first.
func (l *Layout) LevelNames() []string { return l.tree.LevelNames() }

// LevelIndex returns the position of a level in the natural order.
func (l *Layout) LevelIndex(name string) (int, error) {
	for i, n := range l.tree.LevelNames() {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrLevelNotFound, name)
}

// Indices returns the canonical index path of c.
func (l *Layout) Indices(c partition.Coordinates) (partition.Indices, error) {
	return l.tree.Indices(c)
}

// IndicesWithGhosts returns the canonical path of c and all its halo copies.
func (l *Layout) IndicesWithGhosts(c partition.Coordinates) ([]ptree.GhostPath, error) {
	return l.tree.IndicesWithGhosts(c)
}

// Coordinates is the inverse of Indices.
func (l *Layout) Coordinates(idx partition.Indices) (partition.Coordinates, error) {
	return l.tree.Coordinates(idx)
}

// PartitionLimits returns the per-axis range covered below prefix.
func (l *Layout) PartitionLimits(prefix partition.Indices) ([]ptree.Limit, error) {
	return l.tree.PartitionLimits(prefix)
}

// Dump writes the tree structure to w.
func (l *Layout) Dump(w io.Writer, maxDepth int) error { return l.tree.Dump(w, maxDepth) }

// Skeleton enumerates the index paths selected by pred, in natural level
// order. A nil pred selects everything.
func (l *Layout) Skeleton(pred *predicate.Expr) (*Skeleton, error) {
	levels := l.tree.Levels()
	if err := pred.Validate(levels); err != nil {
		return nil, err
	}
	root := l.tree.Skeleton(pred.Bind(levels))
	l.cfg.log.Debug("layout: skeleton", slog.String("select", pred.String()), slog.Int("top", len(root.Children)))
	return &Skeleton{levels: levels, root: root, log: l.cfg.log}, nil
}
