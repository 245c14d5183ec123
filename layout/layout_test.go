// SPDX-License-Identifier: MIT
package layout_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlayout/layout"
	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/predicate"
	"github.com/katalvlaran/lvlayout/ptree"
	"github.com/stretchr/testify/require"
)

func line32(t *testing.T, opts ...layout.Option) *layout.Layout {
	t.Helper()
	l, err := layout.New([]int{32}, nil, []partition.Rule{
		partition.Periodic("mpi", partition.RoleMPI, 0, 2),
		partition.Plain("x", 0),
		partition.Site("site"),
	}, opts...)
	require.NoError(t, err)
	return l
}

func split5(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.New([]int{5}, nil, []partition.Rule{
		partition.Open("vec", partition.RoleVector, 0, 2),
		partition.Plain("x", 0),
		partition.Site("site"),
	})
	require.NoError(t, err)
	return l
}

func ring42(t *testing.T) *layout.Layout {
	t.Helper()
	l, err := layout.New([]int{42}, nil, []partition.Rule{
		partition.Periodic("mpi", partition.RoleMPI, 0, 4),
		partition.HaloBorderBulk("hbb", 0, 1),
		partition.Plain("x", 0),
		partition.Site("site"),
	})
	require.NoError(t, err)
	return l
}

func TestLayout_Queries(t *testing.T) {
	t.Parallel()
	l := line32(t)
	require.Equal(t, []string{"mpi", "x", "site"}, l.LevelNames())
	require.Equal(t, []int{32}, l.Sizes())
	require.Len(t, l.Levels(), 3)

	i, err := l.LevelIndex("x")
	require.NoError(t, err)
	require.Equal(t, 1, i)
	_, err = l.LevelIndex("y")
	require.ErrorIs(t, err, layout.ErrLevelNotFound)

	idx, err := l.Indices(partition.Coordinates{20})
	require.NoError(t, err)
	require.Equal(t, partition.Indices{1, 4, 0}, idx)
	c, err := l.Coordinates(idx)
	require.NoError(t, err)
	require.Equal(t, partition.Coordinates{20}, c)

	lim, err := l.PartitionLimits(partition.Indices{1})
	require.NoError(t, err)
	require.Equal(t, []ptree.Limit{{Start: 16, End: 32}}, lim)

	paths, err := l.IndicesWithGhosts(partition.Coordinates{20})
	require.NoError(t, err)
	require.Len(t, paths, 1, "no halo level, ghost branches all die")

	var buf bytes.Buffer
	require.NoError(t, l.Dump(&buf, 1))
	require.Contains(t, buf.String(), "mpi [periodic/mpi]")
}

func TestLayout_SharedBuilderAndLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := ptree.NewBuilder()
	first := line32(t, layout.WithBuilder(b), layout.WithLogger(log))
	second := line32(t, layout.WithBuilder(b))
	require.Equal(t, first.Tree().Root(), second.Tree().Root())
	require.Contains(t, buf.String(), "layout: tree ready")

	require.Panics(t, func() { layout.WithLogger(nil) })
	require.Panics(t, func() { layout.WithBuilder(nil) })
	require.Panics(t, func() { layout.WithBaseOffset(-1) })
}

func TestLayout_BuildErrors(t *testing.T) {
	t.Parallel()
	_, err := layout.New([]int{8}, nil, []partition.Rule{partition.Plain("x", 0)})
	require.ErrorIs(t, err, ptree.ErrMissingSite)
	_, err = layout.New(nil, nil, []partition.Rule{partition.Site("site")})
	require.ErrorIs(t, err, ptree.ErrEmptyLattice)
}

func TestSkeleton_PipelineAndPermute(t *testing.T) {
	t.Parallel()
	l := split5(t)
	sk, err := l.Skeleton(nil)
	require.NoError(t, err)
	n, err := sk.NChildren(nil)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	perm, err := sk.Permute([]string{"x", "vec", "site"})
	require.NoError(t, err)
	require.Equal(t, []string{"x", "vec", "site"}, perm.LevelNames())
	counts := make([]int, 0, 3)
	for x := 0; x < 3; x++ {
		n, err := perm.NChildren(partition.Indices{x})
		require.NoError(t, err)
		counts = append(counts, n)
	}
	require.Equal(t, []int{2, 2, 1}, counts)

	_, err = sk.Permute([]string{"x", "vec", "nope"})
	require.ErrorIs(t, err, layout.ErrLevelNotFound)

	pruned, err := perm.Prune(predicate.LevelIs("vec", 1))
	require.NoError(t, err)
	size, err := pruned.SizeTree()
	require.NoError(t, err)
	require.Equal(t, 2, size.Size())
	require.Equal(t, []string{"x", "vec", "site"}, size.LevelNames())

	offs := size.OffsetTree(7)
	got, err := offs.GetOffset(partition.Indices{1, 1, 0})
	require.NoError(t, err)
	require.Equal(t, 8, got)
	idx, err := offs.GetIndices(7)
	require.NoError(t, err)
	require.Equal(t, partition.Indices{0, 1, 0}, idx)

	_, err = sk.Prune(predicate.LevelIs("nope", 0))
	require.ErrorIs(t, err, predicate.ErrUnknownLevel)
	_, err = l.Skeleton(predicate.MpiRank(0))
	require.ErrorIs(t, err, predicate.ErrRankArity)
}

func TestLayout_FromConfig4D(t *testing.T) {
	t.Parallel()
	c, err := layout.LoadConfig(filepath.Join("testdata", "lattice4d.yaml"))
	require.NoError(t, err)
	l, err := layout.FromConfig(c)
	require.NoError(t, err)
	require.Len(t, l.LevelNames(), 15)
	require.Equal(t, "eo-site", l.LevelNames()[11])

	ml, err := c.MemoryLayout(l)
	require.NoError(t, err)
	require.Equal(t, 12*12*11*11*9, ml.Size())

	first := partition.Coordinates{24, 36, 11, 11, 0, 0}
	off, err := ml.Offset(first)
	require.NoError(t, err)
	require.Equal(t, 0, off)

	for _, o := range []int{0, 1, 1000, 77777, ml.Size() - 1} {
		c, err := ml.CoordinatesAt(o)
		require.NoError(t, err)
		require.GreaterOrEqual(t, c[0], 24)
		require.Less(t, c[0], 36)
		require.GreaterOrEqual(t, c[2], 11)
		require.Less(t, c[2], 22)
		back, err := ml.Offset(c)
		require.NoError(t, err)
		require.Equal(t, o, back)
	}

	_, err = ml.Offset(partition.Coordinates{0, 0, 0, 0, 0, 0})
	require.ErrorIs(t, err, layout.ErrNotOwned)
}
