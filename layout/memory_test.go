// SPDX-License-Identifier: MIT
package layout_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlayout/kvtree"
	"github.com/katalvlaran/lvlayout/layout"
	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/predicate"
	"github.com/stretchr/testify/require"
)

func TestMemoryLayout_Rank(t *testing.T) {
	t.Parallel()
	l := line32(t, layout.WithBaseOffset(100))
	ml, err := l.MemoryLayout(predicate.MpiRank(1), nil)
	require.NoError(t, err)
	require.Equal(t, 16, ml.Size())
	require.Equal(t, 100, ml.Base())
	require.Equal(t, []string{"mpi", "x", "site"}, ml.LevelNames())

	off, err := ml.Offset(partition.Coordinates{20})
	require.NoError(t, err)
	require.Equal(t, 104, off)
	c, err := ml.CoordinatesAt(104)
	require.NoError(t, err)
	require.Equal(t, partition.Coordinates{20}, c)

	_, err = ml.Offset(partition.Coordinates{3})
	require.ErrorIs(t, err, layout.ErrNotOwned)
	_, err = ml.CoordinatesAt(99)
	require.ErrorIs(t, err, kvtree.ErrOffsetOutOfRange)
	_, err = ml.CoordinatesAt(116)
	require.ErrorIs(t, err, kvtree.ErrOffsetOutOfRange)

	var seen []int
	require.NoError(t, ml.Each(func(off int, c partition.Coordinates) error {
		require.Equal(t, off-100+16, c[0])
		seen = append(seen, off)
		return nil
	}))
	require.Len(t, seen, 16)
	require.Equal(t, 115, seen[15])
	require.Equal(t, 16, ml.SizeTree().Size())
	require.Equal(t, 100, ml.OffsetTree().Root().Value)
}

// TestMemoryLayout_Permuted stores the 5-site split with the site level
// outermost: sites of the two blocks interleave.
func TestMemoryLayout_Permuted(t *testing.T) {
	t.Parallel()
	l := split5(t)
	ml, err := l.MemoryLayout(nil, []string{"x", "vec", "site"})
	require.NoError(t, err)
	require.Equal(t, 5, ml.Size())

	want := map[int]int{0: 0, 3: 1, 1: 2, 4: 3, 2: 4}
	for x, o := range want {
		got, err := ml.Offset(partition.Coordinates{x})
		require.NoError(t, err)
		require.Equalf(t, o, got, "x=%d", x)
		c, err := ml.CoordinatesAt(o)
		require.NoError(t, err)
		require.Equal(t, partition.Coordinates{x}, c)
	}

	stop := errors.New("stop")
	calls := 0
	err = ml.Each(func(int, partition.Coordinates) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 2, calls)

	_, err = l.MemoryLayout(nil, []string{"x", "site"})
	require.ErrorIs(t, err, kvtree.ErrInvalidOrdering)
}

func TestMemoryLayout_Halos(t *testing.T) {
	t.Parallel()
	l := ring42(t)
	full, err := l.MemoryLayout(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 50, full.Size())

	offs, err := full.GhostOffsets(partition.Coordinates{0})
	require.NoError(t, err)
	require.Len(t, offs, 2)
	canonical, err := full.Offset(partition.Coordinates{0})
	require.NoError(t, err)
	require.Equal(t, canonical, offs[0])
	c, err := full.CoordinatesAt(offs[1])
	require.NoError(t, err)
	require.Equal(t, partition.Coordinates{42}, c, "upper halo copy of the last rank")

	owned, err := l.MemoryLayout(predicate.HalosUpTo(0), nil)
	require.NoError(t, err)
	require.Equal(t, 42, owned.Size())
	offs, err = owned.GhostOffsets(partition.Coordinates{0})
	require.NoError(t, err)
	require.Equal(t, []int{0}, offs)

	n := 0
	require.NoError(t, owned.Each(func(off int, c partition.Coordinates) error {
		back, err := owned.Offset(c)
		require.NoError(t, err)
		require.Equal(t, off, back)
		n++
		return nil
	}))
	require.Equal(t, 42, n)
}

func TestMemoryLayout_GhostOffsetsWithoutHalo(t *testing.T) {
	t.Parallel()
	l, err := layout.New([]int{8}, nil, []partition.Rule{
		partition.Periodic("mpi", partition.RoleMPI, 0, 2),
		partition.Open("vec", partition.RoleVector, 0, 2),
		partition.Site("site"),
	})
	require.NoError(t, err)
	ml, err := l.MemoryLayout(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 8, ml.Size())
	for x := 0; x < 8; x++ {
		c := partition.Coordinates{x}
		off, err := ml.Offset(c)
		require.NoError(t, err)
		offs, err := ml.GhostOffsets(c)
		require.NoError(t, err)
		require.Equalf(t, []int{off}, offs, "x=%d", x)
	}
}
