// SPDX-License-Identifier: MIT
package ptree_test

import (
	"testing"

	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/ptree"
	"github.com/stretchr/testify/require"
)

func TestIndices_RoundTrip32(t *testing.T) {
	t.Parallel()
	tree := build(t, []int{32}, nil,
		partition.Periodic("mpi", partition.RoleMPI, 0, 2),
		partition.Plain("x", 0),
		partition.Site("site"),
	)
	for x := 0; x < 32; x++ {
		idx, err := tree.Indices(partition.Coordinates{x})
		require.NoError(t, err)
		require.Equal(t, partition.Indices{x / 16, x % 16, 0}, idx)
		c, err := tree.Coordinates(idx)
		require.NoError(t, err)
		require.Equal(t, partition.Coordinates{x}, c)
	}
}

func TestIndices_RoundTripEvenOdd(t *testing.T) {
	t.Parallel()
	tree := build(t, []int{4, 6, 2}, []int{2},
		partition.Open("vec", partition.RoleVector, 1, 2),
		partition.EvenOdd("eo", "inner", 0, 1),
		partition.Plain("spin", 2),
		partition.Site("site"),
	)
	require.Equal(t, []string{"vec", "eo", "inner", "spin", "site"}, tree.LevelNames())
	seen := make(map[[5]int]bool)
	for x := 0; x < 4; x++ {
		for y := 0; y < 6; y++ {
			for s := 0; s < 2; s++ {
				c := partition.Coordinates{x, y, s}
				idx, err := tree.Indices(c)
				require.NoError(t, err)
				require.Len(t, idx, 5)
				require.Equal(t, (x+y)%2, idx[1], "parity of the global site")
				back, err := tree.Coordinates(idx)
				require.NoError(t, err)
				require.Equal(t, c, back)
				seen[[5]int(idx)] = true
			}
		}
	}
	require.Len(t, seen, 48)
}

func TestIndices_4D(t *testing.T) {
	t.Parallel()
	tree := lattice4D(t)
	coords := []partition.Coordinates{
		{0, 0, 0, 0, 0, 0},
		{47, 47, 41, 41, 2, 2},
		{24, 40, 11, 12, 1, 0},
		{30, 6, 32, 33, 2, 1},
		{5, 17, 20, 40, 0, 2},
	}
	for _, c := range coords {
		idx, err := tree.Indices(c)
		require.NoError(t, err)
		require.Len(t, idx, 15)
		back, err := tree.Coordinates(idx)
		require.NoError(t, err)
		require.Equal(t, c, back)
	}

	idx, err := tree.Indices(partition.Coordinates{24, 40, 11, 12, 1, 0})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3, 1, 1}, []int(idx[:4]))
	require.Equal(t, []int{0, 0}, []int(idx[4:6]))
	require.Equal(t, []int{partition.BorderMinus, partition.Bulk, partition.BorderMinus, partition.Bulk}, []int(idx[6:10]))
	require.Equal(t, []int{1, 0, 0}, []int(idx[12:]))
}

func TestIndices_Errors(t *testing.T) {
	t.Parallel()
	tree := ring42(t)
	_, err := tree.Indices(partition.Coordinates{1, 2})
	require.ErrorIs(t, err, ptree.ErrLengthMismatch)
	_, err = tree.Indices(partition.Coordinates{42})
	require.ErrorIs(t, err, ptree.ErrCoordinateOutOfRange)
	_, err = tree.Indices(partition.Coordinates{-1})
	require.ErrorIs(t, err, ptree.ErrCoordinateOutOfRange)

	require.ErrorIs(t, tree.ValidateIndices(partition.Indices{0, 2, 0}), ptree.ErrLengthMismatch)
	require.ErrorIs(t, tree.ValidateIndices(partition.Indices{4, 2, 0, 0}), ptree.ErrIndexOutOfRange)
	require.ErrorIs(t, tree.ValidateIndices(partition.Indices{0, 5, 0, 0}), ptree.ErrIndexOutOfRange)
	// the bulk of a 9-site block has 7 sites
	require.ErrorIs(t, tree.ValidateIndices(partition.Indices{3, 2, 7, 0}), ptree.ErrIndexOutOfRange)
	require.NoError(t, tree.ValidateIndices(partition.Indices{3, 2, 6, 0}))
	_, err = tree.Coordinates(partition.Indices{0, 0, 0, 1})
	require.ErrorIs(t, err, ptree.ErrIndexOutOfRange)
}

func TestPartitionLimits(t *testing.T) {
	t.Parallel()
	tree := ring42(t)
	cases := []struct {
		prefix partition.Indices
		want   ptree.Limit
	}{
		{nil, ptree.Limit{Start: 0, End: 42}},
		{partition.Indices{1}, ptree.Limit{Start: 11, End: 22}},
		{partition.Indices{3}, ptree.Limit{Start: 33, End: 42}},
		{partition.Indices{3, partition.Bulk}, ptree.Limit{Start: 34, End: 41}},
		{partition.Indices{3, partition.HaloPlus}, ptree.Limit{Start: 42, End: 43}},
		{partition.Indices{0, partition.HaloMinus}, ptree.Limit{Start: -1, End: 0}},
		{partition.Indices{1, partition.Bulk, 3, 0}, ptree.Limit{Start: 15, End: 16}},
	}
	for _, tc := range cases {
		got, err := tree.PartitionLimits(tc.prefix)
		require.NoError(t, err)
		require.Equalf(t, []ptree.Limit{tc.want}, got, "prefix %v", tc.prefix)
	}
	_, err := tree.PartitionLimits(partition.Indices{0, 0, 0, 0, 0})
	require.ErrorIs(t, err, ptree.ErrLengthMismatch)
}
