// SPDX-License-Identifier: MIT
package ptree_test

import (
	"testing"

	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/ptree"
	"github.com/stretchr/testify/require"
)

func TestIndicesWithGhosts_Ring(t *testing.T) {
	t.Parallel()
	tree := ring42(t)
	cases := []struct {
		x    int
		want []ptree.GhostPath
	}{
		{0, []ptree.GhostPath{
			{GhostCount: 0, Indices: partition.Indices{0, partition.BorderMinus, 0, 0}},
			{GhostCount: 1, Indices: partition.Indices{3, partition.HaloPlus, 0, 0}},
		}},
		{5, []ptree.GhostPath{
			{GhostCount: 0, Indices: partition.Indices{0, partition.Bulk, 4, 0}},
		}},
		{11, []ptree.GhostPath{
			{GhostCount: 0, Indices: partition.Indices{1, partition.BorderMinus, 0, 0}},
			{GhostCount: 1, Indices: partition.Indices{0, partition.HaloPlus, 0, 0}},
		}},
		{41, []ptree.GhostPath{
			{GhostCount: 0, Indices: partition.Indices{3, partition.BorderPlus, 0, 0}},
			{GhostCount: 1, Indices: partition.Indices{0, partition.HaloMinus, 0, 0}},
		}},
	}
	for _, tc := range cases {
		got, err := tree.IndicesWithGhosts(partition.Coordinates{tc.x})
		require.NoError(t, err)
		require.Equalf(t, tc.want, got, "x=%d", tc.x)
	}
}

// TestIndicesWithGhosts_Exact checks every site of the ring: one canonical
// path equal to Indices, and ghost paths that map back onto the same site
// modulo the lattice size.
func TestIndicesWithGhosts_Exact(t *testing.T) {
	t.Parallel()
	tree := ring42(t)
	ghosts := 0
	for x := 0; x < 42; x++ {
		c := partition.Coordinates{x}
		paths, err := tree.IndicesWithGhosts(c)
		require.NoError(t, err)
		idx, err := tree.Indices(c)
		require.NoError(t, err)

		canonical := 0
		for _, p := range paths {
			require.NoError(t, tree.ValidateIndices(p.Indices))
			back, err := tree.Coordinates(p.Indices)
			require.NoError(t, err)
			if p.GhostCount == 0 {
				canonical++
				require.Equal(t, idx, p.Indices)
				require.Equal(t, c, back)
				continue
			}
			ghosts++
			require.Equal(t, x, (back[0]%42+42)%42)
		}
		require.Equalf(t, 1, canonical, "x=%d", x)
	}
	// both ends of each of the four blocks have one halo copy
	require.Equal(t, 8, ghosts)
}

func TestGhostTree_Shape(t *testing.T) {
	t.Parallel()
	tree := ring42(t)
	roots, err := tree.GhostTree(partition.Coordinates{0})
	require.NoError(t, err)
	require.Len(t, roots, 2, "owner plus the wrap into the last block")
	require.False(t, roots[0].Ghost)
	require.True(t, roots[1].Ghost)
	require.Equal(t, 3, roots[1].Index)
	leaf := roots[1].Children[0].Children[0].Children[0]
	require.Nil(t, leaf.Children)

	_, err = tree.GhostTree(partition.Coordinates{0, 0})
	require.ErrorIs(t, err, ptree.ErrLengthMismatch)
}

// TestIndicesWithGhosts_Corner4D: the origin of the 4D lattice sits on a
// rank border along every spatial axis, so it has 2^4 copies.
func TestIndicesWithGhosts_Corner4D(t *testing.T) {
	t.Parallel()
	tree := lattice4D(t)
	paths, err := tree.IndicesWithGhosts(partition.Coordinates{0, 0, 0, 0, 1, 2})
	require.NoError(t, err)
	require.Len(t, paths, 16)
	counts := make([]int, 5)
	for _, p := range paths {
		require.Len(t, p.Indices, 15)
		counts[p.GhostCount]++
	}
	require.Equal(t, []int{1, 4, 6, 4, 1}, counts)
}

// TestIndicesWithGhosts_NoHalo: without a halo level the neighbour results of
// the splits land outside their blocks, so every site has exactly one path.
func TestIndicesWithGhosts_NoHalo(t *testing.T) {
	t.Parallel()
	tree := build(t, []int{8}, nil,
		partition.Periodic("mpi", partition.RoleMPI, 0, 2),
		partition.Open("vec", partition.RoleVector, 0, 2),
		partition.Site("site"),
	)
	paths, err := tree.IndicesWithGhosts(partition.Coordinates{0})
	require.NoError(t, err)
	require.Equal(t, []ptree.GhostPath{{GhostCount: 0, Indices: partition.Indices{0, 0, 0}}}, paths)

	for x := 0; x < 8; x++ {
		c := partition.Coordinates{x}
		paths, err := tree.IndicesWithGhosts(c)
		require.NoError(t, err)
		require.Lenf(t, paths, 1, "x=%d", x)
		require.Zero(t, paths[0].GhostCount)
		idx, err := tree.Indices(c)
		require.NoError(t, err)
		require.Equal(t, idx, paths[0].Indices)
	}
}
