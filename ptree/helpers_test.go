// SPDX-License-Identifier: MIT
package ptree_test

import (
	"testing"

	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/ptree"
	"github.com/stretchr/testify/require"
)

func build(t testing.TB, sizes, nonSpatial []int, rules ...partition.Rule) *ptree.Tree {
	t.Helper()
	piv, err := ptree.NewPartInfoVec(sizes, nonSpatial)
	require.NoError(t, err)
	tree, err := ptree.NewBuilder().Build(piv, rules)
	require.NoError(t, err)
	return tree
}

// lattice4D is a 48x48x42x42 lattice with two internal axes of 3, split over
// 4x4x4x4 ranks, 2x2 vector lanes on x and y, width-1 halos and an even-odd
// fold of the four spatial axes.
func lattice4D(t testing.TB) *ptree.Tree {
	return build(t, []int{48, 48, 42, 42, 3, 3}, []int{4, 5},
		partition.Periodic("mpi-x", partition.RoleMPI, 0, 4),
		partition.Periodic("mpi-y", partition.RoleMPI, 1, 4),
		partition.Periodic("mpi-z", partition.RoleMPI, 2, 4),
		partition.Periodic("mpi-t", partition.RoleMPI, 3, 4),
		partition.Open("vec-x", partition.RoleVector, 0, 2),
		partition.Open("vec-y", partition.RoleVector, 1, 2),
		partition.HaloBorderBulk("hbb-x", 0, 1),
		partition.HaloBorderBulk("hbb-y", 1, 1),
		partition.HaloBorderBulk("hbb-z", 2, 1),
		partition.HaloBorderBulk("hbb-t", 3, 1),
		partition.EvenOdd("eo", "", 0, 1, 2, 3),
		partition.Plain("spin", 4),
		partition.Plain("color", 5),
		partition.Site("site"),
	)
}

// ring42 is a periodic 42-site axis over 4 ranks with width-1 halos,
// resolved to single sites.
func ring42(t testing.TB) *ptree.Tree {
	return build(t, []int{42}, nil,
		partition.Periodic("mpi", partition.RoleMPI, 0, 4),
		partition.HaloBorderBulk("hbb", 0, 1),
		partition.Plain("x", 0),
		partition.Site("site"),
	)
}
