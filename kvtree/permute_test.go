// SPDX-License-Identifier: MIT
package kvtree_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lvlayout/kvtree"
	"github.com/stretchr/testify/require"
)

// TestBringLevelOnTop_Ragged moves the plain level above the block level of
// a 3+2 split: block counts {3,2} become per-site counts {2,2,1}.
func TestBringLevelOnTop_Ragged(t *testing.T) {
	t.Parallel()
	tr := vecX()
	got, err := kvtree.BringLevelOnTop(tr, 1)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, got.Keys())
	require.Equal(t, []int{2, 2, 1}, childCounts(got))
	require.Equal(t, [][]int{
		{0, 0, 0}, {0, 1, 0},
		{1, 0, 0}, {1, 1, 0},
		{2, 0, 0},
	}, paths(got))

	same, err := kvtree.BringLevelOnTop(tr, 0)
	require.NoError(t, err)
	require.Same(t, tr, same)

	back, err := kvtree.SwapLevels(got, []int{1, 0, 2})
	require.NoError(t, err)
	require.True(t, kvtree.Equal(tr, back))

	_, err = kvtree.BringLevelOnTop(tr, 3)
	require.ErrorIs(t, err, kvtree.ErrLevelPermutation)
	_, err = kvtree.BringLevelOnTop(tr, -1)
	require.ErrorIs(t, err, kvtree.ErrLevelPermutation)
}

// TestSwapLevels_PathSets checks that every ordering of a ragged 3-level tree
// holds exactly the permuted key paths. The middle key alone decides the last
// one, so every level can be moved.
func TestSwapLevels_PathSets(t *testing.T) {
	t.Parallel()
	src := [][]int{
		{0, 0, 0}, {0, 1, 0}, {0, 1, 2},
		{1, 0, 0}, {1, 2, 1},
		{2, 1, 0}, {2, 1, 2},
	}
	tr := fromPaths(src)
	orders := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2},
		{1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, order := range orders {
		got, err := kvtree.SwapLevels(tr, order)
		require.NoError(t, err)

		want := make([][]int, len(src))
		for i, p := range src {
			want[i] = []int{p[order[0]], p[order[1]], p[order[2]]}
		}
		sort.Slice(want, func(i, j int) bool {
			for k := range want[i] {
				if want[i][k] != want[j][k] {
					return want[i][k] < want[j][k]
				}
			}
			return false
		})
		require.Equalf(t, want, paths(got), "order %v", order)
		require.Truef(t, kvtree.Equal(fromPaths(want), got), "order %v", order)
	}
}

func TestSwapLevels_Errors(t *testing.T) {
	t.Parallel()
	tr := vecX()
	for _, order := range [][]int{{0, 1}, {0, 0, 1}, {0, 1, 3}, {0, 1, 2, 3}} {
		_, err := kvtree.SwapLevels(tr, order)
		require.ErrorIsf(t, err, kvtree.ErrInvalidOrdering, "order %v", order)
	}
}

// TestBringLevelOnTop_NonUniform: key 0 of the middle level leads to site 0
// in the first block and to site 2 in the second, so the level cannot move.
func TestBringLevelOnTop_NonUniform(t *testing.T) {
	t.Parallel()
	tr := fromPaths([][]int{{0, 0, 0}, {0, 1, 0}, {0, 1, 1}, {1, 0, 2}})
	_, err := kvtree.BringLevelOnTop(tr, 1)
	require.ErrorIs(t, err, kvtree.ErrLevelPermutation)
	require.ErrorContains(t, err, "level 1: subtree at [1 0] differs from [0 0]")

	_, err = kvtree.SwapLevels(tr, []int{1, 0, 2})
	require.ErrorIs(t, err, kvtree.ErrLevelPermutation)

	// the last level is always movable
	got, err := kvtree.SwapLevels(tr, []int{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0, 0}, {0, 0, 1}, {1, 0, 1}, {2, 1, 0}}, paths(got))
}

// TestBringLevelOnTop_EmptiedBranch: a branch emptied by pruning takes no
// part in the uniformity check.
func TestBringLevelOnTop_EmptiedBranch(t *testing.T) {
	t.Parallel()
	site := func() []*kvtree.Node[int] { return []*kvtree.Node[int]{kvtree.Leaf[int](0)} }
	tr := kvtree.New(0, []*kvtree.Node[int]{
		kvtree.New(0, []*kvtree.Node[int]{kvtree.New(0, site()), kvtree.New(1, site())}),
		kvtree.New(1, []*kvtree.Node[int]{kvtree.New(0, site()), kvtree.Leaf[int](1)}),
	})
	got, err := kvtree.BringLevelOnTop(tr, 1)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}}, paths(got))
}
