// SPDX-License-Identifier: MIT

// Package ptree builds partition trees of a lattice and resolves coordinates
// against them.
//
// A partition tree is produced by applying an ordered list of rules to the
// lattice extents. Each node holds the partitioner of one rule for one
// PartInfoVec; a node's children are indexed by child kind, not by child
// index, so all blocks of the same shape share one subtree. Nodes live in
// the arena of a Builder and are memoised on (PartInfoVec, remaining rules):
// building the same pair twice returns the same NodeID, and the whole tree
// of a 48x48x42x42 lattice fits in a few dozen nodes.
//
// Resolution walks the tree from the root:
//
//	tree, err := ptree.NewBuilder().Build(piv, rules)
//	idx, err := tree.Indices(partition.Coordinates{x, y, z, t})
//	c, err := tree.Coordinates(idx) // == {x, y, z, t}
//
// Indices holds one entry per level, root first, including the final Site
// level (always 0). IndicesWithGhosts additionally returns every halo copy of
// a site, tagged with the number of ghost hops on its path.
//
// A Builder is safe for concurrent use; trees are read-only views of it.
package ptree
