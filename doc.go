// SPDX-License-Identifier: MIT

// Package lvlayout partitions regular lattices into trees of nested blocks
// and derives memory layouts from them.
//
// A lattice is a box of sites with one extent per axis. A list of rules
// splits it level by level: MPI ranks, vector lanes, halo/border/bulk zones,
// even-odd checkerboards, and finally single sites. Identical sub-blocks are
// built once and shared, so a tree over millions of sites holds a few
// thousand nodes.
//
// Packages:
//
//	eo/        even-odd index arithmetic over folded axes
//	partition/ per-axis partitioners, rules and the lifter to N dimensions
//	ptree/     the memoised tree builder, coordinate resolution, ghosts
//	predicate/ three-valued selection predicates (MpiRank, HalosUpTo, ...)
//	kvtree/    key/value trees: pruning, level permutation, size and
//	           offset trees, iteration
//	layout/    the facade: rule sets from YAML, skeletons, memory layouts
//
// The cmd/lvlayout command inspects a YAML rule set from the shell.
package lvlayout
