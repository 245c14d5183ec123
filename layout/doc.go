// SPDX-License-Identifier: MIT

// Package layout is the entry point of lvlayout: it builds the partition
// tree of a lattice from a rule list or a YAML rule set, resolves
// coordinates, and derives memory layouts from it.
//
// The derivation pipeline is
//
//	Layout --Skeleton(pred)--> Skeleton --Prune/Permute--> Skeleton
//	       --SizeTree()--> SizeTree --OffsetTree(base)--> OffsetTree
//
// Every stage carries its level names, so index paths can be translated
// between the natural order of the partition tree and the order chosen for
// memory. MemoryLayout bundles the whole pipeline behind a coordinate to
// offset map.
//
// Example:
//
//	l, err := layout.New([]int{32}, nil, []partition.Rule{
//		partition.Periodic("mpi", partition.RoleMPI, 0, 2),
//		partition.Plain("x", 0),
//		partition.Site("site"),
//	})
//	ml, err := l.MemoryLayout(predicate.MpiRank(1), nil)
//	off, err := ml.Offset(partition.Coordinates{20}) // 4
package layout
