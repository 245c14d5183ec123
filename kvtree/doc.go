// SPDX-License-Identifier: MIT

// Package kvtree holds the derived trees of a partition tree: skeletons
// (values are child counts), size trees (values are site counts) and offset
// trees (values are absolute memory offsets).
//
// A tree is a *Node[V]. The root carries no meaningful key; a node at depth
// k+1 carries the index chosen at level k. Leaves of a complete tree sit at
// depth D, the number of levels. Nodes are immutable once built and
// operations share unchanged subtrees between input and output, so a
// skeleton of a tree with millions of sites stays small when its branches
// repeat.
//
// Children are kept sorted by Key.
package kvtree
