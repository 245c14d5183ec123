// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of derived-tree operations.

package kvtree

import "errors"

var (
	// ErrKeyNotFound indicates an index path that leaves the tree.
	ErrKeyNotFound = errors.New("kvtree: key not found")

	// ErrOffsetOutOfRange indicates an offset outside the range covered by an offset tree.
	ErrOffsetOutOfRange = errors.New("kvtree: offset out of range")

	// ErrEmptyTree indicates a tree without any complete path.
	ErrEmptyTree = errors.New("kvtree: empty tree")

	// ErrLevelPermutation indicates a level move outside the tree depth, or
	// one across nodes whose equal keys root different subtrees.
	ErrLevelPermutation = errors.New("kvtree: invalid level permutation")

	// ErrInvalidOrdering indicates a level ordering that is not a permutation of the tree levels.
	ErrInvalidOrdering = errors.New("kvtree: invalid level ordering")

	// ErrLevelNotFound indicates a level name missing from a LevelMatcher.
	ErrLevelNotFound = errors.New("kvtree: level not found")
)
