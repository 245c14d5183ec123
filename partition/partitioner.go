// SPDX-License-Identifier: MIT
//
// File: partitioner.go
// Role: Contracts of one-axis and N-dimensional partitioners.

package partition

// Partitioner1D is the contract of a single-axis partitioning class.
// Implementations are immutable once constructed.
type Partitioner1D interface {
	// Name identifies the partitioning class, e.g. "Q1DPeriodic".
	Name() string
	// Comments carries human-readable parameters for dumps.
	Comments() string
	// MaxIndex is the number of child slots.
	MaxIndex() int
	// CoordinateToIndices lists every child slot through which x is reachable.
	// At most one result has Ghost == false.
	CoordinateToIndices(x int) []Result1D
	// IndexToCoordinate converts a child slot and an offset inside that child
	// into a coordinate of this partitioner's frame.
	IndexToCoordinate(index, offset int) int
	// IndexToSize returns the extent of child slot index.
	IndexToSize(index int) int
	// ChildKind groups child slots with the same PartInfo.
	ChildKind(index int) int
	// SubPartInfoKinds is indexed by child kind.
	SubPartInfoKinds() []PartInfo
}

// Partitioner is the N-dimensional partitioning-class instance held by a
// partition tree node. Instances are built once per (PartInfoVec, Rule) pair
// and shared read-only by every path reaching an identical child.
type Partitioner interface {
	Name() string
	Comments() string
	Role() Role
	Kind() Kind
	MaxIndex() int
	CoordinateToIndices(c Coordinates) []IndexResult
	IndexToCoordinate(index int, offset Coordinates) Coordinates
	IndexToSizes(index int) Sizes
	ChildKind(index int) int
	SubPartInfoKinds() []PartInfoVec
}
