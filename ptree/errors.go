// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of tree building and resolution.

package ptree

import "errors"

var (
	// ErrMissingSite indicates a rule list that does not end with exactly one Site rule.
	ErrMissingSite = errors.New("ptree: rule list must end with exactly one site rule")

	// ErrEmptyLattice indicates a lattice without axes or with a non-positive extent.
	ErrEmptyLattice = errors.New("ptree: empty lattice")

	// ErrLengthMismatch indicates coordinates or indices of the wrong length.
	ErrLengthMismatch = errors.New("ptree: length mismatch")

	// ErrIndexOutOfRange indicates an index outside the child range of its level.
	ErrIndexOutOfRange = errors.New("ptree: index out of range")

	// ErrCoordinateOutOfRange indicates a coordinate that no partitioner owns.
	ErrCoordinateOutOfRange = errors.New("ptree: coordinate out of range")
)
