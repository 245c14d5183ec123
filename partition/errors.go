// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Sentinel errors of rule instantiation and resolution.

package partition

import "errors"

// Sentinel errors for rule instantiation. All of them are construction-time
// failures: the tree being built is invalid and must not be used.
var (
	// ErrInvalidRule indicates malformed rule parameters or an unknown rule kind.
	ErrInvalidRule = errors.New("partition: invalid rule")

	// ErrAxisOutOfRange indicates a rule axis outside the PartInfoVec.
	ErrAxisOutOfRange = errors.New("partition: axis out of range")

	// ErrDegenerateSplit indicates an axis too small for the requested split
	// count or halo width.
	ErrDegenerateSplit = errors.New("partition: degenerate split")

	// ErrParityMismatch indicates that checkerboard flags and axis parities disagree.
	ErrParityMismatch = errors.New("partition: parity does not match checkerboard flags")
)
