// SPDX-License-Identifier: MIT

package eo

import "errors"

var (
	// ErrLengthMismatch indicates that coordinates and sizes have different lengths.
	ErrLengthMismatch = errors.New("eo: coordinate and size lengths differ")

	// ErrOutOfRange indicates a coordinate component or index outside the box.
	ErrOutOfRange = errors.New("eo: value out of range")

	// ErrBadParity indicates a parity argument that is neither 0 nor 1.
	ErrBadParity = errors.New("eo: parity must be 0 or 1")
)
