// SPDX-License-Identifier: MIT
//
// File: plain.go
// Role: One-part-per-site enumeration of one axis.

package partition

import "fmt"

// Plain1D enumerates every site of an axis: child i is site i.
type Plain1D struct {
	zoned
}

// NewPlain1D builds the identity split of an axis.
func NewPlain1D(size int, parity Parity) (*Plain1D, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: size %d", ErrDegenerateSplit, size)
	}
	zones := make([]zone, size)
	for i := range zones {
		zones[i] = zone{start: i, size: 1}
	}
	return &Plain1D{zoned: newZoned(size, parity, zones)}, nil
}

// Name returns "Plain1D".
func (p *Plain1D) Name() string { return "Plain1D" }

// Comments describes the axis.
func (p *Plain1D) Comments() string { return fmt.Sprintf("size=%d parity=%s", p.size, p.parity) }

// CoordinateToIndices maps x to itself with a zero remainder.
func (p *Plain1D) CoordinateToIndices(x int) []Result1D {
	if x < 0 || x >= p.size {
		return nil
	}
	return []Result1D{{Index: x}}
}
