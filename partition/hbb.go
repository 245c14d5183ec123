// SPDX-License-Identifier: MIT
//
// File: hbb.go
// Role: Halo-border-bulk split of one block.

package partition

import "fmt"

// Zone indices of a halo-border-bulk split.
const (
	HaloMinus = iota
	BorderMinus
	Bulk
	BorderPlus
	HaloPlus
)

// HBB1D splits a block of N sites into five zones: the halo below the block,
// the lower border, the bulk, the upper border and the halo above the block.
// Halo zones lie outside [0,N); they hold copies of the neighbours' borders.
type HBB1D struct {
	zoned
	halo int
}

// NewHBB1D builds a halo-border-bulk split of width halo.
func NewHBB1D(size int, parity Parity, halo int) (*HBB1D, error) {
	if halo < 1 {
		return nil, fmt.Errorf("%w: halo=%d", ErrInvalidRule, halo)
	}
	if size <= 2*halo {
		return nil, fmt.Errorf("%w: size %d <= 2*halo %d", ErrDegenerateSplit, size, 2*halo)
	}
	zones := []zone{
		{start: -halo, size: halo},
		{start: 0, size: halo},
		{start: halo, size: size - 2*halo},
		{start: size - halo, size: halo},
		{start: size, size: halo},
	}
	return &HBB1D{zoned: newZoned(size, parity, zones), halo: halo}, nil
}

// Name returns "HBB1D".
func (h *HBB1D) Name() string { return "HBB1D" }

// Comments describes the split.
func (h *HBB1D) Comments() string {
	return fmt.Sprintf("size=%d parity=%s halo=%d", h.size, h.parity, h.halo)
}

// CoordinateToIndices returns the single zone containing x, or nothing when x
// is farther than one halo width from the block.
func (h *HBB1D) CoordinateToIndices(x int) []Result1D {
	i := h.locate(x)
	if i < 0 {
		return nil
	}
	return []Result1D{{Index: i, Remainder: x - h.zones[i].start}}
}
