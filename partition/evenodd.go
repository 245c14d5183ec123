// SPDX-License-Identifier: MIT
//
// File: evenodd.go
// Role: Checkerboard fold of several axes into a parity level and a local level.

package partition

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlayout/eo"
)

// checkerboard holds the folded axes of an even-odd rule and the parity of
// the origin of the folded sub-lattice.
type checkerboard struct {
	axes   []int
	sizes  []int
	origin int
}

// newCheckerboard validates that exactly the flagged axes carry a parity.
func newCheckerboard(axes []int, piv PartInfoVec) (checkerboard, error) {
	if len(axes) == 0 {
		return checkerboard{}, fmt.Errorf("%w: even-odd rule without axes", ErrInvalidRule)
	}
	flagged := make([]bool, len(piv))
	for _, d := range axes {
		if d < 0 || d >= len(piv) {
			return checkerboard{}, fmt.Errorf("%w: axis %d of %d", ErrAxisOutOfRange, d, len(piv))
		}
		if flagged[d] {
			return checkerboard{}, fmt.Errorf("%w: axis %d folded twice", ErrInvalidRule, d)
		}
		flagged[d] = true
	}
	for d, pi := range piv {
		if flagged[d] != (pi.Parity != ParityNone) {
			return checkerboard{}, fmt.Errorf("%w: axis %d flagged=%t parity=%s",
				ErrParityMismatch, d, flagged[d], pi.Parity)
		}
	}
	sorted := append([]int(nil), axes...)
	sort.Ints(sorted)
	cb := checkerboard{axes: sorted, sizes: make([]int, len(sorted))}
	for j, d := range sorted {
		cb.sizes[j] = piv[d].Size
		cb.origin += piv[d].Parity.Bit()
	}
	cb.origin = eo.Mod2(cb.origin)
	return cb, nil
}

// fold extracts the folded coordinates; ok is false when any lies outside.
func (cb checkerboard) fold(c Coordinates) ([]int, bool) {
	x := make([]int, len(cb.axes))
	for j, d := range cb.axes {
		if c[d] < 0 || c[d] >= cb.sizes[j] {
			return nil, false
		}
		x[j] = c[d]
	}
	return x, true
}

// EvenOddParity is the parity level of a checkerboard fold: child 0 holds the
// even sites, child 1 the odd ones, where the parity of a site is the parity
// of the sum of its global folded coordinates.
type EvenOddParity struct {
	checkerboard
	name string
	piv  PartInfoVec
}

// NewEvenOdd builds the parity level folding axes of piv.
func NewEvenOdd(name string, axes []int, piv PartInfoVec) (*EvenOddParity, error) {
	cb, err := newCheckerboard(axes, piv)
	if err != nil {
		return nil, err
	}
	return &EvenOddParity{checkerboard: cb, name: name, piv: piv.Clone()}, nil
}

// Name returns the level name.
func (e *EvenOddParity) Name() string { return e.name }

// Role returns RoleEO.
func (e *EvenOddParity) Role() Role { return RoleEO }

// Kind returns KindEvenOdd.
func (e *EvenOddParity) Kind() Kind { return KindEvenOdd }

// MaxIndex returns 2: even and odd.
func (e *EvenOddParity) MaxIndex() int { return 2 }

// Comments describes the fold.
func (e *EvenOddParity) Comments() string {
	return fmt.Sprintf("EvenOdd axes=%v sizes=%v origin=%d", e.axes, e.sizes, e.origin)
}

// CoordinateToIndices returns the color of c, or nothing when a folded
// coordinate lies outside the box.
func (e *EvenOddParity) CoordinateToIndices(c Coordinates) []IndexResult {
	x, ok := e.fold(c)
	if !ok {
		return nil
	}
	return []IndexResult{{Index: eo.Mod2(e.origin + eo.Parity(x)), Remainder: c.Clone()}}
}

// IndexToCoordinate returns offset unchanged: the parity level does not move
// the origin.
func (e *EvenOddParity) IndexToCoordinate(_ int, offset Coordinates) Coordinates {
	return offset.Clone()
}

// IndexToSizes returns the extents of the whole box for both colors.
func (e *EvenOddParity) IndexToSizes(int) Sizes { return e.piv.Sizes() }

// ChildKind returns index: the two colors have different local levels.
func (e *EvenOddParity) ChildKind(index int) int { return index }

// SubPartInfoKinds returns the unchanged PartInfoVec once per color.
func (e *EvenOddParity) SubPartInfoKinds() []PartInfoVec {
	return []PartInfoVec{e.piv, e.piv}
}

// EvenOddLocal is the level below an EvenOdd parity: it enumerates the sites
// of one color of the folded box in lexicographic order. Its single child kind
// has every folded axis collapsed to one site without parity.
type EvenOddLocal struct {
	checkerboard
	name   string
	parity int
	local  int
	count  int
	piv    PartInfoVec
	child  PartInfoVec
}

// NewEvenOddLocal builds the local sub-index level for sites of the given
// global parity (0 even, 1 odd).
func NewEvenOddLocal(name string, axes []int, parity int, piv PartInfoVec) (*EvenOddLocal, error) {
	if parity != 0 && parity != 1 {
		return nil, fmt.Errorf("%w: parity %d", ErrInvalidRule, parity)
	}
	cb, err := newCheckerboard(axes, piv)
	if err != nil {
		return nil, err
	}
	local := eo.Mod2(parity - cb.origin)
	count, err := eo.ParityCount(cb.sizes, local)
	if err != nil {
		return nil, err
	}
	child := piv.Clone()
	for _, d := range cb.axes {
		child[d] = PartInfo{Size: 1, Parity: ParityNone}
	}
	return &EvenOddLocal{
		checkerboard: cb, name: name, parity: parity, local: local,
		count: count, piv: piv.Clone(), child: child,
	}, nil
}

// Name returns the level name.
func (e *EvenOddLocal) Name() string { return e.name }

// Role returns RoleLocal.
func (e *EvenOddLocal) Role() Role { return RoleLocal }

// Kind returns KindEvenOddLocal.
func (e *EvenOddLocal) Kind() Kind { return KindEvenOddLocal }

// MaxIndex returns the number of sites of this color in the folded box.
func (e *EvenOddLocal) MaxIndex() int { return e.count }

// Comments describes the color and its site count.
func (e *EvenOddLocal) Comments() string {
	return fmt.Sprintf("EvenOddLocal axes=%v sizes=%v parity=%d sites=%d", e.axes, e.sizes, e.parity, e.count)
}

// CoordinateToIndices returns the rank of c among the sites of this color,
// with the folded axes zeroed in the remainder. Sites of the other color and
// coordinates outside the box give no result.
func (e *EvenOddLocal) CoordinateToIndices(c Coordinates) []IndexResult {
	x, ok := e.fold(c)
	if !ok || eo.Parity(x) != e.local {
		return nil
	}
	idx, err := eo.LexCoordToEOIdx(x, e.sizes)
	if err != nil {
		return nil
	}
	rem := c.Clone()
	for _, d := range e.axes {
		rem[d] = 0
	}
	return []IndexResult{{Index: idx, Remainder: rem}}
}

// IndexToCoordinate places site index of this color back on the folded
// axes. index must lie in [0, MaxIndex()); it panics otherwise.
func (e *EvenOddLocal) IndexToCoordinate(index int, offset Coordinates) Coordinates {
	x, err := eo.LexEOIdxToCoord(index, e.local, e.sizes)
	if err != nil {
		panic(fmt.Sprintf("partition: %s: %v", e.name, err))
	}
	out := offset.Clone()
	for j, d := range e.axes {
		out[d] = x[j] + offset[d]
	}
	return out
}

// IndexToSizes returns the extents of one site of the fold.
func (e *EvenOddLocal) IndexToSizes(int) Sizes { return e.child.Sizes() }

// ChildKind returns 0: every site of the fold has the same shape.
func (e *EvenOddLocal) ChildKind(int) int { return 0 }

// SubPartInfoKinds returns the single child kind, folded axes collapsed.
func (e *EvenOddLocal) SubPartInfoKinds() []PartInfoVec { return []PartInfoVec{e.child} }
