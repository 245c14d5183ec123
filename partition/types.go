// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Value types shared by all partitioners.

package partition

import (
	"strconv"
	"strings"
)

// Parity is the checkerboard color of the first site of an axis segment.
// ParityNone marks axes that are never folded by an even-odd rule.
type Parity int8

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

// String returns "none", "even" or "odd".
func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "even"
	case ParityOdd:
		return "odd"
	default:
		return "none"
	}
}

// Shift returns the parity of a segment starting n sites after one of parity p.
func (p Parity) Shift(n int) Parity {
	if p == ParityNone || n%2 == 0 {
		return p
	}
	if p == ParityEven {
		return ParityOdd
	}
	return ParityEven
}

// Bit returns 0 for even, 1 for odd and 0 for none.
func (p Parity) Bit() int {
	if p == ParityOdd {
		return 1
	}
	return 0
}

// PartInfo describes one axis at a given tree level.
type PartInfo struct {
	Size   int
	Parity Parity
}

// String renders the pair as "size/parity".
func (pi PartInfo) String() string {
	return strconv.Itoa(pi.Size) + "/" + pi.Parity.String()
}

// less orders PartInfo by size, then parity (none < even < odd).
func (pi PartInfo) less(o PartInfo) bool {
	if pi.Size != o.Size {
		return pi.Size < o.Size
	}
	return pi.Parity < o.Parity
}

// PartInfoVec describes all axes at a given tree level.
type PartInfoVec []PartInfo

// Clone returns an independent copy.
func (v PartInfoVec) Clone() PartInfoVec {
	out := make(PartInfoVec, len(v))
	copy(out, v)
	return out
}

// With returns a copy of v where axis is replaced by pi.
func (v PartInfoVec) With(axis int, pi PartInfo) PartInfoVec {
	out := v.Clone()
	out[axis] = pi
	return out
}

// Sizes returns the per-axis extents.
func (v PartInfoVec) Sizes() Sizes {
	out := make(Sizes, len(v))
	for d, pi := range v {
		out[d] = pi.Size
	}
	return out
}

// Volume returns the product of the extents.
func (v PartInfoVec) Volume() int {
	n := 1
	for _, pi := range v {
		n *= pi.Size
	}
	return n
}

// Key returns a compact string identifying the vector, used for memoisation.
func (v PartInfoVec) Key() string {
	var b strings.Builder
	for d, pi := range v {
		if d > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(pi.Size))
		b.WriteByte("neo"[pi.Parity])
	}
	return b.String()
}

// Coordinates indexes physical space, one entry per grid axis.
type Coordinates []int

// Clone returns an independent copy.
func (c Coordinates) Clone() Coordinates {
	out := make(Coordinates, len(c))
	copy(out, c)
	return out
}

// Indices indexes tree levels, one entry per level, root first.
type Indices []int

// Sizes holds per-axis extents.
type Sizes []int

// Result1D is one way a coordinate reaches a child slot of a 1D partitioner.
// Remainder is the coordinate to hand to that child; Ghost marks a
// non-canonical (halo duplicate) result.
type Result1D struct {
	Index     int
	Remainder int
	Ghost     bool
}

// IndexResult is the N-dimensional form of Result1D.
type IndexResult struct {
	Index     int
	Remainder Coordinates
	Ghost     bool
}

// Role tags what a level means to the simulation, so predicates can select
// levels without inspecting names.
type Role uint8

const (
	RoleOther Role = iota
	RoleMPI
	RoleVector
	RoleHalo
	RoleEO
	RoleLocal
	RoleSite
)

var roleNames = [...]string{"other", "mpi", "vector", "halo", "eo", "local", "site"}

// String returns the lower-case role name.
func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "role(" + strconv.Itoa(int(r)) + ")"
}

// ParseRole converts a lower-case role name back into a Role.
func ParseRole(s string) (Role, bool) {
	for i, n := range roleNames {
		if n == s {
			return Role(i), true
		}
	}
	return RoleOther, false
}

// Level describes one level of a partition tree.
type Level struct {
	Name string
	Role Role
	Kind Kind
	// Axes lists the axes the level subdivides; empty for Site.
	Axes []int
}
