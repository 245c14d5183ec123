// SPDX-License-Identifier: MIT

package eo

import "fmt"

// Mod2 returns x modulo 2 in {0,1}, also for negative x.
func Mod2(x int) int {
	return ((x % 2) + 2) % 2
}

// Parity returns the parity (0 even, 1 odd) of the coordinate sum.
func Parity(coord []int) int {
	s := 0
	for _, x := range coord {
		s += x
	}
	return Mod2(s)
}

// CumulativeSizes returns the suffix products of sizes: out[d] is the number
// of sites in the sub-box spanned by axes d..D-1, and out[D] == 1.
// The stride of axis d in lexicographic order is therefore out[d+1].
// Complexity: O(D).
func CumulativeSizes(sizes []int) []int {
	out := make([]int, len(sizes)+1)
	out[len(sizes)] = 1
	for d := len(sizes) - 1; d >= 0; d-- {
		out[d] = out[d+1] * sizes[d]
	}
	return out
}

// LexCoordToIdx converts coord to its row-major index inside the box.
// Complexity: O(D).
func LexCoordToIdx(coord, sizes []int) (int, error) {
	if err := checkCoord(coord, sizes); err != nil {
		return 0, err
	}
	idx := 0
	for d, x := range coord {
		idx = idx*sizes[d] + x
	}
	return idx, nil
}

// LexIdxToCoord is the inverse of LexCoordToIdx.
// Complexity: O(D).
func LexIdxToCoord(idx int, sizes []int) ([]int, error) {
	cum := CumulativeSizes(sizes)
	if idx < 0 || idx >= cum[0] {
		return nil, fmt.Errorf("%w: lex index %d, box volume %d", ErrOutOfRange, idx, cum[0])
	}
	coord := make([]int, len(sizes))
	for d := range sizes {
		coord[d] = idx / cum[d+1]
		idx %= cum[d+1]
	}
	return coord, nil
}

// ParityCount returns the number of sites in the box whose coordinate sum has
// the given parity. If any extent is even both colors have half the volume;
// if all extents are odd the even color holds one extra site.
// Complexity: O(D).
func ParityCount(sizes []int, parity int) (int, error) {
	if parity != 0 && parity != 1 {
		return 0, ErrBadParity
	}
	return suffixCounts(sizes)[0][parity], nil
}

// LexCoordToEOIdx returns the position of coord among the sites of its own
// parity, enumerated in lexicographic order.
//
// For each axis d the sites preceding coord are those sharing coord's first d
// components with a smaller d-th component; their same-parity share is read
// from the parity counts of the trailing sub-box.
// Complexity: O(D).
func LexCoordToEOIdx(coord, sizes []int) (int, error) {
	if err := checkCoord(coord, sizes); err != nil {
		return 0, err
	}
	suffix := suffixCounts(sizes)
	t := Parity(coord)
	s, idx := 0, 0
	for d, x := range coord {
		rest := suffix[d+1]
		nEven, nOdd := (x+1)/2, x/2
		idx += nEven*rest[Mod2(t-s)] + nOdd*rest[Mod2(t-s-1)]
		s += x
	}
	return idx, nil
}

// LexEOIdxToCoord is the inverse of LexCoordToEOIdx for sites of the given
// parity.
// Complexity: O(D).
func LexEOIdxToCoord(idx, parity int, sizes []int) ([]int, error) {
	if parity != 0 && parity != 1 {
		return nil, ErrBadParity
	}
	suffix := suffixCounts(sizes)
	if idx < 0 || idx >= suffix[0][parity] {
		return nil, fmt.Errorf("%w: eo index %d, %d sites of parity %d",
			ErrOutOfRange, idx, suffix[0][parity], parity)
	}
	coord := make([]int, len(sizes))
	s := 0
	for d := range sizes {
		rest := suffix[d+1]
		a := rest[Mod2(parity-s)]   // same-parity sites behind an even component
		b := rest[Mod2(parity-s-1)] // ... behind an odd component
		v := 0
		if pair := a + b; pair > 0 {
			np := idx / pair
			v = 2 * np
			idx -= np * pair
		}
		if idx >= a {
			idx -= a
			v++
		}
		coord[d] = v
		s += v
	}
	return coord, nil
}

// suffixCounts returns {#even, #odd} sites of the sub-box sizes[d:] for d in 0..D.
func suffixCounts(sizes []int) [][2]int {
	out := make([][2]int, len(sizes)+1)
	out[len(sizes)] = [2]int{1, 0}
	for d := len(sizes) - 1; d >= 0; d-- {
		ne, no := (sizes[d]+1)/2, sizes[d]/2
		out[d][0] = ne*out[d+1][0] + no*out[d+1][1]
		out[d][1] = ne*out[d+1][1] + no*out[d+1][0]
	}
	return out
}

func checkCoord(coord, sizes []int) error {
	if len(coord) != len(sizes) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(coord), len(sizes))
	}
	for d, x := range coord {
		if x < 0 || x >= sizes[d] {
			return fmt.Errorf("%w: axis %d coordinate %d not in [0,%d)", ErrOutOfRange, d, x, sizes[d])
		}
	}
	return nil
}
