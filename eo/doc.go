// Package eo provides the even-odd (checkerboard) index arithmetic used when
// several lattice axes are folded into one parity digit plus a linear
// sub-index.
//
// What:
//
//   - Row-major (lexicographic) conversions between a coordinate and its
//     linear index inside a box: axis 0 is the slowest, the last axis the
//     fastest.
//   - Parity counts: how many sites of a box have an even (or odd) coordinate
//     sum.
//   - EO conversions: the position of a site among the sites of the same
//     parity, enumerated in lexicographic order, and the inverse.
//
// Why:
//
//   - Lattice codes store even and odd sites separately; the EO index of a site
//     is its address inside the half-lattice of its color.
//   - When every folded extent is odd the two colors have different sizes
//     (the "odd-center" split), so the index is not simply lex/2.
//
// Complexity:
//
//   - LexCoordToEOIdx, LexEOIdxToCoord: O(D) time after an O(D) suffix table,
//     where D is the number of folded axes.
//   - ParityCount, CumulativeSizes: O(D).
//
// Errors:
//
//   - ErrLengthMismatch: coordinate and size vectors differ in length.
//   - ErrOutOfRange: a coordinate component or a linear index lies outside
//     the box.
//   - ErrBadParity: a parity argument other than 0 or 1.
package eo
