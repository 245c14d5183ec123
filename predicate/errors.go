// SPDX-License-Identifier: MIT

package predicate

import "errors"

var (
	// ErrUnknownLevel indicates a LevelIs expression naming a level the tree does not have.
	ErrUnknownLevel = errors.New("predicate: unknown level")

	// ErrRankArity indicates an MpiRank expression whose rank count differs
	// from the number of MPI levels.
	ErrRankArity = errors.New("predicate: rank count does not match MPI levels")

	// ErrInvalidExpr indicates a malformed expression (bad operand count or value).
	ErrInvalidExpr = errors.New("predicate: invalid expression")
)
