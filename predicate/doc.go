// SPDX-License-Identifier: MIT

// Package predicate evaluates three-valued selections over partition-tree
// index prefixes.
//
// A prefix is the list of indices chosen at the first len(prefix) levels of a
// tree. A predicate answers True when every completion of the prefix is
// selected, False when none is, and Maybe when the answer depends on levels
// not yet chosen. Tree pruning stops evaluating a branch as soon as the answer
// is True or False, which keeps pruning of large trees cheap.
//
// Expressions are plain data (Expr) interpreted by a single evaluator:
//
//	sel := predicate.And(
//		predicate.MpiRank(2, 3, 1, 1),
//		predicate.HalosUpTo(0),
//	)
//	if err := sel.Validate(levels); err != nil { ... }
//	fn := sel.Bind(levels)
package predicate
