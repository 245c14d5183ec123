// Package partition defines the per-axis partitioning rules of a lattice
// decomposition and the partitioner instances they produce.
//
// What:
//
//   - Rule is a closed tagged variant: Periodic-Q, Open-Q, HaloBorderBulk,
//     Plain, EvenOdd (plus its implicit local sub-index level) and Site.
//   - A Rule instantiated against a PartInfoVec (per-axis size and parity)
//     yields a Partitioner: coordinate↔index conversion, child sizes and the
//     grouping of child slots into structurally identical kinds.
//   - Single-axis partitioners (Q1D, HBB1D, Plain1D) are written once in one
//     dimension and lifted onto an axis of an N-vector by Lift.
//
// Why:
//
//   - Every level of a partition tree is one rule; the tree builder only needs
//     the Partitioner contract, never the concrete rule.
//   - Child kinds let the builder share identical subtrees.
//
// Errors:
//
//   - ErrInvalidRule: malformed rule parameters (nparts < 1, halo < 1, ...).
//   - ErrAxisOutOfRange: a rule names an axis the PartInfoVec does not have.
//   - ErrDegenerateSplit: the axis is too small for the requested split.
//   - ErrParityMismatch: checkerboard flags disagree with axis parities.
package partition
