// SPDX-License-Identifier: MIT

package predicate

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlayout/partition"
)

// Op selects the operation of an Expr node.
type Op uint8

const (
	OpConst Op = iota
	OpMpiRank
	OpHalosUpTo
	OpLevelIs
	OpAnd
	OpOr
	OpNot
)

// Halo zone indices of a halo-border-bulk level.
const (
	haloMinus = partition.HaloMinus
	haloPlus  = partition.HaloPlus
)

// Expr is a predicate expression tree. Only the fields relevant to Op are
// meaningful; use the constructors.
type Expr struct {
	Op    Op
	Value BoolM   // OpConst
	Ranks []int   // OpMpiRank
	N     int     // OpHalosUpTo
	Level string  // OpLevelIs
	Index int     // OpLevelIs
	Args  []*Expr // OpAnd, OpOr, OpNot
}

// Const always evaluates to v.
func Const(v BoolM) *Expr { return &Expr{Op: OpConst, Value: v} }

// MpiRank selects the sites owned by one rank: ranks[j] is the index wanted
// at the j-th level with RoleMPI, in level order.
func MpiRank(ranks ...int) *Expr {
	return &Expr{Op: OpMpiRank, Ranks: append([]int(nil), ranks...)}
}

// HalosUpTo selects sites lying in at most n halo zones across all RoleHalo
// levels. HalosUpTo(0) excludes every halo copy.
func HalosUpTo(n int) *Expr { return &Expr{Op: OpHalosUpTo, N: n} }

// LevelIs selects the sites whose index at the named level equals index.
func LevelIs(name string, index int) *Expr {
	return &Expr{Op: OpLevelIs, Level: name, Index: index}
}

// And is the conjunction of args; And() is True.
func And(args ...*Expr) *Expr { return &Expr{Op: OpAnd, Args: args} }

// Or is the disjunction of args; Or() is False.
func Or(args ...*Expr) *Expr { return &Expr{Op: OpOr, Args: args} }

// Not negates e.
func Not(e *Expr) *Expr { return &Expr{Op: OpNot, Args: []*Expr{e}} }

// Eval evaluates e on an index prefix of a tree with the given levels.
// A nil expression is True.
func (e *Expr) Eval(levels []partition.Level, prefix []int) BoolM {
	if e == nil {
		return True
	}
	switch e.Op {
	case OpConst:
		return e.Value
	case OpMpiRank:
		return evalMpiRank(e.Ranks, levels, prefix)
	case OpHalosUpTo:
		return evalHalos(e.N, levels, prefix)
	case OpLevelIs:
		for i, lv := range levels {
			if lv.Name != e.Level {
				continue
			}
			if i >= len(prefix) {
				return Maybe
			}
			return FromBool(prefix[i] == e.Index)
		}
		return False
	case OpAnd:
		acc := True
		for _, a := range e.Args {
			if acc = acc.And(a.Eval(levels, prefix)); acc == False {
				return False
			}
		}
		return acc
	case OpOr:
		acc := False
		for _, a := range e.Args {
			if acc = acc.Or(a.Eval(levels, prefix)); acc == True {
				return True
			}
		}
		return acc
	case OpNot:
		if len(e.Args) != 1 {
			return False
		}
		return e.Args[0].Eval(levels, prefix).Not()
	default:
		return False
	}
}

func evalMpiRank(ranks []int, levels []partition.Level, prefix []int) BoolM {
	j := 0
	pending := false
	for i, lv := range levels {
		if lv.Role != partition.RoleMPI {
			continue
		}
		if j >= len(ranks) {
			break
		}
		if i >= len(prefix) {
			pending = true
		} else if prefix[i] != ranks[j] {
			return False
		}
		j++
	}
	if pending {
		return Maybe
	}
	return True
}

func evalHalos(n int, levels []partition.Level, prefix []int) BoolM {
	count, pending := 0, 0
	for i, lv := range levels {
		if lv.Role != partition.RoleHalo {
			continue
		}
		if i >= len(prefix) {
			pending++
			continue
		}
		if prefix[i] == haloMinus || prefix[i] == haloPlus {
			count++
		}
	}
	switch {
	case count > n:
		return False
	case count+pending <= n:
		return True
	default:
		return Maybe
	}
}

// Bind returns e as a Func over trees with the given levels.
func (e *Expr) Bind(levels []partition.Level) Func {
	if e == nil {
		return Always
	}
	lv := append([]partition.Level(nil), levels...)
	return func(prefix []int) BoolM { return e.Eval(lv, prefix) }
}

// Validate checks e against a level list.
func (e *Expr) Validate(levels []partition.Level) error {
	if e == nil {
		return nil
	}
	switch e.Op {
	case OpConst:
		if !e.Value.Valid() {
			return fmt.Errorf("%w: constant %d", ErrInvalidExpr, e.Value)
		}
	case OpMpiRank:
		mpi := 0
		for _, lv := range levels {
			if lv.Role == partition.RoleMPI {
				mpi++
			}
		}
		if mpi != len(e.Ranks) {
			return fmt.Errorf("%w: %d ranks for %d MPI levels", ErrRankArity, len(e.Ranks), mpi)
		}
	case OpHalosUpTo:
		if e.N < 0 {
			return fmt.Errorf("%w: negative halo count %d", ErrInvalidExpr, e.N)
		}
	case OpLevelIs:
		found := false
		for _, lv := range levels {
			if lv.Name == e.Level {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q", ErrUnknownLevel, e.Level)
		}
	case OpAnd, OpOr:
		for _, a := range e.Args {
			if err := a.Validate(levels); err != nil {
				return err
			}
		}
	case OpNot:
		if len(e.Args) != 1 {
			return fmt.Errorf("%w: not takes one operand, got %d", ErrInvalidExpr, len(e.Args))
		}
		return e.Args[0].Validate(levels)
	default:
		return fmt.Errorf("%w: op %d", ErrInvalidExpr, e.Op)
	}
	return nil
}

// String renders e in function-call form, e.g. "and(mpirank(2,3),halos<=0)".
func (e *Expr) String() string {
	if e == nil {
		return "true"
	}
	switch e.Op {
	case OpConst:
		return e.Value.String()
	case OpMpiRank:
		return "mpirank(" + joinInts(e.Ranks) + ")"
	case OpHalosUpTo:
		return fmt.Sprintf("halos<=%d", e.N)
	case OpLevelIs:
		return fmt.Sprintf("%s==%d", e.Level, e.Index)
	case OpAnd, OpOr, OpNot:
		name := map[Op]string{OpAnd: "and", OpOr: "or", OpNot: "not"}[e.Op]
		parts := make([]string, len(e.Args))
		for i, a := range e.Args {
			parts[i] = a.String()
		}
		return name + "(" + strings.Join(parts, ",") + ")"
	default:
		return fmt.Sprintf("op(%d)", e.Op)
	}
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ",")
}
