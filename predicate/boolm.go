// SPDX-License-Identifier: MIT

package predicate

// BoolM is a three-valued boolean. The order False < Maybe < True makes And
// the minimum and Or the maximum of its operands (Kleene logic).
type BoolM int8

const (
	False BoolM = iota
	Maybe
	True
)

// FromBool lifts a plain bool.
func FromBool(b bool) BoolM {
	if b {
		return True
	}
	return False
}

// And returns the Kleene conjunction.
func (b BoolM) And(o BoolM) BoolM { return min(b, o) }

// Or returns the Kleene disjunction.
func (b BoolM) Or(o BoolM) BoolM { return max(b, o) }

// Not swaps True and False and keeps Maybe.
func (b BoolM) Not() BoolM { return True - b }

// Valid reports whether b is one of the three defined values.
func (b BoolM) Valid() bool { return b >= False && b <= True }

// String returns the lower-case name of b.
func (b BoolM) String() string {
	switch b {
	case False:
		return "false"
	case Maybe:
		return "maybe"
	case True:
		return "true"
	default:
		return "invalid"
	}
}

// Func is a predicate bound to a level list. The prefix slice is only valid
// for the duration of the call.
type Func func(prefix []int) BoolM

// Always selects everything.
func Always([]int) BoolM { return True }
