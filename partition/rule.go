// SPDX-License-Identifier: MIT
//
// File: rule.go
// Role: Rule values and their instantiation against a PartInfoVec.

package partition

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects the variant of a Rule.
type Kind uint8

const (
	KindPeriodic Kind = iota
	KindOpen
	KindHaloBorderBulk
	KindPlain
	KindEvenOdd
	KindEvenOddLocal
	KindSite
)

var kindNames = [...]string{"periodic", "open", "hbb", "plain", "evenodd", "evenodd-local", "site"}

// String returns the lower-case kind name used in configuration files.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind converts a kind name back into a Kind.
func ParseKind(s string) (Kind, bool) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// DefaultLocalSuffix names the local sub-index level of an EvenOdd rule when
// no explicit name is given.
const DefaultLocalSuffix = "-local"

// Rule is a named per-axis partitioning scheme. Only the fields relevant to
// Kind are meaningful; use the constructors below.
type Rule struct {
	Kind Kind
	Name string
	Role Role

	// Axis is the subdivided axis of Periodic, Open, HaloBorderBulk and Plain.
	Axis int
	// NParts is the block count of Periodic and Open.
	NParts int
	// Halo is the halo width of HaloBorderBulk.
	Halo int

	// Axes are the folded axes of EvenOdd and EvenOddLocal.
	Axes []int
	// LocalName names the sub-index level of EvenOdd.
	LocalName string
	// Parity selects the color of EvenOddLocal.
	Parity int
}

// Periodic splits axis into nparts blocks with wraparound neighbours.
func Periodic(name string, role Role, axis, nparts int) Rule {
	return Rule{Kind: KindPeriodic, Name: name, Role: role, Axis: axis, NParts: nparts}
}

// Open splits axis into nparts blocks without wraparound.
func Open(name string, role Role, axis, nparts int) Rule {
	return Rule{Kind: KindOpen, Name: name, Role: role, Axis: axis, NParts: nparts}
}

// HaloBorderBulk splits axis into halo, border and bulk zones.
func HaloBorderBulk(name string, axis, halo int) Rule {
	return Rule{Kind: KindHaloBorderBulk, Name: name, Role: RoleHalo, Axis: axis, Halo: halo}
}

// Plain enumerates every site of axis.
func Plain(name string, axis int) Rule {
	return Rule{Kind: KindPlain, Name: name, Role: RoleLocal, Axis: axis}
}

// EvenOdd folds axes into a parity level followed by a local sub-index level
// called localName (name+DefaultLocalSuffix when empty).
func EvenOdd(name, localName string, axes ...int) Rule {
	if localName == "" {
		localName = name + DefaultLocalSuffix
	}
	return Rule{Kind: KindEvenOdd, Name: name, Role: RoleEO, Axes: append([]int(nil), axes...), LocalName: localName}
}

// Site terminates a rule list.
func Site(name string) Rule {
	return Rule{Kind: KindSite, Name: name, Role: RoleSite}
}

// Key identifies the rule for memoisation.
func (r Rule) Key() string {
	var b strings.Builder
	b.WriteString(r.Kind.String())
	b.WriteByte(':')
	b.WriteString(r.Name)
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(int(r.Role)))
	switch r.Kind {
	case KindPeriodic, KindOpen:
		fmt.Fprintf(&b, ":%d:%d", r.Axis, r.NParts)
	case KindHaloBorderBulk:
		fmt.Fprintf(&b, ":%d:%d", r.Axis, r.Halo)
	case KindPlain:
		fmt.Fprintf(&b, ":%d", r.Axis)
	case KindEvenOdd:
		fmt.Fprintf(&b, ":%v:%s", r.Axes, r.LocalName)
	case KindEvenOddLocal:
		fmt.Fprintf(&b, ":%v:%d", r.Axes, r.Parity)
	}
	return b.String()
}

// Level describes the tree level the rule produces.
func (r Rule) Level() Level {
	lv := Level{Name: r.Name, Role: r.Role, Kind: r.Kind}
	switch r.Kind {
	case KindEvenOdd, KindEvenOddLocal:
		lv.Axes = append([]int(nil), r.Axes...)
	case KindSite:
	default:
		lv.Axes = []int{r.Axis}
	}
	return lv
}

// ChildRules returns the rule list below a child of the given kind. EvenOdd
// inserts its local sub-index level for the child's parity; every other rule
// hands rest through.
func (r Rule) ChildRules(kind int, rest []Rule) []Rule {
	if r.Kind != KindEvenOdd {
		return rest
	}
	local := Rule{Kind: KindEvenOddLocal, Name: r.LocalName, Role: RoleLocal, Axes: r.Axes, Parity: kind}
	return append([]Rule{local}, rest...)
}

// Instantiate builds the partitioner of r for the given PartInfoVec.
func (r Rule) Instantiate(piv PartInfoVec) (Partitioner, error) {
	p, err := r.instantiate(piv)
	if err != nil {
		return nil, fmt.Errorf("rule %q (%s): %w", r.Name, r.Kind, err)
	}
	return p, nil
}

func (r Rule) instantiate(piv PartInfoVec) (Partitioner, error) {
	switch r.Kind {
	case KindPeriodic:
		return Lift(r, piv, r.Axis, func(pi PartInfo) (Partitioner1D, error) {
			return NewQ1DPeriodic(pi.Size, pi.Parity, r.NParts)
		})
	case KindOpen:
		return Lift(r, piv, r.Axis, func(pi PartInfo) (Partitioner1D, error) {
			return NewQ1DOpen(pi.Size, pi.Parity, r.NParts)
		})
	case KindHaloBorderBulk:
		return Lift(r, piv, r.Axis, func(pi PartInfo) (Partitioner1D, error) {
			return NewHBB1D(pi.Size, pi.Parity, r.Halo)
		})
	case KindPlain:
		return Lift(r, piv, r.Axis, func(pi PartInfo) (Partitioner1D, error) {
			return NewPlain1D(pi.Size, pi.Parity)
		})
	case KindEvenOdd:
		return NewEvenOdd(r.Name, r.Axes, piv)
	case KindEvenOddLocal:
		return NewEvenOddLocal(r.Name, r.Axes, r.Parity, piv)
	case KindSite:
		return NewSite(r.Name, piv), nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidRule, r.Kind)
	}
}
