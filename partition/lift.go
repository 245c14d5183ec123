// SPDX-License-Identifier: MIT
//
// File: lift.go
// Role: Lifts a one-axis partitioner to N-dimensional coordinates.

package partition

import "fmt"

// Lifted applies a Partitioner1D to one axis of an N-dimensional PartInfoVec,
// leaving the other axes untouched. It is the only place where an N-vector is
// narrowed to one coordinate and widened back.
type Lifted struct {
	rule  Rule
	axis  int
	piv   PartInfoVec
	inner Partitioner1D
	kinds []PartInfoVec
}

// Lift builds the 1D partitioner for axis from piv[axis] and wraps it.
func Lift(rule Rule, piv PartInfoVec, axis int, build func(PartInfo) (Partitioner1D, error)) (*Lifted, error) {
	if axis < 0 || axis >= len(piv) {
		return nil, fmt.Errorf("%w: axis %d of %d", ErrAxisOutOfRange, axis, len(piv))
	}
	inner, err := build(piv[axis])
	if err != nil {
		return nil, err
	}
	sub := inner.SubPartInfoKinds()
	kinds := make([]PartInfoVec, len(sub))
	for k, pi := range sub {
		kinds[k] = piv.With(axis, pi)
	}
	return &Lifted{rule: rule, axis: axis, piv: piv.Clone(), inner: inner, kinds: kinds}, nil
}

// Axis returns the lifted axis.
func (l *Lifted) Axis() int { return l.axis }

// Inner returns the wrapped 1D partitioner.
func (l *Lifted) Inner() Partitioner1D { return l.inner }

// Name returns the rule name.
func (l *Lifted) Name() string { return l.rule.Name }

// Role returns the rule role.
func (l *Lifted) Role() Role { return l.rule.Role }

// Kind returns the rule kind.
func (l *Lifted) Kind() Kind { return l.rule.Kind }

// Comments prefixes the inner partitioner's description with its name and axis.
func (l *Lifted) Comments() string {
	return fmt.Sprintf("%s axis=%d %s", l.inner.Name(), l.axis, l.inner.Comments())
}

// MaxIndex returns the number of parts of the inner partitioner.
func (l *Lifted) MaxIndex() int { return l.inner.MaxIndex() }

// CoordinateToIndices resolves the lifted axis of c with the inner
// partitioner. Each remainder is c with that axis replaced by the inner
// remainder.
func (l *Lifted) CoordinateToIndices(c Coordinates) []IndexResult {
	rs := l.inner.CoordinateToIndices(c[l.axis])
	out := make([]IndexResult, len(rs))
	for i, r := range rs {
		rem := c.Clone()
		rem[l.axis] = r.Remainder
		out[i] = IndexResult{Index: r.Index, Remainder: rem, Ghost: r.Ghost}
	}
	return out
}

// IndexToCoordinate moves offset along the lifted axis to part index.
func (l *Lifted) IndexToCoordinate(index int, offset Coordinates) Coordinates {
	out := offset.Clone()
	out[l.axis] = l.inner.IndexToCoordinate(index, offset[l.axis])
	return out
}

// IndexToSizes returns the sizes of part index: the parent sizes with the
// lifted axis narrowed to the part.
func (l *Lifted) IndexToSizes(index int) Sizes {
	s := l.piv.Sizes()
	s[l.axis] = l.inner.IndexToSize(index)
	return s
}

// ChildKind returns the inner child kind of part index.
func (l *Lifted) ChildKind(index int) int { return l.inner.ChildKind(index) }

// SubPartInfoKinds returns one PartInfoVec per child kind, in kind order.
func (l *Lifted) SubPartInfoKinds() []PartInfoVec { return l.kinds }
