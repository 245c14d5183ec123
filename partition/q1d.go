// SPDX-License-Identifier: MIT
//
// File: q1d.go
// Role: Quotient split of one axis into contiguous blocks, open or periodic.

package partition

import "fmt"

// Q1D splits [0,N) into nparts contiguous blocks of ceil(N/nparts) sites, the
// last one truncated. In periodic mode the first and last block are
// neighbours; in open mode they are not.
type Q1D struct {
	zoned
	nparts   int
	quotient int
	periodic bool
}

// NewQ1DPeriodic builds a periodic quotient split.
func NewQ1DPeriodic(size int, parity Parity, nparts int) (*Q1D, error) {
	return newQ1D(size, parity, nparts, true)
}

// NewQ1DOpen builds an open-ended quotient split.
func NewQ1DOpen(size int, parity Parity, nparts int) (*Q1D, error) {
	return newQ1D(size, parity, nparts, false)
}

func newQ1D(size int, parity Parity, nparts int, periodic bool) (*Q1D, error) {
	if nparts < 1 {
		return nil, fmt.Errorf("%w: nparts=%d", ErrInvalidRule, nparts)
	}
	if size <= nparts {
		return nil, fmt.Errorf("%w: size %d <= nparts %d", ErrDegenerateSplit, size, nparts)
	}
	q := (size + nparts - 1) / nparts
	if (nparts-1)*q >= size {
		return nil, fmt.Errorf("%w: size %d leaves block %d empty with quotient %d",
			ErrDegenerateSplit, size, nparts-1, q)
	}
	zones := make([]zone, nparts)
	for i := range zones {
		start := i * q
		zones[i] = zone{start: start, size: min(q, size-start)}
	}
	return &Q1D{zoned: newZoned(size, parity, zones), nparts: nparts, quotient: q, periodic: periodic}, nil
}

// Name returns "Q1DPeriodic" or "Q1DOpen".
func (q *Q1D) Name() string {
	if q.periodic {
		return "Q1DPeriodic"
	}
	return "Q1DOpen"
}

// Comments describes the split.
func (q *Q1D) Comments() string {
	return fmt.Sprintf("size=%d parity=%s nparts=%d quotient=%d", q.size, q.parity, q.nparts, q.quotient)
}

// SubSizeParityInfoList lists the distinct (size, parity) pairs of the blocks,
// in child-kind order.
func (q *Q1D) SubSizeParityInfoList() []PartInfo { return q.SubPartInfoKinds() }

// CoordinateToIndices returns the owning block first, followed by the one
// neighbour block on the nearer side of x. A site in the lower half of its
// block is a halo candidate of the block below it, any other site of the
// block above it. Open splits have no neighbour past either end, so the end
// blocks yield a single result on their outer side. Coordinates outside
// [0,N) (which only arrive along ghost paths) are owned by the nearest end
// block.
func (q *Q1D) CoordinateToIndices(x int) []Result1D {
	n := q.nparts
	i := 0
	if x > 0 {
		i = min(x/q.quotient, n-1)
	}
	rem := x - q.zones[i].start
	out := make([]Result1D, 0, 2)
	out = append(out, Result1D{Index: i, Remainder: rem})

	if 2*rem < q.zones[i].size {
		switch {
		case i > 0:
			out = append(out, Result1D{Index: i - 1, Remainder: x - q.zones[i-1].start, Ghost: true})
		case q.periodic:
			out = append(out, Result1D{Index: n - 1, Remainder: x + q.size - q.zones[n-1].start, Ghost: true})
		}
		return out
	}
	switch {
	case i < n-1:
		out = append(out, Result1D{Index: i + 1, Remainder: x - q.zones[i+1].start, Ghost: true})
	case q.periodic:
		out = append(out, Result1D{Index: 0, Remainder: x - q.size, Ghost: true})
	}
	return out
}
