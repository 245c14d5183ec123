// SPDX-License-Identifier: MIT
//
// File: zones.go
// Role: Shared bookkeeping of splits made of contiguous zones.

package partition

import "sort"

// zone is one child segment [start, start+size) of a 1D partitioner.
type zone struct {
	start, size int
}

// zoned implements the bookkeeping shared by every 1D partitioner whose
// children are contiguous segments: coordinate reconstruction, child sizes and
// the child-kind table.
type zoned struct {
	size   int
	parity Parity
	zones  []zone
	kinds  []PartInfo
	kindOf []int
}

// newZoned groups zones by (size, start parity). Kinds are ordered by size,
// then parity.
func newZoned(size int, parity Parity, zones []zone) zoned {
	z := zoned{size: size, parity: parity, zones: zones, kindOf: make([]int, len(zones))}
	seen := make(map[PartInfo]struct{})
	for i := range zones {
		pi := z.childInfo(i)
		if _, ok := seen[pi]; !ok {
			seen[pi] = struct{}{}
			z.kinds = append(z.kinds, pi)
		}
	}
	sort.Slice(z.kinds, func(a, b int) bool { return z.kinds[a].less(z.kinds[b]) })
	pos := make(map[PartInfo]int, len(z.kinds))
	for k, pi := range z.kinds {
		pos[pi] = k
	}
	for i := range zones {
		z.kindOf[i] = pos[z.childInfo(i)]
	}
	return z
}

func (z *zoned) childInfo(i int) PartInfo {
	return PartInfo{Size: z.zones[i].size, Parity: z.parity.Shift(z.zones[i].start)}
}

// MaxIndex returns the number of zones.
func (z *zoned) MaxIndex() int { return len(z.zones) }

// IndexToCoordinate returns the zone start plus offset.
func (z *zoned) IndexToCoordinate(index, offset int) int { return z.zones[index].start + offset }

// IndexToSize returns the zone width.
func (z *zoned) IndexToSize(index int) int { return z.zones[index].size }

// ChildKind returns the kind of zone index.
func (z *zoned) ChildKind(index int) int { return z.kindOf[index] }

// SubPartInfoKinds returns the PartInfo of each kind.
func (z *zoned) SubPartInfoKinds() []PartInfo {
	out := make([]PartInfo, len(z.kinds))
	copy(out, z.kinds)
	return out
}

// locate returns the zone containing x, or -1.
func (z *zoned) locate(x int) int {
	for i, zn := range z.zones {
		if x >= zn.start && x < zn.start+zn.size {
			return i
		}
	}
	return -1
}
