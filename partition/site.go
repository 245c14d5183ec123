// SPDX-License-Identifier: MIT
//
// File: site.go
// Role: Terminal level of every rule list.

package partition

import "fmt"

// SiteNode terminates a rule list: one child slot, no further subdivision.
type SiteNode struct {
	name string
	piv  PartInfoVec
}

// NewSite builds the terminal level.
func NewSite(name string, piv PartInfoVec) *SiteNode {
	return &SiteNode{name: name, piv: piv.Clone()}
}

// Name returns the level name.
func (s *SiteNode) Name() string { return s.name }

// Comments lists the extents left at the terminal level.
func (s *SiteNode) Comments() string { return fmt.Sprintf("Site sizes=%v", s.piv.Sizes()) }

// Role returns RoleSite.
func (s *SiteNode) Role() Role { return RoleSite }

// Kind returns KindSite.
func (s *SiteNode) Kind() Kind { return KindSite }

// MaxIndex returns 1.
func (s *SiteNode) MaxIndex() int { return 1 }

// CoordinateToIndices accepts c only when every remainder lies inside the
// extents left at this level. Ghost branches that no halo zone bounds end
// here with no result.
func (s *SiteNode) CoordinateToIndices(c Coordinates) []IndexResult {
	for d, pi := range s.piv {
		if c[d] < 0 || c[d] >= pi.Size {
			return nil
		}
	}
	return []IndexResult{{Index: 0, Remainder: c.Clone()}}
}

// IndexToCoordinate returns offset unchanged.
func (s *SiteNode) IndexToCoordinate(_ int, offset Coordinates) Coordinates { return offset.Clone() }

// IndexToSizes returns the extents left at this level.
func (s *SiteNode) IndexToSizes(int) Sizes { return s.piv.Sizes() }

// ChildKind returns 0.
func (s *SiteNode) ChildKind(int) int { return 0 }

// SubPartInfoKinds returns the PartInfoVec of the level itself.
func (s *SiteNode) SubPartInfoKinds() []PartInfoVec { return []PartInfoVec{s.piv} }
