// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Memoised arena builder of partition trees.

package ptree

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/katalvlaran/lvlayout/partition"
)

// NodeID identifies a node in a Builder arena.
type NodeID int32

type node struct {
	part partition.Partitioner
	piv  partition.PartInfoVec
	rule partition.Rule
	// children is indexed by child kind; nil for Site nodes.
	children []NodeID
}

// Stats reports the size of a Builder arena and the memo efficiency.
type Stats struct {
	Nodes  int
	Hits   int
	Misses int
}

// Builder owns the node arena shared by every tree it builds.
type Builder struct {
	mu     sync.RWMutex
	nodes  []node
	memo   map[string]NodeID
	hits   int
	misses int
	log    *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for construction diagnostics.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("ptree: WithLogger(nil)")
	}
	return func(b *Builder) { b.log = l }
}

// NewBuilder returns an empty Builder. Without WithLogger it logs nowhere.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		memo: make(map[string]NodeID),
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewPartInfoVec returns the root PartInfoVec of a lattice: spatial axes
// start even, the axes listed in nonSpatial carry no parity.
func NewPartInfoVec(sizes []int, nonSpatial []int) (partition.PartInfoVec, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no axes", ErrEmptyLattice)
	}
	piv := make(partition.PartInfoVec, len(sizes))
	for d, s := range sizes {
		if s < 1 {
			return nil, fmt.Errorf("%w: axis %d has size %d", ErrEmptyLattice, d, s)
		}
		piv[d] = partition.PartInfo{Size: s, Parity: partition.ParityEven}
	}
	for _, d := range nonSpatial {
		if d < 0 || d >= len(sizes) {
			return nil, fmt.Errorf("%w: non-spatial axis %d of %d", partition.ErrAxisOutOfRange, d, len(sizes))
		}
		piv[d].Parity = partition.ParityNone
	}
	return piv, nil
}

// Build returns the tree produced by rules on piv. rules must end with one
// Site rule and contain no other. Subtrees already in the arena under the
// same (PartInfoVec, remaining rules) key are reused by NodeID.
//
// Complexity:
//
//	Time:   O(K * R) partitioner instantiations for K distinct PartInfoVecs
//	        reached and R rules; repeated keys cost one map lookup.
//	Memory: O(K * R) arena nodes shared by every tree of the Builder.
//
// Errors:
//
//   - ErrEmptyLattice: piv has no axes.
//   - ErrMissingSite: rules is empty, does not end with a Site rule, or
//     holds a Site rule elsewhere.
//   - partition errors (ErrDegenerateSplit, ErrParityMismatch, ...) from
//     instantiating a rule, wrapped with the PartInfoVec it failed on.
func (b *Builder) Build(piv partition.PartInfoVec, rules []partition.Rule) (*Tree, error) {
	if len(piv) == 0 {
		return nil, fmt.Errorf("%w: no axes", ErrEmptyLattice)
	}
	if err := checkRules(rules); err != nil {
		return nil, err
	}

	b.mu.Lock()
	before := Stats{Nodes: len(b.nodes), Hits: b.hits, Misses: b.misses}
	root, err := b.build(piv, rules)
	after := Stats{Nodes: len(b.nodes), Hits: b.hits, Misses: b.misses}
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}

	t := &Tree{b: b, root: root}
	t.levels = t.collectLevels()
	b.log.Debug("ptree: built tree",
		slog.String("piv", piv.Key()),
		slog.Int("levels", len(t.levels)),
		slog.Int("new_nodes", after.Nodes-before.Nodes),
		slog.Int("memo_hits", after.Hits-before.Hits),
		slog.Int("arena", after.Nodes))
	return t, nil
}

func checkRules(rules []partition.Rule) error {
	if len(rules) == 0 {
		return fmt.Errorf("%w: empty rule list", ErrMissingSite)
	}
	last := len(rules) - 1
	if rules[last].Kind != partition.KindSite {
		return fmt.Errorf("%w: last rule %q is %s", ErrMissingSite, rules[last].Name, rules[last].Kind)
	}
	for i, r := range rules[:last] {
		if r.Kind == partition.KindSite {
			return fmt.Errorf("%w: site rule %q at position %d", ErrMissingSite, r.Name, i)
		}
	}
	return nil
}

// build must be called with b.mu held.
func (b *Builder) build(piv partition.PartInfoVec, rules []partition.Rule) (NodeID, error) {
	key := memoKey(piv, rules)
	if id, ok := b.memo[key]; ok {
		b.hits++
		return id, nil
	}
	b.misses++

	r := rules[0]
	p, err := r.Instantiate(piv)
	if err != nil {
		return 0, fmt.Errorf("ptree: at %s: %w", piv.Key(), err)
	}
	var children []NodeID
	if r.Kind != partition.KindSite {
		kinds := p.SubPartInfoKinds()
		children = make([]NodeID, len(kinds))
		for k, sub := range kinds {
			if children[k], err = b.build(sub, r.ChildRules(k, rules[1:])); err != nil {
				return 0, err
			}
		}
	}
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, node{part: p, piv: piv.Clone(), rule: r, children: children})
	b.memo[key] = id
	return id, nil
}

func memoKey(piv partition.PartInfoVec, rules []partition.Rule) string {
	var sb strings.Builder
	sb.WriteString(piv.Key())
	for _, r := range rules {
		sb.WriteByte('|')
		sb.WriteString(r.Key())
	}
	return sb.String()
}

// Stats returns the current arena statistics.
func (b *Builder) Stats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Stats{Nodes: len(b.nodes), Hits: b.hits, Misses: b.misses}
}

// at returns a copy of node id; the copy's slices are never mutated.
func (b *Builder) at(id NodeID) node {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.nodes[id]
}
