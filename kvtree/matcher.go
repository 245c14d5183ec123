// SPDX-License-Identifier: MIT
//
// File: matcher.go
// Role: Index translation between two orderings of the same levels.

package kvtree

import "fmt"

// LevelMatcher converts index paths between two orderings of the same
// levels, identified by name.
type LevelMatcher struct {
	from, to []string
	perm     []int // perm[i] is the position in from of to[i]
}

// NewLevelMatcher builds a matcher from the level order from to the order to.
// Both must name the same levels.
func NewLevelMatcher(from, to []string) (*LevelMatcher, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %d levels vs %d", ErrInvalidOrdering, len(from), len(to))
	}
	at := make(map[string]int, len(from))
	for i, name := range from {
		if _, dup := at[name]; dup {
			return nil, fmt.Errorf("%w: duplicate level %q", ErrInvalidOrdering, name)
		}
		at[name] = i
	}
	perm := make([]int, len(to))
	used := make([]bool, len(from))
	for i, name := range to {
		j, ok := at[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrLevelNotFound, name)
		}
		if used[j] {
			return nil, fmt.Errorf("%w: duplicate level %q", ErrInvalidOrdering, name)
		}
		used[j] = true
		perm[i] = j
	}
	return &LevelMatcher{
		from: append([]string(nil), from...),
		to:   append([]string(nil), to...),
		perm: perm,
	}, nil
}

// Order returns the permutation: level Order()[i] of from is level i of to.
func (m *LevelMatcher) Order() []int { return append([]int(nil), m.perm...) }

// Translate converts a path in from order into to order.
func (m *LevelMatcher) Translate(idx []int) ([]int, error) {
	if len(idx) != len(m.perm) {
		return nil, fmt.Errorf("%w: path of %d for %d levels", ErrInvalidOrdering, len(idx), len(m.perm))
	}
	out := make([]int, len(idx))
	for i, j := range m.perm {
		out[i] = idx[j]
	}
	return out, nil
}

// Inverse converts a path in to order back into from order.
func (m *LevelMatcher) Inverse(idx []int) ([]int, error) {
	if len(idx) != len(m.perm) {
		return nil, fmt.Errorf("%w: path of %d for %d levels", ErrInvalidOrdering, len(idx), len(m.perm))
	}
	out := make([]int, len(idx))
	for i, j := range m.perm {
		out[j] = idx[i]
	}
	return out, nil
}

// Position returns the index of a level name in the from order.
func (m *LevelMatcher) Position(name string) (int, error) {
	for i, n := range m.from {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrLevelNotFound, name)
}
