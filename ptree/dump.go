// SPDX-License-Identifier: MIT
//
// File: dump.go
// Role: Text rendering of partition trees.

package ptree

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Dump writes the tree to w, one node per block, down to maxDepth levels (all
// of them when maxDepth < 0). Child indices sharing a subtree are printed
// together as ranges.
func (t *Tree) Dump(w io.Writer, maxDepth int) error {
	return t.dump(w, t.root, 0, maxDepth)
}

func (t *Tree) dump(w io.Writer, id NodeID, depth, maxDepth int) error {
	n := t.b.at(id)
	pad := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s%s [%s/%s] %s {%s} #%d\n",
		pad, n.rule.Name, n.rule.Kind, n.rule.Role, n.part.Comments(), n.piv.Key(), id); err != nil {
		return err
	}
	if n.children == nil || (maxDepth >= 0 && depth+1 >= maxDepth) {
		return nil
	}
	groups := make([][]int, len(n.children))
	for i := 0; i < n.part.MaxIndex(); i++ {
		k := n.part.ChildKind(i)
		groups[k] = append(groups[k], i)
	}
	for k, child := range n.children {
		if _, err := fmt.Fprintf(w, "%s  %s:\n", pad, ranges(groups[k])); err != nil {
			return err
		}
		if err := t.dump(w, child, depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}

// ranges renders sorted ints compactly, e.g. "0-3,5".
func ranges(xs []int) string {
	var b strings.Builder
	for i := 0; i < len(xs); {
		j := i
		for j+1 < len(xs) && xs[j+1] == xs[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(xs[i]))
		if j > i {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(xs[j]))
		}
		i = j + 1
	}
	return b.String()
}
