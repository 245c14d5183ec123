// SPDX-License-Identifier: MIT

package layout

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvlayout/ptree"
)

// DefaultBaseOffset is the offset of the first site of a memory layout.
const DefaultBaseOffset = 0

// Option customizes a Layout.
type Option func(*config)

type config struct {
	log     *slog.Logger
	builder *ptree.Builder
	base    int
}

func defaultConfig() config {
	return config{
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		base: DefaultBaseOffset,
	}
}

// WithLogger sets the logger for the layout and its tree builder.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("layout: WithLogger(nil)")
	}
	return func(c *config) { c.log = l }
}

// WithBuilder builds the tree in an existing arena, sharing nodes with the
// trees already built there. Panics on nil.
func WithBuilder(b *ptree.Builder) Option {
	if b == nil {
		panic("layout: WithBuilder(nil)")
	}
	return func(c *config) { c.builder = b }
}

// WithBaseOffset sets the offset of the first site of memory layouts.
// Panics on negative values.
func WithBaseOffset(base int) Option {
	if base < 0 {
		panic("layout: WithBaseOffset(negative)")
	}
	return func(c *config) { c.base = base }
}
