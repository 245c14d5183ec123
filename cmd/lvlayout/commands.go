// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlayout/layout"
	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/ptree"
)

// app holds the state shared by the subcommands. The layout is built once in
// the persistent pre-run, the memory layout on first use.
type app struct {
	configPath string
	debug      bool

	cfg     *layout.Config
	builder *ptree.Builder
	l       *layout.Layout
	ml      *layout.MemoryLayout
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvlayout",
		Short: "Inspect lattice partition trees and memory layouts",
		Long: `lvlayout builds the partition tree of a lattice from a YAML rule set and
reports its levels, structure, coordinate lookups and memory offsets.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "lvlayout.yaml", "YAML rule set")
	pf.BoolVar(&a.debug, "debug", false, "log tree construction to stderr")
	pf.AddGoFlagSet(flag.CommandLine)

	root.AddCommand(a.levelsCmd(), a.dumpCmd(), a.locateCmd(), a.offsetsCmd(), a.statsCmd())
	return root
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := layout.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if a.debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.builder = ptree.NewBuilder(ptree.WithLogger(log))
	l, err := layout.FromConfig(cfg, layout.WithLogger(log), layout.WithBuilder(a.builder))
	if err != nil {
		return err
	}
	glog.V(1).Infof("loaded %s: %d levels over %v", a.configPath, len(l.LevelNames()), l.Sizes())
	a.cfg, a.l = cfg, l
	return nil
}

func (a *app) memory() (*layout.MemoryLayout, error) {
	if a.ml != nil {
		return a.ml, nil
	}
	ml, err := a.cfg.MemoryLayout(a.l)
	if err != nil {
		return nil, err
	}
	a.ml = ml
	return ml, nil
}

func (a *app) levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the tree levels, root first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for i, lv := range a.l.Levels() {
				fmt.Fprintf(w, "%2d  %-12s %-14s %-7s %v\n", i, lv.Name, lv.Kind, lv.Role, lv.Axes)
			}
			return nil
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the partition tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.l.Dump(cmd.OutOrStdout(), depth)
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", -1, "levels to print, all when negative")
	return cmd
}

func (a *app) locateCmd() *cobra.Command {
	var coords []int
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Resolve a coordinate to its index paths and memory offsets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ml, err := a.memory()
			if err != nil {
				return err
			}
			c := partition.Coordinates(coords)
			paths, err := a.l.IndicesWithGhosts(c)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "coords:  %v\n", []int(c))
			for _, p := range paths {
				if p.GhostCount == 0 {
					fmt.Fprintf(w, "indices: %v\n", []int(p.Indices))
				}
			}
			switch off, err := ml.Offset(c); {
			case errors.Is(err, layout.ErrNotOwned):
				fmt.Fprintln(w, "offset:  not stored")
			case err != nil:
				return err
			default:
				fmt.Fprintf(w, "offset:  %d\n", off)
			}
			for _, p := range paths {
				if p.GhostCount > 0 {
					fmt.Fprintf(w, "ghost:   %v (%d ghost levels)\n", []int(p.Indices), p.GhostCount)
				}
			}
			offs, err := ml.GhostOffsets(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "stored:  %v\n", offs)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&coords, "coords", nil, "comma separated lattice coordinates")
	_ = cmd.MarkFlagRequired("coords")
	return cmd
}

var errStop = errors.New("stop")

func (a *app) offsetsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "offsets",
		Short: "List the stored sites in memory order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ml, err := a.memory()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			n := 0
			err = ml.Each(func(off int, c partition.Coordinates) error {
				if limit > 0 && n == limit {
					return errStop
				}
				n++
				fmt.Fprintf(w, "%d %v\n", off, []int(c))
				return nil
			})
			if errors.Is(err, errStop) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many sites, all when 0")
	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the tree and the memory layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ml, err := a.memory()
			if err != nil {
				return err
			}
			volume := 1
			for _, s := range a.l.Sizes() {
				volume *= s
			}
			st := a.builder.Stats()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "lattice: %v (%d sites)\n", a.l.Sizes(), volume)
			fmt.Fprintf(w, "levels:  %d\n", len(a.l.LevelNames()))
			fmt.Fprintf(w, "nodes:   %d (memo hits %d, misses %d)\n", st.Nodes, st.Hits, st.Misses)
			fmt.Fprintf(w, "select:  %s\n", a.cfg.Select.Expr())
			fmt.Fprintf(w, "order:   %s\n", strings.Join(ml.LevelNames(), ","))
			fmt.Fprintf(w, "sites:   %d from offset %d\n", ml.Size(), ml.Base())
			return nil
		},
	}
}
