// SPDX-License-Identifier: MIT

package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlayout/partition"
	"github.com/katalvlaran/lvlayout/predicate"
)

// Config is a declarative rule set, usually loaded from YAML:
//
//	sizes: [48, 48, 42, 42, 3, 3]
//	non_spatial: [4, 5]
//	rules:
//	  - {kind: periodic, name: mpi-x, axis: 0, nparts: 4}
//	  - {kind: hbb, name: hbb-x, axis: 0, halo: 1}
//	  - {kind: evenodd, name: eo, axes: [0, 1, 2, 3]}
//	  - {kind: site, name: site}
//	select:
//	  mpi_rank: [2]
//	  halos_up_to: 0
type Config struct {
	Sizes       []int         `yaml:"sizes" validate:"required,min=1,dive,gt=0"`
	NonSpatial  []int         `yaml:"non_spatial" validate:"omitempty,dive,gte=0"`
	Rules       []RuleConfig  `yaml:"rules" validate:"required,min=1,dive"`
	Select      *SelectConfig `yaml:"select" validate:"omitempty"`
	MemoryOrder []string      `yaml:"memory_order" validate:"omitempty,dive,required"`
	BaseOffset  int           `yaml:"base_offset" validate:"gte=0"`
}

// RuleConfig is one rule of a Config. Role defaults by kind: periodic rules
// are MPI levels, open rules vector levels.
type RuleConfig struct {
	Kind      string `yaml:"kind" validate:"required,oneof=periodic open hbb plain evenodd site"`
	Name      string `yaml:"name" validate:"required"`
	Role      string `yaml:"role" validate:"omitempty,oneof=other mpi vector halo eo local site"`
	Axis      int    `yaml:"axis" validate:"gte=0"`
	NParts    int    `yaml:"nparts" validate:"gte=0"`
	Halo      int    `yaml:"halo" validate:"gte=0"`
	Axes      []int  `yaml:"axes" validate:"omitempty,dive,gte=0"`
	LocalName string `yaml:"local_name"`
}

// SelectConfig is the conjunction of the selections it sets.
type SelectConfig struct {
	MpiRank   []int          `yaml:"mpi_rank" validate:"omitempty,dive,gte=0"`
	HalosUpTo *int           `yaml:"halos_up_to" validate:"omitempty,gte=0"`
	Levels    map[string]int `yaml:"levels"`
}

var configValidate = validator.New()

// ParseConfig decodes and validates a YAML rule set. Unknown keys are errors.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var c Config
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadConfig reads and parses a YAML rule set file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate checks struct tags and the constraints between fields.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	names := make(map[string]bool, len(c.Rules))
	for i, r := range c.Rules {
		if names[r.Name] {
			return fmt.Errorf("%w: duplicate level name %q", ErrInvalidConfig, r.Name)
		}
		names[r.Name] = true
		switch r.Kind {
		case "periodic", "open":
			if r.NParts < 1 {
				return fmt.Errorf("%w: rule %q needs nparts >= 1", ErrInvalidConfig, r.Name)
			}
		case "hbb":
			if r.Halo < 1 {
				return fmt.Errorf("%w: rule %q needs halo >= 1", ErrInvalidConfig, r.Name)
			}
		case "evenodd":
			if len(r.Axes) == 0 {
				return fmt.Errorf("%w: rule %q needs axes", ErrInvalidConfig, r.Name)
			}
			local := r.LocalName
			if local == "" {
				local = r.Name + partition.DefaultLocalSuffix
			}
			if names[local] {
				return fmt.Errorf("%w: duplicate level name %q (local level of %q)", ErrInvalidConfig, local, r.Name)
			}
			names[local] = true
		case "site":
			if i != len(c.Rules)-1 {
				return fmt.Errorf("%w: site rule %q must be last", ErrInvalidConfig, r.Name)
			}
		}
		if r.Kind != "evenodd" && r.Kind != "site" && r.Axis >= len(c.Sizes) {
			return fmt.Errorf("%w: rule %q axis %d of %d", ErrInvalidConfig, r.Name, r.Axis, len(c.Sizes))
		}
	}
	if last := c.Rules[len(c.Rules)-1]; last.Kind != "site" {
		return fmt.Errorf("%w: last rule %q must be a site rule", ErrInvalidConfig, last.Name)
	}
	return nil
}

// RuleList converts the rule configs into partition rules.
func (c *Config) RuleList() ([]partition.Rule, error) {
	out := make([]partition.Rule, len(c.Rules))
	for i, rc := range c.Rules {
		var r partition.Rule
		switch rc.Kind {
		case "periodic":
			r = partition.Periodic(rc.Name, partition.RoleMPI, rc.Axis, rc.NParts)
		case "open":
			r = partition.Open(rc.Name, partition.RoleVector, rc.Axis, rc.NParts)
		case "hbb":
			r = partition.HaloBorderBulk(rc.Name, rc.Axis, rc.Halo)
		case "plain":
			r = partition.Plain(rc.Name, rc.Axis)
		case "evenodd":
			r = partition.EvenOdd(rc.Name, rc.LocalName, rc.Axes...)
		case "site":
			r = partition.Site(rc.Name)
		default:
			return nil, fmt.Errorf("%w: rule %q kind %q", ErrInvalidConfig, rc.Name, rc.Kind)
		}
		if rc.Role != "" {
			role, ok := partition.ParseRole(rc.Role)
			if !ok {
				return nil, fmt.Errorf("%w: rule %q role %q", ErrInvalidConfig, rc.Name, rc.Role)
			}
			r.Role = role
		}
		out[i] = r
	}
	return out, nil
}

// Expr returns the selection as a predicate; nil selects everything.
func (s *SelectConfig) Expr() *predicate.Expr {
	if s == nil {
		return nil
	}
	var parts []*predicate.Expr
	if len(s.MpiRank) > 0 {
		parts = append(parts, predicate.MpiRank(s.MpiRank...))
	}
	if s.HalosUpTo != nil {
		parts = append(parts, predicate.HalosUpTo(*s.HalosUpTo))
	}
	names := make([]string, 0, len(s.Levels))
	for name := range s.Levels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		parts = append(parts, predicate.LevelIs(name, s.Levels[name]))
	}
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return parts[0]
	default:
		return predicate.And(parts...)
	}
}

// FromConfig builds the layout described by c. The config's base offset is
// applied before opts.
func FromConfig(c *Config, opts ...Option) (*Layout, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rules, err := c.RuleList()
	if err != nil {
		return nil, err
	}
	return New(c.Sizes, c.NonSpatial, rules, append([]Option{WithBaseOffset(c.BaseOffset)}, opts...)...)
}

// MemoryLayout builds the memory layout selected by c.Select in c.MemoryOrder.
func (c *Config) MemoryLayout(l *Layout) (*MemoryLayout, error) {
	return l.MemoryLayout(c.Select.Expr(), c.MemoryOrder)
}
