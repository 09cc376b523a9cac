// Package combat provides the damage model for Prismal battles: element
// types and their matchups, moves, and the damage formula.
package combat

import (
	"slices"

	"github.com/samdwyer/prismals/internal/gamedata"
)

// Type is an element tag such as Fire or Water.
type Type string

// Effectiveness multipliers for a single defending type.
const (
	SuperEffective   = 2.0
	Neutral          = 1.0
	NotVeryEffective = 0.5
)

// Relationship lists, for a defending type, the attacking types it is weak to
// and the ones it resists.
type Relationship struct {
	Weaknesses  []Type
	Resistances []Type
}

// TypeChart maps (attacking type, defending type) pairs to multipliers.
// It is immutable once built and safe for concurrent use.
type TypeChart struct {
	relations map[Type]Relationship
}

// NewTypeChart builds a chart from per-defending-type relationships.
// The input is copied.
func NewTypeChart(relations map[Type]Relationship) *TypeChart {
	chart := &TypeChart{relations: make(map[Type]Relationship, len(relations))}
	for t, rel := range relations {
		chart.relations[t] = Relationship{
			Weaknesses:  slices.Clone(rel.Weaknesses),
			Resistances: slices.Clone(rel.Resistances),
		}
	}
	return chart
}

// TypeChartFromDefs builds a chart from the type relationship table loaded by gamedata.
func TypeChartFromDefs(defs gamedata.TypeRelations) *TypeChart {
	relations := make(map[Type]Relationship, len(defs))
	for name, rel := range defs {
		relations[Type(name)] = Relationship{
			Weaknesses:  toTypes(rel.Weaknesses),
			Resistances: toTypes(rel.Resistances),
		}
	}
	return NewTypeChart(relations)
}

// ParseTypes converts type names to Types.
func ParseTypes(names []string) []Type {
	return toTypes(names)
}

func toTypes(names []string) []Type {
	types := make([]Type, len(names))
	for i, n := range names {
		types[i] = Type(n)
	}
	return types
}

// Multiplier returns the effectiveness of an attack of type attack against a
// defender with the given types. Each defending type contributes 2.0 if it is
// weak to the attack, 0.5 if it resists it and 1.0 otherwise; a defending type
// equal to the attack type contributes nothing. Contributions multiply, so a
// dual-typed defender can take 4x or 0.25x. Unknown types are neutral.
func (c *TypeChart) Multiplier(attack Type, defender []Type) float64 {
	total := 1.0
	if c == nil {
		return total
	}
	for _, d := range defender {
		if d == attack {
			continue
		}
		rel, ok := c.relations[d]
		if !ok {
			continue
		}
		if slices.Contains(rel.Weaknesses, attack) {
			total *= SuperEffective
		} else if slices.Contains(rel.Resistances, attack) {
			total *= NotVeryEffective
		}
	}
	return total
}

// Types returns every defending type the chart knows, sorted by name.
func (c *TypeChart) Types() []Type {
	types := make([]Type, 0, len(c.relations))
	for t := range c.relations {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Relationship returns a copy of the weaknesses and resistances of t.
func (c *TypeChart) Relationship(t Type) (Relationship, bool) {
	rel, ok := c.relations[t]
	if !ok {
		return Relationship{}, false
	}
	return Relationship{
		Weaknesses:  slices.Clone(rel.Weaknesses),
		Resistances: slices.Clone(rel.Resistances),
	}, true
}
