// Package entity provides battle entities: Prismals and the teams that field them.
package entity

import (
	"errors"
	"fmt"

	"github.com/samdwyer/prismals/internal/combat"
	"github.com/samdwyer/prismals/internal/gamedata"
)

// Prismal is a single combatant instance. It is created once per battle and
// only ever loses HP; a fainted Prismal is never revived.
type Prismal struct {
	Name  string // Display name
	Color string // Hex display color, may be empty

	HP, MaxHP int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int

	Types []combat.Type
	Moves []*combat.Move
}

// Stats groups the base stats of a Prismal.
type Stats struct {
	HP, Attack, Defense, SpAttack, SpDefense, Speed int
}

// NewPrismal creates a Prismal at full HP. It fails if any stat is not
// positive, if it has no types or more than two, or if two moves share a name.
func NewPrismal(name string, stats Stats, types []combat.Type, moves []*combat.Move) (*Prismal, error) {
	if name == "" {
		return nil, errors.New("prismal name must not be empty")
	}
	for label, v := range map[string]int{
		"hp": stats.HP, "attack": stats.Attack, "defense": stats.Defense,
		"special attack": stats.SpAttack, "special defense": stats.SpDefense, "speed": stats.Speed,
	} {
		if v <= 0 {
			return nil, fmt.Errorf("prismal %s: %s must be positive, got %d", name, label, v)
		}
	}
	if len(types) < 1 || len(types) > 2 {
		return nil, fmt.Errorf("prismal %s: needs 1 or 2 types, got %d", name, len(types))
	}

	seen := make(map[string]bool, len(moves))
	for _, m := range moves {
		if m == nil {
			return nil, fmt.Errorf("prismal %s: nil move", name)
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("prismal %s: duplicate move %s", name, m.Name)
		}
		seen[m.Name] = true
	}

	return &Prismal{
		Name:      name,
		HP:        stats.HP,
		MaxHP:     stats.HP,
		Attack:    stats.Attack,
		Defense:   stats.Defense,
		SpAttack:  stats.SpAttack,
		SpDefense: stats.SpDefense,
		Speed:     stats.Speed,
		Types:     append([]combat.Type(nil), types...),
		Moves:     append([]*combat.Move(nil), moves...),
	}, nil
}

// NewPrismalFromDef creates a Prismal from a data-driven definition and the
// moves it should know.
func NewPrismalFromDef(def *gamedata.PrismalDef, moves []*combat.Move) (*Prismal, error) {
	if def == nil {
		return nil, errors.New("nil prismal definition")
	}
	p, err := NewPrismal(def.Name, Stats{
		HP:        def.HP,
		Attack:    def.Attack,
		Defense:   def.Defense,
		SpAttack:  def.SpecialAttack,
		SpDefense: def.SpecialDefense,
		Speed:     def.Speed,
	}, combat.ParseTypes(def.Types), moves)
	if err != nil {
		return nil, err
	}
	p.Color = def.Color
	return p, nil
}

// TakeDamage applies move, used by attacker, to p and returns the breakdown.
// A missing move or attacker is rejected with combat.ErrInvalidAction and p
// is left untouched.
func (p *Prismal) TakeDamage(chart *combat.TypeChart, move *combat.Move, attacker *Prismal) (combat.DamageReport, error) {
	if attacker == nil {
		return combat.DamageReport{}, fmt.Errorf("%w: no attacker", combat.ErrInvalidAction)
	}
	report, err := combat.Calculate(chart, move, attacker, p)
	if err != nil {
		return combat.DamageReport{}, err
	}
	p.HP = report.HPAfter
	return report, nil
}

// IsFainted reports whether p has no HP left.
func (p *Prismal) IsFainted() bool { return p.HP == 0 }

// IsAlive returns true if p has HP remaining.
func (p *Prismal) IsAlive() bool { return p.HP > 0 }

// HPFraction returns HP/MaxHP in [0, 1].
func (p *Prismal) HPFraction() float64 {
	if p.MaxHP <= 0 {
		return 0
	}
	return float64(p.HP) / float64(p.MaxHP)
}

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the Prismal's name.
func (p *Prismal) GetName() string { return p.Name }

// GetTypes returns the Prismal's element types.
func (p *Prismal) GetTypes() []combat.Type { return p.Types }

// GetHP returns current HP.
func (p *Prismal) GetHP() int { return p.HP }

// OffenseStat returns Attack or SpAttack depending on the category.
func (p *Prismal) OffenseStat(c combat.Category) int {
	if c == combat.Special {
		return p.SpAttack
	}
	return p.Attack
}

// DefenseStat returns Defense or SpDefense depending on the category.
func (p *Prismal) DefenseStat(c combat.Category) int {
	if c == combat.Special {
		return p.SpDefense
	}
	return p.Defense
}

// Ensure Prismal implements combat.Combatant
var _ combat.Combatant = (*Prismal)(nil)
