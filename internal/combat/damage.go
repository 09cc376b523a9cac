package combat

import (
	"fmt"
	"math"
)

// STABBonus is the Same-Type Attack Bonus applied when a move's type matches
// one of the attacker's types.
const STABBonus = 1.15

// DamageReport is the breakdown of a single hit, detailed enough to render or
// log without recomputing anything.
type DamageReport struct {
	Move     string
	Attacker string
	Defender string
	Category Category

	BasePower      int
	STAB           float64
	Effectiveness  float64
	StatMultiplier float64
	Damage         int // HP actually lost (at least 1)

	HPBefore int
	HPAfter  int
	Fainted  bool
}

// SuperEffective reports whether the hit landed for more than neutral.
func (r DamageReport) SuperEffective() bool { return r.Effectiveness > Neutral }

// NotVeryEffective reports whether the hit landed for less than neutral.
func (r DamageReport) NotVeryEffective() bool { return r.Effectiveness < Neutral }

// Calculate computes the damage move would deal from attacker to defender
// without applying it. The formula is
//
//	floor(basePower * stab * effectiveness * offense/defense), minimum 1
//
// HPBefore, HPAfter and Fainted are filled in as if the hit were applied.
func Calculate(chart *TypeChart, move *Move, attacker, defender Combatant) (DamageReport, error) {
	if move == nil {
		return DamageReport{}, fmt.Errorf("%w: no move given", ErrInvalidAction)
	}
	if attacker == nil || defender == nil {
		return DamageReport{}, fmt.Errorf("%w: %s needs an attacker and a defender", ErrInvalidAction, move.Name)
	}

	effectiveness := chart.Multiplier(move.Type, defender.GetTypes())

	offense := attacker.OffenseStat(move.Category)
	defense := defender.DefenseStat(move.Category)
	if defense <= 0 {
		defense = 1
	}
	statMultiplier := float64(offense) / float64(defense)

	stab := 1.0
	if HasType(attacker, move.Type) {
		stab = STABBonus
	}

	raw := float64(move.BasePower) * stab * effectiveness * statMultiplier
	damage := int(math.Floor(raw))
	if damage < 1 {
		damage = 1
	}

	before := defender.GetHP()
	after := max(0, before-damage)

	return DamageReport{
		Move:           move.Name,
		Attacker:       attacker.GetName(),
		Defender:       defender.GetName(),
		Category:       move.Category,
		BasePower:      move.BasePower,
		STAB:           stab,
		Effectiveness:  effectiveness,
		StatMultiplier: statMultiplier,
		Damage:         damage,
		HPBefore:       before,
		HPAfter:        after,
		Fainted:        after == 0,
	}, nil
}
