package battle

import (
	"fmt"

	"github.com/samdwyer/prismals/internal/combat"
)

// SwitchEvent records a Prismal entering the active slot.
type SwitchEvent struct {
	Side Side
	From string // empty for a replacement after fainting
	To   string
}

// Hit records one attack that landed.
type Hit struct {
	Side   Side // attacking side
	Report combat.DamageReport
}

// FaintEvent records a Prismal removed from its team.
type FaintEvent struct {
	Side Side
	Name string
}

// TurnResult describes everything that happened in one resolved turn.
type TurnResult struct {
	Turn     int
	Actions  [2]Action
	Switches []SwitchEvent
	Order    []Side // attacking sides in resolution order
	SpeedTie bool
	Hits     []Hit
	Skipped  []Side // attackers that fainted before they could act
	Fainted  []FaintEvent
	Phase    Phase
	Outcome  Outcome
}

// ResolveTurn resolves one round with side A playing actionA and side B playing actionB.
//
// Both actions are validated before anything changes; an illegal action is
// rejected with an error wrapping combat.ErrInvalidAction or
// combat.ErrIllegalSwitchTarget, and the turn counter does not move. Switches
// happen first and deal no damage. Attacks then resolve fastest first, with
// ties decided by the random source; a Prismal that faints before its attack
// does not act. Fainted Prismals are eliminated, after which the battle is
// either over or waiting for replacements.
func (b *Battle) ResolveTurn(actionA, actionB Action) (TurnResult, error) {
	if b.IsOver() {
		return TurnResult{}, ErrBattleOver
	}
	for _, s := range Sides {
		if b.pending[s] {
			return TurnResult{}, fmt.Errorf("%w: side %s", ErrSwitchPending, s)
		}
	}

	actions := [2]Action{actionA, actionB}
	for _, s := range Sides {
		if err := b.LegalOptions(s).Validate(actions[s]); err != nil {
			return TurnResult{}, fmt.Errorf("side %s: %w", s, err)
		}
	}

	result := TurnResult{Turn: b.turn, Actions: actions}

	for _, s := range Sides {
		if actions[s].Kind != ActionSwitch {
			continue
		}
		team := b.teams[s]
		from := team.Active().Name
		if err := team.RequestSwitch(actions[s].SwitchIndex); err != nil {
			return TurnResult{}, fmt.Errorf("side %s: %w", s, err)
		}
		result.Switches = append(result.Switches, SwitchEvent{Side: s, From: from, To: team.Active().Name})
	}

	var attackers []Side
	for _, s := range Sides {
		if actions[s].Kind == ActionAttack {
			attackers = append(attackers, s)
		}
	}
	if len(attackers) == 2 {
		attackers, result.SpeedTie = b.attackOrder()
	}
	result.Order = attackers

	for _, s := range attackers {
		attacker := b.Active(s)
		defender := b.Active(s.Other())
		if attacker.IsFainted() {
			result.Skipped = append(result.Skipped, s)
			continue
		}
		report, err := defender.TakeDamage(b.chart, actions[s].Move, attacker)
		if err != nil {
			return TurnResult{}, fmt.Errorf("side %s: %w", s, err)
		}
		result.Hits = append(result.Hits, Hit{Side: s, Report: report})
	}

	for _, s := range Sides {
		team := b.teams[s]
		active := team.Active()
		if active == nil || !active.IsFainted() {
			continue
		}
		team.Eliminate(active)
		result.Fainted = append(result.Fainted, FaintEvent{Side: s, Name: active.Name})
		if team.IsDefeated() {
			b.outcome = outcomeFor(s.Other())
		}
		b.pending[s] = team.NeedsSwitch()
	}

	b.turn++
	result.Phase = b.Phase()
	result.Outcome = b.outcome
	return result, nil
}

// attackOrder returns both sides fastest first. Equal speed is a coin flip.
func (b *Battle) attackOrder() ([]Side, bool) {
	speedA := b.Active(SideA).Speed
	speedB := b.Active(SideB).Speed
	switch {
	case speedA > speedB:
		return []Side{SideA, SideB}, false
	case speedB > speedA:
		return []Side{SideB, SideA}, false
	case b.rng.Intn(2) == 0:
		return []Side{SideA, SideB}, true
	default:
		return []Side{SideB, SideA}, true
	}
}

// SubmitSwitch sends the roster member at index into side s's empty active
// slot. It does not consume a turn.
func (b *Battle) SubmitSwitch(s Side, index int) (SwitchEvent, error) {
	if b.IsOver() {
		return SwitchEvent{}, ErrBattleOver
	}
	if !b.pending[s] {
		return SwitchEvent{}, fmt.Errorf("side %s: %w", s, ErrNoSwitchPending)
	}
	team := b.teams[s]
	if err := team.RequestSwitch(index); err != nil {
		return SwitchEvent{}, fmt.Errorf("side %s: %w", s, err)
	}
	b.pending[s] = false
	return SwitchEvent{Side: s, To: team.Active().Name}, nil
}
