package battle

import (
	"fmt"
	"slices"

	"github.com/samdwyer/prismals/internal/combat"
)

// ActionKind says what a side does on its turn.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionAttack
	ActionSwitch
)

// String returns a human-readable action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionAttack:
		return "attack"
	case ActionSwitch:
		return "switch"
	default:
		return "none"
	}
}

// Action is one side's choice for a turn: attack with a move, or switch the
// active slot to a roster index.
type Action struct {
	Kind        ActionKind
	Move        *combat.Move
	SwitchIndex int
}

// Attack returns an attack action.
func Attack(m *combat.Move) Action {
	return Action{Kind: ActionAttack, Move: m}
}

// Switch returns a switch action to the given roster index.
func Switch(index int) Action {
	return Action{Kind: ActionSwitch, SwitchIndex: index}
}

// String renders the action for logs.
func (a Action) String() string {
	switch a.Kind {
	case ActionAttack:
		if a.Move == nil {
			return "attack(<nil>)"
		}
		return "attack(" + a.Move.Name + ")"
	case ActionSwitch:
		return fmt.Sprintf("switch(%d)", a.SwitchIndex)
	default:
		return "none"
	}
}

// SwitchTarget is a roster member a side may switch to.
type SwitchTarget struct {
	Index int
	Name  string
	HP    int
	MaxHP int
}

// LegalOptions is what a side may do right now. When MustSwitch is set the
// side owes a replacement and Moves is empty.
type LegalOptions struct {
	Side          Side
	Active        string
	Moves         []*combat.Move
	SwitchTargets []SwitchTarget
	MustSwitch    bool
}

// CanAttack reports whether any move is available.
func (o LegalOptions) CanAttack() bool { return len(o.Moves) > 0 }

// Validate returns nil when a is one of the options, or an error wrapping
// combat.ErrInvalidAction or combat.ErrIllegalSwitchTarget.
func (o LegalOptions) Validate(a Action) error {
	switch a.Kind {
	case ActionAttack:
		if o.MustSwitch {
			return fmt.Errorf("%w: side %s must send in a replacement", combat.ErrInvalidAction, o.Side)
		}
		if a.Move == nil {
			return fmt.Errorf("%w: side %s attacked without a move", combat.ErrInvalidAction, o.Side)
		}
		if slices.Contains(o.Moves, a.Move) {
			return nil
		}
		return fmt.Errorf("%w: %s does not know %s", combat.ErrInvalidAction, o.Active, a.Move.Name)
	case ActionSwitch:
		for _, target := range o.SwitchTargets {
			if target.Index == a.SwitchIndex {
				return nil
			}
		}
		return fmt.Errorf("%w: side %s cannot switch to slot %d", combat.ErrIllegalSwitchTarget, o.Side, a.SwitchIndex+1)
	default:
		return fmt.Errorf("%w: side %s sent %s", combat.ErrInvalidAction, o.Side, a.Kind)
	}
}
