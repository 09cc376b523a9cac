package combat

import "errors"

var (
	// ErrInvalidAction reports an action that is not legal for the acting side:
	// an unknown action kind, a missing move, or a move the active combatant
	// does not know. Nothing is mutated when it is returned.
	ErrInvalidAction = errors.New("invalid action")

	// ErrIllegalSwitchTarget reports a switch to an out-of-range, fainted or
	// already active roster slot.
	ErrIllegalSwitchTarget = errors.New("illegal switch target")
)
