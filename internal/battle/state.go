// Package battle runs the turn-based state machine between two teams: turn
// order, damage application, fainting, replacements and the win condition.
package battle

// Side identifies one of the two teams in a battle.
type Side int

const (
	SideA Side = iota
	SideB
)

// Sides lists both sides in resolution order for simultaneous events.
var Sides = [2]Side{SideA, SideB}

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "unknown"
	}
}

// Phase is the state of the battle state machine.
type Phase int

const (
	// PhaseOngoing - both sides have an active Prismal and may act.
	PhaseOngoing Phase = iota
	// PhaseAwaitingSwitch - at least one side must send in a replacement.
	PhaseAwaitingSwitch
	// PhaseOver - one team has been defeated.
	PhaseOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseOngoing:
		return "ongoing"
	case PhaseAwaitingSwitch:
		return "awaiting_switch"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome is the result of a battle as seen from outside.
type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeTeamAWins
	OutcomeTeamBWins
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeOngoing:
		return "ongoing"
	case OutcomeTeamAWins:
		return "team_a_wins"
	case OutcomeTeamBWins:
		return "team_b_wins"
	default:
		return "unknown"
	}
}

// Winner returns the winning side of a finished battle.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case OutcomeTeamAWins:
		return SideA, true
	case OutcomeTeamBWins:
		return SideB, true
	default:
		return 0, false
	}
}

func outcomeFor(winner Side) Outcome {
	if winner == SideA {
		return OutcomeTeamAWins
	}
	return OutcomeTeamBWins
}
