package battle

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/samdwyer/prismals/internal/combat"
	"github.com/samdwyer/prismals/internal/entity"
)

// RandomSource is the only source of non-determinism in a battle; it decides
// speed ties. *math/rand.Rand satisfies it, so a fixed seed replays a match.
type RandomSource interface {
	Intn(n int) int
}

// Battle holds all state for one match between two teams. It owns both teams
// and is not safe for concurrent use.
type Battle struct {
	ID uuid.UUID

	teams   [2]*entity.Team
	chart   *combat.TypeChart
	rng     RandomSource
	turn    int
	pending [2]bool
	outcome Outcome
}

// New creates a battle with each team's first roster entry active. The chart
// is shared read-only and may be used by other battles at the same time.
func New(teamA, teamB *entity.Team, chart *combat.TypeChart, rng RandomSource) (*Battle, error) {
	if rng == nil {
		return nil, errors.New("battle needs a random source")
	}
	for i, team := range [2]*entity.Team{teamA, teamB} {
		if team == nil || team.IsDefeated() {
			return nil, fmt.Errorf("side %s: %w", Side(i), ErrEmptyTeam)
		}
		if active := team.Active(); active == nil || active.IsFainted() {
			return nil, fmt.Errorf("side %s: %w: active slot is empty", Side(i), ErrEmptyTeam)
		}
	}

	return &Battle{
		ID:      uuid.New(),
		teams:   [2]*entity.Team{teamA, teamB},
		chart:   chart,
		rng:     rng,
		turn:    1,
		outcome: OutcomeOngoing,
	}, nil
}

// Turn returns the number of the next turn to be resolved, starting at 1.
func (b *Battle) Turn() int { return b.turn }

// Team returns the team fighting on side s.
func (b *Battle) Team(s Side) *entity.Team { return b.teams[s] }

// Active returns the active Prismal of side s, or nil while a replacement is pending.
func (b *Battle) Active(s Side) *entity.Prismal { return b.teams[s].Active() }

// Outcome returns the current outcome.
func (b *Battle) Outcome() Outcome { return b.outcome }

// IsOver returns true once a team has been defeated.
func (b *Battle) IsOver() bool { return b.outcome != OutcomeOngoing }

// Winner returns the winning side once the battle is over.
func (b *Battle) Winner() (Side, bool) { return b.outcome.Winner() }

// PendingSwitch reports whether side s owes a replacement.
func (b *Battle) PendingSwitch(s Side) bool { return b.pending[s] }

// Phase returns the current state machine phase.
func (b *Battle) Phase() Phase {
	switch {
	case b.IsOver():
		return PhaseOver
	case b.pending[SideA] || b.pending[SideB]:
		return PhaseAwaitingSwitch
	default:
		return PhaseOngoing
	}
}

// LegalOptions returns what side s may do right now. A finished battle offers nothing.
func (b *Battle) LegalOptions(s Side) LegalOptions {
	opts := LegalOptions{Side: s}
	if b.IsOver() {
		return opts
	}

	team := b.teams[s]
	active := team.Active()
	if active != nil {
		opts.Active = active.Name
		opts.Moves = append(opts.Moves, active.Moves...)
	}
	opts.MustSwitch = b.pending[s]

	for i := range team.Len() {
		p := team.At(i)
		if i == team.ActiveIndex() || p.IsFainted() {
			continue
		}
		opts.SwitchTargets = append(opts.SwitchTargets, SwitchTarget{
			Index: i,
			Name:  p.Name,
			HP:    p.HP,
			MaxHP: p.MaxHP,
		})
	}
	return opts
}

// MoveSnapshot is a read-only view of one move.
type MoveSnapshot struct {
	Name     string
	Power    int
	Accuracy int
	Category combat.Category
	Type     combat.Type
}

// MemberSnapshot is a read-only view of one roster member.
type MemberSnapshot struct {
	Name       string
	Color      string
	HP         int
	MaxHP      int
	HPFraction float64
	Attack     int
	Defense    int
	SpAttack   int
	SpDefense  int
	Speed      int
	Types      []combat.Type
	Moves      []MoveSnapshot
	Active     bool
}

// MoveNames returns the member's move names in slot order.
func (m MemberSnapshot) MoveNames() []string {
	names := make([]string, len(m.Moves))
	for i, mv := range m.Moves {
		names[i] = mv.Name
	}
	return names
}

// SideSnapshot is a read-only view of one side.
type SideSnapshot struct {
	Team          string
	Roster        []MemberSnapshot
	ActiveIndex   int
	PendingSwitch bool
}

// ActiveMember returns the snapshot of the active Prismal, if any.
func (s SideSnapshot) ActiveMember() (MemberSnapshot, bool) {
	if s.ActiveIndex < 0 || s.ActiveIndex >= len(s.Roster) {
		return MemberSnapshot{}, false
	}
	return s.Roster[s.ActiveIndex], true
}

// Snapshot is the battle state exposed to presentation layers.
type Snapshot struct {
	ID      uuid.UUID
	Turn    int
	Phase   Phase
	Outcome Outcome
	Sides   [2]SideSnapshot
}

// Snapshot copies the current state for rendering.
func (b *Battle) Snapshot() Snapshot {
	snap := Snapshot{
		ID:      b.ID,
		Turn:    b.turn,
		Phase:   b.Phase(),
		Outcome: b.outcome,
	}
	for _, s := range Sides {
		team := b.teams[s]
		side := SideSnapshot{
			Team:          team.Name,
			ActiveIndex:   team.ActiveIndex(),
			PendingSwitch: b.pending[s],
		}
		for i := range team.Len() {
			p := team.At(i)
			moves := make([]MoveSnapshot, len(p.Moves))
			for j, m := range p.Moves {
				moves[j] = MoveSnapshot{
					Name:     m.Name,
					Power:    m.BasePower,
					Accuracy: m.Accuracy,
					Category: m.Category,
					Type:     m.Type,
				}
			}
			side.Roster = append(side.Roster, MemberSnapshot{
				Name:       p.Name,
				Color:      p.Color,
				HP:         p.HP,
				MaxHP:      p.MaxHP,
				HPFraction: p.HPFraction(),
				Attack:     p.Attack,
				Defense:    p.Defense,
				SpAttack:   p.SpAttack,
				SpDefense:  p.SpDefense,
				Speed:      p.Speed,
				Types:      append([]combat.Type(nil), p.Types...),
				Moves:      moves,
				Active:     i == team.ActiveIndex(),
			})
		}
		snap.Sides[s] = side
	}
	return snap
}
