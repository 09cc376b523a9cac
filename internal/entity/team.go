package entity

import (
	"fmt"

	"github.com/samdwyer/prismals/internal/combat"
)

// NoActive is the active index of a team with nobody in its active slot.
const NoActive = -1

// Team is an ordered roster of Prismals with one active slot. Fainted
// members are removed from the roster; a team with an empty roster is
// defeated. While the roster is non-empty the active slot holds a living
// member unless a replacement is pending.
type Team struct {
	Name   string
	roster []*Prismal
	active int
}

// NewTeam creates a team whose first member starts in the active slot.
func NewTeam(name string, members ...*Prismal) *Team {
	t := &Team{
		Name:   name,
		roster: append([]*Prismal(nil), members...),
		active: NoActive,
	}
	if len(t.roster) > 0 {
		t.active = 0
	}
	return t
}

// Active returns the Prismal in the active slot, or nil.
func (t *Team) Active() *Prismal {
	if t.active == NoActive {
		return nil
	}
	return t.roster[t.active]
}

// ActiveIndex returns the roster index of the active Prismal, or NoActive.
func (t *Team) ActiveIndex() int { return t.active }

// RequestSwitch puts the roster member at index into the active slot.
func (t *Team) RequestSwitch(index int) error {
	if index < 0 || index >= len(t.roster) {
		return fmt.Errorf("%w: %s has no member %d", combat.ErrIllegalSwitchTarget, t.Name, index+1)
	}
	if t.roster[index].IsFainted() {
		return fmt.Errorf("%w: %s has fainted", combat.ErrIllegalSwitchTarget, t.roster[index].Name)
	}
	t.active = index
	return nil
}

// Eliminate removes p from the roster and reports whether it was there. If p
// was active the slot becomes empty and a switch is needed before the team
// can act again.
func (t *Team) Eliminate(p *Prismal) bool {
	idx := t.indexOf(p)
	if idx < 0 {
		return false
	}
	t.roster = append(t.roster[:idx], t.roster[idx+1:]...)

	switch {
	case len(t.roster) == 0, idx == t.active:
		t.active = NoActive
	case idx < t.active:
		t.active--
	}
	return true
}

// IsDefeated returns true once every member has been eliminated.
func (t *Team) IsDefeated() bool { return len(t.roster) == 0 }

// NeedsSwitch reports whether the active slot is empty while members remain.
func (t *Team) NeedsSwitch() bool { return t.active == NoActive && len(t.roster) > 0 }

// Len returns the number of remaining members.
func (t *Team) Len() int { return len(t.roster) }

// At returns the member at index, or nil when out of range.
func (t *Team) At(index int) *Prismal {
	if index < 0 || index >= len(t.roster) {
		return nil
	}
	return t.roster[index]
}

// Members returns a copy of the roster.
func (t *Team) Members() []*Prismal {
	return append([]*Prismal(nil), t.roster...)
}

// Living returns the names of members with HP remaining, in roster order.
func (t *Team) Living() []string {
	var names []string
	for _, p := range t.roster {
		if p.IsAlive() {
			names = append(names, p.Name)
		}
	}
	return names
}

// TotalHP returns the sum of all members' current HP.
func (t *Team) TotalHP() int {
	total := 0
	for _, p := range t.roster {
		total += p.HP
	}
	return total
}

func (t *Team) indexOf(p *Prismal) int {
	for i, m := range t.roster {
		if m == p {
			return i
		}
	}
	return -1
}
