package battle

import (
	"context"
	"fmt"

	"github.com/samdwyer/prismals/internal/combat"
)

// ChooseGreedyMove returns the move with the highest base power, keeping the
// first one on ties. It ignores type matchups and accuracy on purpose; this is
// the naive default AI. It returns nil for an empty moveset.
func ChooseGreedyMove(moves []*combat.Move) *combat.Move {
	var best *combat.Move
	for _, m := range moves {
		if m == nil {
			continue
		}
		if best == nil || m.BasePower > best.BasePower {
			best = m
		}
	}
	return best
}

// GreedyProvider is the default AI: it attacks with its strongest move and,
// when it must replace a fainted Prismal, sends in the first one available.
type GreedyProvider struct{}

// GetAction implements ActionProvider.
func (GreedyProvider) GetAction(ctx context.Context, side Side, options LegalOptions) (Action, error) {
	if err := ctx.Err(); err != nil {
		return Action{}, err
	}
	if !options.MustSwitch {
		if move := ChooseGreedyMove(options.Moves); move != nil {
			return Attack(move), nil
		}
	}
	if len(options.SwitchTargets) > 0 {
		return Switch(options.SwitchTargets[0].Index), nil
	}
	return Action{}, fmt.Errorf("side %s: nothing to do", side)
}
