package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/prismals/internal/battle"
)

// ErrQuit is returned when the player leaves the match. It wraps
// context.Canceled so callers can treat it like any cancellation.
var ErrQuit = fmt.Errorf("player quit: %w", context.Canceled)

// ErrInputClosed is returned when the event stream ends.
var ErrInputClosed = errors.New("input closed")

// Prompter shows a decision to the player.
type Prompter interface {
	Prompt(opts battle.LegalOptions, note string)
	ShowStats()
	Redraw()
}

// KeyboardProvider is an action provider driven by key presses:
// 1-9 picks a move, s then 1-9 switches, t shows both rosters' stats,
// Esc or q quits.
type KeyboardProvider struct {
	events   <-chan tcell.Event
	prompter Prompter
}

// NewKeyboardProvider reads keys from events and shows prompts through p.
func NewKeyboardProvider(events <-chan tcell.Event, p Prompter) *KeyboardProvider {
	return &KeyboardProvider{events: events, prompter: p}
}

// GetAction blocks until the player picks something legal or ctx ends.
func (k *KeyboardProvider) GetAction(ctx context.Context, side battle.Side, opts battle.LegalOptions) (battle.Action, error) {
	switching := opts.MustSwitch
	k.prompt(opts, "")

	for {
		select {
		case <-ctx.Done():
			return battle.Action{}, ctx.Err()
		case ev, ok := <-k.events:
			if !ok {
				return battle.Action{}, ErrInputClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				if k.prompter != nil {
					k.prompter.Redraw()
				}
			case *tcell.EventKey:
				action, done, err := k.handleKey(ev, opts, &switching)
				if err != nil || done {
					return action, err
				}
			}
		}
	}
}

// handleKey interprets one key press. It reports done once an action is chosen.
func (k *KeyboardProvider) handleKey(ev *tcell.EventKey, opts battle.LegalOptions, switching *bool) (battle.Action, bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return battle.Action{}, false, ErrQuit
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if !opts.MustSwitch {
			*switching = false
			k.prompt(opts, "")
		}
		return battle.Action{}, false, nil
	case tcell.KeyRune:
	default:
		return battle.Action{}, false, nil
	}

	r := ev.Rune()
	switch {
	case r == 'q' || r == 'Q':
		return battle.Action{}, false, ErrQuit
	case r == 's' || r == 'S':
		if len(opts.SwitchTargets) == 0 {
			k.prompt(opts, "No Prismal can switch in.")
			return battle.Action{}, false, nil
		}
		*switching = true
		k.prompt(opts, "Switch to which Prismal?")
	case r == 't' || r == 'T':
		if k.prompter != nil {
			k.prompter.ShowStats()
		}
		k.prompt(opts, "")
	case r >= '1' && r <= '9':
		n := int(r - '1')
		if *switching {
			if n < len(opts.SwitchTargets) {
				return battle.Switch(opts.SwitchTargets[n].Index), true, nil
			}
		} else if !opts.CanAttack() {
			k.prompt(opts, "No move can be used. Press s to switch.")
			return battle.Action{}, false, nil
		} else if n < len(opts.Moves) {
			return battle.Attack(opts.Moves[n]), true, nil
		}
		k.prompt(opts, "Invalid choice. Please try again.")
	}
	return battle.Action{}, false, nil
}

func (k *KeyboardProvider) prompt(opts battle.LegalOptions, note string) {
	if k.prompter != nil {
		k.prompter.Prompt(opts, note)
	}
}
