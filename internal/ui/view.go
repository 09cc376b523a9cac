package ui

import (
	"fmt"
	"sync"

	"github.com/samdwyer/prismals/internal/battle"
)

const maxLogLines = 200

// View keeps what the terminal shows: the latest snapshot, a scrolling log
// and the current prompt. It observes a match and redraws on every change.
type View struct {
	renderer *Renderer

	mu     sync.Mutex
	snap   battle.Snapshot
	log    []string
	prompt []string
}

// NewView creates a view drawing through r.
func NewView(r *Renderer) *View {
	return &View{renderer: r}
}

// Log returns a copy of the message log.
func (v *View) Log() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.log...)
}

// BattleStarted implements the match observer.
func (v *View) BattleStarted(snap battle.Snapshot) {
	v.update(snap, fmt.Sprintf("%s vs %s!", snap.Sides[battle.SideA].Team, snap.Sides[battle.SideB].Team))
}

// SwitchedIn implements the match observer.
func (v *View) SwitchedIn(ev battle.SwitchEvent, snap battle.Snapshot) {
	v.update(snap, DescribeSwitch(ev))
}

// TurnResolved implements the match observer.
func (v *View) TurnResolved(res battle.TurnResult, snap battle.Snapshot) {
	v.update(snap, DescribeTurn(res, snap)...)
}

// BattleEnded implements the match observer.
func (v *View) BattleEnded(outcome battle.Outcome, snap battle.Snapshot) {
	v.mu.Lock()
	v.prompt = []string{"Press any key to exit."}
	v.mu.Unlock()
	v.update(snap, DescribeOutcome(outcome, snap))
}

// Prompt shows the options for a decision, with an optional note such as
// an error from the previous key press.
func (v *View) Prompt(opts battle.LegalOptions, note string) {
	heading := fmt.Sprintf("Side %s, what will %s do? (1-%d attack, s+number switch, t stats, q quit)",
		opts.Side, opts.Active, len(opts.Moves))
	if opts.MustSwitch {
		heading = fmt.Sprintf("Side %s, choose a new Prismal (1-%d):", opts.Side, len(opts.SwitchTargets))
	}
	prompt := []string{heading}
	prompt = append(prompt, DescribeOptions(opts)...)
	if note != "" {
		prompt = append(prompt, note)
	}

	v.mu.Lock()
	v.prompt = prompt
	v.mu.Unlock()
	v.draw(false)
}

// ShowStats writes both rosters with full stats and moves into the log.
func (v *View) ShowStats() {
	v.mu.Lock()
	snap := v.snap
	v.mu.Unlock()
	v.update(snap, DescribeStats(snap)...)
}

// Redraw repaints everything after a resize.
func (v *View) Redraw() {
	v.draw(true)
}

func (v *View) update(snap battle.Snapshot, lines ...string) {
	v.mu.Lock()
	v.snap = snap
	v.log = append(v.log, lines...)
	if len(v.log) > maxLogLines {
		v.log = v.log[len(v.log)-maxLogLines:]
	}
	v.mu.Unlock()
	v.draw(false)
}

func (v *View) draw(full bool) {
	if v.renderer == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if full {
		v.renderer.Redraw(v.snap, v.log, v.prompt)
		return
	}
	v.renderer.Render(v.snap, v.log, v.prompt)
}
