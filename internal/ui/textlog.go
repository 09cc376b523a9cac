package ui

import (
	"fmt"
	"io"

	"github.com/samdwyer/prismals/internal/battle"
)

// TextLog writes a match as plain text, for headless runs.
type TextLog struct {
	w   io.Writer
	err error
}

// NewTextLog creates a log writing to w.
func NewTextLog(w io.Writer) *TextLog {
	return &TextLog{w: w}
}

// Err returns the first write error, if any.
func (l *TextLog) Err() error { return l.err }

// BattleStarted prints both rosters.
func (l *TextLog) BattleStarted(snap battle.Snapshot) {
	l.println(fmt.Sprintf("%s vs %s!", snap.Sides[battle.SideA].Team, snap.Sides[battle.SideB].Team))
	for _, line := range DescribeStats(snap) {
		l.println(line)
	}
}

// SwitchedIn prints a replacement.
func (l *TextLog) SwitchedIn(ev battle.SwitchEvent, _ battle.Snapshot) {
	l.println(DescribeSwitch(ev))
}

// TurnResolved prints what happened during a turn.
func (l *TextLog) TurnResolved(res battle.TurnResult, snap battle.Snapshot) {
	for _, line := range DescribeTurn(res, snap) {
		l.println(line)
	}
}

// BattleEnded prints the winner.
func (l *TextLog) BattleEnded(outcome battle.Outcome, snap battle.Snapshot) {
	l.println(DescribeOutcome(outcome, snap))
}

func (l *TextLog) println(line string) {
	if l.err != nil {
		return
	}
	_, l.err = fmt.Fprintln(l.w, line)
}
