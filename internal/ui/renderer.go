package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/prismals/internal/battle"
	"github.com/samdwyer/prismals/internal/gamedata"
)

const (
	hpBarWidth = 20
	headerRows = 2
	sideRows   = 9
)

// Renderer handles drawing the battle to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws both sides, the most recent log lines and the prompt.
func (r *Renderer) Render(snap battle.Snapshot, log []string, prompt []string) {
	r.screen.Clear()
	width, height := r.screen.Size()

	header := fmt.Sprintf("Prismals | Turn %d | %s", snap.Turn, snap.Phase)
	r.screen.DrawText(0, 0, Truncate(header, width), tcell.StyleDefault.Bold(true))

	half := width / 2
	r.renderSide(snap.Sides[battle.SideA], battle.SideA, 0, headerRows, half-1)
	r.renderSide(snap.Sides[battle.SideB], battle.SideB, half, headerRows, width-half)

	promptTop := height - len(prompt)
	logTop := headerRows + sideRows
	r.renderLog(log, logTop, promptTop-1, width)

	style := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for i, line := range prompt {
		r.screen.DrawText(0, promptTop+i, Truncate(line, width), style)
	}

	r.screen.Show()
}

// renderSide draws one side's active Prismal and roster in a column.
func (r *Renderer) renderSide(side battle.SideSnapshot, s battle.Side, x, y, width int) {
	title := fmt.Sprintf("Side %s: %s", s, side.Team)
	r.screen.DrawText(x, y, Truncate(title, width), tcell.StyleDefault.Bold(true).Underline(true))

	active, ok := side.ActiveMember()
	if !ok {
		msg := "(no active Prismal)"
		if side.PendingSwitch {
			msg = "(choosing a replacement)"
		}
		r.screen.DrawText(x, y+1, Truncate(msg, width), tcell.StyleDefault.Foreground(tcell.ColorGray))
	} else {
		nameStyle := tcell.StyleDefault.Foreground(memberColor(active.Color)).Bold(true)
		next := r.screen.DrawText(x, y+1, Truncate(active.Name, width), nameStyle)
		r.screen.DrawText(next+1, y+1, Truncate(FormatTypes(active.Types), width-(next-x)-1), tcell.StyleDefault)

		barStyle := tcell.StyleDefault.Foreground(toTCell(HPColor(active.HPFraction)))
		next = r.screen.DrawText(x, y+2, HPBar(active.HP, active.MaxHP, min(hpBarWidth, width)), barStyle)
		r.screen.DrawText(next+1, y+2, fmt.Sprintf("%d/%d", active.HP, active.MaxHP), tcell.StyleDefault)
	}

	for i, m := range side.Roster {
		if y+4+i >= y+sideRows {
			break
		}
		marker := "  "
		if m.Active {
			marker = "> "
		}
		line := fmt.Sprintf("%s%s %d/%d %s Spd %d", marker, m.Name, m.HP, m.MaxHP, FormatTypes(m.Types), m.Speed)
		r.screen.DrawText(x, y+4+i, Truncate(line, width), tcell.StyleDefault.Foreground(memberColor(m.Color)))
	}
}

// renderLog draws the tail of the log between rows top and bottom inclusive.
func (r *Renderer) renderLog(log []string, top, bottom, width int) {
	rows := bottom - top + 1
	if rows <= 0 {
		return
	}
	if len(log) > rows {
		log = log[len(log)-rows:]
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range log {
		r.screen.DrawText(0, top+i, Truncate(line, width), style)
	}
}

// Redraw forces a complete repaint, e.g. after a resize.
func (r *Renderer) Redraw(snap battle.Snapshot, log []string, prompt []string) {
	r.screen.Sync()
	r.Render(snap, log, prompt)
}

func memberColor(hex string) tcell.Color {
	c, err := gamedata.ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return c
}

func toTCell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
