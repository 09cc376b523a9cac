package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen() error: %v", err)
	}
	sim.SetSize(100, 30)
	t.Cleanup(s.Close)
	return s
}

// rowText reads back one screen row.
func rowText(s *Screen, y int) string {
	width, _ := s.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestDrawText(t *testing.T) {
	s := newTestScreen(t)

	next := s.DrawText(2, 1, "Gravok", tcell.StyleDefault)
	if next != 8 {
		t.Errorf("DrawText() = %d, want 8", next)
	}
	if got := rowText(s, 1); !strings.HasPrefix(got, "  Gravok") {
		t.Errorf("row 1 = %q", got)
	}
}

func TestRenderBattle(t *testing.T) {
	s := newTestScreen(t)
	r := NewRenderer(s)

	r.Render(testSnapshot(), []string{"Team Ember vs Team Tide!"}, []string{"Side A, what will Cindrel do?"})

	if got := rowText(s, 0); !strings.Contains(got, "Turn 1") {
		t.Errorf("header = %q", got)
	}
	if got := rowText(s, headerRows); !strings.Contains(got, "Team Ember") || !strings.Contains(got, "Team Tide") {
		t.Errorf("side titles = %q", got)
	}
	if got := rowText(s, headerRows+1); !strings.Contains(got, "Cindrel") || !strings.Contains(got, "Verdalis") {
		t.Errorf("actives = %q", got)
	}
	_, height := s.Size()
	if got := rowText(s, height-1); !strings.Contains(got, "what will Cindrel do?") {
		t.Errorf("prompt row = %q", got)
	}
}

func TestViewKeepsLog(t *testing.T) {
	v := NewView(NewRenderer(newTestScreen(t)))
	snap := testSnapshot()

	v.BattleStarted(snap)
	v.BattleEnded(0, snap)
	v.Redraw()

	log := v.Log()
	if len(log) != 2 || log[0] != "Team Ember vs Team Tide!" {
		t.Errorf("Log() = %q", log)
	}
}

func TestViewShowStats(t *testing.T) {
	v := NewView(NewRenderer(newTestScreen(t)))
	snap := testSnapshot()

	v.BattleStarted(snap)
	v.ShowStats()

	log := v.Log()
	want := append([]string{"Team Ember vs Team Tide!"}, DescribeStats(snap)...)
	if len(log) != len(want) {
		t.Fatalf("Log() = %q, want %d lines", log, len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Log()[%d] = %q, want %q", i, log[i], want[i])
		}
	}
}
