package entity

import (
	"errors"
	"testing"

	"github.com/samdwyer/prismals/internal/combat"
	"github.com/samdwyer/prismals/internal/gamedata"
)

func testChart() *combat.TypeChart {
	return combat.NewTypeChart(map[combat.Type]combat.Relationship{
		"Fire":  {Weaknesses: []combat.Type{"Water"}, Resistances: []combat.Type{"Grass"}},
		"Water": {Weaknesses: []combat.Type{"Grass"}, Resistances: []combat.Type{"Fire"}},
		"Grass": {Weaknesses: []combat.Type{"Fire"}, Resistances: []combat.Type{"Water"}},
	})
}

func mustMove(t *testing.T, name string, power int, category combat.Category, elem combat.Type) *combat.Move {
	t.Helper()
	m, err := combat.NewMove(name, power, 100, category, elem)
	if err != nil {
		t.Fatalf("NewMove(%q) error: %v", name, err)
	}
	return m
}

func newTestPrismal(t *testing.T, name string, hp, speed int, types []combat.Type, moves ...*combat.Move) *Prismal {
	t.Helper()
	p, err := NewPrismal(name, Stats{HP: hp, Attack: 50, Defense: 50, SpAttack: 50, SpDefense: 50, Speed: speed}, types, moves)
	if err != nil {
		t.Fatalf("NewPrismal(%q) error: %v", name, err)
	}
	return p
}

func TestNewPrismalValidation(t *testing.T) {
	tackle := mustMove(t, "Tackle", 40, combat.Physical, "Normal")
	good := Stats{HP: 10, Attack: 1, Defense: 1, SpAttack: 1, SpDefense: 1, Speed: 1}

	if _, err := NewPrismal("Ok", good, []combat.Type{"Fire"}, []*combat.Move{tackle}); err != nil {
		t.Errorf("valid prismal rejected: %v", err)
	}

	zeroSpeed := good
	zeroSpeed.Speed = 0
	tests := []struct {
		name  string
		stats Stats
		types []combat.Type
		moves []*combat.Move
	}{
		{"", good, []combat.Type{"Fire"}, nil},
		{"NoTypes", good, nil, nil},
		{"ThreeTypes", good, []combat.Type{"Fire", "Water", "Grass"}, nil},
		{"ZeroSpeed", zeroSpeed, []combat.Type{"Fire"}, nil},
		{"Dupes", good, []combat.Type{"Fire"}, []*combat.Move{tackle, tackle}},
		{"NilMove", good, []combat.Type{"Fire"}, []*combat.Move{nil}},
	}
	for _, tt := range tests {
		if _, err := NewPrismal(tt.name, tt.stats, tt.types, tt.moves); err == nil {
			t.Errorf("NewPrismal(%q) should fail", tt.name)
		}
	}
}

func TestNewPrismalFromDef(t *testing.T) {
	registry, err := gamedata.LoadPrismalRegistry()
	if err != nil {
		t.Fatalf("LoadPrismalRegistry() error: %v", err)
	}

	p, err := NewPrismalFromDef(registry.GetByID("marivolt"), nil)
	if err != nil {
		t.Fatalf("NewPrismalFromDef() error: %v", err)
	}
	if p.Name != "Marivolt" || p.HP != p.MaxHP || len(p.Types) != 2 || p.Color == "" {
		t.Errorf("NewPrismalFromDef() = %+v color %q", p, p.Color)
	}
}

func TestTakeDamageNeutral(t *testing.T) {
	tackle := mustMove(t, "Tackle", 40, combat.Physical, "Normal")
	attacker := newTestPrismal(t, "Attacker", 100, 50, []combat.Type{"Fire"}, tackle)
	defender := newTestPrismal(t, "Defender", 100, 50, []combat.Type{"Water"})

	report, err := defender.TakeDamage(testChart(), tackle, attacker)
	if err != nil {
		t.Fatalf("TakeDamage() error: %v", err)
	}
	if report.Damage != 40 || defender.HP != 60 {
		t.Errorf("damage %d hp %d, want 40 60", report.Damage, defender.HP)
	}
	if defender.IsFainted() {
		t.Error("defender should not be fainted")
	}
}

func TestTakeDamageSTABWeakness(t *testing.T) {
	splash := mustMove(t, "Tide Slam", 40, combat.Physical, "Water")
	attacker := newTestPrismal(t, "Attacker", 100, 50, []combat.Type{"Water"}, splash)
	defender := newTestPrismal(t, "Defender", 100, 50, []combat.Type{"Fire"})

	report, err := defender.TakeDamage(testChart(), splash, attacker)
	if err != nil {
		t.Fatalf("TakeDamage() error: %v", err)
	}
	if report.Damage != 92 || defender.HP != 8 {
		t.Errorf("damage %d hp %d, want 92 8", report.Damage, defender.HP)
	}
}

func TestTakeDamageFaints(t *testing.T) {
	tackle := mustMove(t, "Tackle", 40, combat.Physical, "Normal")
	attacker := newTestPrismal(t, "Attacker", 100, 50, []combat.Type{"Fire"}, tackle)
	defender := newTestPrismal(t, "Defender", 100, 50, []combat.Type{"Water"})
	defender.HP = 10

	if defender.IsFainted() {
		t.Fatal("defender should not start fainted")
	}

	report, err := defender.TakeDamage(testChart(), tackle, attacker)
	if err != nil {
		t.Fatalf("TakeDamage() error: %v", err)
	}
	if report.Damage != 40 {
		t.Errorf("Damage = %d, want 40", report.Damage)
	}
	if defender.HP != 0 || !defender.IsFainted() || !report.Fainted {
		t.Errorf("hp %d fainted %v report.Fainted %v, want 0 true true", defender.HP, defender.IsFainted(), report.Fainted)
	}
}

func TestTakeDamageInvalidLeavesStateAlone(t *testing.T) {
	attacker := newTestPrismal(t, "Attacker", 100, 50, []combat.Type{"Fire"})
	defender := newTestPrismal(t, "Defender", 100, 50, []combat.Type{"Water"})

	if _, err := defender.TakeDamage(testChart(), nil, attacker); !errors.Is(err, combat.ErrInvalidAction) {
		t.Errorf("nil move error = %v, want ErrInvalidAction", err)
	}
	tackle := mustMove(t, "Tackle", 40, combat.Physical, "Normal")
	if _, err := defender.TakeDamage(testChart(), tackle, nil); !errors.Is(err, combat.ErrInvalidAction) {
		t.Errorf("nil attacker error = %v, want ErrInvalidAction", err)
	}
	if defender.HP != 100 {
		t.Errorf("HP = %d after rejected hits, want 100", defender.HP)
	}
}

func TestHPFraction(t *testing.T) {
	p := newTestPrismal(t, "P", 120, 50, []combat.Type{"Fire"})
	if got := p.HPFraction(); got != 1 {
		t.Errorf("HPFraction() at full HP = %v, want 1", got)
	}
	p.HP = 30
	if got := p.HPFraction(); got != 0.25 {
		t.Errorf("HPFraction() = %v, want 0.25", got)
	}
	p.HP = 0
	if got := p.HPFraction(); got != 0 {
		t.Errorf("HPFraction() fainted = %v, want 0", got)
	}
}
