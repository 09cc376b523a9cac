package battle

import (
	"context"
	"testing"

	"github.com/samdwyer/prismals/internal/combat"
)

func TestChooseGreedyMove(t *testing.T) {
	weak := &combat.Move{Name: "Weak", BasePower: 40}
	strong := &combat.Move{Name: "Strong", BasePower: 90}
	alsoStrong := &combat.Move{Name: "Also Strong", BasePower: 90}

	tests := []struct {
		name  string
		moves []*combat.Move
		want  *combat.Move
	}{
		{"empty", nil, nil},
		{"single", []*combat.Move{weak}, weak},
		{"highest power", []*combat.Move{weak, strong}, strong},
		{"first on tie", []*combat.Move{weak, strong, alsoStrong}, strong},
		{"first on tie reversed", []*combat.Move{alsoStrong, strong}, alsoStrong},
		{"skips nil", []*combat.Move{nil, weak}, weak},
	}

	for _, tt := range tests {
		if got := ChooseGreedyMove(tt.moves); got != tt.want {
			t.Errorf("%s: ChooseGreedyMove() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestGreedyProvider(t *testing.T) {
	ctx := context.Background()
	strong := &combat.Move{Name: "Strong", BasePower: 90}
	weak := &combat.Move{Name: "Weak", BasePower: 40}

	a, err := GreedyProvider{}.GetAction(ctx, SideA, LegalOptions{Moves: []*combat.Move{weak, strong}})
	if err != nil || a.Kind != ActionAttack || a.Move != strong {
		t.Errorf("GetAction(attack) = %v, %v", a, err)
	}

	forced := LegalOptions{
		MustSwitch:    true,
		SwitchTargets: []SwitchTarget{{Index: 2, Name: "Third"}, {Index: 3, Name: "Fourth"}},
	}
	a, err = GreedyProvider{}.GetAction(ctx, SideB, forced)
	if err != nil || a.Kind != ActionSwitch || a.SwitchIndex != 2 {
		t.Errorf("GetAction(forced switch) = %v, %v", a, err)
	}

	if _, err := (GreedyProvider{}).GetAction(ctx, SideA, LegalOptions{}); err == nil {
		t.Error("GetAction() with no options should fail")
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := (GreedyProvider{}).GetAction(cancelled, SideA, LegalOptions{Moves: []*combat.Move{weak}}); err == nil {
		t.Error("GetAction() should honor a cancelled context")
	}
}
