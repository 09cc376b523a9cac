package battle

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/prismals/internal/entity"
)

func playOut(t *testing.T, seed int64) *Digest {
	t.Helper()
	tackle := mustMove(t, "Tackle", 30)
	b := newBattle(t,
		entity.NewTeam("A", newPrismal(t, "A1", 100, 50, tackle), newPrismal(t, "A2", 100, 50, tackle)),
		entity.NewTeam("B", newPrismal(t, "B1", 100, 50, tackle), newPrismal(t, "B2", 100, 50, tackle)),
		rand.New(rand.NewSource(seed)))

	d := NewDigest()
	for i := 0; i < 50 && !b.IsOver(); i++ {
		for _, s := range Sides {
			if b.PendingSwitch(s) {
				ev, err := b.SubmitSwitch(s, b.LegalOptions(s).SwitchTargets[0].Index)
				if err != nil {
					t.Fatalf("SubmitSwitch() error: %v", err)
				}
				d.AddSwitch(ev)
			}
		}
		res, err := b.ResolveTurn(Attack(b.Active(SideA).Moves[0]), Attack(b.Active(SideB).Moves[0]))
		if err != nil {
			t.Fatalf("ResolveTurn() error: %v", err)
		}
		d.AddTurn(res)
	}
	if !b.IsOver() {
		t.Fatal("battle did not finish")
	}
	return d
}

func TestDigestIsDeterministic(t *testing.T) {
	first := playOut(t, 42)
	second := playOut(t, 42)

	if first.Sum64() != second.Sum64() {
		t.Errorf("same seed gave digests %s and %s", first, second)
	}
	if first.Turns() == 0 {
		t.Error("Turns() = 0, want at least one turn")
	}
	if len(first.String()) != 16 {
		t.Errorf("String() = %q, want 16 hex digits", first.String())
	}
}

func TestDigestTracksTies(t *testing.T) {
	// Every turn is a speed tie, so at least one of these seeds must diverge.
	base := playOut(t, 1).Sum64()
	for seed := int64(2); seed < 20; seed++ {
		if playOut(t, seed).Sum64() != base {
			return
		}
	}
	t.Error("digests never changed across seeds")
}

func TestEmptyDigest(t *testing.T) {
	if NewDigest().Sum64() != NewDigest().Sum64() {
		t.Error("empty digests should match")
	}
}
