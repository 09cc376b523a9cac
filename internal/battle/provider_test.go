package battle_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/samdwyer/prismals/internal/battle"
	"github.com/samdwyer/prismals/internal/battle/mocks"
	"github.com/samdwyer/prismals/internal/combat"
)

func testOptions() (battle.LegalOptions, *combat.Move) {
	tackle := &combat.Move{Name: "Tackle", BasePower: 40}
	return battle.LegalOptions{
		Side:          battle.SideA,
		Active:        "Cindrel",
		Moves:         []*combat.Move{tackle},
		SwitchTargets: []battle.SwitchTarget{{Index: 1, Name: "Gravok"}},
	}, tackle
}

func TestRequestActionAcceptsLegalAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockActionProvider(ctrl)
	opts, tackle := testOptions()

	provider.EXPECT().
		GetAction(gomock.Any(), battle.SideA, gomock.Any()).
		Return(battle.Attack(tackle), nil).
		Times(1)

	got, err := battle.RequestAction(context.Background(), provider, battle.SideA, opts, 3)
	if err != nil {
		t.Fatalf("RequestAction() error: %v", err)
	}
	if got.Move != tackle {
		t.Errorf("RequestAction() = %v, want attack(Tackle)", got)
	}
}

func TestRequestActionRetriesRejectedAnswers(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockActionProvider(ctrl)
	opts, _ := testOptions()

	gomock.InOrder(
		provider.EXPECT().GetAction(gomock.Any(), battle.SideA, gomock.Any()).Return(battle.Switch(7), nil),
		provider.EXPECT().GetAction(gomock.Any(), battle.SideA, gomock.Any()).Return(battle.Switch(1), nil),
	)

	got, err := battle.RequestAction(context.Background(), provider, battle.SideA, opts, 3)
	if err != nil {
		t.Fatalf("RequestAction() error: %v", err)
	}
	if got.Kind != battle.ActionSwitch || got.SwitchIndex != 1 {
		t.Errorf("RequestAction() = %v, want switch(1)", got)
	}
}

func TestRequestActionGivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockActionProvider(ctrl)
	opts, _ := testOptions()
	foreign := &combat.Move{Name: "Hydro Lance", BasePower: 90}

	provider.EXPECT().
		GetAction(gomock.Any(), battle.SideA, gomock.Any()).
		Return(battle.Attack(foreign), nil).
		Times(2)

	_, err := battle.RequestAction(context.Background(), provider, battle.SideA, opts, 2)
	if !errors.Is(err, battle.ErrNoValidAction) {
		t.Fatalf("RequestAction() error = %v, want ErrNoValidAction", err)
	}
	if !errors.Is(err, combat.ErrInvalidAction) {
		t.Errorf("RequestAction() error = %v, should wrap the last rejection", err)
	}
}

func TestRequestActionStopsOnProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockActionProvider(ctrl)
	opts, _ := testOptions()

	provider.EXPECT().
		GetAction(gomock.Any(), battle.SideA, gomock.Any()).
		Return(battle.Action{}, context.Canceled).
		Times(1)

	_, err := battle.RequestAction(context.Background(), provider, battle.SideA, opts, 5)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RequestAction() error = %v, want context.Canceled", err)
	}
	if errors.Is(err, battle.ErrNoValidAction) {
		t.Error("a provider failure is not a rejection")
	}
}

func TestRequestActionDefaultTries(t *testing.T) {
	opts, _ := testOptions()
	calls := 0
	p := battle.ProviderFunc(func(ctx context.Context, side battle.Side, o battle.LegalOptions) (battle.Action, error) {
		calls++
		return battle.Action{}, nil
	})

	_, err := battle.RequestAction(context.Background(), p, battle.SideA, opts, 0)
	if !errors.Is(err, battle.ErrNoValidAction) {
		t.Fatalf("RequestAction() error = %v, want ErrNoValidAction", err)
	}
	if calls != battle.DefaultMaxTries {
		t.Errorf("provider called %d times, want %d", calls, battle.DefaultMaxTries)
	}
}
