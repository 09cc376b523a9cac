package battle

import "errors"

var (
	// ErrBattleOver is returned for any action submitted after a team has been defeated.
	ErrBattleOver = errors.New("battle is over")

	// ErrSwitchPending is returned by ResolveTurn while a side still owes a
	// replacement for a fainted Prismal. Call SubmitSwitch first.
	ErrSwitchPending = errors.New("replacement pending")

	// ErrNoSwitchPending is returned by SubmitSwitch for a side whose active
	// slot is already filled.
	ErrNoSwitchPending = errors.New("no replacement pending")

	// ErrEmptyTeam is returned when a battle is created with a team that has
	// nobody able to fight.
	ErrEmptyTeam = errors.New("team has no prismal able to battle")

	// ErrNoValidAction is returned by RequestAction when a provider keeps
	// answering with illegal actions.
	ErrNoValidAction = errors.New("no valid action")
)
