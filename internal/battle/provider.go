package battle

import (
	"context"
	"errors"
	"fmt"

	"github.com/cenkalti/backoff/v5"

	"github.com/samdwyer/prismals/internal/combat"
)

//go:generate go tool mockgen -destination=./mocks/provider_mock.go -package=mocks . ActionProvider

// ActionProvider supplies a side's action, from a human or an AI. The call may
// block for as long as the decision takes; it should return ctx.Err() once ctx
// is cancelled.
type ActionProvider interface {
	GetAction(ctx context.Context, side Side, options LegalOptions) (Action, error)
}

// ProviderFunc adapts a function to ActionProvider.
type ProviderFunc func(ctx context.Context, side Side, options LegalOptions) (Action, error)

// GetAction implements ActionProvider.
func (f ProviderFunc) GetAction(ctx context.Context, side Side, options LegalOptions) (Action, error) {
	return f(ctx, side, options)
}

// DefaultMaxTries is how many answers RequestAction accepts before giving up
// when no limit is configured.
const DefaultMaxTries = 3

// RequestAction asks p for an action that is legal under options, asking
// again up to maxTries times when the answer is illegal. Errors from the
// provider itself end the loop at once. When every answer was illegal the
// error wraps ErrNoValidAction and the last rejection.
func RequestAction(ctx context.Context, p ActionProvider, side Side, options LegalOptions, maxTries uint) (Action, error) {
	if maxTries == 0 {
		maxTries = DefaultMaxTries
	}

	var attempts uint
	action, err := backoff.Retry(ctx, func() (Action, error) {
		attempts++
		a, err := p.GetAction(ctx, side, options)
		if err != nil {
			return Action{}, backoff.Permanent(err)
		}
		if err := options.Validate(a); err != nil {
			return Action{}, err
		}
		return a, nil
	},
		backoff.WithBackOff(&backoff.ZeroBackOff{}),
		backoff.WithMaxTries(maxTries),
	)
	if err != nil {
		if isRejection(err) {
			return Action{}, fmt.Errorf("%w: side %s gave up after %d attempts: %w", ErrNoValidAction, side, attempts, err)
		}
		return Action{}, fmt.Errorf("side %s: %w", side, err)
	}
	return action, nil
}

func isRejection(err error) bool {
	return errors.Is(err, combat.ErrInvalidAction) || errors.Is(err, combat.ErrIllegalSwitchTarget)
}
