package game

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/prismals/internal/battle"
)

// MatchResult is the outcome of one simulated battle.
type MatchResult struct {
	Seed    int64
	Outcome battle.Outcome
	Turns   int
	Digest  string
}

// Summary aggregates a batch of simulated battles.
type Summary struct {
	Matches    []MatchResult // ordered by index
	Wins       [2]int
	TotalTurns int
}

// AverageTurns returns the mean match length, or 0 for an empty batch.
func (s Summary) AverageTurns() float64 {
	if len(s.Matches) == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(len(s.Matches))
}

// Simulate plays Config.Simulations greedy-vs-greedy battles concurrently.
// Battle i uses seed Config.Seed+i, so a batch is reproducible.
func (g *Game) Simulate(ctx context.Context) (Summary, error) {
	n := g.cfg.Simulations
	results := make([]MatchResult, n)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i := range n {
		seed := g.cfg.Seed + int64(i)
		eg.Go(func() error {
			b, err := g.NewBattle(seed)
			if err != nil {
				return err
			}
			rec := NewRecorder()
			providers := [2]battle.ActionProvider{battle.GreedyProvider{}, battle.GreedyProvider{}}
			outcome, err := g.Play(ctx, b, providers, rec)
			if err != nil {
				return fmt.Errorf("battle %d (seed %d): %w", i, seed, err)
			}
			results[i] = MatchResult{
				Seed:    seed,
				Outcome: outcome,
				Turns:   b.Turn() - 1,
				Digest:  rec.Digest().String(),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}

	summary := Summary{Matches: results}
	for _, r := range results {
		if side, ok := r.Outcome.Winner(); ok {
			summary.Wins[side]++
		}
		summary.TotalTurns += r.Turns
	}

	g.logger.InfoContext(ctx, "simulation finished",
		"battles", n,
		"wins_a", summary.Wins[battle.SideA],
		"wins_b", summary.Wins[battle.SideB],
		"avg_turns", summary.AverageTurns())
	return summary, nil
}
