package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/prismals/internal/battle"
	"github.com/samdwyer/prismals/internal/combat"
	"github.com/samdwyer/prismals/internal/entity"
	"github.com/samdwyer/prismals/internal/gamedata"
	"github.com/samdwyer/prismals/internal/telemetry"
)

// ErrTurnLimit is returned by Play when a match runs past Config.MaxTurns.
var ErrTurnLimit = errors.New("turn limit reached")

// Observer is told about every step of a match. Calls happen on the goroutine
// running Play, in order.
type Observer interface {
	BattleStarted(snap battle.Snapshot)
	SwitchedIn(ev battle.SwitchEvent, snap battle.Snapshot)
	TurnResolved(res battle.TurnResult, snap battle.Snapshot)
	BattleEnded(outcome battle.Outcome, snap battle.Snapshot)
}

// Game holds what every match shares: configuration, game data and the
// type chart. It is safe to play several matches at once.
type Game struct {
	cfg    Config
	data   *gamedata.Bundle
	chart  *combat.TypeChart
	logger *slog.Logger
	tracer trace.Tracer

	turns  metric.Int64Counter
	faints metric.Int64Counter
}

// New creates a game. A zero seed is replaced with one taken from the clock;
// Config reports the seed actually used.
func New(cfg Config, data *gamedata.Bundle, logger *slog.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if data == nil {
		return nil, errors.New("game data is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	meter := telemetry.Meter("battle")
	turns, err := meter.Int64Counter("prismals.battle.turns",
		metric.WithDescription("Turns resolved"))
	if err != nil {
		return nil, err
	}
	faints, err := meter.Int64Counter("prismals.battle.faints",
		metric.WithDescription("Prismals eliminated"))
	if err != nil {
		return nil, err
	}

	chart := combat.TypeChartFromDefs(data.Types)
	logger.Debug("game data loaded",
		"moves", data.Moves.Count(),
		"prismals", data.Prismals.Count(),
		"teams", data.Teams.Count(),
		"types", len(chart.Types()))
	checkChart(chart, data, logger)

	return &Game{
		cfg:    cfg.withSeed(),
		data:   data,
		chart:  chart,
		logger: logger,
		tracer: telemetry.Tracer("battle"),
		turns:  turns,
		faints: faints,
	}, nil
}

// Config returns the configuration in effect.
func (g *Game) Config() Config { return g.cfg }

// checkChart logs a warning for every species type the chart has no entry
// for. Such a type never takes super effective or resisted damage.
func checkChart(chart *combat.TypeChart, data *gamedata.Bundle, logger *slog.Logger) {
	for _, t := range chart.Types() {
		rel, _ := chart.Relationship(t)
		logger.Debug("type relationship", "type", t,
			"weaknesses", rel.Weaknesses, "resistances", rel.Resistances)
	}
	for _, def := range data.Prismals.All() {
		for _, t := range combat.ParseTypes(def.Types) {
			if _, ok := chart.Relationship(t); !ok {
				logger.Warn("prismal type missing from type chart", "prismal", def.ID, "type", t)
			}
		}
	}
}

// NewBattle builds fresh copies of both configured teams and starts a battle
// whose speed ties are drawn from seed.
func (g *Game) NewBattle(seed int64) (*battle.Battle, error) {
	teamA, err := BuildTeam(g.data, g.cfg.TeamA)
	if err != nil {
		return nil, err
	}
	teamB, err := BuildTeam(g.data, g.cfg.TeamB)
	if err != nil {
		return nil, err
	}
	return battle.New(teamA, teamB, g.chart, rand.New(rand.NewSource(seed)))
}

// BuildTeam turns the team sheet with the given ID into a new team. Every call
// returns new Prismal and Move values.
func BuildTeam(data *gamedata.Bundle, id string) (*entity.Team, error) {
	def := data.Teams.GetByID(id)
	if def == nil {
		return nil, fmt.Errorf("unknown team %q", id)
	}

	members := make([]*entity.Prismal, 0, len(def.Members))
	for _, m := range def.Members {
		pdef := data.Prismals.GetByID(m.Prismal)
		if pdef == nil {
			return nil, fmt.Errorf("team %s: unknown prismal %q", id, m.Prismal)
		}
		moves := make([]*combat.Move, 0, len(m.Moves))
		for _, name := range m.Moves {
			mdef := data.Moves.GetByName(name)
			if mdef == nil {
				return nil, fmt.Errorf("team %s: %s: unknown move %q", id, m.Prismal, name)
			}
			move, err := combat.MoveFromDef(mdef)
			if err != nil {
				return nil, fmt.Errorf("team %s: %w", id, err)
			}
			moves = append(moves, move)
		}
		p, err := entity.NewPrismalFromDef(pdef, moves)
		if err != nil {
			return nil, fmt.Errorf("team %s: %w", id, err)
		}
		members = append(members, p)
	}
	return entity.NewTeam(def.Name, members...), nil
}

// Play drives b to its end. providers[battle.SideA] and providers[battle.SideB]
// decide for each side. Play returns the final outcome, or an error when a
// provider fails, ctx is cancelled or the turn limit is hit.
func (g *Game) Play(ctx context.Context, b *battle.Battle, providers [2]battle.ActionProvider, observers ...Observer) (battle.Outcome, error) {
	for _, s := range battle.Sides {
		if providers[s] == nil {
			return battle.OutcomeOngoing, fmt.Errorf("side %s has no action provider", s)
		}
	}

	g.startBattle(ctx, b, observers)

	for !b.IsOver() {
		if err := ctx.Err(); err != nil {
			return battle.OutcomeOngoing, err
		}
		if g.cfg.MaxTurns > 0 && b.Turn() > g.cfg.MaxTurns {
			g.logger.WarnContext(ctx, "turn limit reached",
				"battle_id", b.ID, "max_turns", g.cfg.MaxTurns)
			return battle.OutcomeOngoing, fmt.Errorf("%w: %d turns", ErrTurnLimit, g.cfg.MaxTurns)
		}

		if b.Phase() == battle.PhaseAwaitingSwitch {
			if err := g.fillReplacements(ctx, b, providers, observers); err != nil {
				return battle.OutcomeOngoing, err
			}
			continue
		}

		if err := g.playTurn(ctx, b, providers, observers); err != nil {
			return battle.OutcomeOngoing, err
		}
	}

	g.endBattle(ctx, b, observers)
	return b.Outcome(), nil
}

func (g *Game) startBattle(ctx context.Context, b *battle.Battle, observers []Observer) {
	_, span := g.tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.String("team_a", b.Team(battle.SideA).Name),
		attribute.String("team_b", b.Team(battle.SideB).Name),
		attribute.Int("team_a.size", b.Team(battle.SideA).Len()),
		attribute.Int("team_b.size", b.Team(battle.SideB).Len()),
	)
	span.End()

	g.logger.InfoContext(ctx, "battle started",
		"battle_id", b.ID,
		"team_a", b.Team(battle.SideA).Name,
		"team_b", b.Team(battle.SideB).Name)

	snap := b.Snapshot()
	for _, o := range observers {
		o.BattleStarted(snap)
	}
}

// fillReplacements asks every side that lost its active Prismal for a
// replacement.
func (g *Game) fillReplacements(ctx context.Context, b *battle.Battle, providers [2]battle.ActionProvider, observers []Observer) error {
	for _, s := range battle.Sides {
		if !b.PendingSwitch(s) {
			continue
		}
		action, err := battle.RequestAction(ctx, providers[s], s, b.LegalOptions(s), g.cfg.MaxRetries)
		if err != nil {
			return err
		}
		ev, err := b.SubmitSwitch(s, action.SwitchIndex)
		if err != nil {
			return err
		}

		g.logger.InfoContext(ctx, "replacement sent in",
			"battle_id", b.ID, "side", s.String(), "prismal", ev.To)

		snap := b.Snapshot()
		for _, o := range observers {
			o.SwitchedIn(ev, snap)
		}
	}
	return nil
}

func (g *Game) playTurn(ctx context.Context, b *battle.Battle, providers [2]battle.ActionProvider, observers []Observer) error {
	var actions [2]battle.Action
	for _, s := range battle.Sides {
		action, err := battle.RequestAction(ctx, providers[s], s, b.LegalOptions(s), g.cfg.MaxRetries)
		if err != nil {
			if errors.Is(err, battle.ErrNoValidAction) {
				g.logger.WarnContext(ctx, "no valid action", "battle_id", b.ID, "side", s.String(), "err", err)
			}
			return err
		}
		actions[s] = action
	}

	ctx, span := g.tracer.Start(ctx, "battle.turn")
	defer span.End()
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.Int("turn", b.Turn()),
		attribute.String("action_a", actions[battle.SideA].String()),
		attribute.String("action_b", actions[battle.SideB].String()),
	)

	res, err := b.ResolveTurn(actions[battle.SideA], actions[battle.SideB])
	if err != nil {
		span.SetAttributes(attribute.Bool("rejected", true))
		g.logger.WarnContext(ctx, "turn rejected", "battle_id", b.ID, "err", err)
		return err
	}

	damage := 0
	for _, hit := range res.Hits {
		damage += hit.Report.Damage
	}
	span.SetAttributes(
		attribute.Bool("speed_tie", res.SpeedTie),
		attribute.Int("damage", damage),
		attribute.Int("fainted", len(res.Fainted)),
		attribute.String("phase", res.Phase.String()),
	)

	g.turns.Add(ctx, 1)
	for _, f := range res.Fainted {
		g.faints.Add(ctx, 1, metric.WithAttributes(attribute.String("side", f.Side.String())))
	}

	g.logger.DebugContext(ctx, "turn resolved",
		"battle_id", b.ID,
		"turn", res.Turn,
		"order", fmt.Sprint(res.Order),
		"speed_tie", res.SpeedTie,
		"damage", damage,
		"phase", res.Phase.String())
	for _, f := range res.Fainted {
		g.logger.InfoContext(ctx, "prismal fainted",
			"battle_id", b.ID, "side", f.Side.String(), "prismal", f.Name)
	}

	snap := b.Snapshot()
	for _, o := range observers {
		o.TurnResolved(res, snap)
	}
	return nil
}

func (g *Game) endBattle(ctx context.Context, b *battle.Battle, observers []Observer) {
	_, span := g.tracer.Start(ctx, "battle.end")
	span.SetAttributes(
		attribute.String("battle.id", b.ID.String()),
		attribute.String("outcome", b.Outcome().String()),
		attribute.Int("turns_taken", b.Turn()-1),
		attribute.Int("team_a.hp_remaining", b.Team(battle.SideA).TotalHP()),
		attribute.Int("team_b.hp_remaining", b.Team(battle.SideB).TotalHP()),
	)
	span.End()

	g.logger.InfoContext(ctx, "battle ended",
		"battle_id", b.ID,
		"outcome", b.Outcome().String(),
		"turns", b.Turn()-1,
		"survivors_a", b.Team(battle.SideA).Living(),
		"survivors_b", b.Team(battle.SideB).Living())

	snap := b.Snapshot()
	for _, o := range observers {
		o.BattleEnded(b.Outcome(), snap)
	}
}

// =============================================================================
// Recorder
// =============================================================================

// Recorder is an Observer that folds a match into a replay digest.
type Recorder struct {
	digest *battle.Digest
}

// NewRecorder returns a recorder with an empty digest.
func NewRecorder() *Recorder {
	return &Recorder{digest: battle.NewDigest()}
}

// Digest returns the digest of everything recorded so far.
func (r *Recorder) Digest() *battle.Digest { return r.digest }

// BattleStarted implements Observer.
func (r *Recorder) BattleStarted(battle.Snapshot) {}

// SwitchedIn implements Observer.
func (r *Recorder) SwitchedIn(ev battle.SwitchEvent, _ battle.Snapshot) { r.digest.AddSwitch(ev) }

// TurnResolved implements Observer.
func (r *Recorder) TurnResolved(res battle.TurnResult, _ battle.Snapshot) { r.digest.AddTurn(res) }

// BattleEnded implements Observer.
func (r *Recorder) BattleEnded(battle.Outcome, battle.Snapshot) {}
