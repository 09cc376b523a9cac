// Package main is the entry point for Prismals.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/prismals/internal/battle"
	"github.com/samdwyer/prismals/internal/game"
	"github.com/samdwyer/prismals/internal/gamedata"
	"github.com/samdwyer/prismals/internal/telemetry"
	"github.com/samdwyer/prismals/internal/ui"
)

func main() {
	// Load .env file for local development
	// This makes PRISMALS_HONEYCOMB_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := game.ConfigFromEnv(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid environment: %v", err)
	}
	logLevel, logFile := parseFlags(&cfg, os.Args[1:])
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		cfg.Headless = true
	}

	logger, closeLog, err := newLogger(cfg.Mode(), logLevel, logFile)
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closeLog()

	setupOTelEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	data, err := gamedata.LoadBundle()
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}

	g, err := game.New(cfg, data, logger)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	switch cfg.Mode() {
	case game.ModeSimulate:
		err = runSimulation(ctx, g, os.Stdout)
	case game.ModeHeadless:
		err = runHeadless(ctx, g, os.Stdout)
	default:
		err = runInteractive(ctx, g)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Game error: %v", err)
	}
}

// parseFlags applies command-line overrides on top of cfg and returns the
// log level and log file flags.
func parseFlags(cfg *game.Config, args []string) (slog.Level, string) {
	fs := flag.NewFlagSet("prismals", flag.ExitOnError)
	seed := fs.Int64("seed", cfg.Seed, "random seed for speed ties (0 picks one from the clock)")
	headless := fs.Bool("headless", cfg.Headless, "play AI against AI and print the log")
	maxTurns := fs.Int("max-turns", cfg.MaxTurns, "stop a match after this many turns (0 for no limit)")
	retries := fs.Uint("retries", cfg.MaxRetries, "illegal answers accepted per decision")
	simulate := fs.Int("simulate", cfg.Simulations, "run this many AI battles and print a summary")
	teamA := fs.String("team-a", cfg.TeamA, "team sheet ID for side A")
	teamB := fs.String("team-b", cfg.TeamB, "team sheet ID for side B")
	level := fs.String("log-level", "info", "log level: debug, info, warn or error")
	logFile := fs.String("log-file", "", "write logs to this file (interactive mode logs nowhere otherwise)")
	_ = fs.Parse(args)

	cfg.Seed = *seed
	cfg.Headless = *headless
	cfg.MaxTurns = *maxTurns
	cfg.MaxRetries = *retries
	cfg.Simulations = *simulate
	cfg.TeamA = *teamA
	cfg.TeamB = *teamB

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(*level)); err != nil {
		log.Printf("Note: unknown log level %q, using info", *level)
		lvl = slog.LevelInfo
	}
	return lvl, *logFile
}

// newLogger builds the structured logger. The terminal UI owns stdout and
// stderr, so interactive play only logs when a file is given.
func newLogger(mode game.Mode, level slog.Level, path string) (*slog.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case mode == game.ModeInteractive:
		w = io.Discard
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func runHeadless(ctx context.Context, g *game.Game, out io.Writer) error {
	b, err := g.NewBattle(g.Config().Seed)
	if err != nil {
		return err
	}
	textLog := ui.NewTextLog(out)
	rec := game.NewRecorder()
	providers := [2]battle.ActionProvider{battle.GreedyProvider{}, battle.GreedyProvider{}}
	if _, err := g.Play(ctx, b, providers, textLog, rec); err != nil {
		return err
	}
	fmt.Fprintf(out, "Seed %d, replay digest %s\n", g.Config().Seed, rec.Digest())
	return textLog.Err()
}

func runSimulation(ctx context.Context, g *game.Game, out io.Writer) error {
	summary, err := g.Simulate(ctx)
	if err != nil {
		return err
	}
	cfg := g.Config()
	fmt.Fprintf(out, "%d battles from seed %d\n", len(summary.Matches), cfg.Seed)
	fmt.Fprintf(out, "  %s (side A): %d wins\n", cfg.TeamA, summary.Wins[battle.SideA])
	fmt.Fprintf(out, "  %s (side B): %d wins\n", cfg.TeamB, summary.Wins[battle.SideB])
	fmt.Fprintf(out, "  average length: %.1f turns\n", summary.AverageTurns())
	return nil
}

func runInteractive(ctx context.Context, g *game.Game) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()

	b, err := g.NewBattle(g.Config().Seed)
	if err != nil {
		return err
	}

	view := ui.NewView(ui.NewRenderer(screen))
	player := ui.NewKeyboardProvider(screen.Events(), view)
	providers := [2]battle.ActionProvider{player, battle.GreedyProvider{}}

	if _, err := g.Play(ctx, b, providers, view); err != nil {
		return err
	}

	// Leave the result on screen until a key is pressed
	for ev := range screen.Events() {
		if _, ok := ev.(*tcell.EventKey); ok {
			break
		}
	}
	return nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	// Always set endpoint to Honeycomb
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	// Always set headers from our API key - the .env file may have an unexpanded
	// variable reference that doesn't work, so we construct it properly here
	apiKey := os.Getenv("PRISMALS_HONEYCOMB_API_KEY")
	dataset := os.Getenv("PRISMALS_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "prismals" // default dataset name
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
