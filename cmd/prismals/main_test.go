package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/samdwyer/prismals/internal/game"
	"github.com/samdwyer/prismals/internal/gamedata"
)

func TestParseFlags(t *testing.T) {
	cfg := game.DefaultConfig()
	level, logFile := parseFlags(&cfg, []string{"-seed", "12", "-simulate", "5", "-team-a", "tide", "-log-level", "debug"})

	if cfg.Seed != 12 || cfg.Simulations != 5 || cfg.TeamA != "tide" || cfg.TeamB != game.DefaultTeamB {
		t.Errorf("parseFlags() cfg = %+v", cfg)
	}
	if level != slog.LevelDebug || logFile != "" {
		t.Errorf("parseFlags() = %v, %q", level, logFile)
	}
	if cfg.Mode() != game.ModeSimulate {
		t.Errorf("Mode() = %v, want simulate", cfg.Mode())
	}
}

func TestSetupOTelEnv(t *testing.T) {
	t.Setenv("PRISMALS_HONEYCOMB_API_KEY", "secret")
	t.Setenv("PRISMALS_HONEYCOMB_DATASET", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	setupOTelEnv()

	if got := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); got != "x-honeycomb-team=secret,x-honeycomb-dataset=prismals" {
		t.Errorf("OTEL_EXPORTER_OTLP_HEADERS = %q", got)
	}
}

func newTestGame(t *testing.T, cfg game.Config) *game.Game {
	t.Helper()
	data, err := gamedata.LoadBundle()
	if err != nil {
		t.Fatalf("LoadBundle() error: %v", err)
	}
	g, err := game.New(cfg, data, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("game.New() error: %v", err)
	}
	return g
}

func TestRunHeadless(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 3
	cfg.Headless = true

	var out bytes.Buffer
	if err := runHeadless(context.Background(), newTestGame(t, cfg), &out); err != nil {
		t.Fatalf("runHeadless() error: %v", err)
	}
	if !strings.Contains(out.String(), "wins!") || !strings.Contains(out.String(), "replay digest") {
		t.Errorf("headless output:\n%s", out.String())
	}
}

func TestRunSimulation(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Seed = 3
	cfg.Simulations = 4

	var out bytes.Buffer
	if err := runSimulation(context.Background(), newTestGame(t, cfg), &out); err != nil {
		t.Fatalf("runSimulation() error: %v", err)
	}
	if !strings.HasPrefix(out.String(), "4 battles from seed 3") {
		t.Errorf("simulation output:\n%s", out.String())
	}
}
