package game

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Defaults used when neither the environment nor flags set a value.
const (
	DefaultMaxTurns    = 200
	DefaultMaxRetries  = 3
	DefaultSimulations = 100
	DefaultTeamA       = "ember"
	DefaultTeamB       = "tide"
)

// Config holds game configuration options.
type Config struct {
	// Seed for the speed-tie coin flip. The same seed replays the same match.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Headless runs AI against AI and writes the log to stdout instead of
	// opening the terminal UI.
	Headless bool

	// MaxTurns stops a match that has not finished. 0 disables the limit.
	MaxTurns int

	// MaxRetries is how many illegal answers a provider may give per decision.
	MaxRetries uint

	// Simulations is the number of battles run in batch mode. 0 plays a
	// single match.
	Simulations int

	// TeamA and TeamB are team sheet IDs from teams.json.
	TeamA string
	TeamB string
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		MaxTurns:   DefaultMaxTurns,
		MaxRetries: DefaultMaxRetries,
		TeamA:      DefaultTeamA,
		TeamB:      DefaultTeamB,
	}
}

// ConfigFromEnv returns DefaultConfig overridden by PRISMALS_* variables
// found through lookup (normally os.LookupEnv).
func ConfigFromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	var errs []error

	if v, ok := lookup("PRISMALS_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("PRISMALS_SEED: %w", err))
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("PRISMALS_HEADLESS"); ok {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PRISMALS_HEADLESS: %w", err))
		}
		cfg.Headless = headless
	}
	if v, ok := lookup("PRISMALS_MAX_TURNS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PRISMALS_MAX_TURNS: %w", err))
		}
		cfg.MaxTurns = n
	}
	if v, ok := lookup("PRISMALS_MAX_RETRIES"); ok {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			errs = append(errs, fmt.Errorf("PRISMALS_MAX_RETRIES: %w", err))
		}
		cfg.MaxRetries = uint(n)
	}
	if v, ok := lookup("PRISMALS_SIMULATIONS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("PRISMALS_SIMULATIONS: %w", err))
		}
		cfg.Simulations = n
	}
	if v, ok := lookup("PRISMALS_TEAM_A"); ok && v != "" {
		cfg.TeamA = v
	}
	if v, ok := lookup("PRISMALS_TEAM_B"); ok && v != "" {
		cfg.TeamB = v
	}

	if err := errors.Join(errs...); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Validate reports settings that cannot be played.
func (c Config) Validate() error {
	var errs []error
	if c.MaxTurns < 0 {
		errs = append(errs, fmt.Errorf("max turns must not be negative, got %d", c.MaxTurns))
	}
	if c.Simulations < 0 {
		errs = append(errs, fmt.Errorf("simulations must not be negative, got %d", c.Simulations))
	}
	if c.TeamA == "" || c.TeamB == "" {
		errs = append(errs, errors.New("both team IDs are required"))
	}
	return errors.Join(errs...)
}

// withSeed returns c with a clock-derived seed when none was set.
func (c Config) withSeed() Config {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}
