// Package game runs Prismal matches: it builds teams from game data, asks
// action providers for decisions, drives the battle to its end and reports
// every step to observers.
package game

// Mode is how the program plays.
type Mode int

const (
	// ModeInteractive opens the terminal UI with a human on side A.
	ModeInteractive Mode = iota
	// ModeHeadless plays one AI-vs-AI match and prints the log.
	ModeHeadless
	// ModeSimulate runs a batch of AI-vs-AI matches and prints a summary.
	ModeSimulate
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeHeadless:
		return "headless"
	case ModeSimulate:
		return "simulate"
	default:
		return "unknown"
	}
}

// Mode derives the play mode from the configuration.
func (c Config) Mode() Mode {
	switch {
	case c.Simulations > 0:
		return ModeSimulate
	case c.Headless:
		return ModeHeadless
	default:
		return ModeInteractive
	}
}
