package battle

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest fingerprints the sequence of events in a battle. Two battles fed
// the same teams, actions and seed produce the same digest.
type Digest struct {
	h     *xxhash.Digest
	turns int
}

// NewDigest returns an empty digest.
func NewDigest() *Digest {
	return &Digest{h: xxhash.New()}
}

// AddTurn folds a resolved turn into the digest.
func (d *Digest) AddTurn(r TurnResult) {
	d.turns++
	fmt.Fprintf(d.h, "T%d|%s|%s|", r.Turn, r.Actions[SideA], r.Actions[SideB])
	for _, sw := range r.Switches {
		fmt.Fprintf(d.h, "S%s:%s>%s|", sw.Side, sw.From, sw.To)
	}
	for _, hit := range r.Hits {
		fmt.Fprintf(d.h, "H%s:%s:%d:%d|", hit.Side, hit.Report.Move, hit.Report.Damage, hit.Report.HPAfter)
	}
	for _, f := range r.Fainted {
		fmt.Fprintf(d.h, "F%s:%s|", f.Side, f.Name)
	}
	fmt.Fprintf(d.h, "%s;", r.Outcome)
}

// AddSwitch folds a replacement into the digest.
func (d *Digest) AddSwitch(e SwitchEvent) {
	fmt.Fprintf(d.h, "R%s:%s;", e.Side, e.To)
}

// Turns returns the number of turns folded in.
func (d *Digest) Turns() int { return d.turns }

// Sum64 returns the current fingerprint.
func (d *Digest) Sum64() uint64 { return d.h.Sum64() }

// String returns the fingerprint as 16 hex digits.
func (d *Digest) String() string {
	return fmt.Sprintf("%016x", d.Sum64())
}
