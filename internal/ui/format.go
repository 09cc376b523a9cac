package ui

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samdwyer/prismals/internal/battle"
	"github.com/samdwyer/prismals/internal/combat"
)

var (
	titleCase = cases.Title(language.English)

	hpLow  = colorful.Color{R: 0.85, G: 0.15, B: 0.15}
	hpMid  = colorful.Color{R: 0.95, G: 0.80, B: 0.15}
	hpHigh = colorful.Color{R: 0.20, G: 0.80, B: 0.30}
)

// FormatTypes renders element types as "Water/Electric".
func FormatTypes(types []combat.Type) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = titleCase.String(string(t))
	}
	return strings.Join(names, "/")
}

// HPBar renders a bar of width cells filled in proportion to hp/maxHP.
// Any remaining HP shows at least one filled cell.
func HPBar(hp, maxHP, width int) string {
	if width <= 0 {
		return ""
	}
	filled := 0
	if maxHP > 0 && hp > 0 {
		filled = max(hp*width/maxHP, 1)
	}
	filled = min(filled, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// HPColor blends from red at empty through yellow to green at full.
func HPColor(fraction float64) colorful.Color {
	fraction = min(max(fraction, 0), 1)
	if fraction < 0.5 {
		return hpLow.BlendHcl(hpMid, fraction*2).Clamped()
	}
	return hpMid.BlendHcl(hpHigh, (fraction-0.5)*2).Clamped()
}

// Truncate shortens text to at most width display cells, adding an ellipsis
// when something was cut.
func Truncate(text string, width int) string {
	if uniseg.StringWidth(text) <= width {
		return text
	}
	if width <= 0 {
		return ""
	}

	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		if used+gr.Width() > width-1 {
			break
		}
		b.WriteString(gr.Str())
		used += gr.Width()
	}
	b.WriteString("…")
	return b.String()
}

// =============================================================================
// Battle messages
// =============================================================================

// DescribeHit explains one landed attack.
func DescribeHit(r combat.DamageReport) []string {
	lines := []string{fmt.Sprintf("%s used %s!", r.Attacker, r.Move)}
	switch {
	case r.SuperEffective():
		lines = append(lines, "It's super effective!")
	case r.NotVeryEffective():
		lines = append(lines, "It's not very effective...")
	}
	lines = append(lines,
		fmt.Sprintf("%s took %d damage (%d -> %d HP).", r.Defender, r.Damage, r.HPBefore, r.HPAfter),
		"Damage breakdown:",
		fmt.Sprintf("- Base Power: %d", r.BasePower),
		fmt.Sprintf("- STAB: %.2fx", r.STAB),
		fmt.Sprintf("- Type Effectiveness: %.2fx", r.Effectiveness),
		fmt.Sprintf("- Stat Multiplier: %.2fx", r.StatMultiplier),
		fmt.Sprintf("- Move Type: %s", r.Category),
	)
	return lines
}

// DescribeSwitch explains a Prismal entering the field.
func DescribeSwitch(ev battle.SwitchEvent) string {
	if ev.From == "" {
		return fmt.Sprintf("%s has been sent out!", ev.To)
	}
	return fmt.Sprintf("Side %s withdrew %s and sent out %s!", ev.Side, ev.From, ev.To)
}

// DescribeTurn turns a resolved turn into log lines, in the order things happened.
func DescribeTurn(res battle.TurnResult, snap battle.Snapshot) []string {
	lines := []string{fmt.Sprintf("-- Turn %d --", res.Turn)}
	for _, sw := range res.Switches {
		lines = append(lines, DescribeSwitch(sw))
	}
	if len(res.Hits) > 0 && len(res.Order) == 2 {
		first := res.Hits[0].Report.Attacker
		if res.SpeedTie {
			lines = append(lines, fmt.Sprintf("Speed tie! %s attacks first!", first))
		} else {
			lines = append(lines, fmt.Sprintf("%s attacks first!", first))
		}
	}
	for _, hit := range res.Hits {
		lines = append(lines, DescribeHit(hit.Report)...)
	}
	for _, f := range res.Fainted {
		lines = append(lines, fmt.Sprintf("%s has been defeated!", f.Name))
	}
	if winner, ok := res.Outcome.Winner(); ok {
		lines = append(lines, fmt.Sprintf("%s has been defeated!", snap.Sides[winner.Other()].Team))
	}
	return lines
}

// DescribeOutcome announces the winner.
func DescribeOutcome(outcome battle.Outcome, snap battle.Snapshot) string {
	winner, ok := outcome.Winner()
	if !ok {
		return "The battle is still going."
	}
	return fmt.Sprintf("%s wins!", snap.Sides[winner].Team)
}

// DescribeMember renders one roster member's stats followed by its moves.
func DescribeMember(m battle.MemberSnapshot) []string {
	lines := []string{fmt.Sprintf("%s (HP: %d/%d, Attack: %d, Defense: %d, Sp. Attack: %d, Sp. Defense: %d, Speed: %d, Types: %s)",
		m.Name, m.HP, m.MaxHP, m.Attack, m.Defense, m.SpAttack, m.SpDefense, m.Speed, FormatTypes(m.Types))}
	for _, mv := range m.Moves {
		lines = append(lines, fmt.Sprintf("  - %s (Power: %d, Accuracy: %d, Type: %s, %s)",
			mv.Name, mv.Power, mv.Accuracy, titleCase.String(string(mv.Type)), mv.Category))
	}
	return lines
}

// DescribeStats renders both rosters, side by side in roster order.
func DescribeStats(snap battle.Snapshot) []string {
	var lines []string
	for _, s := range battle.Sides {
		side := snap.Sides[s]
		lines = append(lines, fmt.Sprintf("Side %s: %s", s, side.Team))
		for _, m := range side.Roster {
			lines = append(lines, DescribeMember(m)...)
		}
	}
	return lines
}

// DescribeOptions lists a side's choices the way the prompt shows them.
func DescribeOptions(opts battle.LegalOptions) []string {
	var lines []string
	if !opts.MustSwitch {
		for i, m := range opts.Moves {
			lines = append(lines, fmt.Sprintf("%d. %s (Power: %d, Accuracy: %d, Type: %s, %s)",
				i+1, m.Name, m.BasePower, m.Accuracy, titleCase.String(string(m.Type)), m.Category))
		}
	}
	for i, target := range opts.SwitchTargets {
		lines = append(lines, fmt.Sprintf("s%d. %s (%d/%d HP)", i+1, target.Name, target.HP, target.MaxHP))
	}
	return lines
}
