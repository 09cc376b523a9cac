package combat

// Combatant is the read-only view of a battler the damage formula needs.
// entity.Prismal implements it.
type Combatant interface {
	GetName() string
	GetTypes() []Type
	GetHP() int

	// OffenseStat returns Attack for Physical and SpAttack for Special.
	OffenseStat(c Category) int
	// DefenseStat returns Defense for Physical and SpDefense for Special.
	DefenseStat(c Category) int
}

// HasType reports whether c carries the element type t.
func HasType(c Combatant, t Type) bool {
	for _, own := range c.GetTypes() {
		if own == t {
			return true
		}
	}
	return false
}
