package combat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samdwyer/prismals/internal/gamedata"
)

// Category selects which stat pair a move uses.
type Category int

const (
	// Physical moves use Attack against Defense.
	Physical Category = iota
	// Special moves use SpAttack against SpDefense.
	Special
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case Physical:
		return "Physical"
	case Special:
		return "Special"
	default:
		return "Unknown"
	}
}

// ParseCategory parses "physical" or "special", ignoring case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "physical":
		return Physical, nil
	case "special":
		return Special, nil
	default:
		return 0, fmt.Errorf("unknown move category %q", s)
	}
}

// CategoryFromSpecial maps an is-special flag to a Category.
func CategoryFromSpecial(special bool) Category {
	if special {
		return Special
	}
	return Physical
}

// Move is an immutable description of a single attack.
type Move struct {
	Name      string
	BasePower int
	Accuracy  int // percent; stored but never rolled against
	Category  Category
	Type      Type
}

// NewMove validates and creates a move.
func NewMove(name string, basePower, accuracy int, category Category, elem Type) (*Move, error) {
	if name == "" {
		return nil, errors.New("move name must not be empty")
	}
	if basePower < 0 {
		return nil, fmt.Errorf("move %s: negative base power %d", name, basePower)
	}
	if accuracy < 0 || accuracy > 100 {
		return nil, fmt.Errorf("move %s: accuracy %d outside 0-100", name, accuracy)
	}
	if category != Physical && category != Special {
		return nil, fmt.Errorf("move %s: unknown category %d", name, category)
	}
	return &Move{
		Name:      name,
		BasePower: basePower,
		Accuracy:  accuracy,
		Category:  category,
		Type:      elem,
	}, nil
}

// MoveFromDef creates a move from a data-driven definition.
func MoveFromDef(def *gamedata.MoveDef) (*Move, error) {
	if def == nil {
		return nil, errors.New("nil move definition")
	}
	var category Category
	if def.Category == "" && def.IsSpecial != nil {
		category = CategoryFromSpecial(*def.IsSpecial)
	} else {
		c, err := ParseCategory(def.Category)
		if err != nil {
			return nil, fmt.Errorf("move %s: %w", def.Name, err)
		}
		category = c
	}
	return NewMove(def.Name, def.Power, def.Accuracy, category, Type(def.Type))
}

// String renders the move the way menus list it.
func (m *Move) String() string {
	return fmt.Sprintf("%s (%s %s, power %d, accuracy %d)", m.Name, m.Type, m.Category, m.BasePower, m.Accuracy)
}
