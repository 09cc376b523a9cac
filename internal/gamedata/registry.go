package gamedata

import (
	"errors"
	"fmt"
)

// MoveRegistry holds loaded move definitions and provides lookup by name.
type MoveRegistry struct {
	moves map[string]*MoveDef
	all   []MoveDef
}

// NewMoveRegistry creates a registry from loaded move definitions.
// Later duplicates of a name shadow earlier ones.
func NewMoveRegistry(moves []MoveDef) *MoveRegistry {
	registry := &MoveRegistry{
		moves: make(map[string]*MoveDef, len(moves)),
		all:   moves,
	}
	for i := range moves {
		registry.moves[moves[i].Name] = &moves[i]
	}
	return registry
}

// LoadMoveRegistry loads and creates a registry from the embedded moves.json.
func LoadMoveRegistry() (*MoveRegistry, error) {
	moves, err := LoadMoves()
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return nil, errors.New("no moves loaded from moves.json")
	}
	return NewMoveRegistry(moves), nil
}

// GetByName returns the move definition with the given name, or nil if not found.
func (r *MoveRegistry) GetByName(name string) *MoveDef {
	return r.moves[name]
}

// All returns all move definitions.
func (r *MoveRegistry) All() []MoveDef {
	return r.all
}

// Count returns the number of moves in the registry.
func (r *MoveRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// PrismalRegistry
// =============================================================================

// PrismalRegistry holds loaded Prismal definitions.
type PrismalRegistry struct {
	prismals []PrismalDef
}

// NewPrismalRegistry creates a registry from loaded Prismal definitions.
func NewPrismalRegistry(prismals []PrismalDef) *PrismalRegistry {
	return &PrismalRegistry{prismals: prismals}
}

// LoadPrismalRegistry loads and creates a registry from the embedded prismals.json.
func LoadPrismalRegistry() (*PrismalRegistry, error) {
	prismals, err := LoadPrismals()
	if err != nil {
		return nil, err
	}
	if len(prismals) == 0 {
		return nil, errors.New("no prismals loaded from prismals.json")
	}
	return NewPrismalRegistry(prismals), nil
}

// GetByID returns the Prismal definition with the given ID, or nil if not found.
func (r *PrismalRegistry) GetByID(id string) *PrismalDef {
	for i := range r.prismals {
		if r.prismals[i].ID == id {
			return &r.prismals[i]
		}
	}
	return nil
}

// All returns all Prismal definitions.
func (r *PrismalRegistry) All() []PrismalDef {
	return r.prismals
}

// Count returns the number of Prismal species in the registry.
func (r *PrismalRegistry) Count() int {
	return len(r.prismals)
}

// =============================================================================
// TeamRegistry
// =============================================================================

// TeamRegistry holds loaded team sheets.
type TeamRegistry struct {
	teams []TeamDef
}

// NewTeamRegistry creates a registry from loaded team sheets.
func NewTeamRegistry(teams []TeamDef) *TeamRegistry {
	return &TeamRegistry{teams: teams}
}

// GetByID returns the team sheet with the given ID, or nil if not found.
func (r *TeamRegistry) GetByID(id string) *TeamDef {
	for i := range r.teams {
		if r.teams[i].ID == id {
			return &r.teams[i]
		}
	}
	return nil
}

// All returns all team sheets.
func (r *TeamRegistry) All() []TeamDef {
	return r.teams
}

// Count returns the number of team sheets in the registry.
func (r *TeamRegistry) Count() int {
	return len(r.teams)
}

// =============================================================================
// Bundle
// =============================================================================

// Bundle groups every registry a match needs.
type Bundle struct {
	Moves    *MoveRegistry
	Prismals *PrismalRegistry
	Teams    *TeamRegistry
	Types    TypeRelations
}

// LoadBundle loads all embedded game data.
func LoadBundle() (*Bundle, error) {
	moves, err := LoadMoveRegistry()
	if err != nil {
		return nil, err
	}
	prismals, err := LoadPrismalRegistry()
	if err != nil {
		return nil, err
	}
	teams, err := LoadTeams()
	if err != nil {
		return nil, err
	}
	if len(teams) == 0 {
		return nil, errors.New("no teams loaded from teams.json")
	}
	types, err := LoadTypeRelations()
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		Moves:    moves,
		Prismals: prismals,
		Teams:    NewTeamRegistry(teams),
		Types:    types,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks that every team sheet references known Prismals and moves.
// Unknown element types are not an error; they resolve to neutral matchups.
func (b *Bundle) Validate() error {
	var errs []error
	for _, team := range b.Teams.All() {
		for _, member := range team.Members {
			if b.Prismals.GetByID(member.Prismal) == nil {
				errs = append(errs, fmt.Errorf("team %s: unknown prismal %q", team.ID, member.Prismal))
			}
			for _, name := range member.Moves {
				if b.Moves.GetByName(name) == nil {
					errs = append(errs, fmt.Errorf("team %s: %s: unknown move %q", team.ID, member.Prismal, name))
				}
			}
		}
	}
	return errors.Join(errs...)
}
