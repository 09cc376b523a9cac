package gamedata

// MoveDef defines a move loaded from JSON.
type MoveDef struct {
	Name     string `json:"name"`     // Unique display name, also the lookup key (e.g., "Tackle")
	Power    int    `json:"power"`    // Base power
	Accuracy int    `json:"accuracy"` // Percent, 0-100. Stored only; hits always land
	Category string `json:"category"` // "physical" or "special"
	Type     string `json:"type"`     // Element type name (e.g., "Fire")

	// IsSpecial is the older boolean form of Category, read only when Category is empty.
	IsSpecial *bool `json:"is_special,omitempty"`
}

// MovesFile represents the structure of moves.json.
type MovesFile struct {
	Moves []MoveDef `json:"moves"`
}

// LoadMoves loads move definitions from the embedded moves.json file.
func LoadMoves() ([]MoveDef, error) {
	file, err := Load[MovesFile]("moves.json")
	if err != nil {
		return nil, err
	}
	return file.Moves, nil
}
