package gamedata

// PrismalDef defines a Prismal species loaded from JSON.
type PrismalDef struct {
	ID             string   `json:"id"`             // Unique identifier (e.g., "cindrel")
	Name           string   `json:"name"`           // Display name (e.g., "Cindrel")
	Color          string   `json:"color"`          // Hex color code (e.g., "#FF6A2B")
	HP             int      `json:"hp"`             // Maximum hit points
	Attack         int      `json:"attack"`         // Physical offense
	Defense        int      `json:"defense"`        // Physical defense
	SpecialAttack  int      `json:"specialAttack"`  // Special offense
	SpecialDefense int      `json:"specialDefense"` // Special defense
	Speed          int      `json:"speed"`          // Turn order
	Types          []string `json:"types"`          // One or two element types
}

// PrismalsFile represents the structure of prismals.json.
type PrismalsFile struct {
	Prismals []PrismalDef `json:"prismals"`
}

// LoadPrismals loads Prismal definitions from the embedded prismals.json file.
func LoadPrismals() ([]PrismalDef, error) {
	file, err := Load[PrismalsFile]("prismals.json")
	if err != nil {
		return nil, err
	}
	return file.Prismals, nil
}
