package gamedata

// TeamMemberDef names a Prismal species and the moves it brings.
type TeamMemberDef struct {
	Prismal string   `json:"prismal"` // PrismalDef ID
	Moves   []string `json:"moves"`   // MoveDef names, in menu order
}

// TeamDef defines a team sheet loaded from JSON.
type TeamDef struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Members []TeamMemberDef `json:"members"`
}

// TeamsFile represents the structure of teams.json.
type TeamsFile struct {
	Teams []TeamDef `json:"teams"`
}

// LoadTeams loads team sheets from the embedded teams.json file.
func LoadTeams() ([]TeamDef, error) {
	file, err := Load[TeamsFile]("teams.json")
	if err != nil {
		return nil, err
	}
	return file.Teams, nil
}
