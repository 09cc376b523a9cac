package gamedata

// TypeRelation lists, for a defending type, the attacking types it is weak
// to and the ones it resists.
type TypeRelation struct {
	Weaknesses  []string `json:"weaknesses"`
	Resistances []string `json:"resistances"`
}

// TypeRelations is the structure of types.json, keyed by defending type name.
type TypeRelations map[string]TypeRelation

// LoadTypeRelations loads the type relationship table from the embedded types.json file.
func LoadTypeRelations() (TypeRelations, error) {
	return Load[TypeRelations]("types.json")
}
