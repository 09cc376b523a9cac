package combat

import (
	"testing"

	"github.com/samdwyer/prismals/internal/gamedata"
)

func TestCategoryString(t *testing.T) {
	tests := []struct {
		category Category
		expected string
	}{
		{Physical, "Physical"},
		{Special, "Special"},
		{Category(9), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.category.String(); got != tt.expected {
			t.Errorf("Category(%d).String() = %q, want %q", tt.category, got, tt.expected)
		}
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory("Special"); err != nil || c != Special {
		t.Errorf("ParseCategory(Special) = %v, %v", c, err)
	}
	if c, err := ParseCategory(" physical "); err != nil || c != Physical {
		t.Errorf("ParseCategory(physical) = %v, %v", c, err)
	}
	if _, err := ParseCategory("status"); err == nil {
		t.Error("ParseCategory(status) should fail")
	}
	if CategoryFromSpecial(true) != Special || CategoryFromSpecial(false) != Physical {
		t.Error("CategoryFromSpecial mapping is wrong")
	}
}

func TestNewMoveValidation(t *testing.T) {
	tests := []struct {
		name     string
		power    int
		accuracy int
		category Category
		valid    bool
	}{
		{"Tackle", 40, 100, Physical, true},
		{"Zero", 0, 0, Special, true},
		{"", 40, 100, Physical, false},
		{"Negative", -1, 100, Physical, false},
		{"TooAccurate", 40, 101, Physical, false},
		{"Unknown", 40, 100, Category(5), false},
	}

	for _, tt := range tests {
		_, err := NewMove(tt.name, tt.power, tt.accuracy, tt.category, "Normal")
		if tt.valid && err != nil {
			t.Errorf("NewMove(%q) should be valid, got error: %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("NewMove(%q) should be invalid, got no error", tt.name)
		}
	}
}

func TestMoveFromDef(t *testing.T) {
	registry, err := gamedata.LoadMoveRegistry()
	if err != nil {
		t.Fatalf("LoadMoveRegistry() error: %v", err)
	}

	flare, err := MoveFromDef(registry.GetByName("Flare Burst"))
	if err != nil {
		t.Fatalf("MoveFromDef() error: %v", err)
	}
	if flare.Category != Special || flare.Type != "Fire" || flare.BasePower != 90 || flare.Accuracy != 85 {
		t.Errorf("MoveFromDef() = %+v", *flare)
	}

	if _, err := MoveFromDef(&gamedata.MoveDef{Name: "Odd", Power: 10, Category: "status"}); err == nil {
		t.Error("MoveFromDef() should reject unknown category")
	}
	if _, err := MoveFromDef(nil); err == nil {
		t.Error("MoveFromDef(nil) should fail")
	}
}

func TestMoveFromDefSpecialFlag(t *testing.T) {
	special, physical := true, false
	tests := []struct {
		def  gamedata.MoveDef
		want Category
	}{
		{gamedata.MoveDef{Name: "Bolt", Power: 90, Type: "Electric", IsSpecial: &special}, Special},
		{gamedata.MoveDef{Name: "Slam", Power: 80, Type: "Normal", IsSpecial: &physical}, Physical},
		{gamedata.MoveDef{Name: "Mixed", Power: 50, Type: "Normal", Category: "special", IsSpecial: &physical}, Special},
	}

	for _, tt := range tests {
		m, err := MoveFromDef(&tt.def)
		if err != nil {
			t.Fatalf("MoveFromDef(%s) error: %v", tt.def.Name, err)
		}
		if m.Category != tt.want {
			t.Errorf("MoveFromDef(%s).Category = %v, want %v", tt.def.Name, m.Category, tt.want)
		}
	}
}
