// Package data loads the static tables that drive world generation.
package data

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var embedded embed.FS

type Buildings struct {
	Inn        bool `yaml:"inn"`
	Shop       bool `yaml:"shop"`
	Blacksmith bool `yaml:"blacksmith"`
	Temple     bool `yaml:"temple"`
	Guild      bool `yaml:"guild"`
}

// TownSlot is a fixed town position given as fractions of width and height.
type TownSlot struct {
	Name      string    `yaml:"name"`
	FX        float64   `yaml:"fx"`
	FY        float64   `yaml:"fy"`
	Level     int       `yaml:"level"`
	Faction   string    `yaml:"faction"`
	Capital   bool      `yaml:"capital"`
	Buildings Buildings `yaml:"buildings"`
}

type DungeonSlot struct {
	Name             string  `yaml:"name"`
	FX               float64 `yaml:"fx"`
	FY               float64 `yaml:"fy"`
	Difficulty       string  `yaml:"difficulty"`
	Floors           int     `yaml:"floors"`
	RecommendedLevel int     `yaml:"recommended_level"`
}

type RareSpawnEntry struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
}

type RandomEventEntry struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

type Creatures struct {
	RareSpawns        []RareSpawnEntry   `yaml:"rare_spawns"`
	Encounters        []string           `yaml:"encounters"`
	WanderingMonsters []string           `yaml:"wandering_monsters"`
	RandomEvents      []RandomEventEntry `yaml:"random_events"`
}

type RarityEntry struct {
	Rarity          string  `yaml:"rarity"`
	Weight          int     `yaml:"weight"`
	PriceMultiplier float64 `yaml:"price_multiplier"`
}

type Good struct {
	Name      string `yaml:"name"`
	BasePrice int    `yaml:"base_price"`
}

type Merchants struct {
	Names    []string      `yaml:"names"`
	Rarities []RarityEntry `yaml:"rarities"`
	Goods    []Good        `yaml:"goods"`
}

type Tables struct {
	Towns     []TownSlot
	Dungeons  []DungeonSlot
	Creatures Creatures
	Merchants Merchants
}

// DefaultTables returns the tables compiled into the binary.
func DefaultTables() (*Tables, error) {
	return load(func(name string) ([]byte, error) {
		return embedded.ReadFile("tables/" + name)
	})
}

// MustDefaultTables panics if the embedded tables are malformed.
func MustDefaultTables() *Tables {
	t, err := DefaultTables()
	if err != nil {
		panic(err)
	}
	return t
}

// LoadTables reads towns.yaml, dungeons.yaml, creatures.yaml and
// merchants.yaml from dir.
func LoadTables(dir string) (*Tables, error) {
	return load(func(name string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, name))
	})
}

func load(read func(name string) ([]byte, error)) (*Tables, error) {
	t := &Tables{}
	files := []struct {
		name string
		out  any
	}{
		{"towns.yaml", &t.Towns},
		{"dungeons.yaml", &t.Dungeons},
		{"creatures.yaml", &t.Creatures},
		{"merchants.yaml", &t.Merchants},
	}
	for _, f := range files {
		raw, err := read(f.name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.name, err)
		}
		if err := yaml.Unmarshal(raw, f.out); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f.name, err)
		}
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tables) validate() error {
	if len(t.Towns) == 0 || !t.Towns[0].Capital {
		return fmt.Errorf("towns: first slot must be the capital")
	}
	for i, s := range t.Towns[1:] {
		if s.Capital {
			return fmt.Errorf("towns: slot %d is a second capital", i+1)
		}
	}
	total := 0
	for _, r := range t.Merchants.Rarities {
		if r.Weight < 0 {
			return fmt.Errorf("merchants: negative weight for %s", r.Rarity)
		}
		total += r.Weight
	}
	if total == 0 {
		return fmt.Errorf("merchants: rarity weights sum to zero")
	}
	if len(t.Merchants.Goods) == 0 {
		return fmt.Errorf("merchants: no goods")
	}
	return nil
}
