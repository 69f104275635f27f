package world

import "errors"

type StaticKind string

const (
	StaticTown          StaticKind = "town"
	StaticDungeon       StaticKind = "dungeon_entrance"
	StaticPortal        StaticKind = "portal"
	StaticHiddenPath    StaticKind = "hidden_path"
	StaticTreasureChest StaticKind = "treasure_chest"
	StaticRareSpawn     StaticKind = "rare_spawn"
)

type TownBuildings struct {
	Inn        bool `json:"inn"`
	Shop       bool `json:"shop"`
	Blacksmith bool `json:"blacksmith"`
	Temple     bool `json:"temple"`
	Guild      bool `json:"guild"`
}

type TownInfo struct {
	Level     int           `json:"level"`
	Faction   string        `json:"faction"`
	Capital   bool          `json:"capital"`
	Buildings TownBuildings `json:"buildings"`
}

type DungeonDifficulty string

const (
	DifficultyEasy      DungeonDifficulty = "easy"
	DifficultyMedium    DungeonDifficulty = "medium"
	DifficultyHard      DungeonDifficulty = "hard"
	DifficultyLegendary DungeonDifficulty = "legendary"
)

type DungeonInfo struct {
	Difficulty       DungeonDifficulty `json:"difficulty"`
	Floors           int               `json:"floors"`
	RecommendedLevel int               `json:"recommended_level"`
}

type PortalInfo struct {
	LinkedPortalID string `json:"linked_portal_id,omitempty"`
}

type HiddenPathInfo struct {
	Discovered bool `json:"discovered"`
	LootTier   int  `json:"loot_tier"`
}

type TreasureChestInfo struct {
	Opened   bool `json:"opened"`
	LootTier int  `json:"loot_tier"`
	Gold     int  `json:"gold"`
}

type RareSpawnInfo struct {
	EnemyID   string `json:"enemy_id"`
	EnemyName string `json:"enemy_name"`
	Level     int    `json:"level"`
	Defeated  bool   `json:"defeated"`
}

// StaticObject is a permanent point of interest anchored to one tile.
// Exactly one of the variant payloads is set, matching Kind.
type StaticObject struct {
	ID       string     `json:"id"`
	Kind     StaticKind `json:"kind"`
	Position Point      `json:"position"`
	Name     string     `json:"name"`

	Town          *TownInfo          `json:"town,omitempty"`
	Dungeon       *DungeonInfo       `json:"dungeon,omitempty"`
	Portal        *PortalInfo        `json:"portal,omitempty"`
	HiddenPath    *HiddenPathInfo    `json:"hidden_path,omitempty"`
	TreasureChest *TreasureChestInfo `json:"treasure_chest,omitempty"`
	RareSpawn     *RareSpawnInfo     `json:"rare_spawn,omitempty"`
}

var (
	ErrInvalidStaticObject = errors.New("invalid static object")
	ErrWrongObjectKind     = errors.New("wrong object kind")
)

func (o StaticObject) Validate() error {
	if o.ID == "" || o.Kind == "" {
		return ErrInvalidStaticObject
	}
	set := 0
	match := false
	check := func(present bool, kind StaticKind) {
		if present {
			set++
			match = match || o.Kind == kind
		}
	}
	check(o.Town != nil, StaticTown)
	check(o.Dungeon != nil, StaticDungeon)
	check(o.Portal != nil, StaticPortal)
	check(o.HiddenPath != nil, StaticHiddenPath)
	check(o.TreasureChest != nil, StaticTreasureChest)
	check(o.RareSpawn != nil, StaticRareSpawn)
	if set != 1 || !match {
		return ErrInvalidStaticObject
	}
	return nil
}

func (o *StaticObject) MarkDiscovered() error {
	if o.HiddenPath == nil {
		return ErrWrongObjectKind
	}
	o.HiddenPath.Discovered = true
	return nil
}

func (o *StaticObject) MarkOpened() error {
	if o.TreasureChest == nil {
		return ErrWrongObjectKind
	}
	o.TreasureChest.Opened = true
	return nil
}

func (o *StaticObject) MarkDefeated() error {
	if o.RareSpawn == nil {
		return ErrWrongObjectKind
	}
	o.RareSpawn.Defeated = true
	return nil
}

// clone copies the variant payload so the result shares no pointers with o.
func (o StaticObject) clone() StaticObject {
	out := o
	if o.Town != nil {
		v := *o.Town
		out.Town = &v
	}
	if o.Dungeon != nil {
		v := *o.Dungeon
		out.Dungeon = &v
	}
	if o.Portal != nil {
		v := *o.Portal
		out.Portal = &v
	}
	if o.HiddenPath != nil {
		v := *o.HiddenPath
		out.HiddenPath = &v
	}
	if o.TreasureChest != nil {
		v := *o.TreasureChest
		out.TreasureChest = &v
	}
	if o.RareSpawn != nil {
		v := *o.RareSpawn
		out.RareSpawn = &v
	}
	return out
}
