package world

import (
	"errors"
	"time"
)

type DynamicKind string

const (
	DynamicEncounter         DynamicKind = "encounter"
	DynamicResourceNode      DynamicKind = "resource_node"
	DynamicRandomEvent       DynamicKind = "random_event"
	DynamicWanderingMonster  DynamicKind = "wandering_monster"
	DynamicTravelingMerchant DynamicKind = "traveling_merchant"
)

type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

type EncounterInfo struct {
	EnemyType string `json:"enemy_type"`
	Level     int    `json:"level"`
	GroupSize int    `json:"group_size"`
}

type ResourceNodeInfo struct {
	ResourceType string    `json:"resource_type"`
	Amount       int       `json:"amount"`
	RespawnAt    time.Time `json:"respawn_at"`
}

type RandomEventInfo struct {
	EventType   string `json:"event_type"`
	Description string `json:"description"`
}

type WanderingMonsterInfo struct {
	MonsterType  string `json:"monster_type"`
	Level        int    `json:"level"`
	PatrolRadius int    `json:"patrol_radius"`
}

type MerchantItem struct {
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
	Price  int    `json:"price"`
}

type TravelingMerchantInfo struct {
	MerchantName string         `json:"merchant_name"`
	Inventory    []MerchantItem `json:"inventory"`
}

// DynamicObject is a transient entity placed by position. It is not owned by
// a tile and several may share one.
type DynamicObject struct {
	ID        string      `json:"id"`
	Kind      DynamicKind `json:"kind"`
	Position  Point       `json:"position"`
	SpawnedAt time.Time   `json:"spawned_at"`
	DespawnAt *time.Time  `json:"despawn_at,omitempty"`
	Active    bool        `json:"active"`

	Encounter         *EncounterInfo         `json:"encounter,omitempty"`
	ResourceNode      *ResourceNodeInfo      `json:"resource_node,omitempty"`
	RandomEvent       *RandomEventInfo       `json:"random_event,omitempty"`
	WanderingMonster  *WanderingMonsterInfo  `json:"wandering_monster,omitempty"`
	TravelingMerchant *TravelingMerchantInfo `json:"traveling_merchant,omitempty"`
}

var ErrInvalidDynamicObject = errors.New("invalid dynamic object")

func (o DynamicObject) Validate() error {
	if o.ID == "" || o.Kind == "" {
		return ErrInvalidDynamicObject
	}
	var ok bool
	switch o.Kind {
	case DynamicEncounter:
		ok = o.Encounter != nil
	case DynamicResourceNode:
		ok = o.ResourceNode != nil
	case DynamicRandomEvent:
		ok = o.RandomEvent != nil
	case DynamicWanderingMonster:
		ok = o.WanderingMonster != nil
	case DynamicTravelingMerchant:
		ok = o.TravelingMerchant != nil
	}
	if !ok {
		return ErrInvalidDynamicObject
	}
	return nil
}

// Live reports whether the object is active and not past its despawn time.
func (o DynamicObject) Live(now time.Time) bool {
	if !o.Active {
		return false
	}
	return o.DespawnAt == nil || now.Before(*o.DespawnAt)
}

func (o *DynamicObject) Deactivate() {
	o.Active = false
}

func (o DynamicObject) clone() DynamicObject {
	out := o
	if o.DespawnAt != nil {
		v := *o.DespawnAt
		out.DespawnAt = &v
	}
	if o.Encounter != nil {
		v := *o.Encounter
		out.Encounter = &v
	}
	if o.ResourceNode != nil {
		v := *o.ResourceNode
		out.ResourceNode = &v
	}
	if o.RandomEvent != nil {
		v := *o.RandomEvent
		out.RandomEvent = &v
	}
	if o.WanderingMonster != nil {
		v := *o.WanderingMonster
		out.WanderingMonster = &v
	}
	if o.TravelingMerchant != nil {
		v := *o.TravelingMerchant
		v.Inventory = append([]MerchantItem(nil), o.TravelingMerchant.Inventory...)
		out.TravelingMerchant = &v
	}
	return out
}
