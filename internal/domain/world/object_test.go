package world

import (
	"errors"
	"testing"
)

func TestStaticObjectValidity(t *testing.T) {
	o := StaticObject{ID: "town_0", Kind: StaticTown, Position: Point{X: 1, Y: 2}, Town: &TownInfo{Level: 1}}
	if err := o.Validate(); err != nil {
		t.Fatalf("expected valid object, got %v", err)
	}

	bad := StaticObject{ID: "", Kind: StaticTown, Town: &TownInfo{}}
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected invalid object without id")
	}

	mismatch := StaticObject{ID: "portal_0", Kind: StaticPortal, Town: &TownInfo{}}
	if err := mismatch.Validate(); !errors.Is(err, ErrInvalidStaticObject) {
		t.Fatalf("expected kind/payload mismatch to be invalid, got %v", err)
	}

	both := StaticObject{ID: "portal_0", Kind: StaticPortal, Portal: &PortalInfo{}, Town: &TownInfo{}}
	if err := both.Validate(); err == nil {
		t.Fatalf("expected two payloads to be invalid")
	}
}

func TestStaticObjectGameplayFlags(t *testing.T) {
	chest := StaticObject{ID: "chest_0", Kind: StaticTreasureChest, TreasureChest: &TreasureChestInfo{LootTier: 2, Gold: 40}}
	if err := chest.MarkOpened(); err != nil {
		t.Fatalf("MarkOpened error: %v", err)
	}
	if !chest.TreasureChest.Opened {
		t.Fatalf("expected chest to be opened")
	}
	if err := chest.MarkDefeated(); !errors.Is(err, ErrWrongObjectKind) {
		t.Fatalf("expected ErrWrongObjectKind, got %v", err)
	}

	path := StaticObject{ID: "hidden_0", Kind: StaticHiddenPath, HiddenPath: &HiddenPathInfo{LootTier: 1}}
	if err := path.MarkDiscovered(); err != nil || !path.HiddenPath.Discovered {
		t.Fatalf("expected hidden path to be discovered, err=%v", err)
	}

	rare := StaticObject{ID: "rare_0", Kind: StaticRareSpawn, RareSpawn: &RareSpawnInfo{EnemyID: "wyrm"}}
	if err := rare.MarkDefeated(); err != nil || !rare.RareSpawn.Defeated {
		t.Fatalf("expected rare spawn to be defeated, err=%v", err)
	}
}

func TestStaticObjectCloneDoesNotSharePayload(t *testing.T) {
	chest := StaticObject{ID: "chest_0", Kind: StaticTreasureChest, TreasureChest: &TreasureChestInfo{}}
	cp := chest.clone()
	if err := cp.MarkOpened(); err != nil {
		t.Fatalf("MarkOpened error: %v", err)
	}
	if chest.TreasureChest.Opened {
		t.Fatalf("expected original chest to stay closed")
	}
}
