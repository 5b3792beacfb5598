package pool

import (
	"testing"

	"github.com/arcanecore/phase1/internal/card"
)

func TestBundledPoolBuildsWithoutError(t *testing.T) {
	db, err := card.BuildDB()
	if err != nil {
		t.Fatalf("BuildDB: %v", err)
	}
	if len(db) != len(card.Registry) {
		t.Fatalf("expected built db to cover every registered card, got %d of %d", len(db), len(card.Registry))
	}
}

func TestEveryRegisteredCardHasAnID(t *testing.T) {
	for id, ctor := range card.Registry {
		c := ctor()
		if c.ID != "" && c.ID != id {
			t.Fatalf("card constructor for %q set a mismatched ID %q", id, c.ID)
		}
		if c.Name == "" {
			t.Fatalf("card %q has no name", id)
		}
		if len(c.TypeLine) == 0 {
			t.Fatalf("card %q has no type line", id)
		}
	}
}

func TestBasicLandAliasesResolveToRegisteredCards(t *testing.T) {
	db, err := card.BuildDB()
	if err != nil {
		t.Fatalf("BuildDB: %v", err)
	}
	for alias, canonical := range card.LandAliases {
		c, ok := db.Get(alias)
		if !ok {
			t.Fatalf("alias %q did not resolve to a registered card", alias)
		}
		want, ok := db.Get(canonical)
		if !ok {
			t.Fatalf("canonical id %q is not registered", canonical)
		}
		if c.ID != want.ID {
			t.Fatalf("alias %q resolved to %q, want %q", alias, c.ID, want.ID)
		}
	}
}

func TestBasicForestTapsForGreenMana(t *testing.T) {
	forest := BasicForest()
	var manaAbility *card.ActivatedAbility
	for i := range forest.Rules.ActivatedAbilities {
		if forest.Rules.ActivatedAbilities[i].Timing == card.TimingMana {
			manaAbility = &forest.Rules.ActivatedAbilities[i]
		}
	}
	if manaAbility == nil {
		t.Fatalf("expected Forest to carry a mana ability")
	}
	if len(manaAbility.Effects) != 1 || manaAbility.Effects[0].Subtype != string(card.Green) {
		t.Fatalf("expected Forest's mana ability to produce green, got %+v", manaAbility.Effects)
	}
}
