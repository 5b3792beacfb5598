package card

import "testing"

func TestRegisterAndLookup(t *testing.T) {
	Register("test_db_lookup_card", func() *Card {
		return &Card{Name: "Test Lookup Card", TypeLine: []Type{TypeCreature}, Power: 1, Toughness: 1}
	})
	c := Lookup("test_db_lookup_card")
	if c.ID != "test_db_lookup_card" {
		t.Fatalf("expected Lookup to auto-fill ID, got %q", c.ID)
	}
	if c.Name != "Test Lookup Card" {
		t.Fatalf("unexpected name %q", c.Name)
	}
}

func TestRegisterPanicsOnDuplicate(t *testing.T) {
	Register("test_db_duplicate_card", func() *Card { return &Card{} })
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a duplicate registration to panic")
		}
	}()
	Register("test_db_duplicate_card", func() *Card { return &Card{} })
}

func TestLookupPanicsOnUnknownCard(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected looking up an unregistered card to panic")
		}
	}()
	Lookup("test_db_no_such_card")
}

func TestBuildDBRejectsUnknownEffectKind(t *testing.T) {
	Register("test_db_bad_effect_card", func() *Card {
		return &Card{
			Name: "Bad Effect Card", TypeLine: []Type{TypeInstant},
			Rules: RulesBlock{Effects: []EffectSpec{{Kind: EffectKind("NOT_A_REAL_EFFECT")}}},
		}
	})
	if _, err := BuildDB(); err == nil {
		t.Fatalf("expected BuildDB to reject an unknown effect kind")
	}
	delete(Registry, "test_db_bad_effect_card")
}

func TestBuildDBAcceptsValidRegistry(t *testing.T) {
	Register("test_db_good_card", func() *Card {
		return &Card{
			Name: "Good Card", TypeLine: []Type{TypeInstant},
			Rules: RulesBlock{
				Targets: TargetSpec{Groups: []TargetGroup{{Selector: SelectorAnyTarget, Min: 1, Max: 1}}},
				Effects: []EffectSpec{{Kind: EffectDealDamage, Amount: 3, GroupIdx: 0}},
			},
		}
	})
	db, err := BuildDB()
	if err != nil {
		t.Fatalf("BuildDB: %v", err)
	}
	c, ok := db.Get("test_db_good_card")
	if !ok {
		t.Fatalf("expected the registered card to appear in the built db")
	}
	if c.Rules.Effects[0].Amount != 3 {
		t.Fatalf("unexpected effect amount %d", c.Rules.Effects[0].Amount)
	}
}
