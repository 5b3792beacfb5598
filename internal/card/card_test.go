package card

import "testing"

func TestManaCostString(t *testing.T) {
	cases := []struct {
		name string
		cost ManaCost
		want string
	}{
		{"zero", ManaCost{}, "{0}"},
		{"generic only", ManaCost{Generic: 3}, "{3}"},
		{"colored WUBRG order", ManaCost{Colored: map[Color]int{Green: 1, White: 2}}, "{W}{W}{G}"},
		{"generic then colored", ManaCost{Generic: 2, Colored: map[Color]int{Black: 1}}, "{2}{B}"},
		{"X spell", ManaCost{X: true, Colored: map[Color]int{Blue: 1}}, "{X}{U}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cost.String(); got != tc.want {
				t.Fatalf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHasTypeAndIsPermanent(t *testing.T) {
	creature := &Card{TypeLine: []Type{TypeCreature}}
	if !creature.HasType(TypeCreature) {
		t.Fatalf("expected creature to have type CREATURE")
	}
	if creature.HasType(TypeInstant) {
		t.Fatalf("creature should not have type INSTANT")
	}
	if !creature.IsPermanent() {
		t.Fatalf("a creature is a permanent")
	}

	instant := &Card{TypeLine: []Type{TypeInstant}}
	if instant.IsPermanent() {
		t.Fatalf("an instant is not a permanent")
	}

	land := &Card{TypeLine: []Type{TypeLand}}
	if !land.IsPermanent() {
		t.Fatalf("a land is a permanent")
	}
}

func TestRulesBlockHasKeyword(t *testing.T) {
	r := RulesBlock{Keywords: []Keyword{Flying, Trample}}
	if !r.HasKeyword(Flying) {
		t.Fatalf("expected Flying to be present")
	}
	if r.HasKeyword(Haste) {
		t.Fatalf("did not expect Haste to be present")
	}
}

func TestCanonicalCardIDResolvesBasicLandAliases(t *testing.T) {
	if got := CanonicalCardID("forest"); got != "basic_forest" {
		t.Fatalf("expected forest alias to resolve to basic_forest, got %q", got)
	}
	if got := CanonicalCardID("basic_forest"); got != "basic_forest" {
		t.Fatalf("expected a canonical id to pass through unchanged, got %q", got)
	}
	if got := CanonicalCardID("lightning_bolt"); got != "lightning_bolt" {
		t.Fatalf("expected a non-land id to pass through unchanged, got %q", got)
	}
}

func TestIsKnownEffectKind(t *testing.T) {
	if !IsKnownEffectKind(EffectDealDamage) {
		t.Fatalf("EffectDealDamage should be known")
	}
	if IsKnownEffectKind(EffectKind("NOT_A_REAL_EFFECT")) {
		t.Fatalf("an unregistered effect kind should not be known")
	}
}
