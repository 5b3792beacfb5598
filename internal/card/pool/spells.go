package pool

import "github.com/arcanecore/phase1/internal/card"

func init() {
	card.Register("lightning_bolt", LightningBolt)
	card.Register("doom_blade", DoomBlade)
	card.Register("banishing_light", BanishingLight)
	card.Register("unsummon", Unsummon)
	card.Register("arcane_denial", ArcaneDenial)
	card.Register("divination", Divination)
	card.Register("mind_rot", MindRot)
	card.Register("healing_salve", HealingSalve)
	card.Register("drain_essence", DrainEssence)
	card.Register("dark_ritual", DarkRitual)
	card.Register("raise_the_dead", RaiseTheDead)
	card.Register("spawn_of_the_pit", SpawnOfThePit)
	card.Register("scout_the_horizon", ScoutTheHorizon)
	card.Register("foresee", Foresee)
	card.Register("incite_rivalry", InciteRivalry)
	card.Register("fireball", Fireball)
	card.Register("cinder_echo", CinderEcho)
	card.Register("temporal_surge", TemporalSurge)
}

// LightningBolt — deal 3 damage to any target.
func LightningBolt() *card.Card {
	return &card.Card{
		Name: "Lightning Bolt", TypeLine: []card.Type{card.TypeInstant},
		ManaCost: card.ManaCost{Colored: map[card.Color]int{card.Red: 1}},
		Colors:   []card.Color{card.Red},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorAnyTarget, Min: 1, Max: 1}}},
			Effects: []card.EffectSpec{{Kind: card.EffectDealDamage, Amount: 3, GroupIdx: 0}},
		},
	}
}

// DoomBlade — destroy target creature.
func DoomBlade() *card.Card {
	return &card.Card{
		Name: "Doom Blade", TypeLine: []card.Type{card.TypeInstant},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Black: 1}},
		Colors:   []card.Color{card.Black},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetCreature, Min: 1, Max: 1}}},
			Effects: []card.EffectSpec{{Kind: card.EffectDestroy, GroupIdx: 0}},
		},
	}
}

// BanishingLight — exile target permanent.
func BanishingLight() *card.Card {
	return &card.Card{
		Name: "Banishing Light", TypeLine: []card.Type{card.TypeEnchantment},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.White: 1}},
		Colors:   []card.Color{card.White},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetPermanent, Min: 1, Max: 1}}},
			TriggeredAbilities: []card.TriggeredAbility{
				{
					Kind:       card.TriggerETB,
					Controller: "YOU",
					Effects:    []card.EffectSpec{{Kind: card.EffectExile, GroupIdx: 0}},
				},
			},
		},
	}
}

// Unsummon — return target creature to its owner's hand.
func Unsummon() *card.Card {
	return &card.Card{
		Name: "Unsummon", TypeLine: []card.Type{card.TypeInstant},
		ManaCost: card.ManaCost{Colored: map[card.Color]int{card.Blue: 1}},
		Colors:   []card.Color{card.Blue},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetCreature, Min: 1, Max: 1}}},
			Effects: []card.EffectSpec{{Kind: card.EffectReturnToZone, Zone: "HAND", GroupIdx: 0}},
		},
	}
}

// ArcaneDenial — counter target spell.
func ArcaneDenial() *card.Card {
	return &card.Card{
		Name: "Arcane Denial", TypeLine: []card.Type{card.TypeInstant},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Blue: 1}},
		Colors:   []card.Color{card.Blue},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetSpell, Min: 1, Max: 1}}},
			Effects: []card.EffectSpec{{Kind: card.EffectCounterSpell, GroupIdx: 0}},
		},
	}
}

// Divination — draw two cards.
func Divination() *card.Card {
	return &card.Card{
		Name: "Divination", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Generic: 2, Colored: map[card.Color]int{card.Blue: 1}},
		Colors:   []card.Color{card.Blue},
		Rules: card.RulesBlock{
			Effects: []card.EffectSpec{{Kind: card.EffectDrawCards, Amount: 2, GroupIdx: -1}},
		},
	}
}

// MindRot — target player discards two cards.
func MindRot() *card.Card {
	return &card.Card{
		Name: "Mind Rot", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Generic: 2, Colored: map[card.Color]int{card.Black: 1}},
		Colors:   []card.Color{card.Black},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetPlayer, Min: 1, Max: 1}}},
			Effects: []card.EffectSpec{{Kind: card.EffectDiscardCards, Amount: 2, GroupIdx: 0}},
		},
	}
}

// HealingSalve — target player gains 3 life.
func HealingSalve() *card.Card {
	return &card.Card{
		Name: "Healing Salve", TypeLine: []card.Type{card.TypeInstant},
		ManaCost: card.ManaCost{Colored: map[card.Color]int{card.White: 1}},
		Colors:   []card.Color{card.White},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetPlayer, Min: 1, Max: 1}}},
			Effects: []card.EffectSpec{{Kind: card.EffectGainLife, Amount: 3, GroupIdx: 0}},
		},
	}
}

// DrainEssence — target player loses 2 life, you gain 2 life.
func DrainEssence() *card.Card {
	return &card.Card{
		Name: "Drain Essence", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Black: 1}},
		Colors:   []card.Color{card.Black},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetOpponentPlayer, Min: 1, Max: 1}}},
			Effects: []card.EffectSpec{
				{Kind: card.EffectLoseLife, Amount: 2, GroupIdx: 0},
				{Kind: card.EffectGainLife, Amount: 2, GroupIdx: -1},
			},
		},
	}
}

// DarkRitual — add three black mana.
func DarkRitual() *card.Card {
	return &card.Card{
		Name: "Dark Ritual", TypeLine: []card.Type{card.TypeInstant},
		ManaCost: card.ManaCost{Colored: map[card.Color]int{card.Black: 1}},
		Colors:   []card.Color{card.Black},
		Rules: card.RulesBlock{
			Effects: []card.EffectSpec{{Kind: card.EffectAddMana, Subtype: string(card.Black), Amount: 3, GroupIdx: -1}},
		},
	}
}

// RaiseTheDead — return target creature on the battlefield to its owner's
// hand, flashback from the graveyard itself. Creature cards in a graveyard
// are not legal targets.
func RaiseTheDead() *card.Card {
	return &card.Card{
		Name: "Raise the Dead", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Colored: map[card.Color]int{card.Black: 1}},
		Colors:   []card.Color{card.Black},
		Rules: card.RulesBlock{
			Targets:       card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetCreature, Min: 1, Max: 1}}},
			Effects:       []card.EffectSpec{{Kind: card.EffectReturnToZone, Zone: "HAND", GroupIdx: 0}},
			FlashbackCost: &card.ManaCost{Generic: 2, Colored: map[card.Color]int{card.Black: 1}},
		},
	}
}

// SpawnOfThePit — create a 3/3 black Demon creature token.
func SpawnOfThePit() *card.Card {
	return &card.Card{
		Name: "Spawn of the Pit", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Generic: 3, Colored: map[card.Color]int{card.Black: 1}},
		Colors:   []card.Color{card.Black},
		Rules: card.RulesBlock{
			Effects: []card.EffectSpec{{Kind: card.EffectCreateToken, TokenID: "demon_token", GroupIdx: -1}},
		},
	}
}

// ScoutTheHorizon — search your library for a basic land, put it into hand.
func ScoutTheHorizon() *card.Card {
	return &card.Card{
		Name: "Scout the Horizon", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Green: 1}},
		Colors:   []card.Color{card.Green},
		Rules: card.RulesBlock{
			Effects: []card.EffectSpec{{Kind: card.EffectSearchLibrary, Zone: "HAND", GroupIdx: -1}},
		},
	}
}

// Foresee — scry 3, then draw a card.
func Foresee() *card.Card {
	return &card.Card{
		Name: "Foresee", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Generic: 2, Colored: map[card.Color]int{card.Blue: 1}},
		Colors:   []card.Color{card.Blue},
		Rules: card.RulesBlock{
			Effects: []card.EffectSpec{
				{Kind: card.EffectScry, ScryN: 3, GroupIdx: -1},
				{Kind: card.EffectDrawCards, Amount: 1, GroupIdx: -1},
			},
		},
	}
}

// InciteRivalry — goad target creature.
func InciteRivalry() *card.Card {
	return &card.Card{
		Name: "Incite Rivalry", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Colored: map[card.Color]int{card.Red: 1}},
		Colors:   []card.Color{card.Red},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetCreature, Min: 1, Max: 1}}},
			Effects: []card.EffectSpec{{Kind: card.EffectGoad, GroupIdx: 0}},
		},
	}
}

// Fireball — deal X damage to any target.
func Fireball() *card.Card {
	return &card.Card{
		Name: "Fireball", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Colored: map[card.Color]int{card.Red: 1}, X: true},
		Colors:   []card.Color{card.Red},
		Rules: card.RulesBlock{
			Targets: card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorAnyTarget, Min: 1, Max: 1}}},
			Effects: []card.EffectSpec{{Kind: card.EffectDealDamage, GroupIdx: 0}}, // Amount resolved from X at cast time
		},
	}
}

// CinderEcho — deal 2 damage to target creature, flashback.
func CinderEcho() *card.Card {
	return &card.Card{
		Name: "Cinder Echo", TypeLine: []card.Type{card.TypeInstant},
		ManaCost: card.ManaCost{Colored: map[card.Color]int{card.Red: 1}},
		Colors:   []card.Color{card.Red},
		Rules: card.RulesBlock{
			Targets:       card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetCreature, Min: 1, Max: 1}}},
			Effects:       []card.EffectSpec{{Kind: card.EffectDealDamage, Amount: 2, GroupIdx: 0}},
			FlashbackCost: &card.ManaCost{Generic: 2, Colored: map[card.Color]int{card.Red: 1}},
		},
	}
}

// TemporalSurge — take an extra turn after this one.
func TemporalSurge() *card.Card {
	return &card.Card{
		Name: "Temporal Surge", TypeLine: []card.Type{card.TypeSorcery},
		ManaCost: card.ManaCost{Generic: 3, Colored: map[card.Color]int{card.Blue: 2}},
		Colors:   []card.Color{card.Blue},
		Rules: card.RulesBlock{
			Effects: []card.EffectSpec{{Kind: card.EffectGrantExtraTurn, GroupIdx: -1}},
		},
	}
}
