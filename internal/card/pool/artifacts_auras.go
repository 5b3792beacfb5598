package pool

import "github.com/arcanecore/phase1/internal/card"

func init() {
	card.Register("blade_of_valor", BladeOfValor)
	card.Register("consuming_vines", ConsumingVines)
	card.Register("demon_token", DemonToken)
}

// BladeOfValor — Equipment, +2/+0, equip cost 2.
func BladeOfValor() *card.Card {
	return &card.Card{
		Name: "Blade of Valor", TypeLine: []card.Type{card.TypeArtifact}, Subtypes: []string{"Equipment"},
		ManaCost: card.ManaCost{Generic: 2},
		Rules: card.RulesBlock{
			AttachesAs: "EQUIPMENT",
			EquipCost:  &card.ManaCost{Generic: 2},
			StaticAbilities: []card.StaticAbility{
				{AppliesTo: card.SelectorTargetEquippedCreature, Effect: card.EffectSpec{Kind: card.EffectModifyPT, PTBonus: [2]int{2, 0}}},
			},
		},
	}
}

// ConsumingVines — Aura, enchant creature, enchanted creature gets -3/-3.
func ConsumingVines() *card.Card {
	return &card.Card{
		Name: "Consuming Vines", TypeLine: []card.Type{card.TypeEnchantment}, Subtypes: []string{"Aura"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Green: 1}},
		Colors:   []card.Color{card.Green},
		Rules: card.RulesBlock{
			AttachesAs: "AURA",
			Targets:    card.TargetSpec{Groups: []card.TargetGroup{{Selector: card.SelectorTargetCreature, Min: 1, Max: 1}}},
			StaticAbilities: []card.StaticAbility{
				{AppliesTo: card.SelectorTargetEnchantedCreature, Effect: card.EffectSpec{Kind: card.EffectModifyPT, PTBonus: [2]int{-3, -3}}},
			},
		},
	}
}

// DemonToken — the 3/3 black Demon token produced by Spawn of the Pit.
func DemonToken() *card.Card {
	return &card.Card{
		Name: "Demon", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Demon"},
		Colors: []card.Color{card.Black}, Power: 3, Toughness: 3,
		IsToken: true,
	}
}
