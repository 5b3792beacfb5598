// Package pool is the bundled phase-1 card pool: a curated set of card
// definitions covering most keywords and effect kinds the engine supports
// (no pool card has FLASH, and several effect kinds such as COPY_SPELL,
// REVEAL and ATTACH appear in no card), registered into card.Registry the way the teacher registers each named
// card constructor into its CardRegistry.
package pool

import "github.com/arcanecore/phase1/internal/card"

func init() {
	card.Register("basic_plains", BasicPlains)
	card.Register("basic_island", BasicIsland)
	card.Register("basic_swamp", BasicSwamp)
	card.Register("basic_mountain", BasicMountain)
	card.Register("basic_forest", BasicForest)
}

func basicLand(id, name string, produces card.Color) *card.Card {
	return &card.Card{
		ID:       id,
		Name:     name,
		TypeLine: []card.Type{card.TypeLand},
		Subtypes: []string{name},
		Rules: card.RulesBlock{
			ActivatedAbilities: []card.ActivatedAbility{
				{
					Timing: card.TimingMana,
					Costs:  []card.Cost{{Kind: card.CostTap}},
					Effects: []card.EffectSpec{
						{Kind: card.EffectAddMana, GroupIdx: -1, Subtype: string(produces), Amount: 1},
					},
				},
			},
		},
	}
}

func BasicPlains() *card.Card   { return basicLand("basic_plains", "Plains", card.White) }
func BasicIsland() *card.Card   { return basicLand("basic_island", "Island", card.Blue) }
func BasicSwamp() *card.Card    { return basicLand("basic_swamp", "Swamp", card.Black) }
func BasicMountain() *card.Card { return basicLand("basic_mountain", "Mountain", card.Red) }
func BasicForest() *card.Card   { return basicLand("basic_forest", "Forest", card.Green) }
