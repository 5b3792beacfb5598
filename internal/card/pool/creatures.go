package pool

import "github.com/arcanecore/phase1/internal/card"

func init() {
	card.Register("grizzly_bear", GrizzlyBear)
	card.Register("raging_wolf", RagingWolf)
	card.Register("cloud_sprite", CloudSprite)
	card.Register("watchful_sentinel", WatchfulSentinel)
	card.Register("keen_duelist", KeenDuelist)
	card.Register("relentless_blade", RelentlessBlade)
	card.Register("venomous_asp", VenomousAsp)
	card.Register("trampling_behemoth", TramplingBehemoth)
	card.Register("marsh_stalker", MarshStalker)
	card.Register("masked_rogue", MaskedRogue)
	card.Register("stone_golem", StoneGolem)
	card.Register("vampiric_initiate", VampiricInitiate)
	card.Register("wall_of_reeds", WallOfReeds)
	card.Register("archive_scribe", ArchiveScribe)
	card.Register("elder_of_the_grove", ElderOfTheGrove)
	card.Register("warded_acolyte", WardedAcolyte)
}

// GrizzlyBear — vanilla 2/2, no keywords.
func GrizzlyBear() *card.Card {
	return &card.Card{
		Name: "Grizzly Bear", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Bear"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Green: 1}},
		Colors:   []card.Color{card.Green}, Power: 2, Toughness: 2,
	}
}

// RagingWolf — 2/1 Haste.
func RagingWolf() *card.Card {
	return &card.Card{
		Name: "Raging Wolf", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Wolf"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Red: 1}},
		Colors:   []card.Color{card.Red}, Power: 2, Toughness: 1,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Haste}},
	}
}

// CloudSprite — 1/1 Flying.
func CloudSprite() *card.Card {
	return &card.Card{
		Name: "Cloud Sprite", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Spirit"},
		ManaCost: card.ManaCost{Generic: 0, Colored: map[card.Color]int{card.Blue: 1}},
		Colors:   []card.Color{card.Blue}, Power: 1, Toughness: 1,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Flying}},
	}
}

// WatchfulSentinel — 2/3 Vigilance, Reach.
func WatchfulSentinel() *card.Card {
	return &card.Card{
		Name: "Watchful Sentinel", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Human", "Soldier"},
		ManaCost: card.ManaCost{Generic: 2, Colored: map[card.Color]int{card.White: 1}},
		Colors:   []card.Color{card.White}, Power: 2, Toughness: 3,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Vigilance, card.Reach}},
	}
}

// KeenDuelist — 2/1 First Strike.
func KeenDuelist() *card.Card {
	return &card.Card{
		Name: "Keen Duelist", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Human", "Knight"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.White: 1}},
		Colors:   []card.Color{card.White}, Power: 2, Toughness: 1,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.FirstStrike}},
	}
}

// RelentlessBlade — 2/2 Double Strike.
func RelentlessBlade() *card.Card {
	return &card.Card{
		Name: "Relentless Blade", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Human", "Knight"},
		ManaCost: card.ManaCost{Generic: 2, Colored: map[card.Color]int{card.Red: 1, card.White: 1}},
		Colors:   []card.Color{card.Red, card.White}, Power: 2, Toughness: 2,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.DoubleStrike}},
	}
}

// VenomousAsp — 1/1 Deathtouch.
func VenomousAsp() *card.Card {
	return &card.Card{
		Name: "Venomous Asp", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Snake"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Black: 1}},
		Colors:   []card.Color{card.Black}, Power: 1, Toughness: 1,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Deathtouch}},
	}
}

// TramplingBehemoth — 5/5 Trample.
func TramplingBehemoth() *card.Card {
	return &card.Card{
		Name: "Trampling Behemoth", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Beast"},
		ManaCost: card.ManaCost{Generic: 3, Colored: map[card.Color]int{card.Green: 2}},
		Colors:   []card.Color{card.Green}, Power: 5, Toughness: 5,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Trample}},
	}
}

// MarshStalker — 2/2 Menace.
func MarshStalker() *card.Card {
	return &card.Card{
		Name: "Marsh Stalker", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Zombie"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Black: 1}},
		Colors:   []card.Color{card.Black}, Power: 2, Toughness: 2,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Menace}},
	}
}

// MaskedRogue — 3/2 Hexproof.
func MaskedRogue() *card.Card {
	return &card.Card{
		Name: "Masked Rogue", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Human", "Rogue"},
		ManaCost: card.ManaCost{Generic: 2, Colored: map[card.Color]int{card.Blue: 1}},
		Colors:   []card.Color{card.Blue}, Power: 3, Toughness: 2,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Hexproof}},
	}
}

// StoneGolem — 0/4 Defender, Indestructible.
func StoneGolem() *card.Card {
	return &card.Card{
		Name: "Stone Golem", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Golem"},
		ManaCost: card.ManaCost{Generic: 3},
		Power:    0, Toughness: 4,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Defender, card.Indestructible}},
	}
}

// VampiricInitiate — 2/2 Lifelink.
func VampiricInitiate() *card.Card {
	return &card.Card{
		Name: "Vampiric Initiate", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Vampire"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Black: 1}},
		Colors:   []card.Color{card.Black}, Power: 2, Toughness: 2,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Lifelink}},
	}
}

// WallOfReeds — 0/5 Defender.
func WallOfReeds() *card.Card {
	return &card.Card{
		Name: "Wall of Reeds", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Wall"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Green: 1}},
		Colors:   []card.Color{card.Green}, Power: 0, Toughness: 5,
		Rules: card.RulesBlock{Keywords: []card.Keyword{card.Defender}},
	}
}

// ArchiveScribe — 1/1, ETB: draw a card.
func ArchiveScribe() *card.Card {
	return &card.Card{
		Name: "Archive Scribe", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Human", "Wizard"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Blue: 1}},
		Colors:   []card.Color{card.Blue}, Power: 1, Toughness: 1,
		Rules: card.RulesBlock{
			TriggeredAbilities: []card.TriggeredAbility{
				{
					Kind:       card.TriggerETB,
					Controller: "YOU",
					Effects:    []card.EffectSpec{{Kind: card.EffectDrawCards, Amount: 1, GroupIdx: -1}},
				},
			},
		},
	}
}

// WardedAcolyte — 1/1, {1}, {T}: target creature you control gains
// hexproof until end of turn.
func WardedAcolyte() *card.Card {
	return &card.Card{
		Name: "Warded Acolyte", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Human", "Cleric"},
		ManaCost: card.ManaCost{Colored: map[card.Color]int{card.White: 1}},
		Colors:   []card.Color{card.White}, Power: 1, Toughness: 1,
		Rules: card.RulesBlock{
			ActivatedAbilities: []card.ActivatedAbility{
				{
					Timing: card.TimingAnytime,
					Costs:  []card.Cost{{Kind: card.CostMana, Mana: &card.ManaCost{Generic: 1}}, {Kind: card.CostTap}},
					Targets: card.TargetSpec{Groups: []card.TargetGroup{
						{Selector: card.SelectorTargetFriendlyCreature, Min: 1, Max: 1},
					}},
					Effects: []card.EffectSpec{{Kind: card.EffectAddKeyword, Keyword: card.Hexproof, GroupIdx: 0}},
				},
			},
		},
	}
}

// ElderOfTheGrove — 2/2 lord: other Elves you control get +1/+1.
func ElderOfTheGrove() *card.Card {
	return &card.Card{
		Name: "Elder of the Grove", TypeLine: []card.Type{card.TypeCreature}, Subtypes: []string{"Elf", "Druid"},
		ManaCost: card.ManaCost{Generic: 1, Colored: map[card.Color]int{card.Green: 1}},
		Colors:   []card.Color{card.Green}, Power: 2, Toughness: 2,
		Rules: card.RulesBlock{
			StaticAbilities: []card.StaticAbility{
				{
					AppliesTo: card.SelectorTargetFriendlyCreature,
					Effect:    card.EffectSpec{Kind: card.EffectLord, Subtype: "Elf", PTBonus: [2]int{1, 1}},
				},
			},
		},
	}
}
