package card

import "strconv"

// ManaCost is a parsed mana cost: a generic amount plus colored pips, and
// an optional X component.
type ManaCost struct {
	Generic int
	Colored map[Color]int
	X       bool
}

// manaCostSymbolOrder is WUBRG, the conventional mana-symbol print order,
// paired with each color's one-letter symbol (distinct from its first
// letter, since Black and Blue both start with B).
var manaCostSymbolOrder = []struct {
	Color  Color
	Symbol string
}{
	{White, "W"}, {Blue, "U"}, {Black, "B"}, {Red, "R"}, {Green, "G"},
}

// String renders a mana cost like "{2}{W}{W}" or "{X}{U}": {X} first, then
// the generic amount, then colored pips in WUBRG order — display only,
// never parsed back.
func (m ManaCost) String() string {
	s := ""
	if m.X {
		s += "{X}"
	}
	if m.Generic > 0 {
		s += "{" + strconv.Itoa(m.Generic) + "}"
	}
	for _, cs := range manaCostSymbolOrder {
		for i := 0; i < m.Colored[cs.Color]; i++ {
			s += "{" + cs.Symbol + "}"
		}
	}
	if s == "" {
		return "{0}"
	}
	return s
}

// Cost implements one line of a cost: mana, tap, sacrifice, discard, or
// life payment, as declared by the card.
type Cost struct {
	Kind   CostKind
	Mana   *ManaCost // for CostMana
	Amount int       // for CostPayLife, CostDiscardCard (count)
}

// TargetGroup is one group of targets a spell or ability's TargetSpec
// declares: a selector predicate plus a count range and a uniqueness rule.
type TargetGroup struct {
	Selector    Selector
	Min         int
	Max         int
	Distinct    bool // true if targets within this group must be distinct objects
}

// TargetSpec is the full target declaration for a spell or ability.
type TargetSpec struct {
	Groups []TargetGroup
}

// EffectSpec is one tagged-variant effect the executor dispatches on Kind.
// Only the fields relevant to Kind are populated; unused fields are zero.
type EffectSpec struct {
	Kind EffectKind

	// Numeric/string parameters, reused across kinds with kind-specific meaning:
	Amount   int      // damage/life/cards/turns/counters, depending on Kind
	Keyword  Keyword  // for ADD_KEYWORD / REMOVE_KEYWORD
	Subtype  string   // for ADD_SUBTYPE
	Zone     string   // for RETURN_TO_ZONE / PUT_ON_BOTTOM ("HAND", "LIBRARY_BOTTOM"; anything else means the graveyard)
	TokenID  string   // for CREATE_TOKEN: card_id of the token definition
	PTBonus  [2]int   // [power, toughness] delta for MODIFY_P_T / LORD
	ScryN    int       // for SCRY
	GroupIdx int       // which TargetSpec group this effect's target comes from, -1 if untargeted
}

// StaticAbility is a continuously applied modifier a permanent contributes
// while on the battlefield. Dispatched the same way as EffectSpec.
type StaticAbility struct {
	Effect EffectSpec
	// AppliesTo narrows which permanents the static ability's delta affects;
	// empty means "this permanent only". Equipment/aura bonuses use
	// TARGET_EQUIPPED_CREATURE / TARGET_ENCHANTED_CREATURE instead.
	AppliesTo Selector
}

// TriggeredAbility fires when Kind's event occurs and the (optional)
// conditions hold, then queues Effects to the stack.
type TriggeredAbility struct {
	Kind       TriggerKind
	Controller string // "YOU" or "OPPONENT", matched against the triggering player
	DuringOpponentTurn bool
	RequiresKeyword Keyword
	Effects    []EffectSpec
	Targets    TargetSpec
}

// ActivatedAbility is an ability a player pays Costs to put on the stack
// (or, if Timing is TimingMana, resolves immediately without the stack).
type ActivatedAbility struct {
	Costs   []Cost
	Timing  Timing
	Targets TargetSpec
	Effects []EffectSpec
}

// RulesBlock is the parsed oracle text of a card: everything the engine
// needs to know to validate and resolve it, independent of the English
// reminder text.
type RulesBlock struct {
	Keywords           []Keyword
	Effects            []EffectSpec // for instants/sorceries: what casting resolves
	StaticAbilities    []StaticAbility
	TriggeredAbilities []TriggeredAbility
	ActivatedAbilities []ActivatedAbility
	AdditionalCosts    []Cost
	AlternateCosts     []Cost
	FlashbackCost      *ManaCost
	Targets            TargetSpec // for instants/sorceries
	EquipCost          *ManaCost  // synthesized for Equipment at load time
	AttachesAs         string     // "AURA" or "EQUIPMENT", empty for non-attaching permanents
}

// HasKeyword reports whether the rules block declares kw.
func (r RulesBlock) HasKeyword(kw Keyword) bool {
	for _, k := range r.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}

// Card is the immutable, per-card-id descriptor loaded once from the
// database and referenced by id for the life of a game.
type Card struct {
	ID            string
	Name          string
	TypeLine      []Type
	Subtypes      []string
	ManaCost      ManaCost
	Colors        []Color
	ColorIdentity  []Color
	Power         int
	Toughness     int
	Rules         RulesBlock
	IsToken       bool
}

// HasType reports whether t appears in the card's type line.
func (c *Card) HasType(t Type) bool {
	for _, ct := range c.TypeLine {
		if ct == t {
			return true
		}
	}
	return false
}

// IsPermanent reports whether the card occupies the battlefield once it
// resolves (creature, artifact, enchantment, land).
func (c *Card) IsPermanent() bool {
	return c.HasType(TypeCreature) || c.HasType(TypeArtifact) || c.HasType(TypeEnchantment) || c.HasType(TypeLand)
}

func (c *Card) String() string {
	if c == nil {
		return "(none)"
	}
	return c.Name
}
