package engine

import (
	"sort"

	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/zone"
)

// derived is the mutable working copy of one permanent's characteristics
// while the §4.1 pass folds in static abilities, temporary effects, and
// attachments. PermanentView is built from this once the pass completes.
type derived struct {
	power, toughness int
	keywords         map[card.Keyword]bool
	subtypes         map[string]bool
	costReduction    int
	damagePrevented  bool
	attackRequired   bool
}

// deriveBattlefield recomputes every permanent's effective view. It is a
// pure function of (battlefield, temporary effects, attachments,
// creation order) — called after every mutation, never cached across
// one, per the recomputation-trigger rule in §4.1.
func (e *Engine) deriveBattlefield() map[string]PermanentView {
	g := e.game
	out := make(map[string]PermanentView, len(g.Zones.Battlefield))
	work := make(map[string]*derived, len(g.Zones.Battlefield))

	for id, perm := range g.Zones.Battlefield {
		c := e.cardOf(perm.Instance.CardID)
		d := &derived{
			power:     c.Power,
			toughness: c.Toughness,
			keywords:  map[card.Keyword]bool{},
			subtypes:  map[string]bool{},
		}
		for _, kw := range c.Rules.Keywords {
			d.keywords[kw] = true
		}
		for _, st := range c.Subtypes {
			d.subtypes[st] = true
		}
		work[id] = d
	}

	// Step 2: static abilities from every permanent, in creation order so
	// "latest writer wins" ties break deterministically, applied in the
	// sub-order subtype-add, keyword add/remove, P/T, damage-prevention,
	// cost reduction. No static effect kind sets an attack requirement.
	staticSubOrder := []map[card.EffectKind]bool{
		{card.EffectAddSubtype: true},
		{card.EffectAddKeyword: true, card.EffectRemoveKeyword: true},
		{card.EffectModifyPT: true, card.EffectLord: true},
		{card.EffectPreventCombatDamage: true},
		{card.EffectCostReduction: true},
	}
	for _, stage := range staticSubOrder {
		for _, id := range e.creationOrderOnBattlefield() {
			perm := g.Zones.Battlefield[id]
			c := e.cardOf(perm.Instance.CardID)
			for _, sa := range c.Rules.StaticAbilities {
				if !stage[sa.Effect.Kind] {
					continue
				}
				targets := e.staticAbilityTargets(id, perm, sa)
				for _, targetID := range targets {
					d, ok := work[targetID]
					if !ok {
						continue
					}
					if sa.Effect.Kind == card.EffectLord && sa.Effect.Subtype != "" && !d.subtypes[sa.Effect.Subtype] {
						continue
					}
					applyEffectToDerived(d, sa.Effect)
				}
			}
		}
	}

	// Step 3: temporary effects, in creation order (the order they were
	// created, i.e. the order they appear in GameState.TemporaryEffects).
	for _, te := range g.TemporaryEffects {
		if te.TargetInstanceID == "" {
			continue
		}
		d, ok := work[te.TargetInstanceID]
		if !ok {
			continue
		}
		applyEffectToDerived(d, te.Effect)
	}

	// Step 4: attachment deltas (auras/equipment) contribute to their host.
	for _, id := range e.creationOrderOnBattlefield() {
		perm := g.Zones.Battlefield[id]
		if perm.State.AttachedTo == "" {
			continue
		}
		host, ok := work[perm.State.AttachedTo]
		if !ok {
			continue
		}
		c := e.cardOf(perm.Instance.CardID)
		for _, sa := range c.Rules.StaticAbilities {
			if sa.AppliesTo == card.SelectorTargetEquippedCreature || sa.AppliesTo == card.SelectorTargetEnchantedCreature {
				applyEffectToDerived(host, sa.Effect)
			}
		}
	}

	for id, d := range work {
		perm := g.Zones.Battlefield[id]
		out[id] = PermanentView{
			InstanceID:    id,
			CardID:        perm.Instance.CardID,
			ControllerID:  perm.ControllerID,
			OwnerID:       perm.Instance.OwnerID,
			Tapped:        perm.State.Tapped,
			DamageMarked:  perm.State.DamageMarked,
			Counters:      perm.State.Counters,
			AttachedTo:    perm.State.AttachedTo,
			SummoningSick: perm.State.SummoningSick,
			Power:           d.power + perm.State.Counters.Net(),
			Toughness:       d.toughness + perm.State.Counters.Net(),
			Keywords:        sortedKeywords(d.keywords),
			Subtypes:        sortedStrings(d.subtypes),
			DamagePrevented: d.damagePrevented,
		}
	}
	return out
}

// applyEffectToDerived folds one static/temporary effect into a
// permanent's working derivation, dispatching on EffectKind the same
// way the effect executor does for resolution-time effects.
func applyEffectToDerived(d *derived, eff card.EffectSpec) {
	switch eff.Kind {
	case card.EffectAddKeyword:
		d.keywords[eff.Keyword] = true
	case card.EffectRemoveKeyword:
		delete(d.keywords, eff.Keyword)
	case card.EffectModifyPT, card.EffectLord:
		d.power += eff.PTBonus[0]
		d.toughness += eff.PTBonus[1]
	case card.EffectAddSubtype:
		d.subtypes[eff.Subtype] = true
	case card.EffectPreventCombatDamage:
		d.damagePrevented = true
	case card.EffectCostReduction:
		d.costReduction += eff.Amount
	}
}

// staticAbilityTargets resolves which permanent instance ids a static
// ability sourced from sourceID applies to, given its AppliesTo selector.
// Equipment/aura "equipped/enchanted creature only" deltas are handled
// separately in step 4, since they key off AttachedTo rather than a
// battlefield-wide selector scan.
func (e *Engine) staticAbilityTargets(sourceID string, source *zone.Permanent, sa card.StaticAbility) []string {
	switch sa.AppliesTo {
	case card.SelectorTargetEquippedCreature, card.SelectorTargetEnchantedCreature:
		return nil
	case "":
		return []string{sourceID}
	case card.SelectorTargetFriendlyCreature:
		var ids []string
		for id, perm := range e.game.Zones.Battlefield {
			if id == sourceID {
				continue
			}
			if perm.ControllerID == source.ControllerID && e.cardOf(perm.Instance.CardID).HasType(card.TypeCreature) {
				ids = append(ids, id)
			}
		}
		return ids
	case card.SelectorTargetOpponentCreature:
		var ids []string
		for id, perm := range e.game.Zones.Battlefield {
			if perm.ControllerID != source.ControllerID && e.cardOf(perm.Instance.CardID).HasType(card.TypeCreature) {
				ids = append(ids, id)
			}
		}
		return ids
	default:
		var ids []string
		for id := range e.game.Zones.Battlefield {
			ids = append(ids, id)
		}
		return ids
	}
}

// creationOrderOnBattlefield returns the battlefield's instance ids in
// the order their permanents entered, skipping any that have since left.
func (e *Engine) creationOrderOnBattlefield() []string {
	var out []string
	for _, id := range e.game.CreationOrder {
		if _, ok := e.game.Zones.Battlefield[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

func (e *Engine) cardOf(cardID string) *card.Card {
	c, ok := e.db.Get(cardID)
	if !ok {
		panic(invariant("unknown card_id %q referenced by a live object", cardID))
	}
	return c
}

func sortedKeywords(set map[card.Keyword]bool) []card.Keyword {
	out := make([]card.Keyword, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedStrings(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// hasKeyword is a convenience lookup into a derived view's keyword set.
func (v PermanentView) hasKeyword(kw card.Keyword) bool {
	for _, k := range v.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}
