package engine

import (
	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/zone"
)

// canPayCost reports whether actorID can currently pay cost without
// mutating any state; used to check affordability before committing to
// an atomic cost-payment sequence.
func (e *Engine) canPayCost(actorID, sourceInstanceID string, cost card.Cost, xValue int) bool {
	p := e.game.Players[actorID]
	switch cost.Kind {
	case card.CostMana:
		return e.manaAffordable(p, cost.Mana, xValue)
	case card.CostTap:
		perm, ok := e.game.Zones.Battlefield[sourceInstanceID]
		return ok && !perm.State.Tapped
	case card.CostSacrificeSelf:
		_, ok := e.game.Zones.Battlefield[sourceInstanceID]
		return ok
	case card.CostSacrificeCreature, card.CostSacrificeOtherCreature:
		return len(e.sacrificeCandidates(actorID, sourceInstanceID, cost.Kind)) > 0
	case card.CostDiscardCard:
		return len(p.Hand) >= cost.Amount
	case card.CostPayLife:
		return p.Life >= cost.Amount
	}
	return false
}

// manaAffordable reports whether pool covers want, charging xValue once
// per X pip want.X declares. Each required color must be covered by that
// color's own pool; whatever is left over (unused colored mana plus the
// generic pool) must cover the generic/X remainder.
func (e *Engine) manaAffordable(p *zone.Player, want *card.ManaCost, xValue int) bool {
	if want == nil {
		return true
	}
	leftover := p.ManaPool.Generic
	for c, have := range p.ManaPool.Colored {
		need := want.Colored[card.Color(c)]
		if have < need {
			return false
		}
		leftover += have - need
	}
	for c, need := range want.Colored {
		if p.ManaPool.Colored[string(c)] < need {
			return false
		}
	}
	generic := want.Generic
	if want.X {
		generic += xValue
	}
	return leftover >= generic
}

// payCosts pays every cost in order, atomically: if any single cost
// cannot be paid, nothing already paid in this call is rolled back by
// this function — callers must call canPayCost for all costs first.
func (e *Engine) payCosts(actorID, sourceInstanceID string, costs []card.Cost, xValue int, sacrificeChoice string, discardChoices []string) *Error {
	for _, cost := range costs {
		if err := e.payCost(actorID, sourceInstanceID, cost, xValue, sacrificeChoice, discardChoices); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) payCost(actorID, sourceInstanceID string, cost card.Cost, xValue int, sacrificeChoice string, discardChoices []string) *Error {
	p := e.game.Players[actorID]
	switch cost.Kind {
	case card.CostMana:
		if !e.manaAffordable(p, cost.Mana, xValue) {
			return newError(CannotPayCostError, "insufficient mana")
		}
		e.deductMana(p, cost.Mana, xValue)
		return nil

	case card.CostTap:
		perm, ok := e.game.Zones.Battlefield[sourceInstanceID]
		if !ok || perm.State.Tapped {
			return newError(CannotPayCostError, "cannot tap source for cost")
		}
		perm.State.Tapped = true
		return nil

	case card.CostSacrificeSelf:
		if _, ok := e.game.Zones.Battlefield[sourceInstanceID]; !ok {
			return newError(CannotPayCostError, "nothing to sacrifice")
		}
		e.sacrifice(sourceInstanceID)
		return nil

	case card.CostSacrificeCreature, card.CostSacrificeOtherCreature:
		candidates := e.sacrificeCandidates(actorID, sourceInstanceID, cost.Kind)
		target := sacrificeChoice
		if target == "" && len(candidates) > 0 {
			target = candidates[0]
		}
		if !containsString(candidates, target) {
			return newError(CannotPayCostError, "no legal creature to sacrifice")
		}
		e.sacrifice(target)
		return nil

	case card.CostDiscardCard:
		if len(p.Hand) < cost.Amount {
			return newError(CannotPayCostError, "not enough cards to discard")
		}
		chosen := discardChoices
		if len(chosen) < cost.Amount {
			chosen = instanceIDsOf(p.Hand)[:cost.Amount]
		}
		for _, id := range chosen[:cost.Amount] {
			if inst := p.RemoveFromHand(id); inst != nil {
				p.SendToGraveyard(inst)
				e.logger.Log(log.NewDiscardEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), actorID, inst.CardID))
			}
		}
		return nil

	case card.CostPayLife:
		if p.Life < cost.Amount {
			return newError(CannotPayCostError, "not enough life to pay")
		}
		p.Life -= cost.Amount
		return nil
	}
	return newError(CannotPayCostError, "unknown cost kind %q", cost.Kind)
}

func (e *Engine) deductMana(p *zone.Player, want *card.ManaCost, xValue int) {
	if want == nil {
		return
	}
	for c, n := range want.Colored {
		p.ManaPool.Colored[string(c)] -= n
	}
	generic := want.Generic
	if want.X {
		generic += xValue
	}
	for c := range p.ManaPool.Colored {
		if generic <= 0 {
			break
		}
		surplus := p.ManaPool.Colored[c]
		if surplus <= 0 {
			continue
		}
		take := surplus
		if take > generic {
			take = generic
		}
		p.ManaPool.Colored[c] -= take
		generic -= take
	}
	p.ManaPool.Generic -= generic
	if p.ManaPool.Generic < 0 {
		p.ManaPool.Generic = 0
	}
}

func (e *Engine) sacrifice(instanceID string) {
	perm := e.game.Zones.RemoveFromBattlefield(instanceID)
	if perm == nil {
		return
	}
	e.recordSelfEvent(card.TriggerDies, instanceID, perm.ControllerID)
	e.recordObserverEvent(triggerEvent{Kind: card.TriggerOtherFriendlyDies, ActorID: perm.ControllerID, ObjectInstanceID: instanceID})
	e.logger.Log(log.NewSacrificeEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), perm.ControllerID, perm.Instance.CardID))
	if perm.Instance.IsToken {
		return
	}
	owner := e.game.Players[perm.Instance.OwnerID]
	owner.SendToGraveyard(&perm.Instance)
}

// sacrificeCandidates lists legal instance ids for a sacrifice-a-creature
// cost: OtherCreature excludes sourceInstanceID itself.
func (e *Engine) sacrificeCandidates(actorID, sourceInstanceID string, kind card.CostKind) []string {
	var out []string
	for id, perm := range e.game.Zones.Battlefield {
		if perm.ControllerID != actorID {
			continue
		}
		if !e.cardOf(perm.Instance.CardID).HasType(card.TypeCreature) {
			continue
		}
		if kind == card.CostSacrificeOtherCreature && id == sourceInstanceID {
			continue
		}
		out = append(out, id)
	}
	return out
}

func containsString(in []string, s string) bool {
	for _, v := range in {
		if v == s {
			return true
		}
	}
	return false
}

func instanceIDsOf(instances []*zone.Instance) []string {
	out := make([]string, len(instances))
	for i, inst := range instances {
		out[i] = inst.InstanceID
	}
	return out
}

// resolveTargets validates a caller-supplied target list against spec's
// groups, rejecting hexproof-protected opponent permanents, out-of-range
// group sizes, and selector mismatches. It returns one []ResolvedTarget
// per TargetGroup, in spec.Groups order.
func (e *Engine) resolveTargets(actorID string, spec card.TargetSpec, provided [][]TargetRef) ([][]zone.ResolvedTarget, *Error) {
	if len(spec.Groups) == 0 {
		return nil, nil
	}
	if len(provided) != len(spec.Groups) {
		return nil, newError(InvalidTargetError, "expected %d target group(s), got %d", len(spec.Groups), len(provided))
	}
	views := e.deriveBattlefield()
	out := make([][]zone.ResolvedTarget, len(spec.Groups))

	for gi, group := range spec.Groups {
		refs := provided[gi]
		if len(refs) < group.Min || len(refs) > group.Max {
			return nil, newError(InvalidTargetError, "target group %d expects %d-%d targets, got %d", gi, group.Min, group.Max, len(refs))
		}
		seen := map[string]bool{}
		resolved := make([]zone.ResolvedTarget, 0, len(refs))
		for _, ref := range refs {
			if group.Distinct {
				key := ref.InstanceID + "|" + ref.PlayerID
				if seen[key] {
					return nil, newError(InvalidTargetError, "target group %d requires distinct targets", gi)
				}
				seen[key] = true
			}
			if err := e.validateSingleTarget(actorID, group.Selector, ref, views); err != nil {
				return nil, err
			}
			resolved = append(resolved, zone.ResolvedTarget{InstanceID: ref.InstanceID, PlayerID: ref.PlayerID})
		}
		out[gi] = resolved
	}
	return out, nil
}

func (e *Engine) validateSingleTarget(actorID string, sel card.Selector, ref TargetRef, views map[string]PermanentView) *Error {
	if ref.IsPlayer() {
		switch sel {
		case card.SelectorAnyTarget, card.SelectorAnyPlayer, card.SelectorTargetPlayer:
			if _, ok := e.game.Players[ref.PlayerID]; !ok {
				return newError(InvalidTargetError, "unknown player %q", ref.PlayerID)
			}
			return nil
		case card.SelectorTargetOpponentPlayer:
			if ref.PlayerID != e.game.Opponent(actorID) {
				return newError(InvalidTargetError, "target player %q is not an opponent", ref.PlayerID)
			}
			return nil
		}
		return newError(InvalidTargetError, "selector %q does not accept a player target", sel)
	}

	if sel == card.SelectorTargetSpell {
		for _, item := range e.game.Zones.Stack {
			if item.ItemID == ref.InstanceID && item.Kind == zone.ItemSpell {
				return nil
			}
		}
		return newError(InvalidTargetError, "no spell %q on the stack", ref.InstanceID)
	}

	view, ok := views[ref.InstanceID]
	if !ok {
		return newError(UnknownObjectError, "unknown permanent %q", ref.InstanceID)
	}
	if view.hasKeyword(card.Hexproof) && view.ControllerID != actorID {
		return newError(InvalidTargetError, "permanent %q has hexproof", ref.InstanceID)
	}
	c := e.cardOf(view.CardID)

	switch sel {
	case card.SelectorAnyTarget, card.SelectorAnyPermanent, card.SelectorTargetPermanent:
		return nil
	case card.SelectorAnyCreature, card.SelectorTargetCreature:
		return e.requireType(c, card.TypeCreature, ref.InstanceID)
	case card.SelectorTargetFriendlyCreature:
		if view.ControllerID != actorID {
			return newError(InvalidTargetError, "target is not friendly")
		}
		return e.requireType(c, card.TypeCreature, ref.InstanceID)
	case card.SelectorTargetOpponentCreature:
		if view.ControllerID == actorID {
			return newError(InvalidTargetError, "target is not an opponent's")
		}
		return e.requireType(c, card.TypeCreature, ref.InstanceID)
	case card.SelectorTargetFlyingCreature:
		if err := e.requireType(c, card.TypeCreature, ref.InstanceID); err != nil {
			return err
		}
		if !view.hasKeyword(card.Flying) {
			return newError(InvalidTargetError, "target %q does not have flying", ref.InstanceID)
		}
		return nil
	case card.SelectorTargetArtifact:
		return e.requireType(c, card.TypeArtifact, ref.InstanceID)
	case card.SelectorTargetEnchantment:
		return e.requireType(c, card.TypeEnchantment, ref.InstanceID)
	case card.SelectorTargetAttackingCreature:
		if !e.game.Turn.IsAttacker(ref.InstanceID) {
			return newError(InvalidTargetError, "target %q is not attacking", ref.InstanceID)
		}
		return nil
	case card.SelectorTargetEquippedCreature:
		for _, perm := range e.game.Zones.Battlefield {
			if perm.State.AttachedTo == ref.InstanceID && e.cardOf(perm.Instance.CardID).Rules.AttachesAs == "EQUIPMENT" {
				return nil
			}
		}
		return newError(InvalidTargetError, "target %q is not equipped", ref.InstanceID)
	case card.SelectorTargetEnchantedCreature:
		for _, perm := range e.game.Zones.Battlefield {
			if perm.State.AttachedTo == ref.InstanceID && e.cardOf(perm.Instance.CardID).Rules.AttachesAs == "AURA" {
				return nil
			}
		}
		return newError(InvalidTargetError, "target %q is not enchanted", ref.InstanceID)
	}
	return newError(InvalidTargetError, "unsupported selector %q", sel)
}

func (e *Engine) requireType(c *card.Card, t card.Type, instanceID string) *Error {
	if !c.HasType(t) {
		return newError(InvalidTargetError, "target %q is not a %s", instanceID, t)
	}
	return nil
}
