package engine

import (
	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/state"
	"github.com/arcanecore/phase1/internal/zone"
)

// resolutionContext carries everything executeEffect needs about the
// stack item currently resolving: its controller, its declared targets
// (one slice per TargetSpec group), and its locked X value.
type resolutionContext struct {
	item *zone.StackItem
}

// resolveTopOfStack pops the top stack item and resolves it: targets are
// rechecked first (an all-illegal target set counters the spell/ability
// with no further effect, per §4.4); otherwise its effects run in
// declared order, each followed by an SBA pass (triggers the effects
// record are collected in pendingTriggers as they occur).
func (e *Engine) resolveTopOfStack() {
	item := e.game.Zones.Pop()
	if item == nil {
		return
	}

	if !e.anyTargetStillLegal(item) {
		e.counterStackItem(item, "all targets became illegal")
		return
	}

	ctx := &resolutionContext{item: item}

	if item.Kind == zone.ItemSpell {
		c := e.cardOf(item.Instance.CardID)
		if c.IsPermanent() {
			e.resolvePermanentSpell(ctx, c)
			return
		}
	}

	for i, eff := range item.Effects {
		e.executeEffect(ctx, eff)
		e.runStateBasedActions()
		if e.game.GameOver {
			return
		}
		if e.game.PendingDecision != nil {
			e.suspendedResolution = &suspendedResolution{item: item, remaining: item.Effects[i+1:]}
			return
		}
	}

	if item.Kind == zone.ItemSpell {
		e.moveSpellToGraveyardOrExile(item)
	}
}

// suspendedResolution carries the rest of a stack item's effect list past
// a pending decision raised mid-resolution (e.g. scry-then-draw), so
// resumeSuspendedResolution can finish it once the decision is answered.
type suspendedResolution struct {
	item      *zone.StackItem
	remaining []card.EffectSpec
}

// resumeSuspendedResolution finishes whatever effects were left after a
// resolution-suspending decision was answered, then moves the spell (if
// any) to the graveyard exactly as resolveTopOfStack would have.
func (e *Engine) resumeSuspendedResolution() {
	sr := e.suspendedResolution
	if sr == nil {
		return
	}
	e.suspendedResolution = nil
	ctx := &resolutionContext{item: sr.item}
	for i, eff := range sr.remaining {
		e.executeEffect(ctx, eff)
		e.runStateBasedActions()
		if e.game.GameOver {
			return
		}
		if e.game.PendingDecision != nil {
			e.suspendedResolution = &suspendedResolution{item: sr.item, remaining: sr.remaining[i+1:]}
			return
		}
	}
	if sr.item.Kind == zone.ItemSpell {
		e.moveSpellToGraveyardOrExile(sr.item)
	}
}

// anyTargetStillLegal re-checks every declared target against the
// selectors implied by hexproof/zone-membership at resolution time. A
// spell/ability with no declared targets is always legal to resolve.
func (e *Engine) anyTargetStillLegal(item *zone.StackItem) bool {
	if len(item.Targets) == 0 {
		return true
	}
	for _, group := range item.Targets {
		for _, t := range group {
			if t.InstanceID != "" {
				if perm, onField := e.game.Zones.Battlefield[t.InstanceID]; onField {
					view := e.deriveBattlefield()[t.InstanceID]
					if view.hasKeyword(card.Hexproof) && perm.ControllerID != item.ControllerID {
						continue
					}
					return true
				}
				for _, stackItem := range e.game.Zones.Stack {
					if stackItem.ItemID == t.InstanceID && stackItem.Kind == zone.ItemSpell {
						return true
					}
				}
				continue
			}
			if t.PlayerID != "" {
				if _, ok := e.game.Players[t.PlayerID]; ok {
					return true
				}
			}
		}
	}
	return false
}

// counterStackItem removes a spell/ability from the stack with no
// effect; its cost remains paid, and a countered spell's card still goes
// to the graveyard (or ceases to exist, for a countered token-creating
// ability, which has no card to move).
func (e *Engine) counterStackItem(item *zone.StackItem, reason string) {
	e.logger.Log(log.NewCounterSpellEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), item.ControllerID, reason))
	if item.Kind == zone.ItemSpell {
		e.moveSpellToGraveyardOrExile(item)
	}
}

func (e *Engine) moveSpellToGraveyardOrExile(item *zone.StackItem) {
	if item.Instance == nil {
		return
	}
	owner := e.game.Players[item.Instance.OwnerID]
	if item.Instance.IsToken {
		return
	}
	owner.SendToGraveyard(item.Instance)
}

// resolvePermanentSpell moves a resolving creature/artifact/enchantment/
// land spell onto the battlefield as a new Permanent, handling
// auras/equipment's auto-attach and firing its ETB trigger.
func (e *Engine) resolvePermanentSpell(ctx *resolutionContext, c *card.Card) {
	item := ctx.item
	perm := &zone.Permanent{
		Instance:     *item.Instance,
		ControllerID: item.ControllerID,
		State: zone.PermanentState{
			SummoningSick: !c.Rules.HasKeyword(card.Haste),
			CastTargets:   item.Targets,
		},
	}
	perm.Instance.Zone = zone.Battlefield
	e.game.Zones.Battlefield[perm.Instance.InstanceID] = perm
	e.game.RecordCreation(perm.Instance.InstanceID)

	if c.Rules.AttachesAs != "" && len(item.Targets) > 0 && len(item.Targets[0]) == 1 {
		hostID := item.Targets[0][0].InstanceID
		if _, ok := e.game.Zones.Battlefield[hostID]; ok {
			perm.State.AttachedTo = hostID
		} else if c.Rules.AttachesAs == "AURA" {
			// Host vanished between cast and resolution: §9's open question
			// resolves to counter-on-resolution for phase-1, which
			// anyTargetStillLegal already handles before we get here for
			// the common case; falling through here means the host is
			// gone but the aura still somehow has a legal-looking target
			// (e.g. it left and came back under a new id) — treat as no
			// attachment, SBAs clean it up next pass.
		}
	}

	e.logger.Log(log.NewCastSpellEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), perm.ControllerID, c.ID))
	e.recordSelfEvent(card.TriggerETB, perm.Instance.InstanceID, perm.ControllerID)
	if c.HasType(card.TypeCreature) {
		e.recordObserverEvent(triggerEvent{Kind: card.TriggerCreatureEnters, ActorID: perm.ControllerID, ObjectInstanceID: perm.Instance.InstanceID})
	}
}

// executeEffect dispatches one tagged effect against the resolving
// item's context, mutating state and posting triggers as needed.
func (e *Engine) executeEffect(ctx *resolutionContext, eff card.EffectSpec) {
	item := ctx.item
	targets := targetsForGroup(item, eff.GroupIdx)

	switch eff.Kind {
	case card.EffectDealDamage:
		amount := eff.Amount
		if amount == 0 && item.XValue > 0 {
			amount = item.XValue
		}
		for _, t := range targets {
			e.dealDamage(t, amount, item.ControllerID)
		}

	case card.EffectDestroy:
		for _, t := range targets {
			if t.InstanceID != "" {
				view := e.deriveBattlefield()[t.InstanceID]
				if view.hasKeyword(card.Indestructible) {
					continue
				}
				e.destroyPermanent(t.InstanceID)
			}
		}

	case card.EffectExile:
		for _, t := range targets {
			e.exilePermanent(t.InstanceID, item.Instance)
		}

	case card.EffectReturnToZone:
		for _, t := range targets {
			e.returnPermanentToZone(t.InstanceID, eff.Zone)
		}

	case card.EffectCounterSpell:
		for _, t := range targets {
			if target := e.game.Zones.RemoveFromStack(t.InstanceID); target != nil {
				e.counterStackItem(target, "countered by "+item.Instance.CardID)
			}
		}

	case card.EffectDrawCards:
		e.drawCard(item.ControllerID, eff.Amount)

	case card.EffectDiscardCards:
		for _, t := range targets {
			e.beginDiscard(t.PlayerID, eff.Amount)
		}
		if len(targets) == 0 {
			e.beginDiscard(item.ControllerID, eff.Amount)
		}

	case card.EffectGainLife:
		for _, t := range effectRecipients(targets, item.ControllerID) {
			e.game.Players[t].Life += eff.Amount
		}

	case card.EffectLoseLife:
		for _, t := range effectRecipients(targets, item.ControllerID) {
			e.game.Players[t].Life -= eff.Amount
			e.recordObserverEvent(triggerEvent{Kind: card.TriggerYouLoseLife, ActorID: t})
		}

	case card.EffectAddMana:
		e.game.Players[item.ControllerID].ManaPool.Add(eff.Subtype, eff.Amount)

	case card.EffectCreateToken:
		e.createToken(item.ControllerID, eff.TokenID)

	case card.EffectSearchLibrary:
		e.beginSearchLibrary(item.ControllerID, eff.Zone)

	case card.EffectScry:
		e.beginScry(item.ControllerID, eff.ScryN)

	case card.EffectGoad:
		for _, t := range targets {
			if perm, ok := e.game.Zones.Battlefield[t.InstanceID]; ok {
				perm.State.GoadedBy = item.ControllerID
				perm.State.GoadedUntilTurn = e.game.Turn.TurnNumber + 1
			}
		}

	case card.EffectPutOnBottom:
		// Supplemental kind, reserved for cards that put a searched/scried
		// card on the bottom of its owner's library instead of drawing.

	case card.EffectAddKeyword, card.EffectRemoveKeyword, card.EffectModifyPT,
		card.EffectAddSubtype, card.EffectCostReduction, card.EffectPreventCombatDamage:
		e.grantTemporaryEffect(item, eff, targets)

	case card.EffectGrantExtraTurn:
		for _, t := range effectRecipients(targets, item.ControllerID) {
			e.game.ExtraTurns.Push(t)
			e.logger.Log(log.NewExtraTurnQueuedEvent(e.game.Turn.TurnNumber, t))
		}

	case card.EffectReveal, card.EffectCopySpell,
		card.EffectAssignDamageUnblocked, card.EffectLord, card.EffectAttach:
		// Lord/attach deltas are continuous only via StaticAbilities tied to
		// a permanent's presence on the battlefield; the derivation pass
		// (derive.go) folds those in directly, so a spell/ability resolving
		// off the stack never dispatches them here.
	}
}

// dealDamage applies damage to a permanent or player target.
func (e *Engine) dealDamage(t zone.ResolvedTarget, amount int, controllerID string) {
	if amount <= 0 {
		return
	}
	if t.InstanceID != "" {
		if perm, ok := e.game.Zones.Battlefield[t.InstanceID]; ok {
			perm.State.DamageMarked += amount
			e.logger.Log(log.NewDamageEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), controllerID, t.InstanceID, amount))
		}
		return
	}
	if t.PlayerID != "" {
		e.game.Players[t.PlayerID].Life -= amount
		e.recordObserverEvent(triggerEvent{Kind: card.TriggerYouLoseLife, ActorID: t.PlayerID})
		e.logger.Log(log.NewDamageEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), controllerID, t.PlayerID, amount))
	}
}

func (e *Engine) exilePermanent(instanceID string, source *zone.Instance) {
	perm := e.game.Zones.RemoveFromBattlefield(instanceID)
	if perm == nil {
		return
	}
	sourceID := ""
	if source != nil {
		sourceID = source.InstanceID
	}
	e.game.Zones.PutInExile(&perm.Instance, sourceID)
	e.logger.Log(log.NewExileEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), perm.ControllerID, perm.Instance.CardID))
}

func (e *Engine) returnPermanentToZone(instanceID, targetZone string) {
	perm := e.game.Zones.RemoveFromBattlefield(instanceID)
	if perm == nil {
		return
	}
	owner := e.game.Players[perm.Instance.OwnerID]
	switch targetZone {
	case "HAND":
		perm.Instance.Zone = zone.Hand
		owner.Hand = append(owner.Hand, &perm.Instance)
	case "LIBRARY_BOTTOM":
		owner.PutOnBottomOfLibrary(&perm.Instance)
	default:
		owner.SendToGraveyard(&perm.Instance)
	}
	e.logger.Log(log.NewReturnToZoneEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), perm.ControllerID, perm.Instance.CardID, targetZone))
}

// createToken makes a fresh token permanent for controllerID directly on
// the battlefield (tokens never pass through the stack).
func (e *Engine) createToken(controllerID, tokenCardID string) {
	c := e.cardOf(tokenCardID)
	inst := zone.Instance{
		InstanceID: e.game.NextInstanceID(),
		CardID:     tokenCardID,
		OwnerID:    controllerID,
		IsToken:    true,
		Zone:       zone.Battlefield,
	}
	perm := &zone.Permanent{
		Instance:     inst,
		ControllerID: controllerID,
		State:        zone.PermanentState{SummoningSick: !c.Rules.HasKeyword(card.Haste)},
	}
	e.game.Zones.Battlefield[inst.InstanceID] = perm
	e.game.RecordCreation(inst.InstanceID)
	e.logger.Log(log.NewCreateTokenEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), controllerID, tokenCardID))
	e.recordSelfEvent(card.TriggerETB, inst.InstanceID, controllerID)
	if c.HasType(card.TypeCreature) {
		e.recordObserverEvent(triggerEvent{Kind: card.TriggerCreatureEnters, ActorID: controllerID, ObjectInstanceID: inst.InstanceID})
	}
}

// beginDiscard sets a pending decision for the player to choose n cards
// to discard; a player holding n or fewer cards discards the whole hand
// with no decision.
func (e *Engine) beginDiscard(playerID string, n int) {
	p := e.game.Players[playerID]
	if n >= len(p.Hand) {
		for _, inst := range append([]*zone.Instance{}, p.Hand...) {
			p.RemoveFromHand(inst.InstanceID)
			p.SendToGraveyard(inst)
			e.logger.Log(log.NewDiscardEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), playerID, inst.CardID))
		}
		return
	}
	e.game.PendingDecision = &state.PendingDecision{
		PlayerID: playerID,
		Kind:     state.DecisionDiscardToHandSize,
		Options:  instanceCardIDs(p.Hand),
		Partial:  map[string]any{"count": n},
	}
}

// beginSearchLibrary sets a pending decision for the player to pick a
// card from their library, to be moved to targetZone once resolved.
func (e *Engine) beginSearchLibrary(playerID, targetZone string) {
	p := e.game.Players[playerID]
	e.game.PendingDecision = &state.PendingDecision{
		PlayerID: playerID,
		Kind:     state.DecisionSearchLibrary,
		Options:  instanceCardIDs(p.Library),
		Partial:  map[string]any{"zone": targetZone},
	}
}

// beginScry sets a pending decision for the player to order/bottom the
// top n cards of their library.
func (e *Engine) beginScry(playerID string, n int) {
	p := e.game.Players[playerID]
	top := n
	if top > len(p.Library) {
		top = len(p.Library)
	}
	peek := make([]string, top)
	for i := 0; i < top; i++ {
		peek[i] = p.Library[len(p.Library)-1-i].InstanceID
	}
	e.game.PendingDecision = &state.PendingDecision{
		PlayerID: playerID,
		Kind:     state.DecisionScry,
		Options:  peek,
	}
}

// grantTemporaryEffect records a keyword/P-T/subtype/cost/damage-prevention
// delta granted by a resolving spell or ability as a state.TemporaryEffect,
// one per targeted permanent, expiring at this turn's cleanup. Untargeted
// grants (GroupIdx -1) are dropped: phase-1 has no card that grants one of
// these to its own source without a target.
func (e *Engine) grantTemporaryEffect(item *zone.StackItem, eff card.EffectSpec, targets []zone.ResolvedTarget) {
	sourceID := item.SourceInstanceID
	if item.Instance != nil {
		sourceID = item.Instance.InstanceID
	}
	for _, t := range targets {
		if t.InstanceID == "" {
			continue
		}
		e.game.TemporaryEffects = append(e.game.TemporaryEffects, state.TemporaryEffect{
			Effect:           eff,
			SourceInstanceID: sourceID,
			ControllerID:     item.ControllerID,
			TargetInstanceID: t.InstanceID,
			ExpiresTurn:      e.game.Turn.TurnNumber,
			ExpiresStep:      state.StepCleanup,
		})
	}
}

// targetsForGroup resolves the ResolvedTarget list an effect with the
// given GroupIdx should act on; -1 means untargeted (acts on the
// item's controller for player-affecting effects).
func targetsForGroup(item *zone.StackItem, groupIdx int) []zone.ResolvedTarget {
	if groupIdx < 0 || groupIdx >= len(item.Targets) {
		return nil
	}
	return item.Targets[groupIdx]
}

// effectRecipients resolves which player ids a life-gain/life-loss
// effect with resolved player targets (or none, defaulting to the
// controller) should apply to.
func effectRecipients(targets []zone.ResolvedTarget, controllerID string) []string {
	var out []string
	for _, t := range targets {
		if t.PlayerID != "" {
			out = append(out, t.PlayerID)
		}
	}
	if len(out) == 0 {
		out = append(out, controllerID)
	}
	return out
}
