package engine

import (
	"sort"

	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/zone"
)

// triggerEvent describes one just-occurred game event for the collector
// to match triggered abilities against.
type triggerEvent struct {
	Kind             card.TriggerKind
	ActorID          string // the player the event happened to/because of
	ObjectInstanceID string // the permanent the event happened to, if any
}

// queuedTrigger is one matched triggered ability waiting to be placed on
// the stack at the next priority window.
type queuedTrigger struct {
	SourceInstanceID string
	ControllerID     string
	Ability          card.TriggeredAbility
	CreationIndex    int
}

// recordSelfEvent runs trigger collection for a self-referential event
// ("when this creature enters", "when this dies"): the ability source
// is the object the event happened to.
func (e *Engine) recordSelfEvent(kind card.TriggerKind, instanceID, controllerID string) {
	c := e.cardOf(e.instanceCardID(instanceID))
	for _, ab := range c.Rules.TriggeredAbilities {
		if ab.Kind != kind {
			continue
		}
		if !e.triggerConditionsMatch(ab, controllerID, controllerID, instanceID) {
			continue
		}
		e.queueTrigger(instanceID, controllerID, ab)
	}
	e.checkEquipmentAttackTriggers(kind, instanceID, controllerID)
}

// checkEquipmentAttackTriggers handles EQUIPPED_CREATURE_ATTACKS, whose
// ability source is the equipment attached to the attacking creature,
// not the creature itself.
func (e *Engine) checkEquipmentAttackTriggers(kind card.TriggerKind, instanceID, controllerID string) {
	if kind != card.TriggerAttacks {
		return
	}
	for id, perm := range e.game.Zones.Battlefield {
		if perm.State.AttachedTo != instanceID {
			continue
		}
		c := e.cardOf(perm.Instance.CardID)
		for _, ab := range c.Rules.TriggeredAbilities {
			if ab.Kind != card.TriggerEquippedAttacks {
				continue
			}
			if !e.triggerConditionsMatch(ab, perm.ControllerID, controllerID, instanceID) {
				continue
			}
			e.queueTrigger(id, perm.ControllerID, ab)
		}
	}
}

// recordObserverEvent runs trigger collection for an event every
// interested permanent (not just the one it happened to) may react to.
func (e *Engine) recordObserverEvent(ev triggerEvent) {
	for _, id := range e.creationOrderOnBattlefield() {
		perm := e.game.Zones.Battlefield[id]
		c := e.cardOf(perm.Instance.CardID)
		for _, ab := range c.Rules.TriggeredAbilities {
			if ab.Kind != ev.Kind {
				continue
			}
			if !e.triggerConditionsMatch(ab, perm.ControllerID, ev.ActorID, ev.ObjectInstanceID) {
				continue
			}
			e.queueTrigger(id, perm.ControllerID, ab)
		}
	}
}

// triggerConditionsMatch checks an ability's combinable conditions
// (controller relative to the event's actor, during-opponent-turn,
// required keyword on the event's object) against the just-occurred
// event.
func (e *Engine) triggerConditionsMatch(ab card.TriggeredAbility, sourceControllerID, eventActorID, eventObjectInstanceID string) bool {
	switch ab.Controller {
	case "YOU":
		if eventActorID != sourceControllerID {
			return false
		}
	case "OPPONENT":
		if eventActorID == sourceControllerID || eventActorID == "" {
			return false
		}
	}
	if ab.DuringOpponentTurn && e.game.Turn.ActivePlayerID == sourceControllerID {
		return false
	}
	if ab.RequiresKeyword != "" {
		if eventObjectInstanceID == "" {
			return false
		}
		view, ok := e.deriveBattlefield()[eventObjectInstanceID]
		if !ok || !view.hasKeyword(ab.RequiresKeyword) {
			return false
		}
	}
	return true
}

func (e *Engine) queueTrigger(sourceInstanceID, controllerID string, ab card.TriggeredAbility) {
	idx := -1
	for i, id := range e.game.CreationOrder {
		if id == sourceInstanceID {
			idx = i
			break
		}
	}
	e.pendingTriggers = append(e.pendingTriggers, queuedTrigger{
		SourceInstanceID: sourceInstanceID,
		ControllerID:     controllerID,
		Ability:          ab,
		CreationIndex:    idx,
	})
	e.logger.Log(log.NewTriggerQueuedEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), controllerID, sourceInstanceID))
}

// placePendingTriggersOnStack drains pendingTriggers onto the stack in
// §4.8 order: active player's triggers first, then creation order within
// a player, and clears the queue.
func (e *Engine) placePendingTriggersOnStack() {
	if len(e.pendingTriggers) == 0 {
		return
	}
	triggers := e.pendingTriggers
	e.pendingTriggers = nil

	active := e.game.Turn.ActivePlayerID
	sort.SliceStable(triggers, func(i, j int) bool {
		iActive := triggers[i].ControllerID == active
		jActive := triggers[j].ControllerID == active
		if iActive != jActive {
			return iActive
		}
		return triggers[i].CreationIndex < triggers[j].CreationIndex
	})

	for _, qt := range triggers {
		item := &zone.StackItem{
			ItemID:           e.nextStackItemID(),
			Kind:             zone.ItemAbility,
			ControllerID:     qt.ControllerID,
			SourceInstanceID: qt.SourceInstanceID,
			Effects:          qt.Ability.Effects,
			Targets:          e.resolveTriggerTargets(qt),
		}
		e.game.Zones.Push(item)
	}
}

// resolveTriggerTargets supplies the targets a queued trigger's effects
// reference. Abilities with their own TargetSpec would need a pending
// decision to choose them (none of the bundled triggered abilities
// require one); abilities whose effects reference a GroupIdx from the
// source permanent's own cast-time targets (an ETB trigger piggybacking
// on the spell's targeting, e.g. Banishing Light) reuse CastTargets.
func (e *Engine) resolveTriggerTargets(qt queuedTrigger) [][]zone.ResolvedTarget {
	perm := e.game.Zones.Battlefield[qt.SourceInstanceID]
	if perm == nil {
		return nil
	}
	return perm.State.CastTargets
}

func (e *Engine) instanceCardID(instanceID string) string {
	if perm, ok := e.game.Zones.Battlefield[instanceID]; ok {
		return perm.Instance.CardID
	}
	return ""
}

// collectUpkeepTriggers fires every UPKEEP-conditioned triggered ability
// controlled by whichever player's upkeep this is.
func (e *Engine) collectUpkeepTriggers() {
	e.recordObserverEvent(triggerEvent{Kind: card.TriggerUpkeep, ActorID: e.game.Turn.ActivePlayerID})
}

// collectEndStepTriggers is a placeholder hook for end-step-conditioned
// abilities; phase-1's bundled card pool declares none, but the
// dispatch point exists so a future card can opt in without engine
// changes.
func (e *Engine) collectEndStepTriggers() {}
