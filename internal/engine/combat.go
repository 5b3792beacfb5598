package engine

import (
	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/state"
)

// declareAttackers validates and applies a DECLARE_ATTACKERS action: all
// named attackers must be legal, and the declaration is atomic — any
// single illegal attacker rejects the whole action with no mutation.
func (e *Engine) declareAttackers(actorID string, attackerIDs []string) *Error {
	g := e.game
	if actorID != g.Turn.ActivePlayerID {
		return newError(IllegalTimingError, "only the active player declares attackers")
	}
	if g.Turn.Step != state.StepDeclareAttackers || g.Turn.AttackersDeclared {
		return newError(IllegalTimingError, "not in a declare-attackers window")
	}
	views := e.deriveBattlefield()
	defenderID := g.Opponent(actorID)

	for _, id := range attackerIDs {
		perm, ok := g.Zones.Battlefield[id]
		if !ok {
			return newError(UnknownObjectError, "unknown permanent %q", id)
		}
		if perm.ControllerID != actorID {
			return newError(InvalidTargetError, "attacker %q is not controlled by the active player", id)
		}
		c := e.cardOf(perm.Instance.CardID)
		if !c.HasType(card.TypeCreature) {
			return newError(InvalidTargetError, "attacker %q is not a creature", id)
		}
		view := views[id]
		if view.hasKeyword(card.Defender) {
			return newError(InvalidTargetError, "attacker %q has defender", id)
		}
		if perm.State.Tapped {
			return newError(CannotPayCostError, "attacker %q is already tapped", id)
		}
		if view.SummoningSick && !view.hasKeyword(card.Haste) {
			return newError(IllegalTimingError, "attacker %q has summoning sickness", id)
		}
	}

	for _, id := range attackerIDs {
		perm := g.Zones.Battlefield[id]
		view := views[id]
		if !view.hasKeyword(card.Vigilance) {
			perm.State.Tapped = true
		}
		g.Turn.Attackers = append(g.Turn.Attackers, state.Attacker{InstanceID: id, Defending: defenderID})
		e.recordSelfEvent(card.TriggerAttacks, id, actorID)
	}
	g.Turn.AttackersDeclared = true
	e.logger.Log(log.NewDeclareAttackersEvent(g.Turn.TurnNumber, string(g.Turn.Phase), actorID, len(attackerIDs)))
	return nil
}

// declareBlockers validates and applies a DECLARE_BLOCKERS action, then
// immediately computes combat damage per §4.6 (DAMAGE is a placeholder
// step; damage resolves at the end of DECLARE_BLOCKERS).
func (e *Engine) declareBlockers(actorID string, blocks map[string][]string) *Error {
	g := e.game
	defenderID := g.Opponent(g.Turn.ActivePlayerID)
	if actorID != defenderID {
		return newError(IllegalTimingError, "only the defending player declares blockers")
	}
	if g.Turn.Step != state.StepDeclareBlockers || g.Turn.BlockersDeclared {
		return newError(IllegalTimingError, "not in a declare-blockers window")
	}

	views := e.deriveBattlefield()
	usedBlockers := map[string]bool{}
	for attackerID, blockerIDs := range blocks {
		if !g.Turn.IsAttacker(attackerID) {
			return newError(InvalidTargetError, "%q is not an attacker", attackerID)
		}
		attackerView := views[attackerID]
		if attackerView.hasKeyword(card.Menace) && len(blockerIDs) < 2 {
			return newError(InvalidTargetError, "menace attacker %q requires at least two blockers", attackerID)
		}
		for _, blockerID := range blockerIDs {
			if usedBlockers[blockerID] {
				return newError(InvalidTargetError, "blocker %q assigned to more than one attacker", blockerID)
			}
			perm, ok := g.Zones.Battlefield[blockerID]
			if !ok {
				return newError(UnknownObjectError, "unknown permanent %q", blockerID)
			}
			if perm.ControllerID != defenderID {
				return newError(InvalidTargetError, "blocker %q is not controlled by the defending player", blockerID)
			}
			if perm.State.Tapped {
				return newError(CannotPayCostError, "blocker %q is tapped", blockerID)
			}
			blockerView := views[blockerID]
			if attackerView.hasKeyword(card.Flying) && !blockerView.hasKeyword(card.Flying) && !blockerView.hasKeyword(card.Reach) {
				return newError(InvalidTargetError, "blocker %q cannot block a flying attacker", blockerID)
			}
			usedBlockers[blockerID] = true
		}
	}

	g.Turn.Blockers = blocks
	g.Turn.BlockersDeclared = true
	e.logger.Log(log.NewDeclareBlockersEvent(g.Turn.TurnNumber, string(g.Turn.Phase), actorID, len(blocks)))

	e.resolveCombatDamage()
	return nil
}

// resolveCombatDamage runs the two-substep damage model: a first-strike
// pass (only FIRST_STRIKE/DOUBLE_STRIKE creatures deal damage), SBAs,
// then a normal pass (DOUBLE_STRIKE and everything without FIRST_STRIKE).
// No priority window opens between the two passes.
func (e *Engine) resolveCombatDamage() {
	g := e.game
	hasFirstStrikers := false
	views := e.deriveBattlefield()
	for _, a := range g.Turn.Attackers {
		if views[a.InstanceID].hasKeyword(card.FirstStrike) || views[a.InstanceID].hasKeyword(card.DoubleStrike) {
			hasFirstStrikers = true
		}
	}
	for _, blockerIDs := range g.Turn.Blockers {
		for _, bID := range blockerIDs {
			if views[bID].hasKeyword(card.FirstStrike) || views[bID].hasKeyword(card.DoubleStrike) {
				hasFirstStrikers = true
			}
		}
	}

	if hasFirstStrikers {
		e.dealCombatDamagePass(func(v PermanentView) bool {
			return v.hasKeyword(card.FirstStrike) || v.hasKeyword(card.DoubleStrike)
		})
		e.runStateBasedActions()
		if g.GameOver {
			return
		}
	}
	e.dealCombatDamagePass(func(v PermanentView) bool {
		return v.hasKeyword(card.DoubleStrike) || !v.hasKeyword(card.FirstStrike)
	})
	e.runStateBasedActions()
}

// dealCombatDamagePass assigns and applies damage for every attacker and
// blocker satisfying participates, per the §4.6 per-attacker assignment
// algorithm.
func (e *Engine) dealCombatDamagePass(participates func(PermanentView) bool) {
	g := e.game
	views := e.deriveBattlefield()

	for _, a := range g.Turn.Attackers {
		attackerPerm, alive := g.Zones.Battlefield[a.InstanceID]
		if !alive {
			continue
		}
		attackerView := views[a.InstanceID]
		if !participates(attackerView) || attackerView.DamagePrevented {
			continue
		}
		remaining := attackerView.Power
		deathtouch := attackerView.hasKeyword(card.Deathtouch)
		trample := attackerView.hasKeyword(card.Trample)
		lifelink := attackerView.hasKeyword(card.Lifelink)

		blockerIDs := g.Turn.BlockersOf(a.InstanceID)
		for _, bID := range blockerIDs {
			if remaining <= 0 {
				break
			}
			blockerPerm, alive := g.Zones.Battlefield[bID]
			if !alive {
				continue
			}
			blockerView := views[bID]
			lethal := blockerView.Toughness - blockerPerm.State.DamageMarked
			if deathtouch && lethal > 1 {
				lethal = 1
			}
			if lethal < 0 {
				lethal = 0
			}
			assign := remaining
			if lethal < assign {
				assign = lethal
			}
			e.applyCombatDamage(a.InstanceID, attackerPerm.ControllerID, bID, assign, deathtouch, lifelink)
			remaining -= assign
		}

		if len(blockerIDs) == 0 {
			if remaining > 0 {
				e.applyCombatDamageToPlayer(a.InstanceID, attackerPerm.ControllerID, a.Defending, remaining, lifelink)
				e.recordSelfEvent(card.TriggerCombatDamageToPlayer, a.InstanceID, attackerPerm.ControllerID)
			}
		} else if trample && remaining > 0 {
			e.applyCombatDamageToPlayer(a.InstanceID, attackerPerm.ControllerID, a.Defending, remaining, lifelink)
		}
	}

	for attackerID, blockerIDs := range g.Turn.Blockers {
		if _, attackerAlive := g.Zones.Battlefield[attackerID]; !attackerAlive {
			continue
		}
		for _, bID := range blockerIDs {
			blockerPerm, alive := g.Zones.Battlefield[bID]
			if !alive {
				continue
			}
			blockerView := views[bID]
			if !participates(blockerView) || blockerView.DamagePrevented {
				continue
			}
			deathtouch := blockerView.hasKeyword(card.Deathtouch)
			lifelink := blockerView.hasKeyword(card.Lifelink)
			e.applyCombatDamage(bID, blockerPerm.ControllerID, attackerID, blockerView.Power, deathtouch, lifelink)
		}
	}
}

// applyCombatDamage marks damage on a permanent target, applying
// deathtouch's "any positive damage is lethal" marker and lifelink.
func (e *Engine) applyCombatDamage(sourceID, sourceControllerID, targetID string, amount int, deathtouch, lifelink bool) {
	if amount <= 0 {
		return
	}
	perm, ok := e.game.Zones.Battlefield[targetID]
	if !ok {
		return
	}
	perm.State.DamageMarked += amount
	if deathtouch {
		e.deathtouchDamageThisTurn[targetID] = true
	}
	if lifelink {
		e.game.Players[sourceControllerID].Life += amount
	}
	e.logger.Log(log.NewCombatDamageEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), sourceControllerID, sourceID, amount))
}

// applyCombatDamageToPlayer deals combat damage to a defending player.
func (e *Engine) applyCombatDamageToPlayer(sourceID, sourceControllerID, defendingPlayerID string, amount int, lifelink bool) {
	if amount <= 0 {
		return
	}
	e.game.Players[defendingPlayerID].Life -= amount
	e.game.DamageDealtToPlayers[defendingPlayerID] += amount
	if lifelink {
		e.game.Players[sourceControllerID].Life += amount
	}
	e.recordObserverEvent(triggerEvent{Kind: card.TriggerYouLoseLife, ActorID: defendingPlayerID})
	e.logger.Log(log.NewCombatDamageEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), sourceControllerID, sourceID, amount))
}
