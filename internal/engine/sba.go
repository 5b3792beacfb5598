package engine

import (
	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/log"
)

// runStateBasedActions runs the §4.7 pass to a fixed point: each round
// discovers every applicable SBA and applies them simultaneously, then
// the round repeats until a round changes nothing.
func (e *Engine) runStateBasedActions() {
	for {
		if e.runStateBasedActionsRound() {
			continue
		}
		break
	}
	e.checkPlayerLosses()
}

// runStateBasedActionsRound applies one round of permanent-level SBAs
// and reports whether anything changed.
func (e *Engine) runStateBasedActionsRound() bool {
	changed := false
	views := e.deriveBattlefield()

	var toDestroy, toDetach []string
	for id, perm := range e.game.Zones.Battlefield {
		c := e.cardOf(perm.Instance.CardID)
		view := views[id]

		if c.HasType(card.TypeCreature) {
			indestructible := view.hasKeyword(card.Indestructible)
			if view.Toughness <= 0 {
				toDestroy = append(toDestroy, id)
				continue
			}
			if !indestructible && perm.State.DamageMarked >= view.Toughness {
				toDestroy = append(toDestroy, id)
				continue
			}
			if !indestructible && perm.State.DamageMarked > 0 && e.deathtouchDamageThisTurn[id] {
				toDestroy = append(toDestroy, id)
				continue
			}
		}

		if perm.State.AttachedTo != "" {
			host, hostLive := e.game.Zones.Battlefield[perm.State.AttachedTo]
			legal := hostLive && e.cardOf(host.Instance.CardID).HasType(card.TypeCreature)
			if !legal {
				if c.Rules.AttachesAs == "AURA" {
					toDestroy = append(toDestroy, id)
				} else if c.Rules.AttachesAs == "EQUIPMENT" {
					toDetach = append(toDetach, id)
				}
			}
		}

		if perm.State.Counters.PlusOnePlusOne > 0 && perm.State.Counters.MinusOneMinusOne > 0 {
			n := min(perm.State.Counters.PlusOnePlusOne, perm.State.Counters.MinusOneMinusOne)
			perm.State.Counters.PlusOnePlusOne -= n
			perm.State.Counters.MinusOneMinusOne -= n
			changed = true
		}
	}

	for _, id := range toDetach {
		e.game.Zones.Battlefield[id].State.AttachedTo = ""
		changed = true
	}
	for _, id := range dedupeStrings(toDestroy) {
		e.destroyPermanent(id)
		changed = true
	}
	return changed
}

// destroyPermanent moves a permanent to its owner's graveyard (or
// removes it from the game if it's a token, which ceases to exist
// rather than occupying the graveyard).
func (e *Engine) destroyPermanent(instanceID string) {
	perm, ok := e.game.Zones.Battlefield[instanceID]
	if !ok {
		return
	}
	// The dies trigger is recorded while the permanent is still on the
	// battlefield, since recordSelfEvent looks its card up there.
	e.recordSelfEvent(card.TriggerDies, instanceID, perm.ControllerID)
	e.game.Zones.RemoveFromBattlefield(instanceID)
	delete(e.deathtouchDamageThisTurn, instanceID)
	e.recordObserverEvent(triggerEvent{Kind: card.TriggerOtherFriendlyDies, ActorID: perm.ControllerID, ObjectInstanceID: instanceID})
	if e.game.Turn.ActivePlayerID == perm.ControllerID {
		e.recordObserverEvent(triggerEvent{Kind: card.TriggerOtherDiesDuringYourTurn, ActorID: perm.ControllerID, ObjectInstanceID: instanceID})
	}
	e.logger.Log(log.NewDestroyEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), perm.ControllerID, perm.Instance.CardID))

	if perm.Instance.IsToken {
		return
	}
	owner := e.game.Players[perm.Instance.OwnerID]
	perm.Instance.Zone = "GRAVEYARD"
	owner.SendToGraveyard(&perm.Instance)
}

// checkPlayerLosses converts life <= 0 and failed-draw-from-empty-library
// into a recorded loss; in a two-player game the survivor wins.
func (e *Engine) checkPlayerLosses() {
	if e.game.GameOver {
		return
	}
	var loserID, reason string
	for pid, p := range e.game.Players {
		if p.Life <= 0 {
			loserID, reason = pid, "life total dropped to zero or below"
			break
		}
		if e.attemptedDrawFromEmpty[pid] {
			loserID, reason = pid, "attempted to draw from an empty library"
			break
		}
	}
	if loserID == "" {
		return
	}
	e.game.GameOver = true
	e.game.WinnerID = e.game.Opponent(loserID)
	e.game.Reason = reason
	e.logger.Log(log.NewWinEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), e.game.WinnerID, reason))
}

func dedupeStrings(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
