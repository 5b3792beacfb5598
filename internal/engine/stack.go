package engine

import (
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/state"
)

// passPriority records actorID's pass and, if both players have now
// passed in succession, either resolves the top of the stack (giving
// priority back to the active player) or advances the step/phase.
func (e *Engine) passPriority(actorID string) *Error {
	g := e.game
	if g.Turn.PriorityHolderID != actorID {
		return newError(NotYourPriorityError, "player %q does not hold priority", actorID)
	}
	g.Turn.PlayersPassedInSuccession = append(g.Turn.PlayersPassedInSuccession, actorID)
	if len(g.Turn.PlayersPassedInSuccession) < 2 {
		g.Turn.PriorityHolderID = g.Opponent(actorID)
		return nil
	}

	// Both players passed in succession.
	g.Turn.PlayersPassedInSuccession = nil
	if top := g.Zones.Peek(); top != nil {
		e.resolveTopOfStack()
		e.runStateBasedActions()
		if g.GameOver {
			return nil
		}
		e.openPriorityWindow(g.Turn.ActivePlayerID)
		return nil
	}
	e.advanceStep()
	return nil
}

// openPriorityWindow places any collected triggers on the stack (in §4.8
// order), then grants priority to startID, the active player by default.
func (e *Engine) openPriorityWindow(startID string) {
	e.placePendingTriggersOnStack()
	e.game.Turn.PlayersPassedInSuccession = nil
	e.game.Turn.PriorityHolderID = startID
}

// advanceStep moves to the next step within the current phase, or the
// next phase's first step, running each step's entry duties in order
// until a priority window opens or the turn ends. Every mana pool empties
// at this boundary, per §4.3's "mana pool empties at the end of each
// step/phase" rule — independent of endTurn's own clear, which only
// covers the CLEANUP-to-UNTAP wraparound this function delegates to.
func (e *Engine) advanceStep() {
	g := e.game
	for _, p := range g.Players {
		p.ManaPool.Clear()
	}
	if g.Turn.Step == state.StepCleanup {
		// The priority round opened by a cleanup trigger is followed by
		// another cleanup, which ends the turn once no trigger is pending.
		e.runCleanupStep()
		return
	}
	steps := state.StepsOf(g.Turn.Phase)
	idx := indexOf(steps, g.Turn.Step)
	if idx >= 0 && idx+1 < len(steps) {
		g.Turn.Step = steps[idx+1]
	} else {
		nextPhase := state.NextPhase(g.Turn.Phase)
		if nextPhase == state.PhaseBegin {
			e.endTurn()
			return
		}
		g.Turn.Phase = nextPhase
		g.Turn.Step = state.StepsOf(nextPhase)[0]
	}
	e.runStepEntry()
}

func indexOf(steps []state.Step, s state.Step) int {
	for i, v := range steps {
		if v == s {
			return i
		}
	}
	return -1
}

// runStepEntry performs the duties §4.2 assigns to whichever step was
// just entered, then either gives priority or falls through to the next
// step for priority-less steps (UNTAP, DAMAGE).
func (e *Engine) runStepEntry() {
	g := e.game
	switch g.Turn.Step {
	case state.StepUntap:
		e.runUntapStep()
	case state.StepUpkeep:
		e.collectUpkeepTriggers()
		e.runStateBasedActions()
		e.openPriorityWindow(g.Turn.ActivePlayerID)
	case state.StepDraw:
		e.runDrawStep()
	case state.StepMain1, state.StepMain2:
		e.runStateBasedActions()
		e.openPriorityWindow(g.Turn.ActivePlayerID)
	case state.StepBeginCombat:
		g.Turn.ResetCombat()
		e.runStateBasedActions()
		e.openPriorityWindow(g.Turn.ActivePlayerID)
	case state.StepDeclareAttackers:
		e.runStateBasedActions()
		e.openPriorityWindow(g.Turn.ActivePlayerID)
	case state.StepDeclareBlockers:
		e.runStateBasedActions()
		e.openPriorityWindow(g.Turn.ActivePlayerID)
	case state.StepDamage:
		e.advanceStep()
	case state.StepEndCombat:
		e.runStateBasedActions()
		e.openPriorityWindow(g.Turn.ActivePlayerID)
	case state.StepEnd:
		e.collectEndStepTriggers()
		e.runStateBasedActions()
		e.openPriorityWindow(g.Turn.ActivePlayerID)
	case state.StepCleanup:
		e.runCleanupStep()
	}
}

// runUntapStep untaps every permanent the active player controls and
// clears summoning sickness for anything they've controlled since the
// start of this untap; no priority is given.
func (e *Engine) runUntapStep() {
	g := e.game
	for _, perm := range g.Zones.Battlefield {
		if perm.ControllerID != g.Turn.ActivePlayerID {
			continue
		}
		perm.State.Tapped = false
		perm.State.SummoningSick = false
	}
	g.Turn.PriorityHolderID = ""
	e.advanceStep()
}

// runDrawStep draws one card for the active player, skipped on the very
// first turn of the game for the starting player.
func (e *Engine) runDrawStep() {
	g := e.game
	isFirstTurnForStarter := g.Turn.TurnNumber == 1 && g.Turn.ActivePlayerID == g.StartingPlayerID
	if !isFirstTurnForStarter {
		e.drawCard(g.Turn.ActivePlayerID, 1)
	}
	e.runStateBasedActions()
	if g.GameOver {
		return
	}
	e.openPriorityWindow(g.Turn.ActivePlayerID)
}

// drawCard draws n cards for playerID, logging a deck-out loss via SBAs
// rather than directly, so the loss is applied in the next SBA pass
// alongside every other simultaneous state-based check.
func (e *Engine) drawCard(playerID string, n int) {
	p := e.game.Players[playerID]
	for i := 0; i < n; i++ {
		inst := p.DrawCard()
		if inst == nil {
			e.game.Log(playerID + " attempted to draw from an empty library")
			e.attemptedDrawFromEmpty[playerID] = true
			return
		}
		e.logger.Log(log.NewDrawEvent(e.game.Turn.TurnNumber, string(e.game.Turn.Phase), playerID, inst.CardID))
	}
}

// runCleanupStep discards down to hand size, clears "until end of turn"
// temporary effects and damage, then either ends the turn or, if a
// trigger fired during cleanup (e.g. from the discard), opens an extra
// priority round followed by another cleanup.
func (e *Engine) runCleanupStep() {
	g := e.game
	p := g.Players[g.Turn.ActivePlayerID]
	if len(p.Hand) > HandSizeLimit {
		// A surface-driven discard-to-hand-size decision is required when
		// there's more than one legal way to discard down; phase-1 requires
		// the player to choose via RESOLVE_DECISION.
		g.PendingDecision = &state.PendingDecision{
			PlayerID: g.Turn.ActivePlayerID,
			Kind:     state.DecisionDiscardToHandSize,
			Options:  instanceCardIDs(p.Hand),
		}
		return
	}

	var survivors []state.TemporaryEffect
	for _, te := range g.TemporaryEffects {
		if !te.Expired(g.Turn.TurnNumber, state.StepCleanup) {
			survivors = append(survivors, te)
		}
	}
	g.TemporaryEffects = survivors

	for _, perm := range g.Zones.Battlefield {
		perm.State.DamageMarked = 0
	}
	e.deathtouchDamageThisTurn = map[string]bool{}

	if len(e.pendingTriggers) > 0 {
		e.openPriorityWindow(g.Turn.ActivePlayerID)
		return
	}
	e.endTurn()
}

// endTurn advances the turn counter and active player (consulting the
// extra-turn queue first), resets combat, and re-enters UNTAP.
func (e *Engine) endTurn() {
	g := e.game
	finishedTurnNumber := g.Turn.TurnNumber

	nextActive := g.ExtraTurns.Pop()
	if nextActive == "" {
		nextActive = g.Opponent(g.Turn.ActivePlayerID)
	}
	g.Turn = state.NewTurn(nextActive)
	g.Turn.TurnNumber = finishedTurnNumber + 1

	for _, p := range g.Players {
		p.LandsPlayedThisTurn = 0
		p.ManaPool.Clear()
	}
	e.runStepEntry()
}
