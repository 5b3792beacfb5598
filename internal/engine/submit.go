package engine

import (
	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/state"
	"github.com/arcanecore/phase1/internal/zone"
)

// SubmitAction is the engine's single mutation entry point: it validates
// actorID's Action against the current state, applies it atomically on
// success, and returns the resulting events or a non-mutating Error. A
// pending decision, once set, preempts every action but RESOLVE_DECISION
// and SCOOP.
func (e *Engine) SubmitAction(action Action) ActionResult {
	if e.game.GameOver {
		return e.fail(newError(GameOverError, "game is already over"))
	}
	if e.game.PendingDecision != nil && action.Type != ActionResolveDecision && action.Type != ActionScoop {
		return e.fail(newError(PendingDecisionPreemptsError, "player %q must resolve a pending decision first", e.game.PendingDecision.PlayerID))
	}

	var err *Error
	switch action.Type {
	case ActionPlayLand:
		err = e.actionPlayLand(action)
	case ActionTapForMana:
		err = e.actionTapForMana(action)
	case ActionCastSpell:
		err = e.actionCastSpell(action)
	case ActionActivateAbility:
		err = e.actionActivateAbility(action)
	case ActionDeclareAttackers:
		if err = e.declareAttackers(action.ActorID, action.Attackers); err == nil {
			e.openPriorityWindow(e.game.Turn.ActivePlayerID)
		}
	case ActionDeclareBlockers:
		if err = e.declareBlockers(action.ActorID, action.Blockers); err == nil && !e.game.GameOver {
			e.openPriorityWindow(e.game.Turn.ActivePlayerID)
		}
	case ActionPassPriority:
		err = e.passPriority(action.ActorID)
	case ActionResolveDecision:
		err = e.actionResolveDecision(action)
	case ActionSkipCombat:
		err = e.actionSkipCombat(action)
	case ActionSkipMain2:
		err = e.actionSkipMain2(action)
	case ActionScoop:
		err = e.actionScoop(action)
	default:
		err = newError(IllegalTimingError, "unknown action type %q", action.Type)
	}

	if err != nil {
		return e.fail(err)
	}
	if !e.game.GameOver {
		e.runStateBasedActions()
	}
	result := ActionResult{OK: true}
	if e.game.PendingDecision != nil {
		result.NewPending = &PendingDecisionView{ForViewer: true, Kind: e.game.PendingDecision.Kind, Options: e.game.PendingDecision.Options}
	}
	return result
}

func (e *Engine) fail(err *Error) ActionResult {
	return ActionResult{OK: false, Error: err}
}

// actionPlayLand plays a land card from hand to the battlefield: sorcery
// speed only, one per turn, no stack.
func (e *Engine) actionPlayLand(action Action) *Error {
	g := e.game
	if err := e.requireSorcerySpeed(action.ActorID); err != nil {
		return err
	}
	p := g.Players[action.ActorID]
	if p.LandsPlayedThisTurn > 0 {
		return newError(CannotPayCostError, "already played a land this turn")
	}
	inst := findInstance(p.Hand, action.ObjectID)
	if inst == nil {
		return newError(UnknownObjectError, "card %q is not in hand", action.ObjectID)
	}
	c := e.cardOf(inst.CardID)
	if !c.HasType(card.TypeLand) {
		return newError(InvalidTargetError, "card %q is not a land", inst.CardID)
	}

	p.RemoveFromHand(inst.InstanceID)
	inst.Zone = zone.Battlefield
	perm := &zone.Permanent{Instance: *inst, ControllerID: action.ActorID}
	g.Zones.Battlefield[inst.InstanceID] = perm
	g.RecordCreation(inst.InstanceID)
	p.LandsPlayedThisTurn++
	g.Turn.LandPlayedThisTurnBy[action.ActorID] = true

	e.logger.Log(log.NewPlayLandEvent(g.Turn.TurnNumber, string(g.Turn.Phase), action.ActorID, c.ID))
	e.recordSelfEvent(card.TriggerETB, inst.InstanceID, action.ActorID)
	return nil
}

// actionTapForMana taps a battlefield land (or mana-ability permanent)
// for its mana, resolving immediately with no stack per TimingMana.
func (e *Engine) actionTapForMana(action Action) *Error {
	g := e.game
	perm, ok := g.Zones.Battlefield[action.ObjectID]
	if !ok {
		return newError(UnknownObjectError, "unknown permanent %q", action.ObjectID)
	}
	if perm.ControllerID != action.ActorID {
		return newError(InvalidTargetError, "permanent %q is not controlled by actor", action.ObjectID)
	}
	if perm.State.Tapped {
		return newError(CannotPayCostError, "permanent %q is already tapped", action.ObjectID)
	}
	c := e.cardOf(perm.Instance.CardID)
	ability := findManaAbility(c)
	if ability == nil {
		return newError(InvalidTargetError, "permanent %q has no mana ability", action.ObjectID)
	}

	perm.State.Tapped = true
	p := g.Players[action.ActorID]
	for _, eff := range ability.Effects {
		if eff.Kind == card.EffectAddMana {
			color := eff.Subtype
			if color == "" {
				color = action.ManaColor
			}
			p.ManaPool.Add(color, eff.Amount)
		}
	}
	e.logger.Log(log.NewTapForManaEvent(g.Turn.TurnNumber, string(g.Turn.Phase), action.ActorID, c.ID))
	return nil
}

func findManaAbility(c *card.Card) *card.ActivatedAbility {
	for i := range c.Rules.ActivatedAbilities {
		if c.Rules.ActivatedAbilities[i].Timing == card.TimingMana {
			return &c.Rules.ActivatedAbilities[i]
		}
	}
	return nil
}

// actionCastSpell puts an instant/sorcery/permanent spell on the stack
// (or, for a land — not reachable here, see actionPlayLand), paying
// costs and resolving targets atomically before any mutation commits.
func (e *Engine) actionCastSpell(action Action) *Error {
	g := e.game
	p := g.Players[action.ActorID]

	var inst *zone.Instance
	fromGraveyard := false
	if action.UsesFlashback {
		inst = findInstance(p.Graveyard, action.ObjectID)
		fromGraveyard = true
	} else {
		inst = findInstance(p.Hand, action.ObjectID)
	}
	if inst == nil {
		return newError(UnknownObjectError, "card %q is not available to cast", action.ObjectID)
	}
	c := e.cardOf(inst.CardID)

	if err := e.checkCastTiming(action.ActorID, c); err != nil {
		return err
	}

	var manaCost *card.ManaCost
	if fromGraveyard {
		if c.Rules.FlashbackCost == nil {
			return newError(CannotPayCostError, "%q has no flashback cost", c.ID)
		}
		manaCost = c.Rules.FlashbackCost
	} else {
		manaCost = &c.ManaCost
	}
	costs := append([]card.Cost{{Kind: card.CostMana, Mana: manaCost}}, c.Rules.AdditionalCosts...)
	if manaCost.X && action.XValue < 0 {
		return newError(CannotPayCostError, "X spell requires a non-negative X value")
	}
	for _, cost := range costs {
		if !e.canPayCost(action.ActorID, "", cost, action.XValue) {
			return newError(CannotPayCostError, "cannot pay cost to cast %q", c.ID)
		}
	}

	targets, terr := e.resolveTargets(action.ActorID, c.Rules.Targets, action.Targets)
	if terr != nil {
		return terr
	}

	for _, cost := range costs {
		if err := e.payCost(action.ActorID, "", cost, action.XValue, "", nil); err != nil {
			return err
		}
	}

	if fromGraveyard {
		p.RemoveFromGraveyard(inst.InstanceID)
	} else {
		p.RemoveFromHand(inst.InstanceID)
	}
	inst.Zone = zone.Stack
	item := &zone.StackItem{
		ItemID:       e.nextStackItemID(),
		Kind:         zone.ItemSpell,
		ControllerID: action.ActorID,
		Instance:     inst,
		Effects:      c.Rules.Effects,
		Targets:      targets,
		XValue:       action.XValue,
	}
	g.Zones.Push(item)
	e.recordObserverEvent(triggerEvent{Kind: card.TriggerCastSpell, ActorID: action.ActorID, ObjectInstanceID: inst.InstanceID})
	e.openPriorityWindow(action.ActorID)
	return nil
}

// actionActivateAbility pays the costs of the permanent's first non-mana
// activated ability and puts it on the stack. Mana abilities are not
// activated here; actionTapForMana handles them.
func (e *Engine) actionActivateAbility(action Action) *Error {
	g := e.game
	perm, ok := g.Zones.Battlefield[action.ObjectID]
	if !ok {
		return newError(UnknownObjectError, "unknown permanent %q", action.ObjectID)
	}
	if perm.ControllerID != action.ActorID {
		return newError(InvalidTargetError, "permanent %q is not controlled by actor", action.ObjectID)
	}
	c := e.cardOf(perm.Instance.CardID)
	var ability *card.ActivatedAbility
	for i := range c.Rules.ActivatedAbilities {
		if c.Rules.ActivatedAbilities[i].Timing != card.TimingMana {
			ability = &c.Rules.ActivatedAbilities[i]
			break
		}
	}
	if ability == nil {
		return newError(InvalidTargetError, "permanent %q has no activatable ability", action.ObjectID)
	}
	if ability.Timing == card.TimingSorcerySpeed {
		if err := e.requireSorcerySpeed(action.ActorID); err != nil {
			return err
		}
	}

	for _, cost := range ability.Costs {
		if !e.canPayCost(action.ActorID, action.ObjectID, cost, action.XValue) {
			return newError(CannotPayCostError, "cannot pay cost to activate %q", c.ID)
		}
	}
	targets, terr := e.resolveTargets(action.ActorID, ability.Targets, action.Targets)
	if terr != nil {
		return terr
	}
	for _, cost := range ability.Costs {
		if err := e.payCost(action.ActorID, action.ObjectID, cost, action.XValue, "", nil); err != nil {
			return err
		}
	}

	item := &zone.StackItem{
		ItemID:           e.nextStackItemID(),
		Kind:             zone.ItemAbility,
		ControllerID:     action.ActorID,
		SourceInstanceID: action.ObjectID,
		Effects:          ability.Effects,
		Targets:          targets,
		XValue:           action.XValue,
	}
	g.Zones.Push(item)
	e.logger.Log(log.NewActivateAbilityEvent(g.Turn.TurnNumber, string(g.Turn.Phase), action.ActorID, c.ID))
	e.openPriorityWindow(action.ActorID)
	return nil
}

// checkCastTiming enforces sorcery-speed restrictions: sorceries and
// permanent spells (creatures/artifacts/enchantments) require an empty
// stack, the caster's own main phase, and priority; instants and Flash
// permanents may be cast any time the caster holds priority.
func (e *Engine) checkCastTiming(actorID string, c *card.Card) *Error {
	g := e.game
	if g.Turn.PriorityHolderID != actorID {
		return newError(NotYourPriorityError, "actor does not hold priority")
	}
	if c.HasType(card.TypeInstant) || c.Rules.HasKeyword(card.Flash) {
		return nil
	}
	return e.requireSorcerySpeed(actorID)
}

func (e *Engine) requireSorcerySpeed(actorID string) *Error {
	g := e.game
	if g.Turn.PriorityHolderID != actorID {
		return newError(NotYourPriorityError, "actor does not hold priority")
	}
	if actorID != g.Turn.ActivePlayerID {
		return newError(IllegalTimingError, "only the active player may act at sorcery speed")
	}
	if g.Turn.Step != state.StepMain1 && g.Turn.Step != state.StepMain2 {
		return newError(IllegalTimingError, "sorcery-speed actions require a main phase")
	}
	if g.Zones.Peek() != nil {
		return newError(IllegalTimingError, "the stack must be empty for a sorcery-speed action")
	}
	return nil
}

// actionResolveDecision supplies an answer to the outstanding
// PendingDecision and resumes whatever was suspended.
func (e *Engine) actionResolveDecision(action Action) *Error {
	g := e.game
	pd := g.PendingDecision
	if pd == nil {
		return newError(IllegalTimingError, "no pending decision to resolve")
	}
	if pd.PlayerID != action.ActorID {
		return newError(NotYourPriorityError, "player %q is not the one deciding", action.ActorID)
	}

	wasCleanupDiscard := pd.Kind == state.DecisionDiscardToHandSize && e.suspendedResolution == nil

	switch pd.Kind {
	case state.DecisionDiscardToHandSize:
		if want, ok := pd.Partial["count"].(int); ok && len(action.Choices) != want {
			return newError(InvalidTargetError, "must discard exactly %d card(s), chose %d", want, len(action.Choices))
		}
		p := g.Players[action.ActorID]
		for _, id := range action.Choices {
			if inst := p.RemoveFromHand(id); inst != nil {
				p.SendToGraveyard(inst)
				e.logger.Log(log.NewDiscardEvent(g.Turn.TurnNumber, string(g.Turn.Phase), action.ActorID, inst.CardID))
			}
		}
		g.PendingDecision = nil
		if wasCleanupDiscard && len(p.Hand) > HandSizeLimit {
			g.PendingDecision = &state.PendingDecision{PlayerID: action.ActorID, Kind: state.DecisionDiscardToHandSize, Options: instanceCardIDs(p.Hand)}
			return nil
		}

	case state.DecisionSearchLibrary:
		p := g.Players[action.ActorID]
		targetZone, _ := pd.Partial["zone"].(string)
		g.PendingDecision = nil
		if len(action.Choices) > 0 {
			if inst := findInstance(p.Library, action.Choices[0]); inst != nil {
				p.Library = removeInstance(p.Library, inst.InstanceID)
				switch targetZone {
				case "BATTLEFIELD":
					inst.Zone = zone.Battlefield
					perm := &zone.Permanent{Instance: *inst, ControllerID: action.ActorID}
					g.Zones.Battlefield[inst.InstanceID] = perm
					g.RecordCreation(inst.InstanceID)
				default:
					inst.Zone = zone.Hand
					p.Hand = append(p.Hand, inst)
				}
			}
		}
		g.RNG.Shuffle(len(p.Library), func(i, j int) { p.Library[i], p.Library[j] = p.Library[j], p.Library[i] })
		e.logger.Log(log.NewShuffleEvent(g.Turn.TurnNumber, action.ActorID))

	case state.DecisionScry:
		p := g.Players[action.ActorID]
		g.PendingDecision = nil
		for i := len(action.Choices) - 1; i >= 0; i-- {
			if inst := findInstance(p.Library, action.Choices[i]); inst != nil {
				p.Library = removeInstance(p.Library, inst.InstanceID)
				p.PutOnTopOfLibrary(inst)
			}
		}
		for _, id := range pd.Options {
			if !containsString(action.Choices, id) {
				if inst := findInstance(p.Library, id); inst != nil {
					p.Library = removeInstance(p.Library, inst.InstanceID)
					p.PutOnBottomOfLibrary(inst)
				}
			}
		}

	default:
		g.PendingDecision = nil
	}

	e.logger.Log(log.NewDecisionResolvedEvent(g.Turn.TurnNumber, string(g.Turn.Phase), action.ActorID))

	switch {
	case e.suspendedResolution != nil:
		e.resumeSuspendedResolution()
		if g.PendingDecision == nil && !g.GameOver {
			e.openPriorityWindow(g.Turn.ActivePlayerID)
		}
	case wasCleanupDiscard && g.Turn.Step == state.StepCleanup:
		e.runCleanupStep()
	default:
		e.openPriorityWindow(g.Turn.PriorityHolderID)
	}
	return nil
}

// actionSkipCombat and actionSkipMain2 let the active player fast-forward
// past an empty-stack priority window without individually passing twice;
// both are sugar over repeated PASS_PRIORITY calls from the active
// player, available only when they hold priority with an empty stack.
// SKIP_COMBAT is offered from MAIN1 (§4.3) and fast-forwards through the
// entire combat phase, declaring no attackers, into MAIN2.
func (e *Engine) actionSkipCombat(action Action) *Error {
	g := e.game
	if g.Turn.ActivePlayerID != action.ActorID || g.Turn.PriorityHolderID != action.ActorID {
		return newError(NotYourPriorityError, "actor does not hold priority")
	}
	if g.Turn.Phase != state.PhaseMain1 {
		return newError(IllegalTimingError, "not in main phase 1")
	}
	if g.Zones.Peek() != nil {
		return newError(IllegalTimingError, "the stack must be empty to skip combat")
	}
	for g.Turn.Phase != state.PhaseMain2 && !g.GameOver {
		e.advanceStep()
		if g.PendingDecision != nil {
			return nil
		}
	}
	return nil
}

func (e *Engine) actionSkipMain2(action Action) *Error {
	g := e.game
	if err := e.requireSorcerySpeed(action.ActorID); err != nil {
		return err
	}
	if g.Turn.Step != state.StepMain2 {
		return newError(IllegalTimingError, "not in main phase 2")
	}
	e.advanceStep()
	return nil
}

// actionScoop immediately ends the game with action.ActorID as the loser,
// available at any time including while a pending decision is open.
func (e *Engine) actionScoop(action Action) *Error {
	g := e.game
	if _, ok := g.Players[action.ActorID]; !ok {
		return newError(UnknownObjectError, "unknown player %q", action.ActorID)
	}
	g.GameOver = true
	g.WinnerID = g.Opponent(action.ActorID)
	g.Reason = "opponent scooped"
	e.logger.Log(log.NewScoopEvent(g.Turn.TurnNumber, action.ActorID))
	e.logger.Log(log.NewWinEvent(g.Turn.TurnNumber, string(g.Turn.Phase), g.WinnerID, g.Reason))
	return nil
}

func findInstance(instances []*zone.Instance, instanceID string) *zone.Instance {
	for _, inst := range instances {
		if inst.InstanceID == instanceID {
			return inst
		}
	}
	return nil
}

func removeInstance(instances []*zone.Instance, instanceID string) []*zone.Instance {
	for i, inst := range instances {
		if inst.InstanceID == instanceID {
			return append(instances[:i], instances[i+1:]...)
		}
	}
	return instances
}
