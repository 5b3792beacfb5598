package engine

import (
	"github.com/invopop/jsonschema"

	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/state"
	"github.com/arcanecore/phase1/internal/zone"
)

// ActionDescriptor is one legal action template get_actions/get_action_schema
// exposes to a surface driving the engine purely through VisibleState: the
// action kind together with the concrete choices available for whichever
// slots that kind leaves open. A surface assembles a submittable Action by
// picking an ObjectChoices entry and, for each TargetGroups entry, a subset
// within that group's declared Min/Max — the engine does not expand every
// legal combination itself, the way get_action_schema's "choices" lists
// leave combination to the caller rather than enumerating every one up front.
type ActionDescriptor struct {
	Type ActionKind

	// ObjectChoices names the legal ObjectID values for kinds that need
	// one (a card in hand/graveyard to cast or play, a permanent to
	// activate or tap). Each entry also carries the card_id, for
	// surfaces that want to show a name without a second lookup.
	ObjectChoices []ObjectChoice

	// TargetGroups gives, in TargetSpec.Groups order, the legal targets
	// and the Min/Max a chosen subset must satisfy. Nil for actions
	// without targets.
	TargetGroups []TargetGroupChoice

	// XMax is the highest affordable X value, -1 if this action has no
	// X cost.
	XMax int

	// UsesFlashback is true for a CAST_SPELL descriptor built from the
	// graveyard rather than hand.
	UsesFlashback bool

	// AbilityIndex selects which of a permanent's ActivatedAbilities an
	// ACTIVATE_ABILITY descriptor refers to, for permanents with more
	// than one.
	AbilityIndex int
}

// ObjectChoice names one legal ObjectID together with the card it refers
// to, so a surface can label a choice without a second VisibleState lookup.
type ObjectChoice struct {
	InstanceID string
	CardID     string
}

// TargetGroupChoice is one TargetSpec group's legal candidates.
type TargetGroupChoice struct {
	Candidates []TargetRef
	Min, Max   int
}

// GetActionList enumerates every legal ActionDescriptor for playerID given
// the current state, the engine-side half of the external "get_actions"
// interface: a surface never has to guess what's legal, it only submits
// what this method already says is available.
func (e *Engine) GetActionList(playerID string) []ActionDescriptor {
	g := e.game
	if g.GameOver {
		return nil
	}
	if g.PendingDecision != nil {
		if g.PendingDecision.PlayerID != playerID {
			return nil
		}
		return []ActionDescriptor{{Type: ActionResolveDecision, XMax: -1}}
	}
	if g.Turn.PriorityHolderID != playerID {
		return nil
	}

	var out []ActionDescriptor
	out = append(out, e.playLandDescriptors(playerID)...)
	out = append(out, e.tapForManaDescriptors(playerID)...)
	out = append(out, e.castSpellDescriptors(playerID)...)
	out = append(out, e.activateAbilityDescriptors(playerID)...)
	out = append(out, e.combatDescriptors(playerID)...)
	out = append(out, e.skipDescriptors(playerID)...)

	if !e.passBlockedByCombatDeclaration(playerID) {
		out = append(out, ActionDescriptor{Type: ActionPassPriority, XMax: -1})
	}
	out = append(out, ActionDescriptor{Type: ActionScoop, XMax: -1})
	return out
}

func (e *Engine) playLandDescriptors(playerID string) []ActionDescriptor {
	g := e.game
	if err := e.requireSorcerySpeed(playerID); err != nil {
		return nil
	}
	p := g.Players[playerID]
	if p.LandsPlayedThisTurn > 0 {
		return nil
	}
	var choices []ObjectChoice
	for _, inst := range p.Hand {
		if e.cardOf(inst.CardID).HasType(card.TypeLand) {
			choices = append(choices, ObjectChoice{InstanceID: inst.InstanceID, CardID: inst.CardID})
		}
	}
	if len(choices) == 0 {
		return nil
	}
	return []ActionDescriptor{{Type: ActionPlayLand, ObjectChoices: choices, XMax: -1}}
}

func (e *Engine) tapForManaDescriptors(playerID string) []ActionDescriptor {
	g := e.game
	var choices []ObjectChoice
	for id, perm := range g.Zones.Battlefield {
		if perm.ControllerID != playerID || perm.State.Tapped {
			continue
		}
		c := e.cardOf(perm.Instance.CardID)
		if findManaAbility(c) != nil {
			choices = append(choices, ObjectChoice{InstanceID: id, CardID: perm.Instance.CardID})
		}
	}
	if len(choices) == 0 {
		return nil
	}
	return []ActionDescriptor{{Type: ActionTapForMana, ObjectChoices: choices, XMax: -1}}
}

// castSpellDescriptors builds one descriptor per castable card in hand
// (and, separately, one per flashback-eligible card in the graveyard),
// following the same timing/affordability gates actionCastSpell enforces.
func (e *Engine) castSpellDescriptors(playerID string) []ActionDescriptor {
	g := e.game
	p := g.Players[playerID]
	var out []ActionDescriptor

	addIfLegal := func(instanceID, cardID string, fromGraveyard bool) {
		c := e.cardOf(cardID)
		if c.HasType(card.TypeLand) {
			return
		}
		if err := e.checkCastTiming(playerID, c); err != nil {
			return
		}
		var manaCost *card.ManaCost
		if fromGraveyard {
			if c.Rules.FlashbackCost == nil {
				return
			}
			manaCost = c.Rules.FlashbackCost
		} else {
			manaCost = &c.ManaCost
		}
		costs := append([]card.Cost{{Kind: card.CostMana, Mana: manaCost}}, c.Rules.AdditionalCosts...)
		xMax := -1
		if manaCost.X {
			xMax = e.maxAffordableX(p, manaCost)
			if xMax < 0 {
				return
			}
		}
		for _, cost := range costs {
			if !e.canPayCost(playerID, "", cost, xMax) {
				return
			}
		}
		groups := e.targetGroupChoices(playerID, c.Rules.Targets, nil)
		out = append(out, ActionDescriptor{
			Type:          ActionCastSpell,
			ObjectChoices: []ObjectChoice{{InstanceID: instanceID, CardID: cardID}},
			TargetGroups:  groups,
			XMax:          xMax,
			UsesFlashback: fromGraveyard,
		})
	}

	for _, inst := range p.Hand {
		addIfLegal(inst.InstanceID, inst.CardID, false)
	}
	for _, inst := range p.Graveyard {
		addIfLegal(inst.InstanceID, inst.CardID, true)
	}
	return out
}

// maxAffordableX reports the highest X a player can currently pay for
// want, or -1 if even X=0 is unaffordable.
func (e *Engine) maxAffordableX(p *zone.Player, want *card.ManaCost) int {
	if !e.manaAffordable(p, want, 0) {
		return -1
	}
	best := 0
	for x := 1; x <= p.ManaPool.Total()+1; x++ {
		if !e.manaAffordable(p, want, x) {
			break
		}
		best = x
	}
	return best
}

func (e *Engine) activateAbilityDescriptors(playerID string) []ActionDescriptor {
	g := e.game
	var out []ActionDescriptor
	for instanceID, perm := range g.Zones.Battlefield {
		if perm.ControllerID != playerID {
			continue
		}
		c := e.cardOf(perm.Instance.CardID)
		for idx, ability := range c.Rules.ActivatedAbilities {
			if ability.Timing == card.TimingMana {
				continue
			}
			if ability.Timing == card.TimingSorcerySpeed {
				if err := e.requireSorcerySpeed(playerID); err != nil {
					continue
				}
			}
			affordable := true
			for _, cost := range ability.Costs {
				if !e.canPayCost(playerID, instanceID, cost, 0) {
					affordable = false
					break
				}
			}
			if !affordable {
				continue
			}
			groups := e.targetGroupChoices(playerID, ability.Targets, perm)
			out = append(out, ActionDescriptor{
				Type:          ActionActivateAbility,
				ObjectChoices: []ObjectChoice{{InstanceID: instanceID, CardID: perm.Instance.CardID}},
				TargetGroups:  groups,
				XMax:          -1,
				AbilityIndex:  idx,
			})
		}
	}
	return out
}

func (e *Engine) combatDescriptors(playerID string) []ActionDescriptor {
	g := e.game
	var out []ActionDescriptor
	if g.Turn.Step == state.StepDeclareAttackers && g.Turn.ActivePlayerID == playerID && !g.Turn.AttackersDeclared && g.Zones.Peek() == nil {
		views := e.deriveBattlefield()
		var candidates []TargetRef
		for id, perm := range g.Zones.Battlefield {
			if perm.ControllerID != playerID || perm.State.Tapped {
				continue
			}
			if !e.cardOf(perm.Instance.CardID).HasType(card.TypeCreature) {
				continue
			}
			v := views[id]
			if v.hasKeyword(card.Defender) {
				continue
			}
			if v.SummoningSick && !v.hasKeyword(card.Haste) {
				continue
			}
			candidates = append(candidates, TargetRef{InstanceID: id})
		}
		out = append(out, ActionDescriptor{
			Type:         ActionDeclareAttackers,
			TargetGroups: []TargetGroupChoice{{Candidates: candidates, Min: 0, Max: len(candidates)}},
			XMax:         -1,
		})
	}
	if g.Turn.Step == state.StepDeclareBlockers && g.Opponent(g.Turn.ActivePlayerID) == playerID && !g.Turn.BlockersDeclared && g.Zones.Peek() == nil {
		var candidates []TargetRef
		for id, perm := range g.Zones.Battlefield {
			if perm.ControllerID != playerID || perm.State.Tapped {
				continue
			}
			if e.cardOf(perm.Instance.CardID).HasType(card.TypeCreature) {
				candidates = append(candidates, TargetRef{InstanceID: id})
			}
		}
		out = append(out, ActionDescriptor{
			Type:         ActionDeclareBlockers,
			TargetGroups: []TargetGroupChoice{{Candidates: candidates, Min: 0, Max: len(candidates)}},
			XMax:         -1,
		})
	}
	return out
}

func (e *Engine) skipDescriptors(playerID string) []ActionDescriptor {
	g := e.game
	if g.Turn.ActivePlayerID != playerID || g.Zones.Peek() != nil {
		return nil
	}
	var out []ActionDescriptor
	switch g.Turn.Phase {
	case state.PhaseMain1:
		out = append(out, ActionDescriptor{Type: ActionSkipCombat, XMax: -1})
	case state.PhaseMain2:
		out = append(out, ActionDescriptor{Type: ActionSkipMain2, XMax: -1})
	}
	return out
}

func (e *Engine) passBlockedByCombatDeclaration(playerID string) bool {
	g := e.game
	if g.Turn.Step == state.StepDeclareAttackers && g.Turn.ActivePlayerID == playerID {
		return !g.Turn.AttackersDeclared
	}
	if g.Turn.Step == state.StepDeclareBlockers && g.Turn.ActivePlayerID != playerID {
		return !g.Turn.BlockersDeclared
	}
	return false
}

// targetGroupChoices lists, for each TargetSpec group, every legal
// TargetRef a caller could include in that group — the candidate pool
// validateSingleTarget would accept, computed without mutating anything.
func (e *Engine) targetGroupChoices(playerID string, spec card.TargetSpec, sourcePerm any) []TargetGroupChoice {
	if len(spec.Groups) == 0 {
		return nil
	}
	views := e.deriveBattlefield()
	out := make([]TargetGroupChoice, len(spec.Groups))
	for gi, group := range spec.Groups {
		var candidates []TargetRef
		for id := range views {
			ref := TargetRef{InstanceID: id}
			if e.validateSingleTarget(playerID, group.Selector, ref, views) == nil {
				candidates = append(candidates, ref)
			}
		}
		for pid := range e.game.Players {
			ref := TargetRef{PlayerID: pid}
			if e.validateSingleTarget(playerID, group.Selector, ref, views) == nil {
				candidates = append(candidates, ref)
			}
		}
		out[gi] = TargetGroupChoice{Candidates: candidates, Min: group.Min, Max: group.Max}
	}
	return out
}

// --- get_action_schema: JSON Schema for the wire Action shape ---

var actionSchemaReflector = &jsonschema.Reflector{
	Anonymous:      true,
	ExpandedStruct: true,
}

// ActionSchemaResponse is the wire shape get_action_schema returns: the
// closed set of action kinds legal right now, plus the JSON Schema a
// surface should validate a submitted Action against.
type ActionSchemaResponse struct {
	LegalKinds []ActionKind     `json:"legal_kinds"`
	Schema     *jsonschema.Schema `json:"schema"`
}

// GetActionSchema reports which ActionKinds are legal for playerID right
// now (the same set GetActionList's descriptors cover, collapsed to their
// kinds) together with the JSON Schema describing Action's wire shape, so
// a surface can validate a submission before calling SubmitAction.
func (e *Engine) GetActionSchema(playerID string) ActionSchemaResponse {
	descriptors := e.GetActionList(playerID)
	seen := map[ActionKind]bool{}
	var kinds []ActionKind
	for _, d := range descriptors {
		if !seen[d.Type] {
			seen[d.Type] = true
			kinds = append(kinds, d.Type)
		}
	}
	return ActionSchemaResponse{
		LegalKinds: kinds,
		Schema:     actionSchemaReflector.Reflect(&Action{}),
	}
}
