package engine

import (
	"testing"

	"github.com/arcanecore/phase1/internal/card"
	_ "github.com/arcanecore/phase1/internal/card/pool"
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/state"
	"github.com/arcanecore/phase1/internal/zone"
)

func testDB(t *testing.T) card.DB {
	t.Helper()
	db, err := card.BuildDB()
	if err != nil {
		t.Fatalf("build card db: %v", err)
	}
	return db
}

// newTestEngine starts a fresh two-player game with empty opening hands
// (so every scenario stocks its own hand/battlefield via giveCard and
// putPermanent rather than depending on library shuffle order).
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := NewGame(testDB(t), 1,
		Deck{PlayerID: "P1", DeckName: "Deck A"},
		Deck{PlayerID: "P2", DeckName: "Deck B"},
		log.NewMemoryLogger(),
	)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	eng.BeginPostMulligan(map[string]int{"P1": 0, "P2": 0})
	return eng
}

// doublePass submits a pass from whoever currently holds priority, then
// from whoever holds it after that — the two passes a priority window
// needs to either resolve the stack's top item or advance the step/phase.
func doublePass(t *testing.T, eng *Engine) {
	t.Helper()
	first := eng.game.Turn.PriorityHolderID
	if res := eng.SubmitAction(Action{Type: ActionPassPriority, ActorID: first}); !res.OK {
		t.Fatalf("pass by %q failed: %v", first, res.Error)
	}
	second := eng.game.Turn.PriorityHolderID
	if res := eng.SubmitAction(Action{Type: ActionPassPriority, ActorID: second}); !res.OK {
		t.Fatalf("pass by %q failed: %v", second, res.Error)
	}
}

// passToMain1 carries a freshly-mulliganed turn 1 from UPKEEP (where
// BeginPostMulligan leaves it) through the skipped first draw and into
// MAIN1 with the active player holding priority.
func passToMain1(t *testing.T, eng *Engine) {
	t.Helper()
	doublePass(t, eng) // UPKEEP -> DRAW
	doublePass(t, eng) // DRAW -> MAIN1
}

// giveCard conjures a fresh instance of cardID directly into playerID's
// hand, bypassing the draw step so a scenario can stock an exact hand.
func giveCard(eng *Engine, playerID, cardID string) string {
	g := eng.game
	id := g.NextInstanceID()
	inst := &zone.Instance{InstanceID: id, CardID: card.CanonicalCardID(cardID), OwnerID: playerID, Zone: zone.Hand}
	g.Players[playerID].Hand = append(g.Players[playerID].Hand, inst)
	return id
}

// giveLibraryTopCard conjures a fresh instance onto the top of playerID's
// library (the library's last element, per zone.Player.DrawCard).
func giveLibraryTopCard(eng *Engine, playerID, cardID string) string {
	g := eng.game
	id := g.NextInstanceID()
	inst := &zone.Instance{InstanceID: id, CardID: card.CanonicalCardID(cardID), OwnerID: playerID, Zone: zone.Library}
	g.Players[playerID].Library = append(g.Players[playerID].Library, inst)
	return id
}

// putPermanent places a fresh, untapped, non-summoning-sick permanent
// directly on the battlefield under controllerID's control, bypassing
// casting entirely for scenarios that only care about what happens next.
func putPermanent(eng *Engine, controllerID, cardID string) string {
	g := eng.game
	id := g.NextInstanceID()
	inst := zone.Instance{InstanceID: id, CardID: card.CanonicalCardID(cardID), OwnerID: controllerID, Zone: zone.Battlefield}
	g.Zones.Battlefield[id] = &zone.Permanent{
		Instance:     inst,
		ControllerID: controllerID,
		State:        zone.PermanentState{SummoningSick: false},
	}
	g.RecordCreation(id)
	return id
}

// putSyntheticCreature injects a creature card that exists only for this
// test's db (not registered in the bundled pool) — used where a seed
// scenario names exact stats no pool card carries, such as a 3/2 with
// FIRST_STRIKE.
func putSyntheticCreature(eng *Engine, id string, power, toughness int, keywords ...card.Keyword) {
	eng.db[id] = &card.Card{
		ID: id, Name: id, TypeLine: []card.Type{card.TypeCreature},
		Power: power, Toughness: toughness,
		Rules: card.RulesBlock{Keywords: keywords},
	}
}

// TestLandPlayTapPass covers spec.md §8 scenario 1: playing a Forest,
// tapping it for mana, and passing priority twice empties the pool again
// at the step boundary and advances the turn structure.
func TestLandPlayTapPass(t *testing.T) {
	eng := newTestEngine(t)
	passToMain1(t, eng)

	forestID := giveCard(eng, "P1", "basic_forest")
	if res := eng.SubmitAction(Action{Type: ActionPlayLand, ActorID: "P1", ObjectID: forestID}); !res.OK {
		t.Fatalf("play land: %v", res.Error)
	}
	if res := eng.SubmitAction(Action{Type: ActionTapForMana, ActorID: "P1", ObjectID: forestID}); !res.OK {
		t.Fatalf("tap for mana: %v", res.Error)
	}

	p1 := eng.game.Players["P1"]
	if got := p1.ManaPool.Colored[string(card.Green)]; got != 1 {
		t.Fatalf("expected {G:1} in pool, got %+v", p1.ManaPool)
	}

	doublePass(t, eng) // MAIN1 -> BEGIN_COMBAT

	if p1.ManaPool.Total() != 0 {
		t.Fatalf("expected mana pool empty at step boundary, got %+v", p1.ManaPool)
	}
	if eng.game.Turn.Phase != state.PhaseCombat || eng.game.Turn.Step != state.StepBeginCombat {
		t.Fatalf("expected BEGIN_COMBAT, got %s/%s", eng.game.Turn.Phase, eng.game.Turn.Step)
	}
	if perm, ok := eng.game.Zones.Battlefield[forestID]; !ok || !perm.State.Tapped {
		t.Fatalf("expected forest to remain on battlefield, tapped")
	}
}

// TestCreatureETBDrawsCard covers spec.md §8 scenario 2: a creature's
// ETB trigger is placed on the stack as its own item and needs a second
// priority round-trip to resolve, after which it draws a card.
func TestCreatureETBDrawsCard(t *testing.T) {
	eng := newTestEngine(t)
	passToMain1(t, eng)

	scribeID := giveCard(eng, "P1", "archive_scribe")
	giveLibraryTopCard(eng, "P1", "basic_forest")

	p1 := eng.game.Players["P1"]
	p1.ManaPool.Add(string(card.Blue), 1)
	p1.ManaPool.Add("", 1)

	if res := eng.SubmitAction(Action{Type: ActionCastSpell, ActorID: "P1", ObjectID: scribeID}); !res.OK {
		t.Fatalf("cast archive_scribe: %v", res.Error)
	}

	doublePass(t, eng) // resolve the spell: permanent enters, ETB trigger queued
	if _, ok := eng.game.Zones.Battlefield[scribeID]; !ok {
		t.Fatalf("expected archive_scribe on battlefield after spell resolves")
	}
	if len(eng.game.Zones.Stack) != 1 {
		t.Fatalf("expected the ETB draw trigger on the stack, got %d items", len(eng.game.Zones.Stack))
	}
	handBefore := len(p1.Hand)

	doublePass(t, eng) // resolve the draw trigger

	if len(p1.Hand) != handBefore+1 {
		t.Fatalf("expected hand to grow by 1 card from the ETB draw, was %d now %d", handBefore, len(p1.Hand))
	}
}

// TestHexproofRejectsTargetedCast covers spec.md §8 scenario 3: casting a
// single-target removal spell at a hexproof creature the caster doesn't
// control is rejected before any cost is paid.
func TestHexproofRejectsTargetedCast(t *testing.T) {
	eng := newTestEngine(t)
	passToMain1(t, eng)

	rogueID := putPermanent(eng, "P2", "masked_rogue")
	boltID := giveCard(eng, "P1", "doom_blade")
	p1 := eng.game.Players["P1"]
	p1.ManaPool.Add(string(card.Black), 1)
	p1.ManaPool.Add("", 1)

	res := eng.SubmitAction(Action{
		Type: ActionCastSpell, ActorID: "P1", ObjectID: boltID,
		Targets: [][]TargetRef{{{InstanceID: rogueID}}},
	})
	if res.OK {
		t.Fatalf("expected hexproof to reject the cast")
	}
	if res.Error.Kind != InvalidTargetError {
		t.Fatalf("expected InvalidTargetError, got %v", res.Error.Kind)
	}
	if _, inHand := findInstanceIdx(p1.Hand, boltID); !inHand {
		t.Fatalf("doom_blade should remain in hand after a rejected cast")
	}
	if p1.ManaPool.Total() != 2 {
		t.Fatalf("expected no mana spent on a rejected cast, pool now %+v", p1.ManaPool)
	}
	if _, ok := eng.game.Zones.Battlefield[rogueID]; !ok {
		t.Fatalf("masked_rogue should remain on the battlefield")
	}
}

func findInstanceIdx(hand []*zone.Instance, id string) (int, bool) {
	for i, inst := range hand {
		if inst.InstanceID == id {
			return i, true
		}
	}
	return -1, false
}

// combatSetup advances a fresh game to DECLARE_ATTACKERS with attackerID
// controlled by P1 and blockerID controlled by P2, both already on the
// battlefield.
func combatSetup(t *testing.T, eng *Engine) {
	t.Helper()
	passToMain1(t, eng)
	doublePass(t, eng) // MAIN1 -> BEGIN_COMBAT
	doublePass(t, eng) // BEGIN_COMBAT -> DECLARE_ATTACKERS
}

// TestTrampleDealsOverflowToDefendingPlayer covers spec.md §8 scenario 4:
// a 5/5 TRAMPLE attacker blocked by a 2/2 assigns lethal damage to the
// blocker and tramples the rest over to the defending player.
func TestTrampleDealsOverflowToDefendingPlayer(t *testing.T) {
	eng := newTestEngine(t)
	attackerID := putPermanent(eng, "P1", "trampling_behemoth")
	blockerID := putPermanent(eng, "P2", "grizzly_bear")
	combatSetup(t, eng)

	if res := eng.SubmitAction(Action{Type: ActionDeclareAttackers, ActorID: "P1", Attackers: []string{attackerID}}); !res.OK {
		t.Fatalf("declare attackers: %v", res.Error)
	}
	doublePass(t, eng) // DECLARE_ATTACKERS -> DECLARE_BLOCKERS

	p2 := eng.game.Players["P2"]
	lifeBefore := p2.Life
	if res := eng.SubmitAction(Action{
		Type: ActionDeclareBlockers, ActorID: "P2",
		Blockers: map[string][]string{attackerID: {blockerID}},
	}); !res.OK {
		t.Fatalf("declare blockers: %v", res.Error)
	}

	if _, alive := eng.game.Zones.Battlefield[blockerID]; alive {
		t.Fatalf("expected the 2/2 blocker to die to lethal damage")
	}
	if got := lifeBefore - p2.Life; got != 3 {
		t.Fatalf("expected 3 trample damage to the defending player, life dropped by %d", got)
	}
	if perm, ok := eng.game.Zones.Battlefield[attackerID]; !ok || perm.State.DamageMarked != 2 {
		t.Fatalf("expected the 5/5 attacker to survive with the 2/2 blocker's 2 damage marked")
	}
}

// TestFirstStrikeAttackerSurvives covers spec.md §8 scenario 5: a 3/2
// FIRST_STRIKE attacker kills a 2/2 blocker before the blocker ever deals
// damage, so the attacker survives at full toughness.
func TestFirstStrikeAttackerSurvives(t *testing.T) {
	eng := newTestEngine(t)
	putSyntheticCreature(eng, "test_first_strike_3_2", 3, 2, card.FirstStrike)
	attackerID := putPermanent(eng, "P1", "test_first_strike_3_2")
	blockerID := putPermanent(eng, "P2", "grizzly_bear")
	combatSetup(t, eng)

	if res := eng.SubmitAction(Action{Type: ActionDeclareAttackers, ActorID: "P1", Attackers: []string{attackerID}}); !res.OK {
		t.Fatalf("declare attackers: %v", res.Error)
	}
	doublePass(t, eng)

	if res := eng.SubmitAction(Action{
		Type: ActionDeclareBlockers, ActorID: "P2",
		Blockers: map[string][]string{attackerID: {blockerID}},
	}); !res.OK {
		t.Fatalf("declare blockers: %v", res.Error)
	}

	if _, alive := eng.game.Zones.Battlefield[blockerID]; alive {
		t.Fatalf("expected the blocker to die in the first-strike damage pass")
	}
	perm, ok := eng.game.Zones.Battlefield[attackerID]
	if !ok {
		t.Fatalf("expected the first-strike attacker to survive")
	}
	if perm.State.DamageMarked != 0 {
		t.Fatalf("expected the first-strike attacker to take no damage, got %d marked", perm.State.DamageMarked)
	}
}

// TestCounterspellWithIllegalTargetAfterHexproofGrant covers spec.md §8
// scenario 6: a targeted removal spell on the stack is countered with no
// effect (but its cost stays paid) once its only target gains hexproof
// before the spell resolves.
func TestCounterspellWithIllegalTargetAfterHexproofGrant(t *testing.T) {
	eng := newTestEngine(t)
	passToMain1(t, eng)

	bearID := putPermanent(eng, "P2", "grizzly_bear")
	acolyteID := putPermanent(eng, "P2", "warded_acolyte")
	p2 := eng.game.Players["P2"]
	p2.ManaPool.Add("", 1)

	bladeID := giveCard(eng, "P1", "doom_blade")
	p1 := eng.game.Players["P1"]
	p1.ManaPool.Add(string(card.Black), 1)
	p1.ManaPool.Add("", 1)

	if res := eng.SubmitAction(Action{
		Type: ActionCastSpell, ActorID: "P1", ObjectID: bladeID,
		Targets: [][]TargetRef{{{InstanceID: bearID}}},
	}); !res.OK {
		t.Fatalf("cast doom_blade: %v", res.Error)
	}
	if p1.ManaPool.Total() != 0 {
		t.Fatalf("expected doom_blade's cost to be paid immediately, pool now %+v", p1.ManaPool)
	}

	// P1 passes priority; before passing back, P2 grants the bear hexproof.
	if res := eng.SubmitAction(Action{Type: ActionPassPriority, ActorID: "P1"}); !res.OK {
		t.Fatalf("P1 pass: %v", res.Error)
	}
	if res := eng.SubmitAction(Action{
		Type: ActionActivateAbility, ActorID: "P2", ObjectID: acolyteID,
		Targets: [][]TargetRef{{{InstanceID: bearID}}},
	}); !res.OK {
		t.Fatalf("activate warded_acolyte: %v", res.Error)
	}

	// The ability resolves ahead of doom_blade; both players pass it
	// through, then pass again to resolve doom_blade itself.
	doublePass(t, eng)
	doublePass(t, eng)

	if _, ok := eng.game.Zones.Battlefield[bearID]; !ok {
		t.Fatalf("grizzly_bear should have survived the countered spell")
	}
	if len(eng.game.Zones.Stack) != 0 {
		t.Fatalf("expected an empty stack after both items resolved, got %d", len(eng.game.Zones.Stack))
	}
	foundInGraveyard := false
	for _, inst := range p1.Graveyard {
		if inst.InstanceID == bladeID {
			foundInGraveyard = true
		}
	}
	if !foundInGraveyard {
		t.Fatalf("expected the countered doom_blade to still move to its owner's graveyard")
	}
	if p1.ManaPool.Total() != 0 {
		t.Fatalf("a countered spell's cost remains paid, pool should not refund")
	}
}

// TestSkipCombatAdvancesFromMain1ToMain2 covers the MAIN1-only SKIP_COMBAT
// surface (actionsurface.go's skipDescriptors): it must fast-forward the
// whole combat phase without declaring any attackers.
func TestSkipCombatAdvancesFromMain1ToMain2(t *testing.T) {
	eng := newTestEngine(t)
	passToMain1(t, eng)

	if res := eng.SubmitAction(Action{Type: ActionSkipCombat, ActorID: "P1"}); !res.OK {
		t.Fatalf("skip combat: %v", res.Error)
	}
	if eng.game.Turn.Phase != state.PhaseMain2 {
		t.Fatalf("expected SKIP_COMBAT to land in MAIN2, got %s/%s", eng.game.Turn.Phase, eng.game.Turn.Step)
	}
	if len(eng.game.Turn.Attackers) != 0 {
		t.Fatalf("expected no attackers to have been declared")
	}
}

// TestSkipCombatRejectedOutsideMain1 locks in that SKIP_COMBAT is only
// ever legal from the window it's actually surfaced in.
func TestSkipCombatRejectedOutsideMain1(t *testing.T) {
	eng := newTestEngine(t)
	combatSetup(t, eng) // advances to DECLARE_ATTACKERS

	res := eng.SubmitAction(Action{Type: ActionSkipCombat, ActorID: "P1"})
	if res.OK {
		t.Fatalf("expected SKIP_COMBAT to be rejected outside MAIN1")
	}
	if res.Error.Kind != IllegalTimingError {
		t.Fatalf("expected IllegalTimingError, got %v", res.Error.Kind)
	}
}

// TestGrantExtraTurnQueuesAnotherTurnForController covers
// EffectGrantExtraTurn end to end, through Temporal Surge, the queue it
// pushes onto, and endTurn's consumption of that queue.
func TestGrantExtraTurnQueuesAnotherTurnForController(t *testing.T) {
	eng := newTestEngine(t)
	passToMain1(t, eng)

	surgeID := giveCard(eng, "P1", "temporal_surge")
	p1 := eng.game.Players["P1"]
	p1.ManaPool.Add(string(card.Blue), 2)
	p1.ManaPool.Add("", 3)

	if res := eng.SubmitAction(Action{Type: ActionCastSpell, ActorID: "P1", ObjectID: surgeID}); !res.OK {
		t.Fatalf("cast temporal_surge: %v", res.Error)
	}
	doublePass(t, eng) // resolve temporal_surge

	if len(eng.game.ExtraTurns) != 1 || eng.game.ExtraTurns[0] != "P1" {
		t.Fatalf("expected P1 queued for an extra turn, got %+v", eng.game.ExtraTurns)
	}

	if res := eng.SubmitAction(Action{Type: ActionSkipCombat, ActorID: "P1"}); !res.OK {
		t.Fatalf("skip combat: %v", res.Error)
	}
	doublePass(t, eng) // MAIN2 -> END
	doublePass(t, eng) // END -> CLEANUP -> next turn's UNTAP/UPKEEP

	if eng.game.Turn.ActivePlayerID != "P1" {
		t.Fatalf("expected P1 to take the extra turn, active player is %q", eng.game.Turn.ActivePlayerID)
	}
	if len(eng.game.ExtraTurns) != 0 {
		t.Fatalf("expected the extra turn queue to be drained, got %+v", eng.game.ExtraTurns)
	}
}

// TestPreventCombatDamageZeroesAttackerDamage covers EffectPreventCombatDamage's
// wiring into dealCombatDamagePass: a creature carrying the grant deals no
// combat damage, in either direction, but still takes damage normally.
func TestPreventCombatDamageZeroesAttackerDamage(t *testing.T) {
	eng := newTestEngine(t)
	attackerID := putPermanent(eng, "P1", "grizzly_bear")
	blockerID := putPermanent(eng, "P2", "grizzly_bear")
	combatSetup(t, eng)

	eng.game.TemporaryEffects = append(eng.game.TemporaryEffects, state.TemporaryEffect{
		Effect:           card.EffectSpec{Kind: card.EffectPreventCombatDamage},
		TargetInstanceID: attackerID,
		ExpiresTurn:      eng.game.Turn.TurnNumber,
		ExpiresStep:      state.StepCleanup,
	})

	if res := eng.SubmitAction(Action{Type: ActionDeclareAttackers, ActorID: "P1", Attackers: []string{attackerID}}); !res.OK {
		t.Fatalf("declare attackers: %v", res.Error)
	}
	doublePass(t, eng)

	if res := eng.SubmitAction(Action{
		Type: ActionDeclareBlockers, ActorID: "P2",
		Blockers: map[string][]string{attackerID: {blockerID}},
	}); !res.OK {
		t.Fatalf("declare blockers: %v", res.Error)
	}

	blockerPerm, ok := eng.game.Zones.Battlefield[blockerID]
	if !ok || blockerPerm.State.DamageMarked != 0 {
		t.Fatalf("expected the blocker to take no damage from a prevented attacker")
	}
	attackerPerm, ok := eng.game.Zones.Battlefield[attackerID]
	if !ok || attackerPerm.State.DamageMarked != 2 {
		t.Fatalf("expected the attacker to still take the blocker's damage, got %+v", attackerPerm)
	}
}

// TestArcaneDenialCountersTargetSpell covers SelectorTargetSpell end to
// end: Arcane Denial targets a spell by its stack item id (not an
// instance id), and resolving it removes that spell from the stack
// before it can resolve.
func TestArcaneDenialCountersTargetSpell(t *testing.T) {
	eng := newTestEngine(t)
	passToMain1(t, eng)

	divinationID := giveCard(eng, "P1", "divination")
	p1 := eng.game.Players["P1"]
	p1.ManaPool.Add(string(card.Blue), 1)
	p1.ManaPool.Add("", 2)

	if res := eng.SubmitAction(Action{Type: ActionCastSpell, ActorID: "P1", ObjectID: divinationID}); !res.OK {
		t.Fatalf("cast divination: %v", res.Error)
	}
	targetItem := eng.game.Zones.Peek()
	if targetItem == nil {
		t.Fatalf("expected divination on the stack")
	}
	targetItemID := targetItem.ItemID

	if res := eng.SubmitAction(Action{Type: ActionPassPriority, ActorID: "P1"}); !res.OK {
		t.Fatalf("P1 pass: %v", res.Error)
	}

	denialID := giveCard(eng, "P2", "arcane_denial")
	p2 := eng.game.Players["P2"]
	p2.ManaPool.Add(string(card.Blue), 1)
	p2.ManaPool.Add("", 1)

	if res := eng.SubmitAction(Action{
		Type: ActionCastSpell, ActorID: "P2", ObjectID: denialID,
		Targets: [][]TargetRef{{{InstanceID: targetItemID}}},
	}); !res.OK {
		t.Fatalf("cast arcane_denial: %v", res.Error)
	}

	handBefore := len(p1.Hand)
	doublePass(t, eng) // resolve arcane_denial, countering divination

	if len(eng.game.Zones.Stack) != 0 {
		t.Fatalf("expected an empty stack, got %d", len(eng.game.Zones.Stack))
	}
	if len(p1.Hand) != handBefore {
		t.Fatalf("expected divination's draw to never resolve, hand went from %d to %d", handBefore, len(p1.Hand))
	}
	foundInGraveyard := false
	for _, inst := range p1.Graveyard {
		if inst.InstanceID == divinationID {
			foundInGraveyard = true
		}
	}
	if !foundInGraveyard {
		t.Fatalf("expected the countered divination to still move to its owner's graveyard")
	}
}

// TestResolveDiscardDecisionRejectsWrongCount covers a mid-resolution
// targeted discard (Mind Rot, EffectDiscardCards): RESOLVE_DECISION must
// supply exactly the required count, not fewer.
func TestResolveDiscardDecisionRejectsWrongCount(t *testing.T) {
	eng := newTestEngine(t)
	passToMain1(t, eng)

	giveCard(eng, "P2", "basic_forest")
	giveCard(eng, "P2", "basic_forest")
	giveCard(eng, "P2", "basic_forest")

	rotID := giveCard(eng, "P1", "mind_rot")
	p1 := eng.game.Players["P1"]
	p1.ManaPool.Add(string(card.Black), 1)
	p1.ManaPool.Add("", 2)

	if res := eng.SubmitAction(Action{
		Type: ActionCastSpell, ActorID: "P1", ObjectID: rotID,
		Targets: [][]TargetRef{{{PlayerID: "P2"}}},
	}); !res.OK {
		t.Fatalf("cast mind_rot: %v", res.Error)
	}
	doublePass(t, eng) // resolve mind_rot, opens P2's discard decision

	p2 := eng.game.Players["P2"]
	if eng.game.PendingDecision == nil || eng.game.PendingDecision.PlayerID != "P2" {
		t.Fatalf("expected P2 to have a pending discard decision")
	}
	only := p2.Hand[0].InstanceID

	res := eng.SubmitAction(Action{Type: ActionResolveDecision, ActorID: "P2", Choices: []string{only}})
	if res.OK {
		t.Fatalf("expected discarding 1 of 2 required cards to be rejected")
	}
	if eng.game.PendingDecision == nil {
		t.Fatalf("expected the discard decision to remain pending after a rejected answer")
	}

	both := []string{p2.Hand[0].InstanceID, p2.Hand[1].InstanceID}
	if res := eng.SubmitAction(Action{Type: ActionResolveDecision, ActorID: "P2", Choices: both}); !res.OK {
		t.Fatalf("discard exactly 2: %v", res.Error)
	}
	if eng.game.PendingDecision != nil {
		t.Fatalf("expected the discard decision to be resolved")
	}
}
