// Package engine is the authoritative rules engine core: a single
// in-memory, single-threaded state machine that owns one game's state,
// validates and resolves every submitted action, and exposes a
// player-scoped read-only projection. It is the union of the derived
// battlefield pass, the action surface, the cost/target resolver, the
// stack/priority state machine, the effect executor, the trigger
// collector, the combat subsystem, and state-based actions — kept in one
// package because these pieces share mutable state and decision context
// on every call, the way the teacher keeps its own rules resolution in
// one internal/game package across many files.
package engine

import (
	"strconv"

	"github.com/arcanecore/phase1/internal/card"
	"github.com/arcanecore/phase1/internal/log"
	"github.com/arcanecore/phase1/internal/state"
	"github.com/arcanecore/phase1/internal/zone"
)

// HandSizeLimit is the default maximum hand size enforced at cleanup.
const HandSizeLimit = 7

// Engine owns exactly one game's authoritative state. Nothing outside
// this package may mutate game or db directly; all access goes through
// SubmitAction, VisibleState, GetActionSchema, GetActionList, and
// GameOver.
type Engine struct {
	game   *state.Game
	db     card.DB
	logger log.EventLogger

	// pendingTriggers holds triggers collected since the last priority
	// window, in collection order; placePendingTriggersOnStack drains it in the §4.8
	// ordering (active-player-first, then creation order) just before the
	// next priority window opens.
	pendingTriggers []queuedTrigger

	nextItemID int

	// attemptedDrawFromEmpty records players who tried to draw from an
	// empty library since the last SBA pass; the SBA pass turns this into
	// a loss and clears it.
	attemptedDrawFromEmpty map[string]bool

	// deathtouchDamageThisTurn records permanents marked by at least one
	// point of deathtouch damage since the last cleanup; the SBA pass
	// destroys them regardless of remaining toughness.
	deathtouchDamageThisTurn map[string]bool

	// suspendedResolution holds the remainder of a stack item's effect
	// list when one of its effects raised a PendingDecision mid-resolution
	// (e.g. scry before the draw it feeds); resolved by
	// resumeSuspendedResolution once the decision is answered.
	suspendedResolution *suspendedResolution
}

// Deck is one player's starting deck: an ordered list of card ids, top
// of deck last (matching zone.Player.Library's pop-from-end convention).
type Deck struct {
	PlayerID string
	CardIDs  []string
	DeckName string
}

// NewGame constructs a fresh Engine for two decks, shuffles each
// library with the seeded RNG, and leaves both hands empty for the
// pregame mulligan loop to draw (the pregame mulligan collaborator is
// expected to run before play begins; this constructor does not skip
// the starting player's first draw itself — see Engine.BeginPostMulligan).
func NewGame(db card.DB, seed int64, deckA, deckB Deck, logger log.EventLogger) (*Engine, error) {
	g, err := state.NewGame([]string{deckA.PlayerID, deckB.PlayerID}, seed)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	e := &Engine{
		game: g, db: db, logger: logger,
		attemptedDrawFromEmpty:   map[string]bool{},
		deathtouchDamageThisTurn: map[string]bool{},
	}

	for _, d := range []Deck{deckA, deckB} {
		p := g.Players[d.PlayerID]
		p.DeckName = d.DeckName
		for _, cardID := range d.CardIDs {
			p.Library = append(p.Library, &zone.Instance{
				InstanceID: g.NextInstanceID(),
				CardID:     card.CanonicalCardID(cardID),
				OwnerID:    d.PlayerID,
				Zone:       zone.Library,
			})
		}
		g.RNG.Shuffle(len(p.Library), func(i, j int) {
			p.Library[i], p.Library[j] = p.Library[j], p.Library[i]
		})
	}
	return e, nil
}

// MulliganHand exposes one player's zone.Player to the pregame collaborator
// for the London mulligan loop only: Draw draws a card, Shuffle reshuffles
// the library with the game's own seeded RNG, and Bottom puts a drawn card
// back. It must only be called before BeginPostMulligan — once the game
// proper starts, all hand/library mutation goes through SubmitAction.
type MulliganHand struct {
	p   *zone.Player
	rng *state.Random
}

// Draw removes and returns the top card of the library, or nil if empty.
func (h MulliganHand) Draw() *zone.Instance { return h.p.DrawCard() }

// Shuffle reshuffles the library in place with the game's seeded RNG.
func (h MulliganHand) Shuffle() {
	h.rng.Shuffle(len(h.p.Library), func(i, j int) {
		h.p.Library[i], h.p.Library[j] = h.p.Library[j], h.p.Library[i]
	})
}

// ReturnAndShuffle moves every card in hand back into the library and
// reshuffles, the London mulligan's "put your hand back" step.
func (h MulliganHand) ReturnAndShuffle() {
	for _, inst := range h.p.Hand {
		h.p.PutOnBottomOfLibrary(inst)
	}
	h.p.Hand = nil
	h.Shuffle()
}

// Bottom removes instanceID from hand and puts it on the bottom of the
// library, the London mulligan's post-keep bottoming step.
func (h MulliganHand) Bottom(instanceID string) bool {
	inst := h.p.RemoveFromHand(instanceID)
	if inst == nil {
		return false
	}
	h.p.PutOnBottomOfLibrary(inst)
	return true
}

// Hand returns the current hand as (instanceID, cardID) pairs.
func (h MulliganHand) Hand() []zone.Instance {
	out := make([]zone.Instance, len(h.p.Hand))
	for i, inst := range h.p.Hand {
		out[i] = *inst
	}
	return out
}

// MulliganHand returns the pregame mulligan seam for one player. Valid
// only between NewGame and BeginPostMulligan.
func (e *Engine) MulliganHand(playerID string) MulliganHand {
	return MulliganHand{p: e.game.Players[playerID], rng: e.game.RNG}
}

// BeginPostMulligan is the engine's single post-mulligan entry point
// (§1 Non-goals: mulligan/pregame bottom decisions are a pregame
// collaborator's job). It draws cards for each player until their hand
// holds openingHandSize[pid] cards (nothing, when the collaborator already
// drew and kept that many through MulliganHand), sets priority to the
// starting player, and enters UNTAP of turn 1.
func (e *Engine) BeginPostMulligan(openingHandSize map[string]int) {
	g := e.game
	for pid, p := range g.Players {
		n := openingHandSize[pid]
		for len(p.Hand) < n {
			if p.DrawCard() == nil {
				break
			}
		}
		p.HasKeptHand = true
	}
	g.Turn.Step = state.StepUntap
	e.runUntapStep()
}

// VisibleState produces the player-scoped projection spec.md §6 defines.
func (e *Engine) VisibleState(viewerID string) VisibleState {
	g := e.game
	viewer := g.Players[viewerID]
	if viewer == nil {
		panic(invariant("visible_state requested for unknown player %q", viewerID))
	}
	opponentID := g.Opponent(viewerID)
	opponent := g.Players[opponentID]

	derivedByID := e.deriveBattlefield()
	battlefield := make([]PermanentView, 0, len(derivedByID))
	for _, v := range derivedByID {
		battlefield = append(battlefield, v)
	}

	stackViews := make([]StackItemView, 0, len(g.Zones.Stack))
	for _, item := range g.Zones.Stack {
		sv := StackItemView{ItemID: item.ItemID, Kind: item.Kind, ControllerID: item.ControllerID, XValue: item.XValue}
		if item.Instance != nil {
			sv.CardID = item.Instance.CardID
		}
		sv.SourceID = item.SourceInstanceID
		stackViews = append(stackViews, sv)
	}

	exileIDs := make([]string, 0, len(g.Zones.Exile))
	for _, inst := range g.Zones.Exile {
		exileIDs = append(exileIDs, inst.CardID)
	}

	vs := VisibleState{
		GameID:                e.game.GameID,
		TurnNumber:             g.Turn.TurnNumber,
		Phase:                  g.Turn.Phase,
		Step:                   g.Turn.Step,
		ActivePlayerID:         g.Turn.ActivePlayerID,
		PriorityHolderID:       g.Turn.PriorityHolderID,
		ViewerID:               viewerID,
		OwnLife:                viewer.Life,
		OpponentLife:           opponent.Life,
		OwnHand:                instanceCardIDs(viewer.Hand),
		OpponentHandCount:      len(opponent.Hand),
		OwnLibraryCount:        viewer.LibraryCount(),
		OpponentLibraryCount:   opponent.LibraryCount(),
		OwnGraveyard:           instanceCardIDs(viewer.Graveyard),
		OpponentGraveyard:      instanceCardIDs(opponent.Graveyard),
		Exile:                  exileIDs,
		Battlefield:            battlefield,
		Stack:                  stackViews,
		OwnManaPool:            viewer.ManaPool,
		OwnLandsPlayedThisTurn: viewer.LandsPlayedThisTurn,
		GameOver:               e.gameOverInfo(),
	}

	if g.Turn.Phase == state.PhaseCombat {
		vs.Combat = &CombatView{Attackers: g.Turn.Attackers, Blockers: g.Turn.Blockers}
	}

	if g.PendingDecision != nil {
		if g.PendingDecision.PlayerID == viewerID {
			vs.Pending = &PendingDecisionView{ForViewer: true, Kind: g.PendingDecision.Kind, Options: g.PendingDecision.Options}
		} else {
			vs.Pending = &PendingDecisionView{OpponentIsDeciding: true}
		}
	}

	return vs
}

func (e *Engine) gameOverInfo() GameOverInfo {
	return GameOverInfo{Over: e.game.GameOver, WinnerID: e.game.WinnerID, Reason: e.game.Reason}
}

// GameOver reports the terminal state of the game, if any.
func (e *Engine) GameOver() GameOverInfo {
	return e.gameOverInfo()
}

// Events returns the structured event log recorded so far.
func (e *Engine) Events() []log.GameEvent {
	return e.logger.Events()
}

func (e *Engine) nextStackItemID() string {
	e.nextItemID++
	return e.game.GameID + "-item-" + strconv.Itoa(e.nextItemID)
}
