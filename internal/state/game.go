package state

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/arcanecore/phase1/internal/zone"
)

// Game is the complete state of one duel: both players' private zones,
// the shared battlefield/stack/exile, the turn/step cursor, the seeded
// RNG, and whatever pending decision or extra-turn queue is outstanding.
// It is the single value the engine package reads and mutates; nothing
// else holds authoritative game state.
type Game struct {
	GameID           string
	InstanceCounter  int // monotonic source of fresh instance ids

	Players          map[string]*zone.Player
	StartingPlayerID string

	Turn *Turn
	Zones *zone.Global
	RNG  *Random

	History []string

	TemporaryEffects []TemporaryEffect
	DamageDealtToPlayers map[string]int

	PendingDecision *PendingDecision
	ExtraTurns      ExtraTurnQueue

	GameOver bool
	WinnerID string
	Reason   string

	// CreationOrder records the order permanents entered the battlefield,
	// oldest first, for the "creation-order-latest-wins" static ability
	// tiebreak and for the trigger collector's active-player-first,
	// then-creation-order sequencing. Instance ids are never reused, so
	// this list only grows; removed permanents are skipped by consumers.
	CreationOrder []string
}

// NewGame creates a fresh two-player game. playerOrder must name exactly
// the two player ids, with the first entry as the starting (and first
// active) player.
func NewGame(playerOrder []string, seed int64) (*Game, error) {
	if len(playerOrder) != 2 {
		return nil, fmt.Errorf("phase-1 requires exactly 2 players, got %d", len(playerOrder))
	}

	players := make(map[string]*zone.Player, 2)
	for _, pid := range playerOrder {
		players[pid] = &zone.Player{PlayerID: pid, Life: 20}
	}

	g := &Game{
		GameID:               uuid.New().String(),
		Players:              players,
		StartingPlayerID:     playerOrder[0],
		Turn:                 NewTurn(playerOrder[0]),
		Zones:                zone.NewGlobal(),
		RNG:                  NewRandom(seed),
		DamageDealtToPlayers: map[string]int{},
		ExtraTurns:           ExtraTurnQueue{},
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// NextInstanceID returns a fresh, never-reused instance id for a new
// CardInstance (a drawn card entering play, a token being created).
func (g *Game) NextInstanceID() string {
	g.InstanceCounter++
	return fmt.Sprintf("%s-inst-%d", g.GameID, g.InstanceCounter)
}

// Opponent returns the id of the player other than playerID, panicking
// if playerID is not one of the two known players — a phase-1 game
// always has exactly two, so this is a programmer error, not a runtime
// condition to handle gracefully.
func (g *Game) Opponent(playerID string) string {
	if _, ok := g.Players[playerID]; !ok {
		panic(fmt.Sprintf("unknown player id %q", playerID))
	}
	for pid := range g.Players {
		if pid != playerID {
			return pid
		}
	}
	panic(fmt.Sprintf("unknown player id %q", playerID))
}

// Log appends a free-text line to the game's history, mirroring the
// teacher's lightweight in-state event trail; internal/log's structured
// GameEvent stream is the primary observability surface and this stays
// purely for quick human-readable debugging.
func (g *Game) Log(message string) {
	g.History = append(g.History, message)
}

// RecordCreation appends instanceID to the creation-order list. Called
// whenever a permanent enters the battlefield.
func (g *Game) RecordCreation(instanceID string) {
	g.CreationOrder = append(g.CreationOrder, instanceID)
}

// Validate checks the structural invariants spec.md §3 requires: exactly
// two players, every zone-keyed map entry's key matching its payload,
// every battlefield permanent controlled by a known player, and every
// pending-decision / extra-turn player id resolvable.
func (g *Game) Validate() error {
	if g.GameID == "" {
		return fmt.Errorf("game_id must be non-empty")
	}
	if len(g.Players) != 2 {
		return fmt.Errorf("phase-1 requires exactly 2 players, got %d", len(g.Players))
	}
	if _, ok := g.Players[g.Turn.ActivePlayerID]; !ok {
		return fmt.Errorf("active player %q not in players", g.Turn.ActivePlayerID)
	}
	if _, ok := g.Players[g.StartingPlayerID]; !ok {
		return fmt.Errorf("starting player %q not in players", g.StartingPlayerID)
	}
	for instanceID, perm := range g.Zones.Battlefield {
		if instanceID != perm.Instance.InstanceID {
			return fmt.Errorf("battlefield key %q does not match permanent instance id %q", instanceID, perm.Instance.InstanceID)
		}
		if _, ok := g.Players[perm.ControllerID]; !ok {
			return fmt.Errorf("permanent %q controlled by unknown player %q", instanceID, perm.ControllerID)
		}
		if perm.State.DamageMarked < 0 {
			return fmt.Errorf("permanent %q has negative damage_marked", instanceID)
		}
	}
	for pid := range g.DamageDealtToPlayers {
		if _, ok := g.Players[pid]; !ok {
			return fmt.Errorf("damage_dealt_to_players references unknown player %q", pid)
		}
	}
	if g.PendingDecision != nil {
		if _, ok := g.Players[g.PendingDecision.PlayerID]; !ok {
			return fmt.Errorf("pending_decision references unknown player %q", g.PendingDecision.PlayerID)
		}
	}
	for _, pid := range g.ExtraTurns {
		if _, ok := g.Players[pid]; !ok {
			return fmt.Errorf("extra_turns references unknown player %q", pid)
		}
	}
	if g.GameOver && g.WinnerID != "" {
		if _, ok := g.Players[g.WinnerID]; !ok {
			return fmt.Errorf("winner_id %q is not a known player", g.WinnerID)
		}
	}
	return nil
}
